package main

import (
	"fmt"
	"time"

	"github.com/lixenwraith/mlog"
)

// Demonstrates live reconfiguration: the drain worker switches from
// console to file mode and back while producers keep logging.
func main() {
	logger, err := mlog.NewBuilder().
		LevelString("debug").
		Sources("all").
		BufferLimit(500).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	logger.AddSource("WORKER", "GREEN")

	logger.Info("console mode active", "WORKER")
	fmt.Printf("mode=%d\n", logger.Mode())

	// Switch the drain to an append-only file
	if err := logger.ApplyOverride("enable_save=true", "filename=reconfig.log"); err != nil {
		panic(err)
	}

	logger.Info("file mode active", "WORKER")
	_ = logger.Flush(time.Second)
	fmt.Printf("mode=%d\n", logger.Mode())

	// And back to the console, narrowing the filter on the way
	if err := logger.ApplyOverride("enable_save=false", "sources=WORKER", "level=warning"); err != nil {
		panic(err)
	}

	logger.Info("filtered out")
	logger.Warning("console again, warnings only", "WORKER")
	_ = logger.Flush(time.Second)
}
