package main

import (
	"time"

	"github.com/lixenwraith/mlog"
)

func main() {
	err := mlog.Configure(
		"level=debug",
		"sources=all",
	)
	if err != nil {
		panic(err)
	}
	defer mlog.Shutdown()

	mlog.AddSource("APP", "GREEN")
	mlog.AddSource("DB", "YELLOW")
	mlog.SetDefaultSource("APP")

	mlog.Info("application starting")
	mlog.Debug("connection pool sized", "DB")
	mlog.Warning("cache miss rate elevated")
	mlog.Error("query timed out", "DB")

	mlog.Dump("request context", map[string]any{
		"method": "GET",
		"path":   "/healthz",
		"ms":     12,
	})

	// Silence everything, then restore the previous threshold
	mlog.Disable()
	mlog.Info("never shown")
	mlog.Enable()
	mlog.Info("visible again")

	_ = mlog.Flush(time.Second)
}
