package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/lixenwraith/mlog"
	"github.com/lixenwraith/mlog/compat"
	"github.com/valyala/fasthttp"
)

func main() {
	// Create and configure logger
	logger := mlog.NewLogger()
	err := logger.ApplyOverride(
		"level=info",
		"bufferlimit=2048",
		"heartbeat_interval_s=60",
	)
	if err != nil {
		panic(err)
	}
	defer logger.Shutdown()

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(mlog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	// Configure fasthttp server
	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:         "mlog-example",
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	logger.Info("starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
}

func customLevelDetector(msg string) int64 {
	// Inspect specific fasthttp message patterns first
	if strings.Contains(msg, "connection cannot be served") {
		return mlog.LevelWarning
	}
	if strings.Contains(msg, "error when serving connection") {
		return mlog.LevelError
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}
