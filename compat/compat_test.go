package compat

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/panjf2000/gnet/v2/pkg/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/mlog"
)

// Compile-time interface checks
var (
	_ logging.Logger  = (*GnetAdapter)(nil)
	_ fasthttp.Logger = (*FastHTTPAdapter)(nil)
)

// newFileLogger creates a file-mode logger so adapter output can be read back
func newFileLogger(t *testing.T) (*mlog.Logger, string) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "compat.log")

	logger := mlog.NewLogger()
	cfg := mlog.DefaultConfig()
	cfg.EnableSave = true
	cfg.Filename = logPath
	cfg.FlushIntervalMs = 10

	require.NoError(t, logger.ApplyConfig(cfg))
	return logger, logPath
}

func readLog(t *testing.T, logger *mlog.Logger, path string) string {
	require.NoError(t, logger.Flush(time.Second))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

// TestGnetAdapterRouting verifies level methods reach the sink tagged
// with the GNET source
func TestGnetAdapterRouting(t *testing.T) {
	logger, logPath := newFileLogger(t)
	defer logger.Shutdown()

	adapter := NewGnetAdapter(logger)

	adapter.Debugf("debug %d", 1)
	adapter.Infof("info %s", "msg")
	adapter.Warnf("warn here")
	adapter.Errorf("error here")

	content := readLog(t, logger, logPath)
	assert.Contains(t, content, "debug 1")
	assert.Contains(t, content, "info msg")
	assert.Contains(t, content, "warn here")
	assert.Contains(t, content, "error here")
	assert.Contains(t, content, "GNET")
}

// TestGnetAdapterFatal verifies Fatalf flushes and invokes the custom
// handler instead of exiting
func TestGnetAdapterFatal(t *testing.T) {
	logger, logPath := newFileLogger(t)
	defer logger.Shutdown()

	var fatalMsg string
	adapter := NewGnetAdapter(logger, WithFatalHandler(func(msg string) {
		fatalMsg = msg
	}))

	adapter.Fatalf("fatal %s", "condition")

	assert.Equal(t, "fatal condition", fatalMsg)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fatal condition")
	assert.Contains(t, string(data), "Critical")
}

// TestFastHTTPAdapterLevelDetection verifies Printf routes by message content
func TestFastHTTPAdapterLevelDetection(t *testing.T) {
	logger, logPath := newFileLogger(t)
	defer logger.Shutdown()

	adapter := NewFastHTTPAdapter(logger)

	adapter.Printf("plain request served")
	adapter.Printf("error when serving connection")
	adapter.Printf("deprecated option used")

	content := readLog(t, logger, logPath)
	assert.Contains(t, content, "Info")
	assert.Contains(t, content, "Error")
	assert.Contains(t, content, "Warning")
	assert.Contains(t, content, "FASTHTTP")
}

// TestFastHTTPAdapterCustomDetector verifies detector override
func TestFastHTTPAdapterCustomDetector(t *testing.T) {
	logger, logPath := newFileLogger(t)
	defer logger.Shutdown()

	adapter := NewFastHTTPAdapter(logger,
		WithDefaultLevel(mlog.LevelDebug),
		WithLevelDetector(func(string) int64 { return mlog.LevelCritical }),
	)

	adapter.Printf("anything")

	content := readLog(t, logger, logPath)
	assert.Contains(t, content, "Critical")
}

// TestDetectLogLevel exercises the default detector table
func TestDetectLogLevel(t *testing.T) {
	assert.Equal(t, mlog.LevelError, DetectLogLevel("operation FAILED"))
	assert.Equal(t, mlog.LevelError, DetectLogLevel("panic recovered"))
	assert.Equal(t, mlog.LevelWarning, DetectLogLevel("Warning: slow response"))
	assert.Equal(t, mlog.LevelDebug, DetectLogLevel("trace id assigned"))
	assert.Equal(t, mlog.LevelInfo, DetectLogLevel("listening on :8080"))
}

// TestBuilderWithExistingLogger verifies adapters share a provided logger
func TestBuilderWithExistingLogger(t *testing.T) {
	logger, logPath := newFileLogger(t)
	defer logger.Shutdown()

	b := NewBuilder().WithLogger(logger)

	gnetAdapter, err := b.BuildGnet()
	require.NoError(t, err)
	httpAdapter, err := b.BuildFastHTTP()
	require.NoError(t, err)

	gnetAdapter.Infof("from gnet")
	httpAdapter.Printf("from fasthttp")

	content := readLog(t, logger, logPath)
	assert.Contains(t, content, "from gnet")
	assert.Contains(t, content, "from fasthttp")

	shared, err := b.GetLogger()
	require.NoError(t, err)
	assert.Same(t, logger, shared)
}

// TestBuilderWithConfig verifies a logger is created from a config
func TestBuilderWithConfig(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "built.log")

	cfg := mlog.DefaultConfig()
	cfg.EnableSave = true
	cfg.Filename = logPath
	cfg.FlushIntervalMs = 10

	b := NewBuilder().WithConfig(cfg)
	adapter, err := b.BuildGnet()
	require.NoError(t, err)

	logger, err := b.GetLogger()
	require.NoError(t, err)
	defer logger.Shutdown()

	adapter.Infof("configured path")
	content := readLog(t, logger, logPath)
	assert.Contains(t, content, "configured path")
}

// TestBuilderNilLogger verifies the nil logger error surfaces at build
func TestBuilderNilLogger(t *testing.T) {
	_, err := NewBuilder().WithLogger(nil).BuildGnet()
	assert.Error(t, err)
}
