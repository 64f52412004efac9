package compat

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/mlog"
)

// fasthttpSource is the registered source tag for fasthttp-originated entries
const fasthttpSource = "FASTHTTP"

// FastHTTPAdapter wraps mlog.Logger to implement the fasthttp Logger
// interface. Entries are tagged with the FASTHTTP source.
type FastHTTPAdapter struct {
	logger        *mlog.Logger
	defaultLevel  int64
	levelDetector func(string) int64 // Function to detect log level from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *mlog.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	logger.AddSource(fasthttpSource, "MAGENTA")

	adapter := &FastHTTPAdapter{
		logger:        logger,
		defaultLevel:  mlog.LevelInfo,
		levelDetector: DetectLogLevel, // Default level detection
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithDefaultLevel sets the default log level for Printf calls
func WithDefaultLevel(level int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.defaultLevel = level
	}
}

// WithLevelDetector sets a custom function to detect log level from message content
func WithLevelDetector(detector func(string) int64) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.levelDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	level := a.defaultLevel
	if a.levelDetector != nil {
		if detected := a.levelDetector(msg); detected != 0 {
			level = detected
		}
	}

	switch level {
	case mlog.LevelDebug:
		a.logger.Debug(msg, fasthttpSource)
	case mlog.LevelWarning:
		a.logger.Warning(msg, fasthttpSource)
	case mlog.LevelError:
		a.logger.Error(msg, fasthttpSource)
	case mlog.LevelCritical:
		a.logger.Critical(msg, fasthttpSource)
	default:
		a.logger.Info(msg, fasthttpSource)
	}
}

// DetectLogLevel attempts to detect log level from message content
func DetectLogLevel(msg string) int64 {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return mlog.LevelError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "warning") ||
		strings.Contains(msgLower, "deprecated") {
		return mlog.LevelWarning
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return mlog.LevelDebug
	}

	// Default to info level
	return mlog.LevelInfo
}
