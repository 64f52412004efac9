package mlog

import (
	"sync"
	"time"
)

// defaultLogger is the package-level logger instance used by the
// package-level functions.
var (
	defaultLogger = NewLogger()
	initOnce      sync.Once
)

// ensureInit lazily applies the default configuration so the package
// functions work without an explicit Init call. A prior Init or Configure
// wins.
func ensureInit() {
	if defaultLogger.state.IsInitialized.Load() {
		return
	}
	initOnce.Do(func() {
		if !defaultLogger.state.IsInitialized.Load() {
			_ = defaultLogger.ApplyConfig(DefaultConfig())
		}
	})
}

// Default returns the package-level logger.
func Default() *Logger {
	return defaultLogger
}

// Init configures the package-level logger and starts its drain worker.
func Init(cfg *Config) error {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return defaultLogger.ApplyConfig(cfg)
}

// InitFromFile configures the package-level logger from a TOML file.
func InitFromFile(path string) error {
	cfg, err := NewConfigFromFile(path)
	if err != nil {
		return err
	}
	return defaultLogger.ApplyConfig(cfg)
}

// Configure applies "key=value" overrides to the package-level logger,
// starting the drain worker if needed.
func Configure(overrides ...string) error {
	return defaultLogger.ApplyOverride(overrides...)
}

// Shutdown closes the package-level logger, discarding undrained entries.
func Shutdown(timeout ...time.Duration) error {
	return defaultLogger.Shutdown(timeout...)
}

// Flush drains buffered entries through the sink and waits for the sync.
func Flush(timeout time.Duration) error {
	return defaultLogger.Flush(timeout)
}

// Enable restores the severity threshold saved by Disable.
func Enable() {
	ensureInit()
	defaultLogger.Enable()
}

// Disable suppresses all logging until Enable is called.
func Disable() {
	ensureInit()
	defaultLogger.Disable()
}

// AddSource registers a source with an optional color hint.
func AddSource(name string, color ...string) {
	defaultLogger.AddSource(name, color...)
}

// RemoveSource deletes a source and its color mapping.
func RemoveSource(name string) {
	defaultLogger.RemoveSource(name)
}

// SetDefaultSource registers the source if unknown, then marks it default.
func SetDefaultSource(name string, color ...string) {
	defaultLogger.SetDefaultSource(name, color...)
}

// Critical logs a message at critical level on the package-level logger.
func Critical(message string, source ...string) {
	ensureInit()
	defaultLogger.Critical(message, source...)
}

// Error logs a message at error level.
func Error(message string, source ...string) {
	ensureInit()
	defaultLogger.Error(message, source...)
}

// Warning logs a message at warning level.
func Warning(message string, source ...string) {
	ensureInit()
	defaultLogger.Warning(message, source...)
}

// Info logs a message at info level.
func Info(message string, source ...string) {
	ensureInit()
	defaultLogger.Info(message, source...)
}

// Debug logs a message at debug level.
func Debug(message string, source ...string) {
	ensureInit()
	defaultLogger.Debug(message, source...)
}

// Log logs a message at info level. Generic alias for Info.
func Log(message string, source ...string) {
	ensureInit()
	defaultLogger.Log(message, source...)
}

// Dump logs an arbitrary value at debug level.
func Dump(message string, value any, source ...string) {
	ensureInit()
	defaultLogger.Dump(message, value, source...)
}
