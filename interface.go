package mlog

// Critical logs a message at critical level, optionally tagged with a
// source. All level methods are non-blocking; when the buffer is full the
// entry is dropped and accounted for.
func (l *Logger) Critical(message string, source ...string) {
	l.log(LevelCritical, message, source)
}

// Error logs a message at error level.
func (l *Logger) Error(message string, source ...string) {
	l.log(LevelError, message, source)
}

// Warning logs a message at warning level.
func (l *Logger) Warning(message string, source ...string) {
	l.log(LevelWarning, message, source)
}

// Info logs a message at info level.
func (l *Logger) Info(message string, source ...string) {
	l.log(LevelInfo, message, source)
}

// Debug logs a message at debug level.
func (l *Logger) Debug(message string, source ...string) {
	l.log(LevelDebug, message, source)
}

// Log logs a message at info level. Generic alias for Info.
func (l *Logger) Log(message string, source ...string) {
	l.log(LevelInfo, message, source)
}

// Dump logs an arbitrary value at debug level, rendered through spew for
// structured types. The message prefixes the rendered value when present.
func (l *Logger) Dump(message string, value any, source ...string) {
	rendered := dumpValue(value)
	if message != "" {
		rendered = message + " " + rendered
	}
	l.log(LevelDebug, rendered, source)
}
