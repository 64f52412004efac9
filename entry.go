package mlog

import (
	"fmt"
	"os"
	"time"
)

// getCurrentLogChannel returns the active entry channel.
func (l *Logger) getCurrentLogChannel() chan logEntry {
	return l.state.ActiveLogChannel.Load().(chan logEntry)
}

// getDiscardSignal returns the discard channel for the current worker.
func (l *Logger) getDiscardSignal() chan struct{} {
	return l.state.DiscardSignal.Load().(chan struct{})
}

// getConsoleWriter returns the current console sink.
func (l *Logger) getConsoleWriter() *sink {
	return l.state.ConsoleWriter.Load().(*sink)
}

// log is the producer entry point shared by all level methods. Entries
// that fail the level or source filter are discarded here without
// touching the buffer.
func (l *Logger) log(level int64, message string, source []string) {
	if !l.state.IsInitialized.Load() {
		return
	}

	cfg := l.getConfig()

	src := ""
	if len(source) > 0 {
		src = normalizeSource(source[0])
	}
	if src == "" {
		src = l.registry.Default()
	}

	if level < cfg.Level {
		return
	}
	if !cfg.sourceEnabled(src) {
		return
	}

	// Timestamp is rendered at emission time, the drain happens later
	entry := logEntry{
		Timestamp: time.Now().Format(cfg.DateFormat),
		Level:     level,
		Source:    src,
		Message:   message,
	}

	l.logMu.Lock()
	l.sendEntry(entry)
	l.logMu.Unlock()
}

// sendEntry pushes an entry onto the buffer without blocking. A full
// buffer drops the entry and bumps the drop counter; the next successful
// send reports the accumulated drops as a synthetic error entry.
func (l *Logger) sendEntry(entry logEntry) {
	// Sending on a closed channel panics, treat it as a failed send
	defer func() {
		if r := recover(); r != nil {
			l.handleFailedSend(entry)
		}
	}()

	if l.state.ShutdownCalled.Load() {
		l.handleFailedSend(entry)
		return
	}

	ch := l.getCurrentLogChannel()

	select {
	case ch <- entry:
		if entry.unreportedDrops == 0 {
			if dropped := l.state.DroppedEntries.Swap(0); dropped > 0 {
				cfg := l.getConfig()
				report := logEntry{
					Timestamp:       time.Now().Format(cfg.DateFormat),
					Level:           LevelError,
					Source:          l.registry.Default(),
					Message:         fmt.Sprintf("log entries dropped on overflow (count=%d)", dropped),
					unreportedDrops: dropped,
				}
				l.sendEntry(report)
			}
		}
	default:
		l.handleFailedSend(entry)
	}
}

// handleFailedSend accounts for a drop. A failed drop report restores its
// count so it is retried on a later send.
func (l *Logger) handleFailedSend(entry logEntry) {
	amount := uint64(1)
	if entry.unreportedDrops > 0 {
		amount = entry.unreportedDrops
	}
	l.state.DroppedEntries.Add(amount)
}

// internalLog reports internal logger errors to stderr when enabled.
// Used for failures that cannot be surfaced through the logger itself.
func (l *Logger) internalLog(format string, args ...any) {
	if !l.getConfig().InternalErrorsToStderr {
		return
	}
	fmt.Fprintf(os.Stderr, "mlog: "+format, args...)
}
