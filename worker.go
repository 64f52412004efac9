package mlog

import (
	"os"
)

// drainLoop is the single worker goroutine that consumes the entry buffer
// and writes to the sink selected at start. It exits when the entry
// channel is closed (draining what remains) or when the discard signal
// fires (dropping what remains).
func (l *Logger) drainLoop(entries chan logEntry, discard chan struct{}, mode int32) {
	defer l.state.WorkerExited.Store(true)

	s := newSerializer()

	var file *os.File
	defer func() {
		if file != nil {
			_ = file.Sync()
			_ = file.Close()
		}
	}()

	timers := l.newDrainTimers()
	defer timers.stop()

	for {
		select {
		case <-discard:
			l.discardPending(entries)
			return

		case entry, ok := <-entries:
			if !ok {
				// Graceful stop: buffered entries were already received
				// above, sync and exit
				if mode == ModeFile && file != nil {
					if err := file.Sync(); err != nil {
						l.internalLog("failed to sync log file on exit: %v\n", err)
					}
				}
				return
			}
			file = l.emitEntry(s, mode, file, entry)

		case <-timers.flushTicker.C:
			if mode == ModeFile && file != nil {
				if err := file.Sync(); err != nil {
					l.internalLog("failed to sync log file: %v\n", err)
				}
			}

		case confirmChan := <-l.state.flushRequestChan:
			file = l.drainPending(s, mode, file, entries)
			if mode == ModeFile && file != nil {
				if err := file.Sync(); err != nil {
					l.internalLog("failed to sync log file on flush: %v\n", err)
				}
			}
			close(confirmChan)

		case <-timers.heartbeatChan:
			file = l.emitEntry(s, mode, file, l.heartbeatEntry())
		}
	}
}

// emitEntry renders one entry and writes it to the mode's sink. The file
// handle is opened lazily and returned so the caller keeps it across
// entries; a write or open failure drops the entry and is reported via
// internalLog.
func (l *Logger) emitEntry(s *serializer, mode int32, file *os.File, entry logEntry) *os.File {
	cfg := l.getConfig()

	if mode == ModeFile {
		if file == nil {
			f, err := os.OpenFile(cfg.Filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				l.internalLog("failed to open log file '%s': %v\n", cfg.Filename, err)
				l.state.DroppedEntries.Add(1)
				return nil // Retried on the next entry
			}
			file = f
		}

		data := s.render(cfg, l.registry, entry, true)
		if _, err := file.Write(data); err != nil {
			l.internalLog("failed to write to log file: %v\n", err)
			l.state.DroppedEntries.Add(1)
			return file
		}

		l.state.ProcessedEntries.Add(1)
		return file
	}

	data := s.render(cfg, l.registry, entry, false)
	writer := l.getConsoleWriter()
	if _, err := writer.w.Write(data); err != nil {
		l.internalLog("failed to write to console: %v\n", err)
		l.state.DroppedEntries.Add(1)
		return file
	}
	// Buffered console writers are flushed per entry so output is never
	// stuck behind the buffer
	if f, ok := writer.w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			l.internalLog("failed to flush console writer: %v\n", err)
		}
	}

	l.state.ProcessedEntries.Add(1)
	return file
}

// drainPending emits every entry currently buffered without blocking.
func (l *Logger) drainPending(s *serializer, mode int32, file *os.File, entries chan logEntry) *os.File {
	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return file
			}
			file = l.emitEntry(s, mode, file, entry)
		default:
			return file
		}
	}
}

// discardPending drops every entry currently buffered and counts them.
func (l *Logger) discardPending(entries chan logEntry) {
	for {
		select {
		case _, ok := <-entries:
			if !ok {
				return
			}
			l.state.DroppedEntries.Add(1)
		default:
			return
		}
	}
}
