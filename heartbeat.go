package mlog

import (
	"fmt"
	"time"
)

// heartbeatEntry builds the periodic worker stats entry. Heartbeats are
// generated inside the drain worker and written directly to the sink, so
// they bypass the level and source filters and never consume buffer
// capacity.
func (l *Logger) heartbeatEntry() logEntry {
	cfg := l.getConfig()

	uptime := time.Duration(0)
	if start, ok := l.state.StartTime.Load().(time.Time); ok {
		uptime = time.Since(start).Round(time.Second)
	}

	message := fmt.Sprintf("heartbeat uptime=%s processed=%d dropped=%d",
		uptime,
		l.state.ProcessedEntries.Load(),
		l.state.DroppedEntries.Load())

	return logEntry{
		Timestamp: time.Now().Format(cfg.DateFormat),
		Level:     LevelInfo,
		Source:    l.registry.Default(),
		Message:   message,
	}
}
