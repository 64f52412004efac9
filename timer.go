package mlog

import (
	"time"
)

// drainTimers bundles the periodic triggers of the drain worker.
// heartbeatChan is nil when heartbeats are disabled, which makes its
// select case block forever.
type drainTimers struct {
	flushTicker     *time.Ticker
	heartbeatTicker *time.Ticker
	heartbeatChan   <-chan time.Time
}

// newDrainTimers builds the timer set from the current configuration.
func (l *Logger) newDrainTimers() *drainTimers {
	cfg := l.getConfig()

	t := &drainTimers{
		flushTicker: time.NewTicker(time.Duration(cfg.FlushIntervalMs) * time.Millisecond),
	}

	if cfg.HeartbeatIntervalS > 0 {
		t.heartbeatTicker = time.NewTicker(time.Duration(cfg.HeartbeatIntervalS) * time.Second)
		t.heartbeatChan = t.heartbeatTicker.C
	}

	return t
}

// stop releases the ticker resources.
func (t *drainTimers) stop() {
	t.flushTicker.Stop()
	if t.heartbeatTicker != nil {
		t.heartbeatTicker.Stop()
	}
}
