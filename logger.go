// Package mlog is a buffered, source-filtered logger. Entries are queued
// on a bounded buffer and drained by a single background worker to the
// console or an append-only file; the buffer sheds load by silently
// dropping entries on overflow so logging never blocks the caller.
package mlog

import (
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// Logger is the core struct that encapsulates all logger functionality
type Logger struct {
	currentConfig atomic.Value // stores *Config
	state         State
	registry      *Registry
	initMu        sync.Mutex
	logMu         sync.Mutex // Serializes entry construction and push across producers
}

// NewLogger creates a new Logger instance with default settings.
// The drain worker is not running until a configuration is applied.
func NewLogger() *Logger {
	l := &Logger{
		registry: newRegistry(),
	}

	// Set default configuration
	l.currentConfig.Store(DefaultConfig())

	// Initialize the state
	l.state.IsInitialized.Store(false)
	l.state.Started.Store(false)
	l.state.ShutdownCalled.Store(false)
	l.state.WorkerExited.Store(true)
	l.state.Mode.Store(ModeStopped)
	l.state.SavedLevel.Store(defaultConfig.Level)
	l.state.StartTime.Store(time.Now())

	// Create a closed channel initially to prevent nil pointer issues
	initialChan := make(chan logEntry)
	close(initialChan)
	l.state.ActiveLogChannel.Store(initialChan)

	l.state.DiscardSignal.Store(make(chan struct{}))
	l.state.ConsoleWriter.Store(&sink{w: os.Stdout})
	l.state.flushRequestChan = make(chan chan struct{}, 1)

	return l
}

// ApplyConfig applies a validated configuration to the logger and ensures
// a drain worker is running in the mode the configuration selects.
// This is the primary way applications should configure the logger.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	if err := cfg.validate(); err != nil {
		return fmtErrorf("invalid configuration: %w", err)
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	return l.applyConfig(cfg.Clone())
}

// GetConfig returns a copy of current configuration
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// Mode returns the current drain mode: ModeStopped, ModeConsole, or ModeFile.
func (l *Logger) Mode() int32 {
	return l.state.Mode.Load()
}

// DefaultSource returns the source used when emission omits one.
func (l *Logger) DefaultSource() string {
	return l.registry.Default()
}

// Sources returns the currently known source names.
func (l *Logger) Sources() []string {
	return l.registry.Known()
}

// AddSource registers a source with an optional color hint.
// The source filter configured via Sources is not widened, a newly added
// source logs only when the filter admits it.
func (l *Logger) AddSource(name string, color ...string) {
	hint := ""
	if len(color) > 0 {
		hint = color[0]
	}
	l.registry.Add(name, hint)
}

// RemoveSource deletes a source and its color mapping.
func (l *Logger) RemoveSource(name string) {
	l.registry.Remove(name)
}

// SetDefaultSource registers the source if unknown, then marks it default.
func (l *Logger) SetDefaultSource(name string, color ...string) {
	hint := ""
	if len(color) > 0 {
		hint = color[0]
	}
	l.registry.SetDefault(name, hint)
}

// Disable suppresses all logging by raising the live threshold to the
// release sentinel. The previously active threshold is kept for Enable.
func (l *Logger) Disable() {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	cfg := l.getConfig().Clone()
	if cfg.Level != LevelRelease {
		l.state.SavedLevel.Store(cfg.Level)
	}
	cfg.Level = LevelRelease
	l.currentConfig.Store(cfg)
}

// Enable restores the threshold that was active before Disable.
func (l *Logger) Enable() {
	l.initMu.Lock()
	defer l.initMu.Unlock()

	cfg := l.getConfig().Clone()
	cfg.Level = l.state.SavedLevel.Load()
	l.currentConfig.Store(cfg)
}

// Start begins log processing. Safe to call multiple times.
// Returns error if logger is not initialized.
func (l *Logger) Start() error {
	if !l.state.IsInitialized.Load() {
		return fmtErrorf("logger not initialized, call ApplyConfig first")
	}

	l.initMu.Lock()
	defer l.initMu.Unlock()

	return l.start()
}

// Stop halts log processing after draining buffered entries through the
// active sink. Can be restarted with Start(). Returns nil if already
// stopped.
func (l *Logger) Stop(timeout ...time.Duration) error {
	return l.stop(false, timeout...)
}

// Shutdown closes the logger. Buffered entries that have not been drained
// are discarded, logging is best-effort, not durable.
func (l *Logger) Shutdown(timeout ...time.Duration) error {
	if !l.state.ShutdownCalled.CompareAndSwap(false, true) {
		return nil
	}

	if !l.state.IsInitialized.Load() {
		l.state.ShutdownCalled.Store(false)
		l.state.WorkerExited.Store(true)
		return nil
	}

	var stopErr error
	if l.state.Started.Load() {
		stopErr = l.stop(true, timeout...)
	}

	l.state.IsInitialized.Store(false)

	return stopErr
}

// Flush requests a full drain and sink sync from the worker and waits for
// completion or timeout.
func (l *Logger) Flush(timeout time.Duration) error {
	l.state.flushMutex.Lock()
	defer l.state.flushMutex.Unlock()

	// State checks
	if !l.state.IsInitialized.Load() || l.state.ShutdownCalled.Load() {
		return fmtErrorf("logger not initialized or already shut down")
	}
	if !l.state.Started.Load() {
		return fmtErrorf("logger not started")
	}

	// Create a channel to wait for confirmation from the worker
	confirmChan := make(chan struct{})

	// Send the request with the confirmation channel
	select {
	case l.state.flushRequestChan <- confirmChan:
		// Request sent
	case <-time.After(minWaitTime): // Short timeout to prevent blocking if worker is stuck
		return fmtErrorf("failed to send flush request to worker (possible deadlock or high load)")
	}

	select {
	case <-confirmChan:
		return nil
	case <-time.After(timeout):
		return fmtErrorf("timeout waiting for flush confirmation (%v)", timeout)
	}
}

// getConfig returns the current configuration (thread-safe)
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// applyConfig is the internal implementation for applying configuration,
// assuming initMu is held. The passed config is owned by the logger.
// The worker is stopped before any state mutation so a failed stop
// leaves config and registry untouched and consistent.
func (l *Logger) applyConfig(cfg *Config) error {
	oldCfg := l.getConfig()

	// A change to the drain machinery itself needs the worker torn down
	// and recreated; filter and format changes apply live.
	if l.state.Started.Load() && configRequiresRestart(oldCfg, cfg) {
		if err := l.stop(false); err != nil {
			return fmtErrorf("failed to stop drain worker for restart: %w", err)
		}
	}

	// An explicit source set reconciles the registry: unknown names are
	// added, names no longer present are removed.
	if cfg.filterKeyword() == "" {
		l.reconcileSources(cfg.Sources)
	}
	cfg.buildSourceFilter(l.registry.Known())

	l.currentConfig.Store(cfg)
	l.state.SavedLevel.Store(cfg.Level)

	// Setup console writer based on config
	var writer io.Writer = os.Stdout
	if cfg.ConsoleTarget == "stderr" {
		writer = os.Stderr
	}
	l.state.ConsoleWriter.Store(&sink{w: writer})

	// Mark as initialized
	l.state.IsInitialized.Store(true)
	l.state.ShutdownCalled.Store(false)

	// Initial configuration and the restart path both start the worker
	if !l.state.Started.Load() {
		return l.start()
	}

	return nil
}

// configRequiresRestart reports whether a config change needs the drain
// worker to be torn down and recreated. Mode, sink identity, buffer
// capacity and timer changes do; filter and format changes apply live.
func configRequiresRestart(oldCfg, newCfg *Config) bool {
	return oldCfg.EnableSave != newCfg.EnableSave ||
		oldCfg.Filename != newCfg.Filename ||
		oldCfg.BufferLimit != newCfg.BufferLimit ||
		oldCfg.FlushIntervalMs != newCfg.FlushIntervalMs ||
		oldCfg.HeartbeatIntervalS != newCfg.HeartbeatIntervalS
}

// reconcileSources synchronizes the registry with an explicit filter set.
func (l *Logger) reconcileSources(names []string) {
	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		if normalized := normalizeSource(name); normalized != "" {
			wanted[normalized] = struct{}{}
		}
	}

	// Add first so the registry never empties mid-reconcile
	for name := range wanted {
		if !l.registry.Contains(name) {
			l.registry.Add(name, "")
		}
	}

	for _, known := range l.registry.Known() {
		if _, keep := wanted[known]; !keep {
			l.registry.Remove(known)
		}
	}
}

// start launches the drain worker in the mode the current configuration
// selects. Assumes initMu is held.
func (l *Logger) start() error {
	// Only start if not already started
	if !l.state.Started.CompareAndSwap(false, true) {
		return nil
	}

	cfg := l.getConfig()

	// Create the bounded entry channel
	logChannel := make(chan logEntry, cfg.BufferLimit)
	l.state.ActiveLogChannel.Store(logChannel)

	// Fresh discard signal, starting always clears the previous one
	discard := make(chan struct{})
	l.state.DiscardSignal.Store(discard)

	mode := ModeConsole
	if cfg.EnableSave {
		mode = ModeFile
	}
	l.state.Mode.Store(mode)

	l.state.WorkerExited.Store(false)
	go l.drainLoop(logChannel, discard, mode)

	return nil
}

// stop signals the drain worker and waits for it to exit. With discard
// set, buffered entries are dropped instead of drained through the sink.
func (l *Logger) stop(discard bool, timeout ...time.Duration) error {
	if !l.state.Started.CompareAndSwap(true, false) {
		return nil // Already stopped
	}

	// Calculate effective timeout
	var effectiveTimeout time.Duration
	if len(timeout) > 0 {
		effectiveTimeout = timeout[0]
	} else {
		cfg := l.getConfig()
		effectiveTimeout = 2 * time.Duration(cfg.FlushIntervalMs) * time.Millisecond
	}

	if discard {
		close(l.getDiscardSignal())
	}

	// Replace the active channel with a closed one so producers drop
	// immediately, then close the real channel to signal the worker.
	ch := l.getCurrentLogChannel()
	closedChan := make(chan logEntry)
	close(closedChan)
	l.state.ActiveLogChannel.Store(closedChan)
	close(ch)

	// Wait for the worker to exit (with timeout)
	deadline := time.Now().Add(effectiveTimeout)
	for time.Now().Before(deadline) {
		if l.state.WorkerExited.Load() {
			break
		}
		time.Sleep(minWaitTime)
	}

	if !l.state.WorkerExited.Load() {
		return fmtErrorf("drain worker did not exit within timeout (%v)", effectiveTimeout)
	}

	l.state.Mode.Store(ModeStopped)
	return nil
}
