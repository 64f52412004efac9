package mlog

import (
	"io"
	"sync"
	"sync/atomic"
)

// State encapsulates the runtime state of the logger
type State struct {
	IsInitialized  atomic.Bool
	Started        atomic.Bool
	ShutdownCalled atomic.Bool
	WorkerExited   atomic.Bool // Tracks whether the drain worker goroutine has exited

	Mode       atomic.Int32 // Current drain mode: ModeStopped, ModeConsole, or ModeFile
	SavedLevel atomic.Int64 // Threshold restored by Enable after Disable

	ActiveLogChannel atomic.Value // stores chan logEntry
	ConsoleWriter    atomic.Value // stores *sink
	DiscardSignal    atomic.Value // stores chan struct{}, closed to discard instead of drain

	DroppedEntries   atomic.Uint64 // Counter for entries dropped on overflow or while stopped
	ProcessedEntries atomic.Uint64 // Counter for entries rendered to a sink
	StartTime        atomic.Value  // stores time.Time for heartbeat uptime

	flushRequestChan chan chan struct{} // Channel to request a drain-and-sync
	flushMutex       sync.Mutex         // Protect concurrent Flush calls
}

// sink is a wrapper around an io.Writer, atomic value type change workaround
type sink struct {
	w io.Writer
}
