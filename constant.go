package mlog

import (
	"time"
)

// Log level constants, ordered by severity.
// LevelRelease is a sentinel threshold used to switch logging off,
// no entry is ever emitted at release level.
const (
	LevelDebug    int64 = 1
	LevelInfo     int64 = 2
	LevelWarning  int64 = 3
	LevelError    int64 = 4
	LevelCritical int64 = 5
	LevelRelease  int64 = 6
)

// Drain worker modes. Console and file drain are mutually exclusive,
// at most one worker goroutine runs at any time.
const (
	ModeStopped int32 = 0
	ModeConsole int32 = 1
	ModeFile    int32 = 2
)

// Source filter keywords accepted by the sources configuration value.
const (
	SourcesAll     = "all"
	SourcesDefined = "defined"
)

// DefaultSource is the built-in source the registry falls back to.
// The registry is never empty.
const DefaultSource = "SYSTEM"

// Timers
const (
	// Minimum wait time used throughout the package
	minWaitTime = 10 * time.Millisecond
)
