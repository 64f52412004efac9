package mlog

import (
	"fmt"
)

// ANSI escape codes for terminal output. Rendering treats these as opaque
// string transforms, the file sink never receives them.
const (
	ansiRed     = "\033[31m"
	ansiGreen   = "\033[32m"
	ansiYellow  = "\033[33m"
	ansiBlue    = "\033[34m"
	ansiMagenta = "\033[35m"
	ansiCyan    = "\033[36m"
	ansiDimmed  = "\033[2m"
	ansiBold    = "\033[1m"
	ansiReset   = "\033[0m"
)

// colorCodes maps color tags to their escape sequences.
// RESET and BOLD are modifiers, not assignable source colors.
var colorCodes = map[string]string{
	"RED":     ansiRed,
	"GREEN":   ansiGreen,
	"YELLOW":  ansiYellow,
	"BLUE":    ansiBlue,
	"MAGENTA": ansiMagenta,
	"CYAN":    ansiCyan,
	"DIMMED":  ansiDimmed,
	"BOLD":    ansiBold,
	"RESET":   ansiReset,
}

// sourcePalette lists the tags the registry assigns to new sources, in
// preference order. DIMMED doubles as the exhaustion fallback.
var sourcePalette = []string{"RED", "GREEN", "YELLOW", "BLUE", "MAGENTA", "CYAN", "DIMMED"}

// fallbackColorTag is used when the palette is exhausted or a source is
// unknown to the registry.
const fallbackColorTag = "DIMMED"

// colorizedLevel holds the pre-rendered colorized level names.
var colorizedLevel = map[int64]string{
	LevelCritical: ansiRed + ansiBold + "Critical" + ansiReset,
	LevelError:    ansiRed + "Error" + ansiReset,
	LevelWarning:  ansiYellow + "Warning" + ansiReset,
	LevelInfo:     ansiGreen + "Info" + ansiReset,
	LevelDebug:    ansiDimmed + "Debug" + ansiReset,
}

// levelName returns the plain display name of a level.
func levelName(level int64) string {
	switch level {
	case LevelDebug:
		return "Debug"
	case LevelInfo:
		return "Info"
	case LevelWarning:
		return "Warning"
	case LevelError:
		return "Error"
	case LevelCritical:
		return "Critical"
	case LevelRelease:
		return "Release"
	default:
		return fmt.Sprintf("Level(%d)", level)
	}
}

// levelDisplay returns the rendered level name, colorized when requested.
func levelDisplay(level int64, colorize bool) string {
	if colorize {
		if display, ok := colorizedLevel[level]; ok {
			return display
		}
	}
	return levelName(level)
}

// colorizeSource renders a source name in its assigned color with bold.
func colorizeSource(name, tag string) string {
	code, ok := colorCodes[tag]
	if !ok {
		code = ansiDimmed
	}
	return code + ansiBold + name + ansiReset
}
