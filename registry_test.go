package mlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNewRegistry verifies the registry starts with the built-in default
func TestNewRegistry(t *testing.T) {
	r := newRegistry()

	assert.Equal(t, DefaultSource, r.Default())
	assert.True(t, r.Contains(DefaultSource))
	assert.Equal(t, "CYAN", r.Tag(DefaultSource))
}

// TestAddNormalizes verifies names are uppercased and trimmed
func TestAddNormalizes(t *testing.T) {
	r := newRegistry()
	r.Add("  app  ", "GREEN")

	assert.True(t, r.Contains("APP"))
	assert.True(t, r.Contains("app"))
	assert.Equal(t, "GREEN", r.Tag("APP"))
}

// TestAddEmptyNameIgnored verifies a blank name is a no-op
func TestAddEmptyNameIgnored(t *testing.T) {
	r := newRegistry()
	r.Add("   ", "RED")

	assert.Equal(t, 1, len(r.Known()))
}

// TestAddInvalidColorHint verifies an unknown hint is replaced with an
// unused palette color
func TestAddInvalidColorHint(t *testing.T) {
	r := newRegistry()
	r.Add("APP", "CHARTREUSE")

	tag := r.Tag("APP")
	assert.NotEqual(t, "CHARTREUSE", tag)
	assert.Contains(t, sourcePalette, tag)
	assert.NotEqual(t, "CYAN", tag) // Already taken by SYSTEM
}

// TestAddTakenColorHint verifies a hint already assigned to another
// source is replaced
func TestAddTakenColorHint(t *testing.T) {
	r := newRegistry()
	r.Add("APP", "CYAN") // SYSTEM owns CYAN

	assert.NotEqual(t, "CYAN", r.Tag("APP"))
}

// TestModifierHintsRejected verifies RESET and BOLD are not assignable
func TestModifierHintsRejected(t *testing.T) {
	r := newRegistry()
	r.Add("A", "RESET")
	r.Add("B", "BOLD")

	assert.NotEqual(t, "RESET", r.Tag("A"))
	assert.NotEqual(t, "BOLD", r.Tag("B"))
}

// TestPaletteExhaustion verifies the dimmed fallback once every palette
// color is assigned
func TestPaletteExhaustion(t *testing.T) {
	r := newRegistry()
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		r.Add(name, "")
	}

	// 9 sources, 7 palette colors: at least the last additions fall back
	fallbacks := 0
	for _, name := range r.Known() {
		if r.Tag(name) == fallbackColorTag {
			fallbacks++
		}
	}
	assert.GreaterOrEqual(t, fallbacks, 2)
}

// TestRemoveDefaultPromotesAnother verifies removing the default source
// promotes a remaining one
func TestRemoveDefaultPromotesAnother(t *testing.T) {
	r := newRegistry()
	r.Add("APP", "GREEN")
	r.SetDefault("APP", "")

	r.Remove("APP")

	assert.False(t, r.Contains("APP"))
	assert.Equal(t, DefaultSource, r.Default())
}

// TestRemoveLastReinitializes verifies the registry never empties
func TestRemoveLastReinitializes(t *testing.T) {
	r := newRegistry()
	r.Remove(DefaultSource)

	assert.True(t, r.Contains(DefaultSource))
	assert.Equal(t, DefaultSource, r.Default())
	assert.Equal(t, "CYAN", r.Tag(DefaultSource))
}

// TestRemoveUnknownIsNoop verifies removing a missing source changes nothing
func TestRemoveUnknownIsNoop(t *testing.T) {
	r := newRegistry()
	r.Add("APP", "GREEN")

	r.Remove("GHOST")

	assert.Equal(t, 2, len(r.Known()))
	assert.Equal(t, DefaultSource, r.Default())
}

// TestSetDefaultRegistersUnknown verifies SetDefault adds the source first
func TestSetDefaultRegistersUnknown(t *testing.T) {
	r := newRegistry()
	r.SetDefault("CORE", "MAGENTA")

	assert.True(t, r.Contains("CORE"))
	assert.Equal(t, "CORE", r.Default())
	assert.Equal(t, "MAGENTA", r.Tag("CORE"))
}

// TestDisplayUnknownSource verifies the dimmed bold fallback rendering
func TestDisplayUnknownSource(t *testing.T) {
	r := newRegistry()

	plain := r.Display("GHOST", false)
	assert.Equal(t, "GHOST", plain)

	colored := r.Display("GHOST", true)
	assert.Contains(t, colored, ansiDimmed)
	assert.Contains(t, colored, ansiBold)
	assert.Contains(t, colored, "GHOST")
}

// TestDisplayKnownSource verifies registered sources render with their
// assigned color and bold
func TestDisplayKnownSource(t *testing.T) {
	r := newRegistry()
	r.Add("APP", "GREEN")

	colored := r.Display("APP", true)
	assert.Contains(t, colored, ansiGreen)
	assert.Contains(t, colored, ansiBold)
	assert.Contains(t, colored, "APP")
}
