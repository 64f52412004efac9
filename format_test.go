package mlog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func renderString(cfg *Config, reg *Registry, entry logEntry, fileMode bool) string {
	s := newSerializer()
	return string(s.render(cfg, reg, entry, fileMode))
}

// TestRenderDefaultTemplate verifies the default template layout
func TestRenderDefaultTemplate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableColor = false
	reg := newRegistry()
	reg.Add("APP", "GREEN")

	entry := logEntry{
		Timestamp: "12:00:00",
		Level:     LevelInfo,
		Source:    "APP",
		Message:   "hello",
	}

	line := renderString(cfg, reg, entry, false)
	assert.Equal(t, "12:00:00 APP : Info -> hello\n", line)
}

// TestRenderColorized verifies console output carries escape codes while
// file output never does
func TestRenderColorized(t *testing.T) {
	cfg := DefaultConfig()
	reg := newRegistry()
	reg.Add("APP", "GREEN")

	entry := logEntry{
		Timestamp: "12:00:00",
		Level:     LevelError,
		Source:    "APP",
		Message:   "boom",
	}

	console := renderString(cfg, reg, entry, false)
	assert.Contains(t, console, "\033[")
	assert.Contains(t, console, "boom")

	file := renderString(cfg, reg, entry, true)
	assert.NotContains(t, file, "\033[")
	assert.Contains(t, file, "APP : Error -> boom")
}

// TestRenderColorDisabled verifies enable_color=false suppresses escapes
// on the console too
func TestRenderColorDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableColor = false
	reg := newRegistry()

	entry := logEntry{Timestamp: "12:00:00", Level: LevelDebug, Source: DefaultSource, Message: "plain"}

	line := renderString(cfg, reg, entry, false)
	assert.NotContains(t, line, "\033[")
}

// TestRenderCustomTemplate verifies placeholder substitution in arbitrary
// templates, with unknown placeholders passed through
func TestRenderCustomTemplate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableColor = false
	cfg.Format = "[{levelname}] {message} ({source}) {unknown}"
	reg := newRegistry()

	entry := logEntry{Timestamp: "12:00:00", Level: LevelWarning, Source: DefaultSource, Message: "msg"}

	line := renderString(cfg, reg, entry, false)
	assert.Equal(t, "[Warning] msg (SYSTEM) {unknown}\n", line)
}

// TestRenderUnterminatedPlaceholder verifies a dangling brace renders literally
func TestRenderUnterminatedPlaceholder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EnableColor = false
	cfg.Format = "{message} trailing {brace"
	reg := newRegistry()

	entry := logEntry{Level: LevelInfo, Source: DefaultSource, Message: "msg"}

	line := renderString(cfg, reg, entry, false)
	assert.Equal(t, "msg trailing {brace\n", line)
}

// TestRenderFileSanitizesMessage verifies control bytes in messages are
// neutralized before reaching the file sink
func TestRenderFileSanitizesMessage(t *testing.T) {
	cfg := DefaultConfig()
	reg := newRegistry()

	entry := logEntry{
		Timestamp: "12:00:00",
		Level:     LevelInfo,
		Source:    DefaultSource,
		Message:   "line1\nline2 \033[31minjected\033[0m",
	}

	line := renderString(cfg, reg, entry, true)
	assert.Equal(t, 1, strings.Count(line, "\n"))
	assert.NotContains(t, line, "\033[")
	assert.Contains(t, line, "line1 line2 injected")
}

// TestLevelDisplay verifies plain and colorized level names
func TestLevelDisplay(t *testing.T) {
	assert.Equal(t, "Info", levelDisplay(LevelInfo, false))
	assert.Equal(t, "Critical", levelDisplay(LevelCritical, false))
	assert.Contains(t, levelDisplay(LevelError, true), "\033[31m")
	assert.Contains(t, levelDisplay(LevelError, true), "Error")

	// Unknown level falls back to a numeric rendering
	assert.Equal(t, "Level(99)", levelDisplay(99, false))
}

// TestDumpValue verifies string passthrough and struct rendering
func TestDumpValue(t *testing.T) {
	assert.Equal(t, "plain", dumpValue("plain"))

	type pair struct {
		Key string
		Val int
	}
	rendered := dumpValue(pair{Key: "a", Val: 1})
	assert.Contains(t, rendered, "Key")
	assert.Contains(t, rendered, "\"a\"")
	assert.Contains(t, rendered, "Val")
}
