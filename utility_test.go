package mlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLevelParsing verifies name to numeric level conversion
func TestLevelParsing(t *testing.T) {
	tests := []struct {
		input string
		want  int64
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warning", LevelWarning},
		{"warn", LevelWarning},
		{"error", LevelError},
		{"critical", LevelCritical},
		{"release", LevelRelease},
		{"  INFO  ", LevelInfo},
	}

	for _, tt := range tests {
		got, err := Level(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}

	_, err := Level("loud")
	assert.Error(t, err)
}

// TestParseKeyValue verifies override string splitting
func TestParseKeyValue(t *testing.T) {
	key, value, err := parseKeyValue(" level = warning ")
	require.NoError(t, err)
	assert.Equal(t, "level", key)
	assert.Equal(t, "warning", value)

	// Value may contain '='
	key, value, err = parseKeyValue("format={message}=x")
	require.NoError(t, err)
	assert.Equal(t, "format", key)
	assert.Equal(t, "{message}=x", value)

	_, _, err = parseKeyValue("no-equals")
	assert.Error(t, err)

	_, _, err = parseKeyValue("=value")
	assert.Error(t, err)
}

// TestSplitSourceList verifies comma splitting and keyword passthrough
func TestSplitSourceList(t *testing.T) {
	assert.Equal(t, []string{"all"}, splitSourceList(" ALL "))
	assert.Equal(t, []string{"defined"}, splitSourceList("defined"))
	assert.Equal(t, []string{"SYSTEM", "APP"}, splitSourceList("SYSTEM, APP"))
	assert.Equal(t, []string{"A"}, splitSourceList("A,,  ,"))
	assert.Nil(t, splitSourceList(""))
}

// TestCombineErrors verifies nil handling and wrapping
func TestCombineErrors(t *testing.T) {
	errA := fmtErrorf("first")
	errB := fmtErrorf("second")

	assert.Nil(t, combineErrors(nil, nil))
	assert.Equal(t, errA, combineErrors(errA, nil))
	assert.Equal(t, errB, combineErrors(nil, errB))

	combined := combineErrors(errA, errB)
	assert.Contains(t, combined.Error(), "first")
	assert.Contains(t, combined.Error(), "second")
}

// TestFmtErrorfPrefix verifies the package prefix is applied once
func TestFmtErrorfPrefix(t *testing.T) {
	err := fmtErrorf("plain failure")
	assert.Equal(t, "mlog: plain failure", err.Error())

	err = fmtErrorf("mlog: already prefixed")
	assert.Equal(t, "mlog: already prefixed", err.Error())
}
