package mlog

import (
	"fmt"
	"strconv"
	"strings"
)

// ApplyOverride applies string key-value overrides to the logger's current
// configuration. Each override should be in the format "key=value".
// The configuration is cloned before modification to ensure thread safety.
//
// Example:
//
//	logger := mlog.NewLogger()
//	err := logger.ApplyOverride(
//	    "level=warning",
//	    "sources=SYSTEM,APP",
//	    "enable_save=true",
//	)
func (l *Logger) ApplyOverride(overrides ...string) error {
	cfg := l.getConfig().Clone()

	var errors []error

	for _, override := range overrides {
		key, value, err := parseKeyValue(override)
		if err != nil {
			errors = append(errors, err)
			continue
		}

		if err := applyConfigField(cfg, key, value); err != nil {
			errors = append(errors, err)
		}
	}

	if len(errors) > 0 {
		return combineConfigErrors(errors)
	}

	return l.ApplyConfig(cfg)
}

// combineConfigErrors combines multiple configuration errors into a single error.
func combineConfigErrors(errors []error) error {
	if len(errors) == 0 {
		return nil
	}
	if len(errors) == 1 {
		return errors[0]
	}

	var sb strings.Builder
	sb.WriteString("mlog: multiple configuration errors:")
	for i, err := range errors {
		errMsg := err.Error()
		// Remove "mlog: " prefix from individual errors to avoid duplication
		if strings.HasPrefix(errMsg, "mlog: ") {
			errMsg = errMsg[6:]
		}
		sb.WriteString(fmt.Sprintf("\n  %d. %s", i+1, errMsg))
	}
	return fmt.Errorf("%s", sb.String())
}

// applyConfigField applies a single key-value override to a Config.
// Recognized keys with malformed values are errors; unrecognized keys are
// ignored as a forward-compatible no-op.
func applyConfigField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	// Filtering
	case "level":
		// Accept both numeric and named values
		if numVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			cfg.Level = numVal
		} else {
			levelVal, err := Level(value)
			if err != nil {
				return fmtErrorf("invalid level value '%s': %w", value, err)
			}
			cfg.Level = levelVal
		}
	case "sources":
		cfg.Sources = splitSourceList(value)

	// Formatting
	case "format":
		cfg.Format = value
	case "dateformat":
		cfg.DateFormat = value

	// Emission
	case "enable_color":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for enable_color '%s': %w", value, err)
		}
		cfg.EnableColor = boolVal
	case "enable_save":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for enable_save '%s': %w", value, err)
		}
		cfg.EnableSave = boolVal
	case "filename":
		cfg.Filename = value
	case "console_target":
		cfg.ConsoleTarget = value

	// Buffer and timers
	case "bufferlimit":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for bufferlimit '%s': %w", value, err)
		}
		cfg.BufferLimit = intVal
	case "flush_interval_ms":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for flush_interval_ms '%s': %w", value, err)
		}
		cfg.FlushIntervalMs = intVal
	case "heartbeat_interval_s":
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmtErrorf("invalid integer value for heartbeat_interval_s '%s': %w", value, err)
		}
		cfg.HeartbeatIntervalS = intVal

	// Internal error handling
	case "internal_errors_to_stderr":
		boolVal, err := strconv.ParseBool(value)
		if err != nil {
			return fmtErrorf("invalid boolean value for internal_errors_to_stderr '%s': %w", value, err)
		}
		cfg.InternalErrorsToStderr = boolVal

	default:
		// Unknown keys are ignored for forward compatibility
	}

	return nil
}
