package mlog

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/lixenwraith/config"
)

// Config holds all logger configuration values
type Config struct {
	// Filtering
	Level   int64    `toml:"level"`
	Sources []string `toml:"sources"` // "all", "defined", or explicit source names

	// Formatting
	Format     string `toml:"format"`     // Template with {asctime} {source} {levelname} {message}
	DateFormat string `toml:"dateformat"` // Go time layout for entry timestamps

	// Emission
	EnableColor   bool   `toml:"enable_color"`
	EnableSave    bool   `toml:"enable_save"` // Selects file drain mode over console
	Filename      string `toml:"filename"`
	ConsoleTarget string `toml:"console_target"` // "stdout" or "stderr"

	// Buffer and timers
	BufferLimit        int64 `toml:"bufferlimit"`          // Max queued entries, overflow is dropped
	FlushIntervalMs    int64 `toml:"flush_interval_ms"`    // Drain worker poll/sync interval
	HeartbeatIntervalS int64 `toml:"heartbeat_interval_s"` // 0 disables worker stats entries

	// Internal error handling
	InternalErrorsToStderr bool `toml:"internal_errors_to_stderr"`

	// Normalized source filter, derived from Sources when the config is
	// applied. filterAll short-circuits membership checks.
	filterAll bool
	filterSet map[string]struct{}
}

// defaultConfig is the single source for all configurable default values.
// filterAll is pre-set so a default config filters correctly even before
// buildSourceFilter has run.
var defaultConfig = Config{
	Level:     LevelDebug,
	Sources:   []string{SourcesAll},
	filterAll: true,

	Format:     "{asctime} {source} : {levelname} -> {message}",
	DateFormat: "15:04:05",

	EnableColor:   true,
	EnableSave:    false,
	Filename:      "system.log",
	ConsoleTarget: "stdout",

	BufferLimit:        1000,
	FlushIntervalMs:    100,
	HeartbeatIntervalS: 0,

	InternalErrorsToStderr: false,
}

// DefaultConfig returns a copy of the default configuration
func DefaultConfig() *Config {
	copiedConfig := defaultConfig
	copiedConfig.Sources = append([]string(nil), defaultConfig.Sources...)
	return &copiedConfig
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	copiedConfig := *c
	copiedConfig.Sources = append([]string(nil), c.Sources...)
	if c.filterSet != nil {
		copiedConfig.filterSet = make(map[string]struct{}, len(c.filterSet))
		for name := range c.filterSet {
			copiedConfig.filterSet[name] = struct{}{}
		}
	}
	return &copiedConfig
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	if strings.TrimSpace(c.Format) == "" {
		return fmtErrorf("format cannot be empty")
	}

	if strings.TrimSpace(c.DateFormat) == "" {
		return fmtErrorf("dateformat cannot be empty")
	}

	if c.Level < LevelDebug || c.Level > LevelRelease {
		return fmtErrorf("invalid level: %d", c.Level)
	}

	if c.ConsoleTarget != "stdout" && c.ConsoleTarget != "stderr" {
		return fmtErrorf("invalid console_target: '%s' (use stdout or stderr)", c.ConsoleTarget)
	}

	if c.EnableSave && strings.TrimSpace(c.Filename) == "" {
		return fmtErrorf("filename cannot be empty when enable_save is set")
	}

	if c.BufferLimit <= 0 {
		return fmtErrorf("bufferlimit must be positive: %d", c.BufferLimit)
	}

	if c.FlushIntervalMs <= 0 {
		return fmtErrorf("flush_interval_ms must be positive: %d", c.FlushIntervalMs)
	}

	if c.HeartbeatIntervalS < 0 {
		return fmtErrorf("heartbeat_interval_s cannot be negative: %d", c.HeartbeatIntervalS)
	}

	return nil
}

// filterKeyword returns the special sources keyword ("all" or "defined")
// when the configured list is exactly one keyword, or "" for an explicit
// source set.
func (c *Config) filterKeyword() string {
	if len(c.Sources) == 0 {
		return SourcesAll
	}
	if len(c.Sources) == 1 {
		keyword := strings.ToLower(strings.TrimSpace(c.Sources[0]))
		if keyword == SourcesAll || keyword == SourcesDefined {
			return keyword
		}
	}
	return ""
}

// buildSourceFilter derives the normalized filter from the configured
// sources list. The "defined" keyword resolves against the known sources
// at apply time.
func (c *Config) buildSourceFilter(known []string) {
	switch c.filterKeyword() {
	case SourcesAll:
		c.filterAll = true
		c.filterSet = nil
	case SourcesDefined:
		c.filterAll = false
		c.filterSet = make(map[string]struct{}, len(known))
		for _, name := range known {
			c.filterSet[normalizeSource(name)] = struct{}{}
		}
	default:
		c.filterAll = false
		c.filterSet = make(map[string]struct{}, len(c.Sources))
		for _, name := range c.Sources {
			if normalized := normalizeSource(name); normalized != "" {
				c.filterSet[normalized] = struct{}{}
			}
		}
	}
}

// sourceEnabled reports whether the filter admits a normalized source
// name. A config whose filter was never derived falls back to the raw
// sources list so entries are not silently rejected: keywords admit
// everything ("defined" cannot resolve without the registry), an explicit
// list is scanned directly.
func (c *Config) sourceEnabled(source string) bool {
	if c.filterAll {
		return true
	}
	if c.filterSet == nil {
		if c.filterKeyword() != "" {
			return true
		}
		for _, name := range c.Sources {
			if normalizeSource(name) == source {
				return true
			}
		}
		return false
	}
	_, ok := c.filterSet[source]
	return ok
}

// NewConfigFromFile loads configuration from a TOML file and returns a
// validated Config
func NewConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	// Use lixenwraith/config as a loader
	loader := config.New()

	// Register the struct to enable proper unmarshaling
	if err := loader.RegisterStruct("log.", *cfg); err != nil {
		return nil, fmt.Errorf("mlog: failed to register config struct: %w", err)
	}

	// Load from file (handles file not found gracefully)
	if err := loader.Load(path, nil); err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return nil, fmt.Errorf("mlog: failed to load config from %s: %w", path, err)
	}

	// Extract values into our Config struct
	if err := extractConfig(loader, "log.", cfg); err != nil {
		return nil, fmt.Errorf("mlog: failed to extract config values: %w", err)
	}

	// Validate the loaded configuration
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// extractConfig extracts values from lixenwraith/config into our Config struct
func extractConfig(loader *config.Config, prefix string, cfg *Config) error {
	v := reflect.ValueOf(cfg).Elem()
	t := v.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		// Get the toml tag to determine the config key
		tomlTag := field.Tag.Get("toml")
		if tomlTag == "" {
			continue
		}

		key := prefix + tomlTag

		// Get value from loader
		val, found := loader.Get(key)
		if !found {
			continue // Use default value
		}

		// Set the field value with type conversion
		if err := setFieldValue(fieldValue, val); err != nil {
			return fmt.Errorf("failed to set field %s: %w", field.Name, err)
		}
	}

	return nil
}

// setFieldValue sets a reflect.Value with proper type conversion
func setFieldValue(field reflect.Value, value any) error {
	switch field.Kind() {
	case reflect.String:
		strVal, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		field.SetString(strVal)

	case reflect.Int64:
		switch v := value.(type) {
		case int64:
			field.SetInt(v)
		case int:
			field.SetInt(int64(v))
		default:
			return fmt.Errorf("expected int64, got %T", value)
		}

	case reflect.Bool:
		boolVal, ok := value.(bool)
		if !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
		field.SetBool(boolVal)

	case reflect.Slice:
		switch v := value.(type) {
		case []string:
			field.Set(reflect.ValueOf(append([]string(nil), v...)))
		case []any:
			names := make([]string, 0, len(v))
			for _, item := range v {
				name, ok := item.(string)
				if !ok {
					return fmt.Errorf("expected string element, got %T", item)
				}
				names = append(names, name)
			}
			field.Set(reflect.ValueOf(names))
		default:
			return fmt.Errorf("expected string list, got %T", value)
		}

	default:
		return fmt.Errorf("unsupported field type: %v", field.Kind())
	}

	return nil
}
