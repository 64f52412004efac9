package mlog

// Builder provides a fluent interface for logger construction and
// configuration. Errors accumulate and surface at Build.
type Builder struct {
	cfg *Config
	err error
}

// NewBuilder creates a builder seeded with defaults.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Level sets the numeric severity threshold.
func (b *Builder) Level(level int64) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.Level = level
	return b
}

// LevelString sets the severity threshold from a level name.
func (b *Builder) LevelString(level string) *Builder {
	if b.err != nil {
		return b
	}
	val, err := Level(level)
	if err != nil {
		b.err = err
		return b
	}
	b.cfg.Level = val
	return b
}

// Sources sets the source filter: "all", "defined", or explicit names.
func (b *Builder) Sources(sources ...string) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.Sources = append([]string(nil), sources...)
	return b
}

// Format sets the entry template.
func (b *Builder) Format(format string) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.Format = format
	return b
}

// DateFormat sets the timestamp layout.
func (b *Builder) DateFormat(layout string) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.DateFormat = layout
	return b
}

// EnableColor toggles console colorization.
func (b *Builder) EnableColor(enable bool) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.EnableColor = enable
	return b
}

// EnableSave selects file drain mode.
func (b *Builder) EnableSave(enable bool) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.EnableSave = enable
	return b
}

// Filename sets the log file path for file mode.
func (b *Builder) Filename(name string) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.Filename = name
	return b
}

// ConsoleTarget selects "stdout" or "stderr" for console mode.
func (b *Builder) ConsoleTarget(target string) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.ConsoleTarget = target
	return b
}

// BufferLimit sets the buffer capacity in entries.
func (b *Builder) BufferLimit(limit int64) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.BufferLimit = limit
	return b
}

// FlushIntervalMs sets the worker sync interval.
func (b *Builder) FlushIntervalMs(interval int64) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.FlushIntervalMs = interval
	return b
}

// HeartbeatIntervalS sets the worker stats interval, 0 disables.
func (b *Builder) HeartbeatIntervalS(interval int64) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.HeartbeatIntervalS = interval
	return b
}

// InternalErrorsToStderr toggles stderr reporting of internal failures.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	if b.err != nil {
		return b
	}
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Build creates a logger and applies the accumulated configuration,
// starting the drain worker.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}
	return logger, nil
}
