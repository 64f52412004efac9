// Package compat provides logger adapters for third-party server
// libraries, mapping their logging interfaces onto mlog sources and
// levels.
package compat

import (
	"fmt"

	"github.com/lixenwraith/mlog"
)

// Builder provides a flexible way to create configured logger adapters
// for gnet and fasthttp. It can use an existing *mlog.Logger instance or
// create a new one from a *mlog.Config.
type Builder struct {
	logger *mlog.Logger
	logCfg *mlog.Config
	err    error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithLogger specifies an existing logger to use for the adapters.
// If this is set WithConfig is ignored.
func (b *Builder) WithLogger(l *mlog.Logger) *Builder {
	if l == nil {
		b.err = fmt.Errorf("mlog/compat: provided logger cannot be nil")
		return b
	}
	b.logger = l
	return b
}

// WithConfig provides a configuration for a new logger instance.
// Used only if an existing logger is not provided via WithLogger.
func (b *Builder) WithConfig(cfg *mlog.Config) *Builder {
	b.logCfg = cfg
	return b
}

// getLogger resolves the logger to be used, creating one if necessary
func (b *Builder) getLogger() (*mlog.Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.logger != nil {
		return b.logger, nil
	}

	l := mlog.NewLogger()
	cfg := b.logCfg
	if cfg == nil {
		cfg = mlog.DefaultConfig()
	}

	if err := l.ApplyConfig(cfg); err != nil {
		return nil, err
	}

	// Cache for subsequent builds with this builder
	b.logger = l
	return l, nil
}

// BuildGnet creates a gnet adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewGnetAdapter(l, opts...), nil
}

// BuildFastHTTP creates a fasthttp adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	l, err := b.getLogger()
	if err != nil {
		return nil, err
	}
	return NewFastHTTPAdapter(l, opts...), nil
}

// GetLogger returns the underlying *mlog.Logger instance, initializing
// one if needed.
func (b *Builder) GetLogger() (*mlog.Logger, error) {
	return b.getLogger()
}
