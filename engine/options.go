package engine

import (
	"github.com/sirupsen/logrus"

	"github.com/spektr-org/divestat/units"
)

// ============================================================================
// REGISTRY OPTIONS — Functional options for NewRegistry()
// ============================================================================

// Option configures a Registry via functional options pattern.
type Option func(*config)

type config struct {
	Units  units.Source       // preferred length unit, read on every Binners() call
	Logger logrus.FieldLogger // execution logging
}

// WithUnits sets the unit preference consulted by the depth category.
func WithUnits(src units.Source) Option {
	return func(c *config) {
		if src != nil {
			c.Units = src
		}
	}
}

// WithLogger sets the logger used by Execute.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Units:  units.Fixed(units.Meters),
		Logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
