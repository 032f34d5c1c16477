package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
	"golang.org/x/text/language"

	"github.com/spektr-org/divestat/i18n"
	"github.com/spektr-org/divestat/units"
)

// Preferences are the user settings the statistics read.
type Preferences struct {
	LengthUnit string `env:"DIVESTAT_LENGTH_UNIT" envDefault:"metric"`
	Locale     string `env:"DIVESTAT_LOCALE" envDefault:"en-US"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.Wrap(err, "parse env")
	}
	return nil
}

// Load reads Preferences from the environment.
func Load() (Preferences, error) {
	var prefs Preferences
	if err := ParseEnv(&prefs); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

// Units returns the configured unit system as a units.Source.
func (p Preferences) Units() (units.Source, error) {
	l, err := units.ParseLength(p.LengthUnit)
	if err != nil {
		return nil, errors.Wrap(err, "DIVESTAT_LENGTH_UNIT")
	}
	return units.Fixed(l), nil
}

// Tag resolves the configured locale against the embedded catalogs.
func (p Preferences) Tag() language.Tag {
	return i18n.Default().Match(p.Locale)
}
