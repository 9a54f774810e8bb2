package ventilation

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/abhisek/ventctl/internal/fuzzy"
	"github.com/pelletier/go-toml/v2"
)

// Config holds the ventilation system configuration.
type Config struct {
	// TemperatureRange is the inclusive sensor range. Default: [0, 100].
	TemperatureRange Range `toml:"temperature_range"`

	// Resolution is the number of universe samples per variable.
	// Default: 1000.
	Resolution int `toml:"resolution"`

	Override OverridePolicy `toml:"override"`

	// StrictMembership rejects membership functions whose parameters are
	// not ordered. Off by default: unordered shapes still evaluate.
	StrictMembership bool `toml:"strict_membership"`
}

// DefaultConfig returns a Config with the stock values.
func DefaultConfig() Config {
	return Config{
		TemperatureRange: DefaultTemperatureRange,
		Resolution:       fuzzy.DefaultResolution,
		Override:         DefaultOverride(),
	}
}

// Environment variables read by ConfigFromEnv.
const (
	EnvTempMin  = "VENTCTL_TEMP_MIN"
	EnvTempMax  = "VENTCTL_TEMP_MAX"
	EnvOverride = "VENTCTL_OVERRIDE"
	EnvConfig   = "VENTCTL_CONFIG"
)

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv(EnvTempMin); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, &ErrConfig{Source: EnvTempMin, Err: err}
		}
		cfg.TemperatureRange.Min = n
	}
	if v := os.Getenv(EnvTempMax); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, &ErrConfig{Source: EnvTempMax, Err: err}
		}
		cfg.TemperatureRange.Max = n
	}
	if v := os.Getenv(EnvOverride); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, &ErrConfig{Source: EnvOverride, Err: err}
		}
		cfg.Override.Enabled = b
	}

	return cfg, nil
}

// LoadConfig decodes the TOML file at path over base. Keys absent from the
// file keep base's values; unknown keys are an error.
func LoadConfig(path string, base Config) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, &ErrConfig{Source: path, Err: err}
	}
	cfg := base
	if err := toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg); err != nil {
		return base, &ErrConfig{Source: path, Err: err}
	}
	return cfg, nil
}

// Validate checks ranges and override parameters.
func (c Config) Validate() error {
	if err := c.TemperatureRange.Validate(); err != nil {
		return err
	}
	if c.Resolution < 2 {
		return fmt.Errorf("resolution must be at least 2, got %d", c.Resolution)
	}
	if c.Override.Fraction < 0 || c.Override.Fraction > 1 {
		return fmt.Errorf("override fraction must be in [0, 1], got %g", c.Override.Fraction)
	}
	if !FanSpeedRange.Contains(c.Override.Speed) {
		return &ErrOutOfRange{Quantity: "override speed", Value: c.Override.Speed, Range: FanSpeedRange}
	}
	return nil
}
