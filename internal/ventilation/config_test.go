package ventilation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/abhisek/ventctl/internal/fuzzy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, Range{Min: 0, Max: 100}, cfg.TemperatureRange)
	assert.Equal(t, fuzzy.DefaultResolution, cfg.Resolution)
	assert.True(t, cfg.Override.Enabled)
	assert.Equal(t, 0.9, cfg.Override.Fraction)
	assert.Equal(t, 100.0, cfg.Override.Speed)
	assert.False(t, cfg.StrictMembership)
	require.NoError(t, cfg.Validate())
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(EnvTempMin, "-20")
	t.Setenv(EnvTempMax, "45")
	t.Setenv(EnvOverride, "false")

	cfg, err := ConfigFromEnv()

	require.NoError(t, err)
	assert.Equal(t, Range{Min: -20, Max: 45}, cfg.TemperatureRange)
	assert.False(t, cfg.Override.Enabled)
	assert.Equal(t, fuzzy.DefaultResolution, cfg.Resolution)
}

func TestConfigFromEnv_Unset(t *testing.T) {
	t.Setenv(EnvTempMin, "")
	t.Setenv(EnvTempMax, "")
	t.Setenv(EnvOverride, "")

	cfg, err := ConfigFromEnv()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfigFromEnv_Malformed(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"min", EnvTempMin, "cold"},
		{"max", EnvTempMax, "12.5"},
		{"override", EnvOverride, "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvTempMin, "")
			t.Setenv(EnvTempMax, "")
			t.Setenv(EnvOverride, "")
			t.Setenv(tt.key, tt.val)

			_, err := ConfigFromEnv()

			var cfgErr *ErrConfig
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.key, cfgErr.Source)
		})
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ventctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
resolution = 500
strict_membership = true

[temperature_range]
min = -10
max = 40

[override]
enabled = false
`)

	cfg, err := LoadConfig(path, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, Range{Min: -10, Max: 40}, cfg.TemperatureRange)
	assert.Equal(t, 500, cfg.Resolution)
	assert.True(t, cfg.StrictMembership)
	assert.False(t, cfg.Override.Enabled)
	// Keys absent from the file keep the base values.
	assert.Equal(t, 0.9, cfg.Override.Fraction)
	assert.Equal(t, 100.0, cfg.Override.Speed)
}

func TestLoadConfig_OverlaysBase(t *testing.T) {
	base := DefaultConfig()
	base.TemperatureRange = Range{Min: 5, Max: 35}
	path := writeConfig(t, "[override]\nfraction = 0.8\n")

	cfg, err := LoadConfig(path, base)

	require.NoError(t, err)
	assert.Equal(t, Range{Min: 5, Max: 35}, cfg.TemperatureRange)
	assert.Equal(t, 0.8, cfg.Override.Fraction)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") }},
		{"unknown key", func(t *testing.T) string { return writeConfig(t, "fan_curve = \"steep\"\n") }},
		{"bad syntax", func(t *testing.T) string { return writeConfig(t, "[temperature_range\nmin = 1\n") }},
		{"wrong type", func(t *testing.T) string { return writeConfig(t, "resolution = \"high\"\n") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := DefaultConfig()
			cfg, err := LoadConfig(tt.path(t), base)

			var cfgErr *ErrConfig
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, base, cfg)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"single point range", func(c *Config) { c.TemperatureRange = Range{Min: 20, Max: 20} }, false},
		{"inverted range", func(c *Config) { c.TemperatureRange = Range{Min: 30, Max: 20} }, true},
		{"resolution too small", func(c *Config) { c.Resolution = 1 }, true},
		{"fraction above one", func(c *Config) { c.Override.Fraction = 1.5 }, true},
		{"negative fraction", func(c *Config) { c.Override.Fraction = -0.1 }, true},
		{"speed above range", func(c *Config) { c.Override.Speed = 150 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}
