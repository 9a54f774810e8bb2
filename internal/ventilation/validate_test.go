package ventilation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Range
		malformed bool
		inverted  bool
	}{
		{"simple", "0 100", Range{Min: 0, Max: 100}, false, false},
		{"negative", "-30 30", Range{Min: -30, Max: 30}, false, false},
		{"extra whitespace", "  10\t 40 ", Range{Min: 10, Max: 40}, false, false},
		{"equal bounds", "20 20", Range{Min: 20, Max: 20}, false, false},
		{"one value", "10", Range{}, true, false},
		{"three values", "1 2 3", Range{}, true, false},
		{"not a number", "ten 20", Range{}, true, false},
		{"decimal", "1.5 20", Range{}, true, false},
		{"empty", "", Range{}, true, false},
		{"inverted", "40 10", Range{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRange(tt.input)
			switch {
			case tt.malformed:
				require.ErrorIs(t, err, ErrMalformedInput)
			case tt.inverted:
				var invalid *ErrInvalidRange
				require.ErrorAs(t, err, &invalid)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestParseReading(t *testing.T) {
	n, err := ParseReading(" 42 ")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = ParseReading("-7")
	require.NoError(t, err)
	assert.Equal(t, -7, n)

	_, err = ParseReading("warm")
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestValidateTemperature(t *testing.T) {
	r := Range{Min: -10, Max: 40}

	require.NoError(t, ValidateTemperature(r, -10))
	require.NoError(t, ValidateTemperature(r, 40))

	err := ValidateTemperature(r, 41)
	var out *ErrOutOfRange
	require.ErrorAs(t, err, &out)
	assert.Equal(t, TemperatureVar, out.Quantity)
	assert.Equal(t, r, out.Range)
	assert.Equal(t, "temperature 41 is outside [-10, 40]", err.Error())
}

func TestValidateHumidity(t *testing.T) {
	require.NoError(t, ValidateHumidity(0))
	require.NoError(t, ValidateHumidity(100))

	var out *ErrOutOfRange
	require.ErrorAs(t, ValidateHumidity(-1), &out)
	require.ErrorAs(t, ValidateHumidity(101), &out)
}

func TestRange(t *testing.T) {
	r := Range{Min: -30, Max: 30}

	assert.Equal(t, -30.0, r.Lower())
	assert.Equal(t, 31.0, r.Upper())
	assert.Equal(t, 61.0, r.Span())
	assert.True(t, r.Contains(30))
	assert.False(t, r.Contains(30.5))
	assert.Equal(t, "[-30, 30]", r.String())
}

func TestOverridePolicy_Threshold(t *testing.T) {
	p := DefaultOverride()

	tests := []struct {
		r    Range
		want float64
	}{
		{DefaultTemperatureRange, 90},
		{Range{Min: -30, Max: 30}, 24},
		// -54.1 truncates toward zero.
		{Range{Min: -100, Max: -50}, -54},
		{Range{Min: 0, Max: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.r.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, p.Threshold(tt.r))
		})
	}
}

func TestOverridePolicy_Apply(t *testing.T) {
	r := DefaultTemperatureRange

	speed, ok := DefaultOverride().Apply(r, 90, 42)
	assert.True(t, ok)
	assert.Equal(t, 100.0, speed)

	speed, ok = DefaultOverride().Apply(r, 89.9, 42)
	assert.False(t, ok)
	assert.Equal(t, 42.0, speed)

	off := DefaultOverride()
	off.Enabled = false
	speed, ok = off.Apply(r, 100, 42)
	assert.False(t, ok)
	assert.Equal(t, 42.0, speed)

	custom := OverridePolicy{Enabled: true, Fraction: 0.5, Speed: 80}
	speed, ok = custom.Apply(r, 50, 10)
	assert.True(t, ok)
	assert.Equal(t, 80.0, speed)
}
