package ventilation

import "math"

// OverridePolicy forces the fan to a fixed speed once the temperature
// reaches a fraction of the configured range. It runs after inference and
// never changes the engine output itself.
type OverridePolicy struct {
	Enabled  bool    `toml:"enabled" json:"enabled"`
	Fraction float64 `toml:"fraction" json:"fraction"`
	Speed    float64 `toml:"speed" json:"speed"`
}

// DefaultOverride triggers full speed in the top tenth of the range.
func DefaultOverride() OverridePolicy {
	return OverridePolicy{Enabled: true, Fraction: 0.9, Speed: 100}
}

// Threshold returns the trigger temperature for r, truncated toward zero.
func (p OverridePolicy) Threshold(r Range) float64 {
	lo, hi := r.Lower(), r.Upper()
	return math.Trunc(lo + p.Fraction*(hi-lo))
}

// Apply returns the final speed for temp given the raw engine output, and
// whether the override replaced it.
func (p OverridePolicy) Apply(r Range, temp, raw float64) (float64, bool) {
	if p.Enabled && temp >= p.Threshold(r) {
		return p.Speed, true
	}
	return raw, false
}
