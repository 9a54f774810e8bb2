package ventilation

import "fmt"

// Range is an inclusive integer temperature range [Min, Max]. Internally
// the universe spans the half-open pair [Min, Max+1].
type Range struct {
	Min int `toml:"min" json:"min"`
	Max int `toml:"max" json:"max"`
}

// DefaultTemperatureRange is the range used until one is configured.
var DefaultTemperatureRange = Range{Min: 0, Max: 100}

// HumidityRange and FanSpeedRange are fixed.
var (
	HumidityRange = Range{Min: 0, Max: 100}
	FanSpeedRange = Range{Min: 0, Max: 100}
)

// Lower returns the lower universe bound.
func (r Range) Lower() float64 { return float64(r.Min) }

// Upper returns the upper universe bound, one past Max.
func (r Range) Upper() float64 { return float64(r.Max) + 1 }

// Span returns Upper - Lower.
func (r Range) Span() float64 { return r.Upper() - r.Lower() }

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= float64(r.Min) && v <= float64(r.Max)
}

// Validate rejects inverted ranges.
func (r Range) Validate() error {
	if r.Min > r.Max {
		return &ErrInvalidRange{Min: r.Min, Max: r.Max}
	}
	return nil
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}
