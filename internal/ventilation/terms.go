package ventilation

import (
	"math"

	"github.com/abhisek/ventctl/internal/fuzzy"
)

// Term names shared by all three variables.
const (
	VeryLow  = "very_low"
	Low      = "low"
	Medium   = "medium"
	High     = "high"
	VeryHigh = "very_high"
)

// Variable names.
const (
	TemperatureVar = "temperature"
	HumidityVar    = "humidity"
	FanSpeedVar    = "fan_speed"
)

// TermNames lists the vocabulary in ascending order.
var TermNames = []string{VeryLow, Low, Medium, High, VeryHigh}

// TemperatureTerms lays the five temperature terms over r. The outer
// shoulders reach far past the universe so the edge terms stay at full
// membership through the bounds.
func TemperatureTerms(r Range) []fuzzy.Term {
	lo, hi := r.Lower(), r.Upper()
	span := hi - lo
	at := func(f float64) float64 { return lo + f*span }

	var farLeft float64
	if hi > 10 {
		farLeft = lo - math.Pow(hi, 4)
	} else {
		farLeft = lo - math.Pow(math.Abs(hi)+10, 4)
	}

	return []fuzzy.Term{
		{Name: VeryLow, MF: fuzzy.Trapezoid(farLeft, lo, at(0.2), at(0.3))},
		{Name: Low, MF: fuzzy.Trapezoid(at(0.2), at(0.3), at(0.4), at(0.5))},
		{Name: Medium, MF: fuzzy.Trapezoid(at(0.4), at(0.5), at(0.6), at(0.7))},
		{Name: High, MF: fuzzy.Trapezoid(at(0.6), at(0.7), at(0.8), at(0.9))},
		{Name: VeryHigh, MF: fuzzy.Trapezoid(at(0.8), at(0.9), hi, hi*10)},
	}
}

// percentTerms is the fixed layout shared by humidity and fan speed.
func percentTerms() []fuzzy.Term {
	return []fuzzy.Term{
		{Name: VeryLow, MF: fuzzy.Trapezoid(-100, 0, 20, 30)},
		{Name: Low, MF: fuzzy.Trapezoid(20, 30, 40, 50)},
		{Name: Medium, MF: fuzzy.Trapezoid(40, 50, 60, 70)},
		{Name: High, MF: fuzzy.Trapezoid(60, 70, 80, 90)},
		{Name: VeryHigh, MF: fuzzy.Trapezoid(80, 90, 100, 1000)},
	}
}

// HumidityTerms returns the humidity layout.
func HumidityTerms() []fuzzy.Term { return percentTerms() }

// FanSpeedTerms returns the fan speed layout.
func FanSpeedTerms() []fuzzy.Term { return percentTerms() }

func universe(r Range, resolution int) fuzzy.Universe {
	return fuzzy.NewUniverse(r.Lower(), r.Upper(), resolution)
}

// NewTemperature builds the temperature variable for r.
func NewTemperature(r Range, resolution int) (*fuzzy.Variable, error) {
	return fuzzy.NewVariable(TemperatureVar, universe(r, resolution), TemperatureTerms(r)...)
}

// NewHumidity builds the humidity variable.
func NewHumidity(resolution int) (*fuzzy.Variable, error) {
	return fuzzy.NewVariable(HumidityVar, universe(HumidityRange, resolution), HumidityTerms()...)
}

// NewFanSpeed builds the fan speed output variable.
func NewFanSpeed(resolution int) (*fuzzy.Variable, error) {
	return fuzzy.NewVariable(FanSpeedVar, universe(FanSpeedRange, resolution), FanSpeedTerms()...)
}
