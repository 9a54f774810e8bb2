package ventilation

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseRange parses "min max", two integers separated by whitespace.
func ParseRange(s string) (Range, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Range{}, fmt.Errorf("%w: expected two integers \"min max\", got %q", ErrMalformedInput, s)
	}
	lo, err := strconv.Atoi(fields[0])
	if err != nil {
		return Range{}, fmt.Errorf("%w: min %q is not an integer", ErrMalformedInput, fields[0])
	}
	hi, err := strconv.Atoi(fields[1])
	if err != nil {
		return Range{}, fmt.Errorf("%w: max %q is not an integer", ErrMalformedInput, fields[1])
	}
	r := Range{Min: lo, Max: hi}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}
	return r, nil
}

// ParseReading parses an integer reading.
func ParseReading(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedInput, strings.TrimSpace(s))
	}
	return n, nil
}

// ValidateTemperature checks temp against r.
func ValidateTemperature(r Range, temp float64) error {
	if !r.Contains(temp) {
		return &ErrOutOfRange{Quantity: TemperatureVar, Value: temp, Range: r}
	}
	return nil
}

// ValidateHumidity checks hum against [0, 100].
func ValidateHumidity(hum float64) error {
	if !HumidityRange.Contains(hum) {
		return &ErrOutOfRange{Quantity: HumidityVar, Value: hum, Range: HumidityRange}
	}
	return nil
}
