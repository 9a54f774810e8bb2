package ventilation

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates user input that could not be parsed.
var ErrMalformedInput = errors.New("malformed input")

// ErrInvalidRange indicates a temperature range with Min > Max.
type ErrInvalidRange struct {
	Min, Max int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid temperature range: min %d is greater than max %d", e.Min, e.Max)
}

// ErrOutOfRange indicates a reading outside the range it is checked against.
type ErrOutOfRange struct {
	Quantity string
	Value    float64
	Range    Range
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("%s %g is outside %s", e.Quantity, e.Value, e.Range)
}

// ErrConfig wraps a configuration source that failed to load or validate.
type ErrConfig struct {
	Source string
	Err    error
}

func (e *ErrConfig) Error() string {
	return fmt.Sprintf("config %s: %v", e.Source, e.Err)
}

func (e *ErrConfig) Unwrap() error { return e.Err }
