// Package batch evaluates a JSON document of readings against one
// ventilation system and reports the result of each.
package batch

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/abhisek/ventctl/internal/logging"
	"github.com/abhisek/ventctl/internal/ventilation"
)

// Input is a validated batch document.
type Input struct {
	Range    *ventilation.Range `json:"range,omitempty"`
	Readings []Reading          `json:"readings"`
}

// Reading is one sensor sample. Readings without an ID get a UUID.
type Reading struct {
	ID          string  `json:"id"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
}

// Result is the outcome of one reading.
type Result struct {
	ID          string  `json:"id"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Raw         float64 `json:"raw"`
	Speed       float64 `json:"speed"`
	Overridden  bool    `json:"overridden"`
	// Fired is false when no rule covered the reading.
	Fired bool `json:"fired"`
	// InRange is false when either input lies outside its range. The
	// reading is still evaluated.
	InRange bool `json:"in_range"`
}

// Report is the outcome of one batch run.
type Report struct {
	RunID   string            `json:"run_id"`
	Range   ventilation.Range `json:"range"`
	Results []Result          `json:"results"`
}

// ErrInvalidInput indicates a document that failed to parse or validate.
type ErrInvalidInput struct {
	Err error
}

func (e *ErrInvalidInput) Error() string {
	return fmt.Sprintf("invalid batch input: %v", e.Err)
}

func (e *ErrInvalidInput) Unwrap() error { return e.Err }

// Parse validates raw against the embedded schema and decodes it.
func Parse(raw []byte) (Input, error) {
	if err := validate(raw); err != nil {
		return Input{}, &ErrInvalidInput{Err: err}
	}
	var in Input
	if err := json.Unmarshal(raw, &in); err != nil {
		return Input{}, &ErrInvalidInput{Err: err}
	}
	if in.Range != nil {
		if err := in.Range.Validate(); err != nil {
			return Input{}, &ErrInvalidInput{Err: err}
		}
	}
	for i := range in.Readings {
		if in.Readings[i].ID == "" {
			in.Readings[i].ID = uuid.New().String()
		}
	}
	return in, nil
}

// Run evaluates every reading in order. When the input carries a range,
// sys is reconfigured to it first.
func Run(sys *ventilation.System, in Input, log *slog.Logger) (Report, error) {
	if log == nil {
		log = logging.Discard()
	}
	log = log.With("component", "batch")

	if in.Range != nil {
		if err := sys.SetTemperatureRange(in.Range.Min, in.Range.Max); err != nil {
			return Report{}, fmt.Errorf("set range: %w", err)
		}
	}

	rep := Report{
		RunID:   uuid.New().String(),
		Range:   sys.TemperatureRange(),
		Results: make([]Result, 0, len(in.Readings)),
	}
	for _, r := range in.Readings {
		rec := sys.Recommend(r.Temperature, r.Humidity)
		inRange := ventilation.ValidateTemperature(rep.Range, r.Temperature) == nil &&
			ventilation.ValidateHumidity(r.Humidity) == nil
		if !inRange {
			log.Warn("reading out of range", slog.String("id", r.ID),
				slog.Float64("temperature", r.Temperature),
				slog.Float64("humidity", r.Humidity))
		}
		rep.Results = append(rep.Results, Result{
			ID:          r.ID,
			Temperature: r.Temperature,
			Humidity:    r.Humidity,
			Raw:         rec.Raw,
			Speed:       rec.Speed,
			Overridden:  rec.Overridden,
			Fired:       rec.Fired,
			InRange:     inRange,
		})
	}
	log.Info("batch evaluated", slog.String("run_id", rep.RunID), slog.Int("readings", len(rep.Results)))
	return rep, nil
}
