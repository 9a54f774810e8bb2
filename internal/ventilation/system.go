package ventilation

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/abhisek/ventctl/internal/fuzzy"
	"github.com/abhisek/ventctl/internal/logging"
)

// System is the ventilation controller: a fuzzy engine over temperature
// and humidity, the current temperature range and the override policy.
// It starts unconfigured on the config's range; SetTemperatureRange moves
// it to configured. Both states evaluate.
type System struct {
	mu         sync.RWMutex
	cfg        Config
	rng        Range
	configured bool
	engine     *fuzzy.Engine

	log *slog.Logger
}

// Recommendation is the outcome of one reading.
type Recommendation struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`

	// Raw is the engine output before the override policy.
	Raw float64 `json:"raw"`
	// Speed is the fan speed to apply.
	Speed      float64 `json:"speed"`
	Overridden bool    `json:"overridden"`
	// Fired is false when no rule covered the reading and Raw is the
	// zero fallback.
	Fired bool  `json:"fired"`
	Range Range `json:"range"`

	Inference fuzzy.Result `json:"-"`
}

// New builds a System from cfg.
func New(cfg Config, log *slog.Logger) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Discard()
	}

	temp, err := NewTemperature(cfg.TemperatureRange, cfg.Resolution)
	if err != nil {
		return nil, fmt.Errorf("temperature: %w", err)
	}
	hum, err := NewHumidity(cfg.Resolution)
	if err != nil {
		return nil, fmt.Errorf("humidity: %w", err)
	}
	fan, err := NewFanSpeed(cfg.Resolution)
	if err != nil {
		return nil, fmt.Errorf("fan speed: %w", err)
	}
	if cfg.StrictMembership {
		for _, v := range []*fuzzy.Variable{temp, hum, fan} {
			if err := v.Validate(); err != nil {
				return nil, fmt.Errorf("%s: %w", v.Name(), err)
			}
		}
	}

	engine, err := fuzzy.New(fuzzy.Config{
		First:  temp,
		Second: hum,
		Output: fan,
		Rules:  DefaultRules(),
		Logger: log,
	})
	if err != nil {
		return nil, err
	}

	return &System{
		cfg:    cfg,
		rng:    cfg.TemperatureRange,
		engine: engine,
		log:    log.With("component", "ventilation"),
	}, nil
}

// SetTemperatureRange rebuilds the temperature variable for [lo, hi]
// and swaps it into the engine. Humidity and fan speed are untouched.
func (s *System) SetTemperatureRange(lo, hi int) error {
	r := Range{Min: lo, Max: hi}
	if err := r.Validate(); err != nil {
		return err
	}
	temp, err := NewTemperature(r, s.cfg.Resolution)
	if err != nil {
		return fmt.Errorf("temperature: %w", err)
	}
	if s.cfg.StrictMembership {
		if err := temp.Validate(); err != nil {
			return fmt.Errorf("%s: %w", temp.Name(), err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.engine.ReplaceFirst(temp); err != nil {
		return err
	}
	s.rng = r
	s.configured = true
	s.log.Info("temperature range set", slog.Int("min", lo), slog.Int("max", hi))
	return nil
}

// TemperatureRange returns the active range.
func (s *System) TemperatureRange() Range {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rng
}

// Configured reports whether SetTemperatureRange has succeeded at least once.
func (s *System) Configured() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.configured
}

// Override returns the override policy.
func (s *System) Override() OverridePolicy {
	return s.cfg.Override
}

// Evaluate returns the raw engine output without the override policy.
func (s *System) Evaluate(temp, hum float64) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Evaluate(temp, hum)
}

// Recommend runs inference and applies the override policy.
func (s *System) Recommend(temp, hum float64) Recommendation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	res := s.engine.Infer(temp, hum)
	speed, overridden := s.cfg.Override.Apply(s.rng, temp, res.Output)
	if overridden {
		s.log.Debug("override applied",
			slog.Float64("temperature", temp),
			slog.Float64("threshold", s.cfg.Override.Threshold(s.rng)),
		)
	}
	return Recommendation{
		Temperature: temp,
		Humidity:    hum,
		Raw:         res.Output,
		Speed:       speed,
		Overridden:  overridden,
		Fired:       res.Fired(),
		Range:       s.rng,
		Inference:   res,
	}
}

// Curves returns the membership curves of temperature, humidity and fan
// speed in that order.
func (s *System) Curves() []fuzzy.Curve {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Curves()
}

// Variables returns the temperature, humidity and fan speed variables the
// engine currently reasons over.
func (s *System) Variables() (temp, hum, fan *fuzzy.Variable) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.engine.Variables()
}
