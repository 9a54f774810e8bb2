package fuzzy

import (
	"log/slog"
	"sync"

	"github.com/abhisek/ventctl/internal/logging"
)

// Config wires an Engine: two input variables, one output variable and
// the rule base over their vocabularies.
type Config struct {
	First  *Variable
	Second *Variable
	Output *Variable
	Rules  RuleBase

	// Logger receives one debug record per inference. Nil discards.
	Logger *slog.Logger
}

// Engine is a two-input Tsukamoto inference engine. Evaluations may run
// concurrently; replacing an input variable waits for them to finish.
type Engine struct {
	mu       sync.RWMutex
	first    *Variable
	second   *Variable
	output   *Variable
	rules    RuleBase
	compiled []compiledRule

	log *slog.Logger
}

// Activation records how one rule contributed to an inference.
type Activation struct {
	Rule         Rule    `json:"rule"`
	FirstDegree  float64 `json:"first_degree"`
	SecondDegree float64 `json:"second_degree"`
	Alpha        float64 `json:"alpha"`
	Z            float64 `json:"z"`
}

// Result is the full outcome of one inference.
type Result struct {
	Output      float64      `json:"output"`
	Numerator   float64      `json:"numerator"`
	Denominator float64      `json:"denominator"`
	Activations []Activation `json:"activations"`
}

// Fired reports whether at least one rule had a non-zero firing strength.
// When it is false, Output is 0 by convention rather than by demand.
func (r Result) Fired() bool {
	return r.Denominator != 0
}

// Dominant returns the activation with the highest firing strength,
// preferring the earlier rule on ties.
func (r Result) Dominant() (Activation, bool) {
	var (
		best  Activation
		found bool
	)
	for _, a := range r.Activations {
		if a.Alpha > 0 && (!found || a.Alpha > best.Alpha) {
			best = a
			found = true
		}
	}
	return best, found
}

// New validates the rule base against the variables and returns an engine.
func New(cfg Config) (*Engine, error) {
	if cfg.First == nil || cfg.Second == nil || cfg.Output == nil {
		return nil, ErrNilVariable
	}
	compiled, err := compile(cfg.Rules, cfg.First, cfg.Second, cfg.Output)
	if err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logging.Discard()
	}
	return &Engine{
		first:    cfg.First,
		second:   cfg.Second,
		output:   cfg.Output,
		rules:    cfg.Rules,
		compiled: compiled,
		log:      log.With("component", "fuzzy"),
	}, nil
}

// Evaluate returns the crisp output for inputs x1 and x2. It returns 0
// when no rule fires.
func (e *Engine) Evaluate(x1, x2 float64) float64 {
	return e.Infer(x1, x2).Output
}

// Infer runs every rule in table order: the firing strength is the min
// of the two antecedent degrees, the rule's crisp value is the inverse of
// its consequent at that strength, and the output is the strength-
// weighted mean of the crisp values.
func (e *Engine) Infer(x1, x2 float64) Result {
	e.mu.RLock()
	defer e.mu.RUnlock()

	res := Result{Activations: make([]Activation, len(e.compiled))}
	for i, c := range e.compiled {
		mu1 := e.first.degreeAt(c.first, x1)
		mu2 := e.second.degreeAt(c.second, x2)
		alpha := min(mu1, mu2)
		z := e.output.invertAt(c.output, alpha)

		res.Numerator += alpha * z
		res.Denominator += alpha
		res.Activations[i] = Activation{
			Rule:         e.rules.At(i),
			FirstDegree:  mu1,
			SecondDegree: mu2,
			Alpha:        alpha,
			Z:            z,
		}
	}
	if res.Denominator != 0 {
		res.Output = res.Numerator / res.Denominator
	}

	e.log.Debug("inference",
		slog.Float64(e.first.name, x1),
		slog.Float64(e.second.name, x2),
		slog.Float64("numerator", res.Numerator),
		slog.Float64("denominator", res.Denominator),
		slog.Float64("output", res.Output),
	)
	return res
}

// ReplaceFirst swaps the first input variable. The rule base is checked
// against the new vocabulary before the swap.
func (e *Engine) ReplaceFirst(v *Variable) error {
	return e.replace(v, nil)
}

// ReplaceSecond swaps the second input variable.
func (e *Engine) ReplaceSecond(v *Variable) error {
	return e.replace(nil, v)
}

func (e *Engine) replace(first, second *Variable) error {
	if first == nil && second == nil {
		return ErrNilVariable
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	f, s := e.first, e.second
	if first != nil {
		f = first
	}
	if second != nil {
		s = second
	}
	compiled, err := compile(e.rules, f, s, e.output)
	if err != nil {
		return err
	}
	e.first, e.second, e.compiled = f, s, compiled
	e.log.Debug("variable replaced",
		slog.String("first", f.name),
		slog.String("second", s.name),
	)
	return nil
}

// Variables returns the engine's current variables.
func (e *Engine) Variables() (first, second, output *Variable) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.first, e.second, e.output
}

// Rules returns the rule base.
func (e *Engine) Rules() RuleBase {
	return e.rules
}
