package fuzzy

// Tolerance is subtracted from the target level during inverse lookup so
// a sample just below alpha still counts as a hit.
const Tolerance = 1e-3

// Direction selects which side of a consequent membership function the
// inverse lookup reads.
type Direction int

const (
	// Ascending returns the first sample that reaches the target level.
	Ascending Direction = iota
	// Descending returns the last sample that reaches the target level.
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// Term is a named membership function.
type Term struct {
	Name string     `json:"name"`
	MF   Membership `json:"membership"`
}

// Validate checks the term's membership parameters.
func (t Term) Validate() error {
	if err := t.MF.Validate(); err != nil {
		if e, ok := err.(*ErrInvalidMembership); ok {
			e.Term = t.Name
		}
		return err
	}
	return nil
}

// Variable is a linguistic variable: an ordered set of terms over one
// universe. A Variable is immutable once built.
type Variable struct {
	name      string
	universe  Universe
	direction Direction
	terms     []Term
	index     map[string]int

	// samples[i] holds terms[i] evaluated over every universe point.
	samples [][]float64
}

// NewVariable builds a variable from its terms. Term names must be unique.
func NewVariable(name string, u Universe, terms ...Term) (*Variable, error) {
	if len(terms) == 0 {
		return nil, ErrNoTerms
	}
	v := &Variable{
		name:     name,
		universe: u,
		terms:    make([]Term, len(terms)),
		index:    make(map[string]int, len(terms)),
		samples:  make([][]float64, len(terms)),
	}
	copy(v.terms, terms)
	for i, t := range v.terms {
		if _, dup := v.index[t.Name]; dup {
			return nil, &ErrDuplicateTerm{Variable: name, Term: t.Name}
		}
		v.index[t.Name] = i
		v.samples[i] = t.MF.EvalAll(u.points)
	}
	return v, nil
}

// WithDirection returns a copy of v that inverts with direction d.
func (v *Variable) WithDirection(d Direction) *Variable {
	c := *v
	c.direction = d
	return &c
}

// Name returns the variable name.
func (v *Variable) Name() string { return v.name }

// Universe returns the variable's universe.
func (v *Variable) Universe() Universe { return v.universe }

// Direction returns the inverse-lookup direction.
func (v *Variable) Direction() Direction { return v.direction }

// Terms returns the terms in declaration order.
func (v *Variable) Terms() []Term {
	out := make([]Term, len(v.terms))
	copy(out, v.terms)
	return out
}

// Term looks up a term by name.
func (v *Variable) Term(name string) (Term, bool) {
	i, ok := v.index[name]
	if !ok {
		return Term{}, false
	}
	return v.terms[i], true
}

// Degree returns the membership of x in the named term.
func (v *Variable) Degree(term string, x float64) (float64, error) {
	i, err := v.lookup(term)
	if err != nil {
		return 0, err
	}
	return v.degreeAt(i, x), nil
}

// Invert returns the crisp value on the universe whose membership in the
// named term reaches alpha. See Invert for the lookup rules.
func (v *Variable) Invert(term string, alpha float64) (float64, error) {
	i, err := v.lookup(term)
	if err != nil {
		return 0, err
	}
	return v.invertAt(i, alpha), nil
}

// Validate checks every term's membership parameters.
func (v *Variable) Validate() error {
	for _, t := range v.terms {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (v *Variable) lookup(term string) (int, error) {
	i, ok := v.index[term]
	if !ok {
		return 0, &ErrUnknownTerm{Variable: v.name, Term: term}
	}
	return i, nil
}

func (v *Variable) degreeAt(i int, x float64) float64 {
	return v.terms[i].MF.Eval(x)
}

func (v *Variable) invertAt(i int, alpha float64) float64 {
	return scan(v.samples[i], v.universe, alpha, v.direction)
}

// Invert is the discretized inverse of m over u: it evaluates m at every
// sample and returns the first (Ascending) or last (Descending) sample
// whose membership is at least alpha - Tolerance. When no sample
// qualifies, because alpha exceeds the reachable maximum or the sampling
// misses a thin edge, it returns the mean of u.
func Invert(m Membership, u Universe, alpha float64, dir Direction) float64 {
	return scan(m.EvalAll(u.points), u, alpha, dir)
}

func scan(ys []float64, u Universe, alpha float64, dir Direction) float64 {
	threshold := alpha - Tolerance
	if dir == Descending {
		for i := len(ys) - 1; i >= 0; i-- {
			if ys[i] >= threshold {
				return u.points[i]
			}
		}
		return u.Mean()
	}
	for i, y := range ys {
		if y >= threshold {
			return u.points[i]
		}
	}
	return u.Mean()
}
