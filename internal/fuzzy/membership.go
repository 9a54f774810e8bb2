package fuzzy

import (
	"fmt"
	"math"
)

// Epsilon is added to both slope denominators so vertical edges
// (a == b or c == d) never divide by zero.
const Epsilon = 1e-6

// Kind identifies the shape of a membership function.
type Kind int

const (
	// KindTrapezoid is the four-parameter trapezoid. Triangles are
	// trapezoids with b == c.
	KindTrapezoid Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindTrapezoid:
		return "trapezoid"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Membership is a membership function described by its shape and
// parameters.
type Membership struct {
	Kind Kind    `json:"kind"`
	A    float64 `json:"a"`
	B    float64 `json:"b"`
	C    float64 `json:"c"`
	D    float64 `json:"d"`
}

// Trapezoid returns a trapezoid that rises on [a, b], is 1 on [b, c]
// and falls on [c, d].
func Trapezoid(a, b, c, d float64) Membership {
	return Membership{Kind: KindTrapezoid, A: a, B: b, C: c, D: d}
}

// Triangle returns a triangle peaking at b.
func Triangle(a, b, c float64) Membership {
	return Trapezoid(a, b, b, c)
}

// Params returns the shape parameters in order.
func (m Membership) Params() [4]float64 {
	return [4]float64{m.A, m.B, m.C, m.D}
}

// Eval returns the degree of membership of x.
func (m Membership) Eval(x float64) float64 {
	switch m.Kind {
	case KindTrapezoid:
		return trapezoid(x, m.A, m.B, m.C, m.D)
	default:
		return 0
	}
}

// EvalAll evaluates m at every point of xs and returns a new slice.
func (m Membership) EvalAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = m.Eval(x)
	}
	return ys
}

// Validate reports whether the parameters are ordered a <= b <= c <= d.
// Evaluation never calls it: unordered parameters still go through the
// same formula.
func (m Membership) Validate() error {
	p := m.Params()
	for _, v := range p {
		if math.IsNaN(v) {
			return &ErrInvalidMembership{Membership: m, Reason: "NaN parameter"}
		}
	}
	if !(p[0] <= p[1] && p[1] <= p[2] && p[2] <= p[3]) {
		return &ErrInvalidMembership{Membership: m, Reason: "parameters not ordered a <= b <= c <= d"}
	}
	return nil
}

func (m Membership) String() string {
	return fmt.Sprintf("%s(%g, %g, %g, %g)", m.Kind, m.A, m.B, m.C, m.D)
}

func trapezoid(x, a, b, c, d float64) float64 {
	rise := (x - a) / (b - a + Epsilon)
	fall := (d - x) / (d - c + Epsilon)
	return math.Max(0, math.Min(math.Min(rise, 1), fall))
}
