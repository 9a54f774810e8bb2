package fuzzy

// Curve is one term of one variable sampled over its universe. Curves are
// for display only and carry copies of the engine's data.
type Curve struct {
	Variable   string     `json:"variable"`
	Term       string     `json:"term"`
	Membership Membership `json:"membership"`
	X          []float64  `json:"x"`
	Y          []float64  `json:"y"`
}

// Curves returns one curve per term in declaration order.
func (v *Variable) Curves() []Curve {
	curves := make([]Curve, len(v.terms))
	for i, t := range v.terms {
		y := make([]float64, len(v.samples[i]))
		copy(y, v.samples[i])
		curves[i] = Curve{
			Variable:   v.name,
			Term:       t.Name,
			Membership: t.MF,
			X:          v.universe.Points(),
			Y:          y,
		}
	}
	return curves
}

// Curves returns the curves of the first input, second input and output
// variables, in that order.
func (e *Engine) Curves() []Curve {
	first, second, output := e.Variables()
	var curves []Curve
	curves = append(curves, first.Curves()...)
	curves = append(curves, second.Curves()...)
	curves = append(curves, output.Curves()...)
	return curves
}
