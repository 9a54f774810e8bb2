package fuzzy

// DefaultResolution is the number of sample points in a universe.
const DefaultResolution = 1000

// Universe is an evenly spaced, strictly increasing sequence of sample
// points over [lo, hi]. The last point is exactly hi.
type Universe struct {
	lo, hi float64
	points []float64
}

// NewUniverse samples n points over [lo, hi]. A single-point universe
// holds only lo. It panics when n < 1.
func NewUniverse(lo, hi float64, n int) Universe {
	if n < 1 {
		panic("fuzzy: universe needs at least one sample")
	}
	points := make([]float64, n)
	if n == 1 {
		points[0] = lo
		return Universe{lo: lo, hi: hi, points: points}
	}
	step := (hi - lo) / float64(n-1)
	for i := range points {
		points[i] = lo + float64(i)*step
	}
	points[n-1] = hi
	return Universe{lo: lo, hi: hi, points: points}
}

// Bounds returns the interval the universe was sampled over.
func (u Universe) Bounds() (lo, hi float64) {
	return u.lo, u.hi
}

// Len returns the number of sample points.
func (u Universe) Len() int {
	return len(u.points)
}

// At returns the i-th sample point.
func (u Universe) At(i int) float64 {
	return u.points[i]
}

// Points returns a copy of the sample points.
func (u Universe) Points() []float64 {
	out := make([]float64, len(u.points))
	copy(out, u.points)
	return out
}

// Mean returns the arithmetic mean of the sample points.
func (u Universe) Mean() float64 {
	if len(u.points) == 0 {
		return (u.lo + u.hi) / 2
	}
	sum := 0.0
	for _, p := range u.points {
		sum += p
	}
	return sum / float64(len(u.points))
}
