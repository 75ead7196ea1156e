// Package scale maps values between a continuous domain and a pixel range.
package scale

// Linear maps [D0, D1] onto [R0, R1]. Values outside the domain extrapolate.
type Linear struct {
	D0, D1 float64
	R0, R1 float64
}

// NewLinear returns a scale from domain [d0, d1] to range [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{D0: d0, D1: d1, R0: r0, R1: r1}
}

// Map converts a domain value to the range.
func (l Linear) Map(v float64) float64 {
	if l.D1 == l.D0 {
		return l.R0
	}
	t := (v - l.D0) / (l.D1 - l.D0)
	return l.R0*(1-t) + l.R1*t
}

// Axes is a pair of independent scales, one per screen axis.
type Axes struct {
	X, Y Linear
}

// NewAxes maps the normalized square [0, max]² onto a width x height board.
func NewAxes(max, width, height float64) Axes {
	return Axes{
		X: NewLinear(0, max, 0, width),
		Y: NewLinear(0, max, 0, height),
	}
}

// Map converts a normalized point to pixels.
func (a Axes) Map(nx, ny float64) (float64, float64) {
	return a.X.Map(nx), a.Y.Map(ny)
}
