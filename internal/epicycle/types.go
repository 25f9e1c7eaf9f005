package epicycle

import "math"

const (
	// DefaultCoefficients is the number of epicycles used when none is configured.
	DefaultCoefficients = 101

	// DefaultSecondsPerCycle is the replay duration of one full period.
	DefaultSecondsPerCycle = 10.0

	// DefaultFrameRate is the target number of frames per second.
	DefaultFrameRate = 60.0

	// Period is the length of one reconstruction cycle in radians.
	Period = 2 * math.Pi
)

// Point is a position on the drawing plane.
type Point struct {
	X, Y float64
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// ComplexPoint is a drawing sample expressed as a complex number (re=x, im=y).
type ComplexPoint struct {
	Re, Im float64
}

// Point converts c back to plane coordinates.
func (c ComplexPoint) Point() Point {
	return Point{X: c.Re, Y: c.Im}
}

// Complex returns c as a complex128.
func (c ComplexPoint) Complex() complex128 {
	return complex(c.Re, c.Im)
}

// Coefficient is one frequency component of a drawing.
type Coefficient struct {
	Re        float64 `json:"re" yaml:"re"`
	Im        float64 `json:"im" yaml:"im"`
	Amplitude float64 `json:"amplitude" yaml:"amplitude"`
	Phase     float64 `json:"phase" yaml:"phase"`
	Frequency int     `json:"frequency" yaml:"frequency"`
}

func newCoefficient(re, im float64, k int) Coefficient {
	return Coefficient{
		Re:        re,
		Im:        im,
		Amplitude: math.Sqrt(re*re + im*im),
		Phase:     math.Atan2(im, re),
		Frequency: k,
	}
}

// Vector returns the coefficient's rotating vector at time t.
func (c Coefficient) Vector(t float64) Point {
	s, co := math.Sincos(c.Phase + float64(c.Frequency)*t)
	return Point{X: c.Amplitude * co, Y: c.Amplitude * s}
}

// CoefficientSet is an amplitude-ranked, read-only list of coefficients.
type CoefficientSet struct {
	coeffs []Coefficient
}

// Len returns the number of coefficients.
func (s CoefficientSet) Len() int { return len(s.coeffs) }

// At returns the i-th coefficient in rank order.
func (s CoefficientSet) At(i int) Coefficient { return s.coeffs[i] }

// All returns a copy of the coefficients in rank order.
func (s CoefficientSet) All() []Coefficient {
	out := make([]Coefficient, len(s.coeffs))
	copy(out, s.coeffs)
	return out
}

// Frequency looks up the coefficient for frequency k.
func (s CoefficientSet) Frequency(k int) (Coefficient, bool) {
	for _, c := range s.coeffs {
		if c.Frequency == k {
			return c, true
		}
	}
	return Coefficient{}, false
}

// Trace is the path drawn by the tip of the epicycle chain during one period.
type Trace struct {
	points []Point
}

// Append adds p to the end of the trace.
func (t *Trace) Append(p Point) { t.points = append(t.points, p) }

// Clear empties the trace, keeping its capacity.
func (t *Trace) Clear() { t.points = t.points[:0] }

// Len returns the number of traced points.
func (t *Trace) Len() int { return len(t.points) }

// Points returns a snapshot of the traced points.
func (t *Trace) Points() []Point {
	out := make([]Point, len(t.points))
	copy(out, t.points)
	return out
}
