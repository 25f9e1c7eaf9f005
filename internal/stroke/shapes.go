package stroke

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/epicycles/internal/epicycle"
)

// DefaultSamples is the number of points generated for a built-in shape.
const DefaultSamples = 200

type generator func(t float64) epicycle.Point

// Shapes are parameterized over t in [0, 2π) with y growing downward, the
// same orientation as pointer input.
var shapes = map[string]generator{
	"circle": func(t float64) epicycle.Point {
		return epicycle.Point{X: 100 * math.Cos(t), Y: 100 * math.Sin(t)}
	},
	"heart": func(t float64) epicycle.Point {
		s := math.Sin(t)
		return epicycle.Point{
			X: 6 * 16 * s * s * s,
			Y: -6 * (13*math.Cos(t) - 5*math.Cos(2*t) - 2*math.Cos(3*t) - math.Cos(4*t)),
		}
	},
	"lissajous": func(t float64) epicycle.Point {
		return epicycle.Point{X: 100 * math.Sin(3*t+math.Pi/2), Y: 100 * math.Sin(2*t)}
	},
	"square": func(t float64) epicycle.Point {
		return polygonAt([]epicycle.Point{{X: -100, Y: -100}, {X: 100, Y: -100}, {X: 100, Y: 100}, {X: -100, Y: 100}}, t)
	},
	"star": func(t float64) epicycle.Point {
		verts := make([]epicycle.Point, 10)
		for i := range verts {
			r := 100.0
			if i%2 == 1 {
				r = 40
			}
			a := -math.Pi/2 + float64(i)*math.Pi/5
			verts[i] = epicycle.Point{X: r * math.Cos(a), Y: r * math.Sin(a)}
		}
		return polygonAt(verts, t)
	},
}

// polygonAt walks the closed polygon verts at constant parameter speed,
// spending an equal share of the period on each edge.
func polygonAt(verts []epicycle.Point, t float64) epicycle.Point {
	n := len(verts)
	pos := t / epicycle.Period * float64(n)
	i := int(pos) % n
	frac := pos - math.Floor(pos)
	a, b := verts[i], verts[(i+1)%n]
	return epicycle.Point{X: a.X + (b.X-a.X)*frac, Y: a.Y + (b.Y-a.Y)*frac}
}

// Shape samples the named built-in shape at n evenly spaced parameters.
func Shape(name string, n int) ([]epicycle.Point, error) {
	gen, ok := shapes[name]
	if !ok {
		return nil, fmt.Errorf("unknown shape: %s (available: %v)", name, Names())
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: shape samples must be positive, got %d", epicycle.ErrInvalidConfiguration, n)
	}
	pts := make([]epicycle.Point, n)
	for i := range pts {
		pts[i] = gen(epicycle.Period * float64(i) / float64(n))
	}
	return pts, nil
}

func Names() []string {
	names := make([]string, 0, len(shapes))
	for name := range shapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
