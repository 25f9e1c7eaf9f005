package stroke

import "github.com/san-kum/epicycles/internal/epicycle"

// PathLength returns the length of the open polyline through pts.
func PathLength(pts []epicycle.Point) float64 {
	d := 0.0
	for i := 1; i < len(pts); i++ {
		d += pts[i-1].Dist(pts[i])
	}
	return d
}

// Resample redistributes pts into n points evenly spaced along the
// polyline. Freehand strokes bunch up where the pointer slows down; evenly
// spaced samples give every part of the shape the same weight in the
// analysis. Strokes with fewer than two points, or with zero length, are
// returned unchanged.
func Resample(pts []epicycle.Point, n int) []epicycle.Point {
	if len(pts) < 2 || n < 2 {
		return pts
	}
	total := PathLength(pts)
	if total == 0 {
		return pts
	}

	interval := total / float64(n-1)
	out := make([]epicycle.Point, 0, n)
	out = append(out, pts[0])

	acc := 0.0
	prev := pts[0]
	for i := 1; i < len(pts) && len(out) < n; {
		cur := pts[i]
		d := prev.Dist(cur)
		if d > 0 && acc+d >= interval {
			f := (interval - acc) / d
			q := epicycle.Point{X: prev.X + f*(cur.X-prev.X), Y: prev.Y + f*(cur.Y-prev.Y)}
			out = append(out, q)
			prev = q
			acc = 0
			continue
		}
		acc += d
		prev = cur
		i++
	}
	for len(out) < n {
		out = append(out, pts[len(pts)-1])
	}
	return out
}
