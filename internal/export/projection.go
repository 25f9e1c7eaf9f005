package export

import "github.com/san-kum/epicycles/internal/epicycle"

// Projection maps drawing coordinates onto an output surface with a uniform
// scale, so shapes keep their aspect ratio.
type Projection struct {
	Scale            float64
	OffsetX, OffsetY float64
}

// Identity leaves coordinates unchanged. Pointer input is already captured in
// canvas coordinates.
func Identity() Projection { return Projection{Scale: 1} }

// Fit centers the bounding box of points in a width x height area, leaving
// margin (a fraction of each side) free.
func Fit(points []epicycle.Point, width, height, margin float64) Projection {
	if len(points) == 0 {
		return Projection{Scale: 1, OffsetX: width / 2, OffsetY: height / 2}
	}
	lo, hi := Bounds(points)

	rangeX := hi.X - lo.X
	rangeY := hi.Y - lo.Y
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	availW := width * (1 - 2*margin)
	availH := height * (1 - 2*margin)
	scale := min(availW/rangeX, availH/rangeY)

	return Projection{
		Scale:   scale,
		OffsetX: width/2 - scale*(lo.X+hi.X)/2,
		OffsetY: height/2 - scale*(lo.Y+hi.Y)/2,
	}
}

// Apply projects p.
func (p Projection) Apply(pt epicycle.Point) (x, y float64) {
	return pt.X*p.Scale + p.OffsetX, pt.Y*p.Scale + p.OffsetY
}

// Invert maps a surface position back to drawing coordinates.
func (p Projection) Invert(x, y float64) epicycle.Point {
	return epicycle.Point{X: (x - p.OffsetX) / p.Scale, Y: (y - p.OffsetY) / p.Scale}
}

// Length scales a distance.
func (p Projection) Length(d float64) float64 { return d * p.Scale }

// Bounds returns the component-wise minimum and maximum of points.
func Bounds(points []epicycle.Point) (lo, hi epicycle.Point) {
	if len(points) == 0 {
		return
	}
	lo, hi = points[0], points[0]
	for _, p := range points[1:] {
		lo.X = min(lo.X, p.X)
		lo.Y = min(lo.Y, p.Y)
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
	}
	return lo, hi
}
