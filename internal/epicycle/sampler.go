package epicycle

// ToComplexSequence maps stroke samples one-to-one onto complex points,
// preserving order. An empty stroke yields an empty, non-nil sequence.
func ToComplexSequence(points []Point) []ComplexPoint {
	out := make([]ComplexPoint, len(points))
	for i, p := range points {
		out[i] = ComplexPoint{Re: p.X, Im: p.Y}
	}
	return out
}
