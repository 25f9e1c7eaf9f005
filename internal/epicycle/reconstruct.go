package epicycle

// Chain holds the endpoint of every epicycle link at one instant, in rank
// order. Link i runs from the previous endpoint (the origin for i=0) to
// Links[i].
type Chain struct {
	Links []Point
}

// Len returns the number of links.
func (c Chain) Len() int { return len(c.Links) }

// Tip returns the endpoint of the last link, or the origin for an empty chain.
func (c Chain) Tip() Point {
	if len(c.Links) == 0 {
		return Point{}
	}
	return c.Links[len(c.Links)-1]
}

// Visible returns the first m links for display. m <= 0 or m >= Len
// returns every link.
func (c Chain) Visible(m int) []Point {
	if m <= 0 || m >= len(c.Links) {
		return c.Links
	}
	return c.Links[:m]
}

// Reconstruct chains every coefficient of set at time t and returns the chain
// together with the traced point (its tip).
func Reconstruct(set CoefficientSet, t float64) (Chain, Point) {
	links := make([]Point, 0, set.Len())
	var pos Point
	for _, c := range set.coeffs {
		pos = pos.Add(c.Vector(t))
		links = append(links, pos)
	}
	return Chain{Links: links}, pos
}

// Sample evaluates the reconstructed path at n evenly spaced instants over
// one period. With n equal to the number of analyzed points, sample i lines
// up with input point i.
func Sample(set CoefficientSet, n int) []Point {
	out := make([]Point, n)
	for i := range out {
		_, out[i] = Reconstruct(set, Period*float64(i)/float64(n))
	}
	return out
}
