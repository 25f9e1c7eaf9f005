package metrics

import "github.com/san-kum/epicycles/internal/session"

// TrackingError is the mean distance from the chain tip to the nearest drawn
// sample over the observed frames.
type TrackingError struct {
	name    string
	sum     float64
	max     float64
	samples int
}

func NewTrackingError() *TrackingError {
	return &TrackingError{name: "tracking_error"}
}

func (e *TrackingError) Name() string { return e.name }

func (e *TrackingError) OnFrame(f session.Frame) {
	if len(f.Samples) == 0 {
		return
	}
	best := f.Tip.Dist(f.Samples[0])
	for _, p := range f.Samples[1:] {
		best = min(best, f.Tip.Dist(p))
	}
	e.sum += best
	e.max = max(e.max, best)
	e.samples++
}

func (e *TrackingError) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.sum / float64(e.samples)
}

// Max returns the largest tip-to-drawing distance seen.
func (e *TrackingError) Max() float64 { return e.max }

func (e *TrackingError) Reset() {
	e.sum = 0
	e.max = 0
	e.samples = 0
}

// TipTravel is the distance covered by the chain tip. A jump back to the
// start of the period is not counted.
type TipTravel struct {
	name     string
	distance float64
	last     *session.Frame
}

func NewTipTravel() *TipTravel {
	return &TipTravel{name: "tip_travel"}
}

func (m *TipTravel) Name() string { return m.name }

func (m *TipTravel) OnFrame(f session.Frame) {
	if m.last != nil && !m.last.Cleared {
		m.distance += m.last.Tip.Dist(f.Tip)
	}
	m.last = &f
}

func (m *TipTravel) Value() float64 { return m.distance }

func (m *TipTravel) Reset() {
	m.distance = 0
	m.last = nil
}
