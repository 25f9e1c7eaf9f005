package metrics

import "github.com/san-kum/epicycles/internal/session"

// Metric accumulates a scalar over reconstruction frames. Every Metric is a
// session.Observer and can be attached to a session.Driver.
type Metric interface {
	Name() string
	OnFrame(f session.Frame)
	Value() float64
	Reset()
}

// Attach registers each metric with the driver.
func Attach(d *session.Driver, ms ...Metric) {
	for _, m := range ms {
		d.AddObserver(m)
	}
}

// Report collects the current value of each metric, keyed by name.
func Report(ms ...Metric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		out[m.Name()] = m.Value()
	}
	return out
}
