package session

import (
	"fmt"

	"github.com/san-kum/epicycles/internal/config"
	"github.com/san-kum/epicycles/internal/epicycle"
	"github.com/san-kum/epicycles/internal/logging"
)

type Phase int

const (
	PhaseDrawing Phase = iota
	PhaseReconstructing
)

func (p Phase) String() string {
	switch p {
	case PhaseDrawing:
		return "drawing"
	case PhaseReconstructing:
		return "reconstructing"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Frame is everything a renderer needs for one reconstruction frame. Chain
// holds only the visible link endpoints while Links counts all of them.
type Frame struct {
	Time    float64
	Samples []epicycle.Point
	Chain   []epicycle.Point
	Links   int
	Tip     epicycle.Point
	Trace   []epicycle.Point
	Cleared bool
}

type Session struct {
	cfg     config.Config
	log     *logging.Logger
	phase   Phase
	drawing []epicycle.Point
	samples []epicycle.ComplexPoint
	points  []epicycle.Point
	coeffs  epicycle.CoefficientSet
	clock   epicycle.Clock
	trace   epicycle.Trace
	paused  bool
	visible int
	frames  int
}

// New returns a session in the drawing phase. A nil logger discards output.
func New(cfg *config.Config, log *logging.Logger) (*Session, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	clock, err := epicycle.NewClock(cfg.FrameRate, cfg.SecondsPerCycle)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Session{
		cfg:     *cfg,
		log:     log,
		phase:   PhaseDrawing,
		drawing: make([]epicycle.Point, 0, 256),
		clock:   clock,
		visible: cfg.Visible,
	}, nil
}

// NewReplay builds a session from an already captured stroke and finishes
// it immediately.
func NewReplay(stroke []epicycle.Point, cfg *config.Config, log *logging.Logger) (*Session, error) {
	s, err := New(cfg, log)
	if err != nil {
		return nil, err
	}
	for _, p := range stroke {
		if err := s.AddSample(p); err != nil {
			return nil, err
		}
	}
	if err := s.Finish(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) Phase() Phase                          { return s.phase }
func (s *Session) Paused() bool                          { return s.paused }
func (s *Session) Visible() int                          { return s.visible }
func (s *Session) Time() float64                         { return s.clock.Time }
func (s *Session) Config() config.Config                 { return s.cfg }
func (s *Session) Coefficients() epicycle.CoefficientSet { return s.coeffs }
func (s *Session) Frames() int                           { return s.frames }

// Drawing returns a copy of the raw samples collected so far.
func (s *Session) Drawing() []epicycle.Point {
	out := make([]epicycle.Point, len(s.drawing))
	copy(out, s.drawing)
	return out
}

// Samples returns the analyzed point sequence; empty until Finish succeeds.
func (s *Session) Samples() []epicycle.ComplexPoint {
	out := make([]epicycle.ComplexPoint, len(s.samples))
	copy(out, s.samples)
	return out
}

func (s *Session) Trace() []epicycle.Point { return s.trace.Points() }

// AddSample records a pointer position while drawing.
func (s *Session) AddSample(p epicycle.Point) error {
	if s.phase != PhaseDrawing {
		return fmt.Errorf("add sample: %w (%s)", ErrWrongPhase, s.phase)
	}
	s.drawing = append(s.drawing, p)
	return nil
}

// Finish ends the drawing phase. The drawing is sampled and analyzed once;
// on failure the session stays in the drawing phase.
func (s *Session) Finish() error {
	if s.phase != PhaseDrawing {
		return fmt.Errorf("finish: %w (%s)", ErrWrongPhase, s.phase)
	}

	samples := epicycle.ToComplexSequence(s.drawing)
	coeffs, err := epicycle.Analyze(samples, s.cfg.Coefficients)
	if err != nil {
		s.log.Warn("analysis failed", "points", len(samples), "coefficients", s.cfg.Coefficients, "error", err)
		return err
	}

	s.samples = samples
	s.points = make([]epicycle.Point, len(samples))
	for i, c := range samples {
		s.points[i] = c.Point()
	}
	s.coeffs = coeffs
	s.phase = PhaseReconstructing
	s.clock.Reset()
	s.trace.Clear()

	s.log.Info("drawing finished",
		"points", len(samples),
		"coefficients", coeffs.Len(),
		"largest_amplitude", coeffs.At(0).Amplitude,
	)
	return nil
}

// Step computes one frame at the current time, records the traced point and
// advances the clock. The trace is cleared when the period wraps; the
// returned frame still carries the completed trace.
func (s *Session) Step() (Frame, error) {
	if s.phase != PhaseReconstructing {
		return Frame{}, fmt.Errorf("step: %w (%s)", ErrWrongPhase, s.phase)
	}

	t := s.clock.Time
	chain, tip := epicycle.Reconstruct(s.coeffs, t)
	s.trace.Append(tip)

	f := Frame{
		Time:    t,
		Samples: s.points,
		Chain:   chain.Visible(s.visible),
		Links:   chain.Len(),
		Tip:     tip,
		Trace:   s.trace.Points(),
	}

	if s.clock.Tick() {
		s.trace.Clear()
		f.Cleared = true
		s.log.Debug("period wrapped", "frames", s.frames+1)
	}
	s.frames++
	return f, nil
}

// Restart rewinds the replay to time 0 with an empty trace.
func (s *Session) Restart() error {
	if s.phase != PhaseReconstructing {
		return fmt.Errorf("restart: %w (%s)", ErrWrongPhase, s.phase)
	}
	s.clock.Reset()
	s.trace.Clear()
	return nil
}

// FramesPerPeriod returns the number of steps in one full period.
func (s *Session) FramesPerPeriod() int { return s.clock.FramesPerPeriod() }
