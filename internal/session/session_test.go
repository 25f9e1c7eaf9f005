package session_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/epicycles/internal/config"
	"github.com/san-kum/epicycles/internal/epicycle"
	"github.com/san-kum/epicycles/internal/session"
)

func circleStroke(n int) []epicycle.Point {
	pts := make([]epicycle.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = epicycle.Point{X: 40 + 30*math.Cos(a), Y: 25 + 15*math.Sin(2*a)}
	}
	return pts
}

func smallConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Coefficients = 9
	cfg.FrameRate = 10
	cfg.SecondsPerCycle = 2
	return cfg
}

var _ = Describe("Session", func() {
	var s *session.Session

	BeforeEach(func() {
		var err error
		s, err = session.New(smallConfig(), nil)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("drawing phase", func() {
		It("starts in the drawing phase", func() {
			Expect(s.Phase()).To(Equal(session.PhaseDrawing))
			Expect(s.Drawing()).To(BeEmpty())
		})

		It("collects samples in order", func() {
			Expect(s.AddSample(epicycle.Point{X: 1, Y: 2})).To(Succeed())
			Expect(s.AddSample(epicycle.Point{X: 3, Y: 4})).To(Succeed())
			Expect(s.Drawing()).To(Equal([]epicycle.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}))
		})

		It("refuses to step before the drawing is finished", func() {
			_, err := s.Step()
			Expect(err).To(MatchError(session.ErrWrongPhase))
		})

		It("stays in the drawing phase when the drawing is empty", func() {
			err := s.Finish()
			Expect(err).To(MatchError(epicycle.ErrInvalidInput))
			Expect(s.Phase()).To(Equal(session.PhaseDrawing))

			Expect(s.AddSample(epicycle.Point{X: 5, Y: 5})).To(Succeed())
			Expect(s.Finish()).To(Succeed())
			Expect(s.Phase()).To(Equal(session.PhaseReconstructing))
		})
	})

	Describe("finishing", func() {
		BeforeEach(func() {
			for _, p := range circleStroke(40) {
				Expect(s.AddSample(p)).To(Succeed())
			}
			Expect(s.Apply(session.Finish())).To(Succeed())
		})

		It("analyzes the drawing once with the configured coefficient count", func() {
			Expect(s.Coefficients().Len()).To(Equal(9))
			Expect(s.Samples()).To(HaveLen(40))
		})

		It("is a one-way transition", func() {
			Expect(s.Finish()).To(MatchError(session.ErrWrongPhase))
			Expect(s.AddSample(epicycle.Point{})).To(MatchError(session.ErrWrongPhase))
		})

		It("keeps the coefficient set unchanged across frames", func() {
			before := s.Coefficients().All()
			for i := 0; i < 50; i++ {
				_, err := s.Step()
				Expect(err).NotTo(HaveOccurred())
			}
			Expect(s.Coefficients().All()).To(Equal(before))
		})
	})

	Describe("reconstruction frames", func() {
		BeforeEach(func() {
			var err error
			s, err = session.NewReplay(circleStroke(40), smallConfig(), nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("appends the traced point every frame", func() {
			f1, err := s.Step()
			Expect(err).NotTo(HaveOccurred())
			f2, err := s.Step()
			Expect(err).NotTo(HaveOccurred())

			Expect(f1.Trace).To(HaveLen(1))
			Expect(f2.Trace).To(HaveLen(2))
			Expect(f2.Trace[1]).To(Equal(f2.Tip))
			Expect(f2.Time).To(BeNumerically(">", f1.Time))
			Expect(f1.Samples).To(HaveLen(40))
		})

		It("clears the trace exactly when the period wraps", func() {
			period := s.FramesPerPeriod()
			Expect(period).To(BeNumerically(">=", 20))

			var cleared []int
			for i := 0; i < period*2; i++ {
				f, err := s.Step()
				Expect(err).NotTo(HaveOccurred())
				if f.Cleared {
					cleared = append(cleared, i)
					Expect(f.Trace).To(HaveLen(period))
				}
			}
			Expect(cleared).To(Equal([]int{period - 1, 2*period - 1}))
			Expect(s.Trace()).To(BeEmpty())
			Expect(s.Time()).To(BeNumerically("==", 0))
		})

		It("restarts the period without touching coefficients", func() {
			for i := 0; i < 5; i++ {
				_, _ = s.Step()
			}
			Expect(s.Apply(session.Restart())).To(Succeed())
			Expect(s.Time()).To(BeZero())
			Expect(s.Trace()).To(BeEmpty())
			Expect(s.Coefficients().Len()).To(Equal(9))
		})
	})

	Describe("commands", func() {
		BeforeEach(func() {
			var err error
			s, err = session.NewReplay(circleStroke(40), smallConfig(), nil)
			Expect(err).NotTo(HaveOccurred())
		})

		It("toggles pause without resetting state", func() {
			_, _ = s.Step()
			t := s.Time()
			Expect(s.Apply(session.Pause())).To(Succeed())
			Expect(s.Paused()).To(BeTrue())
			Expect(s.Time()).To(Equal(t))
			Expect(s.Trace()).To(HaveLen(1))

			Expect(s.Apply(session.TogglePause())).To(Succeed())
			Expect(s.Paused()).To(BeFalse())
			Expect(s.Apply(session.TogglePause())).To(Succeed())
			Expect(s.Apply(session.Resume())).To(Succeed())
			Expect(s.Paused()).To(BeFalse())
		})

		It("limits the visible chain without moving the traced point", func() {
			ref, err := session.NewReplay(circleStroke(40), smallConfig(), nil)
			Expect(err).NotTo(HaveOccurred())

			Expect(s.Apply(session.Reveal(3))).To(Succeed())
			for i := 0; i < 7; i++ {
				f, err := s.Step()
				Expect(err).NotTo(HaveOccurred())
				full, err := ref.Step()
				Expect(err).NotTo(HaveOccurred())

				Expect(f.Chain).To(HaveLen(3))
				Expect(f.Links).To(Equal(9))
				Expect(full.Chain).To(HaveLen(9))
				Expect(f.Tip).To(Equal(full.Tip))
			}

			Expect(s.Apply(session.Reveal(0))).To(Succeed())
			f, _ := s.Step()
			Expect(f.Chain).To(HaveLen(9))
		})

		It("rejects reveal counts outside the coefficient set", func() {
			Expect(s.Apply(session.Reveal(-1))).To(MatchError(session.ErrInvalidCommand))
			Expect(s.Apply(session.Reveal(10))).To(MatchError(session.ErrInvalidCommand))
			Expect(s.Apply(session.Command{Kind: session.CommandKind(42)})).To(MatchError(session.ErrInvalidCommand))
		})

		It("rejects reveal and restart while drawing", func() {
			fresh, err := session.New(smallConfig(), nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(fresh.Apply(session.Reveal(1))).To(MatchError(session.ErrWrongPhase))
			Expect(fresh.Apply(session.Restart())).To(MatchError(session.ErrWrongPhase))
		})
	})

	It("rejects an invalid configuration", func() {
		cfg := config.DefaultConfig()
		cfg.Coefficients = 0
		_, err := session.New(cfg, nil)
		Expect(err).To(MatchError(epicycle.ErrInvalidConfiguration))
	})
})
