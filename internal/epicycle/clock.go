package epicycle

import (
	"fmt"
	"math"
)

// MaxFramesPerCycle bounds frameRate·secondsPerCycle so every step still
// moves time forward near the end of a period.
const MaxFramesPerCycle = 1e7

// Increment returns the per-frame time step that completes one period in
// secondsPerCycle at frameRate frames per second. Both must be positive and
// finite.
func Increment(frameRate, secondsPerCycle float64) (float64, error) {
	if !positiveFinite(frameRate) || !positiveFinite(secondsPerCycle) {
		return 0, fmt.Errorf("%w: frame rate %v and seconds per cycle %v must be positive and finite",
			ErrInvalidConfiguration, frameRate, secondsPerCycle)
	}
	frames := frameRate * secondsPerCycle
	if frames > MaxFramesPerCycle {
		return 0, fmt.Errorf("%w: %.0f frames per cycle exceeds %.0f",
			ErrInvalidConfiguration, frames, float64(MaxFramesPerCycle))
	}
	return Period / frames, nil
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// Advance moves t forward by increment. Reaching or passing one full period
// resets time to 0 and reports a wrap.
func Advance(t, increment float64) (float64, bool) {
	t += increment
	if t >= Period {
		return 0, true
	}
	return t, false
}

// Clock tracks reconstruction time across frames.
type Clock struct {
	Time float64
	Step float64
}

// NewClock returns a clock at time 0 stepping for the given frame rate and
// cycle duration.
func NewClock(frameRate, secondsPerCycle float64) (Clock, error) {
	step, err := Increment(frameRate, secondsPerCycle)
	if err != nil {
		return Clock{}, err
	}
	return Clock{Step: step}, nil
}

// Tick advances the clock by one frame and reports whether the period wrapped.
func (c *Clock) Tick() bool {
	var wrapped bool
	c.Time, wrapped = Advance(c.Time, c.Step)
	return wrapped
}

// Reset returns the clock to time 0.
func (c *Clock) Reset() { c.Time = 0 }

// FramesPerPeriod returns how many ticks make up one period.
func (c Clock) FramesPerPeriod() int {
	if c.Step <= 0 {
		return 0
	}
	n := 0
	for t, wrapped := 0.0, false; !wrapped; n++ {
		t, wrapped = Advance(t, c.Step)
	}
	return n
}
