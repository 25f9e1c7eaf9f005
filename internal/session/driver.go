package session

import (
	"context"
	"fmt"
	"time"
)

// Scheduler paces the frame loop.
type Scheduler interface {
	Wait(ctx context.Context) error
}

// TickerScheduler releases one frame per tick of a wall-clock ticker.
type TickerScheduler struct {
	ticker *time.Ticker
}

func NewTickerScheduler(frameRate float64) *TickerScheduler {
	interval := time.Duration(float64(time.Second) / frameRate)
	return &TickerScheduler{ticker: time.NewTicker(interval)}
}

func (t *TickerScheduler) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.ticker.C:
		return nil
	}
}

func (t *TickerScheduler) Stop() { t.ticker.Stop() }

// ImmediateScheduler never waits. It drives headless runs and tests.
type ImmediateScheduler struct{}

func (ImmediateScheduler) Wait(ctx context.Context) error { return ctx.Err() }

type Observer interface {
	OnFrame(f Frame)
}

type ObserverFunc func(f Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

type Driver struct {
	session   *Session
	scheduler Scheduler
	observers []Observer
}

func NewDriver(s *Session, scheduler Scheduler) *Driver {
	if scheduler == nil {
		scheduler = ImmediateScheduler{}
	}
	return &Driver{
		session:   s,
		scheduler: scheduler,
		observers: make([]Observer, 0),
	}
}

func (d *Driver) AddObserver(o Observer) { d.observers = append(d.observers, o) }

// Run steps the session once per scheduled frame until frames steps were
// taken (0 means no limit) or ctx is done. While the session is paused the
// scheduler keeps ticking but no step is taken. An ImmediateScheduler has no
// ticks to wait on, so a paused session fails with ErrPaused instead.
func (d *Driver) Run(ctx context.Context, frames int) (int, error) {
	if d.session.Phase() != PhaseReconstructing {
		return 0, fmt.Errorf("run: %w (%s)", ErrWrongPhase, d.session.Phase())
	}

	steps := 0
	for frames <= 0 || steps < frames {
		if err := d.scheduler.Wait(ctx); err != nil {
			return steps, err
		}
		if d.session.Paused() {
			if _, ok := d.scheduler.(ImmediateScheduler); ok {
				return steps, fmt.Errorf("run: %w", ErrPaused)
			}
			continue
		}
		f, err := d.session.Step()
		if err != nil {
			return steps, err
		}
		steps++
		for _, o := range d.observers {
			o.OnFrame(f)
		}
	}
	return steps, nil
}

// RunPeriod restarts the replay and steps through exactly one period. The
// returned frame is the last one before the wrap and holds the full trace.
func (d *Driver) RunPeriod(ctx context.Context) (Frame, error) {
	if err := d.session.Restart(); err != nil {
		return Frame{}, err
	}

	var last Frame
	stop := ObserverFunc(func(f Frame) { last = f })
	d.observers = append(d.observers, stop)
	defer func() { d.observers = d.observers[:len(d.observers)-1] }()

	for {
		if _, err := d.Run(ctx, 1); err != nil {
			return last, err
		}
		if last.Cleared {
			return last, nil
		}
	}
}
