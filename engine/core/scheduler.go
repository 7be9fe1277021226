package core

import (
	"fmt"
	gomath "math"
	"time"

	"github.com/spaghettifunk/cekidot/engine/math"
)

// MaxFrameDelta caps the wall-clock delta of one tick. Longer pauses
// (debugger breaks, suspend/resume) would otherwise flood the accumulator.
const MaxFrameDelta = 100 * time.Millisecond

// UpdateFunc runs one fixed simulation step.
type UpdateFunc func() (LoopOutcome, error)

// RenderFunc runs once per tick with the clamped wall-clock delta.
type RenderFunc func(delta time.Duration) (LoopOutcome, error)

// FrameClock is the timing state owned by the scheduler.
type FrameClock struct {
	CurrentTime    time.Time
	LastTime       time.Time
	Accumulator    time.Duration
	UpdateTimestep time.Duration
}

// Scheduler drives a fixed-rate update cadence from a variable-rate tick.
type Scheduler struct {
	clock    *Clock
	frame    FrameClock
	update   UpdateFunc
	render   RenderFunc
	onResize func() error
}

// UpdateTimestep converts a tick frequency into the fixed step duration,
// rounded to the nearest nanosecond.
func UpdateTimestep(rate float64) (time.Duration, error) {
	if !(rate > 0) {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidTickRate, rate)
	}
	ns := math.RoundDiv(1e9, rate)
	if ns >= gomath.MaxInt64 {
		return 0, fmt.Errorf("%w: %v Hz is too low, the step overflows a time.Duration", ErrInvalidTickRate, rate)
	}
	step := time.Duration(ns)
	if step <= 0 {
		return 0, fmt.Errorf("%w: %v Hz is below 1ns resolution", ErrInvalidTickRate, rate)
	}
	return step, nil
}

func NewScheduler(rate float64, clock *Clock, update UpdateFunc, render RenderFunc) (*Scheduler, error) {
	step, err := UpdateTimestep(rate)
	if err != nil {
		return nil, err
	}
	if update == nil || render == nil {
		return nil, ErrNilCallback
	}
	if clock == nil {
		clock = NewClock()
	}
	now := clock.Now()
	return &Scheduler{
		clock: clock,
		frame: FrameClock{
			CurrentTime:    now,
			LastTime:       now,
			UpdateTimestep: step,
		},
		update: update,
		render: render,
	}, nil
}

// Frame returns a copy of the timing state.
func (s *Scheduler) Frame() FrameClock {
	return s.frame
}

func (s *Scheduler) Timestep() time.Duration {
	return s.frame.UpdateTimestep
}

// Tick advances the clock, runs every update the accumulator allows and
// renders once.
//
// An update runs only while the accumulator is strictly greater than the
// timestep, so an accumulator equal to one step runs nothing this tick.
// The delta measured now is added to the accumulator after rendering, so it
// pays for updates on the next tick. An Exit or an error from any step
// returns immediately and leaves the rest of the tick undone.
func (s *Scheduler) Tick() (LoopOutcome, error) {
	s.frame.LastTime = s.frame.CurrentTime
	s.frame.CurrentTime = s.clock.Now()

	delta := math.Clamp(s.frame.CurrentTime.Sub(s.frame.LastTime), 0, MaxFrameDelta)

	for s.frame.Accumulator > s.frame.UpdateTimestep {
		next, err := s.update()
		if err != nil {
			return Continue, err
		}
		if next.IsExit() {
			return next, nil
		}
		s.frame.Accumulator -= s.frame.UpdateTimestep
	}

	next, err := s.render(delta)
	if err != nil {
		return Continue, err
	}
	if next.IsExit() {
		return next, nil
	}

	s.frame.Accumulator += delta
	return Continue, nil
}

// SetResizeHandler registers the collaborator notified by OnResize.
func (s *Scheduler) SetResizeHandler(fn func() error) {
	s.onResize = fn
}

// OnResize forwards a pending resize and returns the collaborator's error.
// The scheduler holds no geometry.
func (s *Scheduler) OnResize() error {
	if s.onResize == nil {
		return nil
	}
	return s.onResize()
}
