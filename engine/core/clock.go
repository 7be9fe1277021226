package core

import "time"

// Clock is the monotonic time source used by the scheduler.
type Clock struct {
	now       func() time.Time
	startTime time.Time
}

func NewClock() *Clock {
	return NewClockFunc(time.Now)
}

// NewClockFunc builds a clock reading time from now. Tests use it to drive
// the scheduler deterministically.
func NewClockFunc(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Now returns the current instant.
func (c *Clock) Now() time.Time {
	return c.now()
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = c.now()
}

// Stops the provided clock. Elapsed reports zero afterwards.
func (c *Clock) Stop() {
	c.startTime = time.Time{}
}

// Elapsed returns the time since Start, or zero for a non-started clock.
func (c *Clock) Elapsed() time.Duration {
	if c.startTime.IsZero() {
		return 0
	}
	return c.now().Sub(c.startTime)
}
