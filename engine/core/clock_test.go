package core

import (
	"testing"
	"time"
)

func TestClockElapsed(t *testing.T) {
	now := time.Unix(1700000000, 0)
	c := NewClockFunc(func() time.Time { return now })

	if got := c.Elapsed(); got != 0 {
		t.Fatalf("elapsed before start = %s, want 0", got)
	}

	c.Start()
	now = now.Add(1500 * time.Millisecond)
	if got := c.Elapsed(); got != 1500*time.Millisecond {
		t.Fatalf("elapsed = %s, want 1.5s", got)
	}

	c.Start()
	if got := c.Elapsed(); got != 0 {
		t.Fatalf("elapsed after restart = %s, want 0", got)
	}

	now = now.Add(time.Second)
	c.Stop()
	if got := c.Elapsed(); got != 0 {
		t.Fatalf("elapsed after stop = %s, want 0", got)
	}
}
