package engine

import (
	"time"

	"github.com/spaghettifunk/cekidot/engine/core"
)

// fakeSource replays one scripted batch per poll and closes itself after
// the script runs out, so a broken loop cannot spin forever.
type fakeSource struct {
	batches  [][]core.Event
	queue    []core.Event
	polls    int
	enabled  []core.SystemEventCode
	closed   bool
	closes   int
	maxPolls int

	onPoll func(poll int)
}

func newFakeSource(batches ...[]core.Event) *fakeSource {
	return &fakeSource{batches: batches, maxPolls: len(batches) + 5}
}

func (f *fakeSource) EnableEvents(codes ...core.SystemEventCode) {
	f.enabled = append(f.enabled, codes...)
}

func (f *fakeSource) PollEvents() {
	f.polls++
	if f.onPoll != nil {
		f.onPoll(f.polls)
	}
	if f.polls <= len(f.batches) {
		f.queue = append(f.queue, f.batches[f.polls-1]...)
	}
	if f.polls >= f.maxPolls {
		f.closed = true
	}
}

func (f *fakeSource) Flush() []core.Event {
	out := f.queue
	f.queue = nil
	return out
}

func (f *fakeSource) ShouldClose() bool {
	return f.closed
}

func (f *fakeSource) RequestClose() {
	f.closes++
	f.closed = true
}

type fakeCanvas struct {
	size    Size
	resizes []Size
	calls   []string

	startErr  error
	renderErr error
	resizeErr error
	endErr    error

	onEnd func()
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{size: Size{Width: 640, Height: 480}}
}

func (c *fakeCanvas) Width() uint32  { return c.size.Width }
func (c *fakeCanvas) Height() uint32 { return c.size.Height }

func (c *fakeCanvas) OnStart() error {
	c.calls = append(c.calls, "start")
	return c.startErr
}

func (c *fakeCanvas) OnRender() error {
	c.calls = append(c.calls, "render")
	return c.renderErr
}

func (c *fakeCanvas) OnResize() (Size, bool, error) {
	c.calls = append(c.calls, "resize")
	if c.resizeErr != nil {
		return Size{}, false, c.resizeErr
	}
	if len(c.resizes) == 0 {
		return c.size, false, nil
	}
	next := c.resizes[0]
	c.resizes = c.resizes[1:]
	if next == c.size {
		return c.size, false, nil
	}
	c.size = next
	return next, true, nil
}

func (c *fakeCanvas) OnEnd() error {
	c.calls = append(c.calls, "end")
	if c.onEnd != nil {
		c.onEnd()
	}
	return c.endErr
}

func (c *fakeCanvas) count(call string) int {
	n := 0
	for _, name := range c.calls {
		if name == call {
			n++
		}
	}
	return n
}

type counters struct {
	updates int
	renders int
	deltas  []time.Duration
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) advance(d time.Duration) { f.now = f.now.Add(d) }

func keyEvent(k core.Key, a core.KeyAction) core.Event {
	return core.KeyEvent(k, a)
}

func resizeEvent(w, h int) core.Event {
	return core.Event{Code: core.EVENT_CODE_FRAMEBUFFER_SIZE, Width: w, Height: h}
}
