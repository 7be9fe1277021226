package engine

import "github.com/spaghettifunk/cekidot/engine/core"

// Size is a canvas size in pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// Canvas is the lifecycle a renderable surface exposes to the World.
type Canvas interface {
	Width() uint32
	Height() uint32
	// Called once before the loop begins.
	OnStart() error
	// Called by the render step after the game has rendered.
	OnRender() error
	// Called when a position or size event is observed. Reports the new
	// size and true only when it changed.
	OnResize() (Size, bool, error)
	// Called once on shutdown.
	OnEnd() error
}

// EventSource is the platform window and event pump.
type EventSource interface {
	// EnableEvents turns on delivery of the given categories. It must be
	// called before the first poll.
	EnableEvents(codes ...core.SystemEventCode)
	// PollEvents processes pending OS events without waiting.
	PollEvents()
	// Flush drains the queued events in arrival order.
	Flush() []core.Event
	ShouldClose() bool
	RequestClose()
}
