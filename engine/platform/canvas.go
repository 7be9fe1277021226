package platform

import (
	"github.com/spaghettifunk/cekidot/engine"
	"github.com/spaghettifunk/cekidot/engine/core"
)

// WindowCanvas is a canvas sized by the platform window framebuffer.
type WindowCanvas struct {
	platform *Platform
	width    uint32
	height   uint32
	frames   uint64
}

func NewWindowCanvas(p *Platform, width uint32, height uint32) *WindowCanvas {
	return &WindowCanvas{
		platform: p,
		width:    width,
		height:   height,
	}
}

func (c *WindowCanvas) Width() uint32 {
	return c.width
}

func (c *WindowCanvas) Height() uint32 {
	return c.height
}

// Frames is the number of completed renders.
func (c *WindowCanvas) Frames() uint64 {
	return c.frames
}

func (c *WindowCanvas) OnStart() error {
	// The framebuffer may differ from the requested window size on HiDPI screens.
	if w, h := c.platform.FramebufferSize(); w > 0 && h > 0 {
		c.width, c.height = uint32(w), uint32(h)
	}
	core.LogDebug("Canvas started at %dx%d.", c.width, c.height)
	return nil
}

func (c *WindowCanvas) OnRender() error {
	c.frames++
	return nil
}

func (c *WindowCanvas) OnResize() (engine.Size, bool, error) {
	w, h := c.platform.FramebufferSize()
	if uint32(w) == c.width && uint32(h) == c.height {
		return engine.Size{Width: c.width, Height: c.height}, false, nil
	}
	c.width, c.height = uint32(w), uint32(h)
	return engine.Size{Width: c.width, Height: c.height}, true, nil
}

func (c *WindowCanvas) OnEnd() error {
	core.LogDebug("Canvas ended after %d frames.", c.frames)
	return nil
}

var _ engine.Canvas = (*WindowCanvas)(nil)
var _ engine.EventSource = (*Platform)(nil)
