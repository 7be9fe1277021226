package platform

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spaghettifunk/cekidot/engine/containers"
	"github.com/spaghettifunk/cekidot/engine/core"
)

// Number of events buffered between two flushes.
const eventQueueSize = 1024

func init() {
	// GLFW event handling must run on the main OS thread
	runtime.LockOSThread()
}

// Platform owns the glfw window and queues its events until the World
// flushes them.
type Platform struct {
	Window *glfw.Window
	queue  *containers.RingQueue[core.Event]
}

func New() *Platform {
	return &Platform{
		Window: nil,
		queue:  containers.NewRingQueue[core.Event](eventQueueSize),
	}
}

func (p *Platform) Startup(applicationName string, x uint32, y uint32, width uint32, height uint32) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("%w: glfw: %s", core.ErrPlatformInit, err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	window, err := glfw.CreateWindow(int(width), int(height), applicationName, nil, nil)
	if err != nil {
		glfw.Terminate()
		return fmt.Errorf("%w: create window: %s", core.ErrPlatformInit, err)
	}
	p.Window = window

	p.Window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	p.Window.SetPos(int(x), int(y))
	p.Window.Show()

	core.LogInfo("Platform window %q created (%dx%d).", applicationName, width, height)
	return nil
}

func (p *Platform) Shutdown() error {
	if p.Window != nil {
		p.Window.Destroy()
		p.Window = nil
	}
	glfw.Terminate()
	return nil
}

// EnableEvents installs the glfw callbacks for the given categories.
func (p *Platform) EnableEvents(codes ...core.SystemEventCode) {
	for _, code := range codes {
		switch code {
		case core.EVENT_CODE_KEY:
			p.Window.SetKeyCallback(p.keyCallback)
		case core.EVENT_CODE_BUTTON:
			p.Window.SetMouseButtonCallback(p.mouseButtonCallback)
		case core.EVENT_CODE_POSITION:
			p.Window.SetPosCallback(p.posCallback)
		case core.EVENT_CODE_FRAMEBUFFER_SIZE:
			p.Window.SetFramebufferSizeCallback(p.framebufferSizeCallback)
		default:
			core.LogWarn("event category %d is not supported by the platform", code)
		}
	}
}

// PollEvents processes pending OS events without blocking.
func (p *Platform) PollEvents() {
	glfw.PollEvents()
}

// Flush drains queued events in arrival order.
func (p *Platform) Flush() []core.Event {
	return p.queue.Drain()
}

func (p *Platform) ShouldClose() bool {
	return p.Window == nil || p.Window.ShouldClose()
}

func (p *Platform) RequestClose() {
	if p.Window != nil {
		p.Window.SetShouldClose(true)
	}
}

// FramebufferSize returns the current framebuffer size in pixels.
func (p *Platform) FramebufferSize() (int, int) {
	if p.Window == nil {
		return 0, 0
	}
	return p.Window.GetFramebufferSize()
}

func (p *Platform) push(evt core.Event) {
	if dropped, ok := p.queue.Overwrite(evt); ok {
		core.LogWarn("event queue full, dropping event code %d", dropped.Code)
	}
}

func eventTime() time.Duration {
	return time.Duration(glfw.GetTime() * float64(time.Second))
}

func (p *Platform) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	p.push(core.Event{
		Code:  core.EVENT_CODE_KEY,
		Time:  eventTime(),
		Input: MapKey(key, action),
	})
}

func (p *Platform) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	p.push(core.Event{
		Code:    core.EVENT_CODE_BUTTON,
		Time:    eventTime(),
		Button:  int(button),
		Pressed: action == glfw.Press,
	})
}

func (p *Platform) posCallback(w *glfw.Window, xpos int, ypos int) {
	p.push(core.Event{
		Code: core.EVENT_CODE_POSITION,
		Time: eventTime(),
		X:    xpos,
		Y:    ypos,
	})
}

func (p *Platform) framebufferSizeCallback(w *glfw.Window, width int, height int) {
	p.push(core.Event{
		Code:   core.EVENT_CODE_FRAMEBUFFER_SIZE,
		Time:   eventTime(),
		Width:  width,
		Height: height,
	})
}
