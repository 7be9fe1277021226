package testbed

import (
	"time"

	"github.com/spaghettifunk/cekidot/engine"
	"github.com/spaghettifunk/cekidot/engine/core"
)

type TestGame struct {
	*engine.Game[gameState]
}

type gameState struct {
	width  uint32
	height uint32

	updates uint64
	renders uint64
}

var movementKeys = []core.Key{core.KEY_W, core.KEY_A, core.KEY_S, core.KEY_D}

// NewTestGame builds the demo game on top of cfg. A nil cfg uses the engine defaults.
func NewTestGame(cfg *engine.ApplicationConfig) *TestGame {
	if cfg == nil {
		cfg = engine.DefaultConfig()
	}
	tg := &TestGame{
		Game: &engine.Game[gameState]{
			ApplicationConfig: cfg,
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg
}

func (g *TestGame) Initialize(ctx *engine.Context[gameState]) error {
	core.LogInfo("testbed initialized (%dx%d)", ctx.Canvas.Width(), ctx.Canvas.Height())
	return nil
}

func (g *TestGame) Update(ctx *engine.Context[gameState]) (core.LoopOutcome, error) {
	state := ctx.State
	state.updates++

	for _, k := range movementKeys {
		if ctx.Input.IsKeyPressed(k) {
			core.LogDebug("'%s' key pressed", k)
		}
	}
	if ctx.Input.IsKeyReleased(core.KEY_SPACE) {
		core.LogDebug("'%s' key released", core.KEY_SPACE)
	}

	if ctx.Input.IsKeyPressed(core.KEY_Q) {
		core.LogInfo("quit requested after %d updates", state.updates)
		return core.Exit(0), nil
	}
	return core.Continue, nil
}

func (g *TestGame) Render(ctx *engine.Context[gameState], delta time.Duration) (core.LoopOutcome, error) {
	ctx.State.renders++
	return core.Continue, nil
}

func (g *TestGame) OnResize(ctx *engine.Context[gameState], width uint32, height uint32) error {
	ctx.State.width = width
	ctx.State.height = height
	core.LogDebug("testbed resized to %dx%d", width, height)
	return nil
}

func (g *TestGame) Shutdown(ctx *engine.Context[gameState]) error {
	core.LogInfo("testbed shut down: %d updates, %d renders", ctx.State.updates, ctx.State.renders)
	if m := ctx.Metrics; m != nil {
		core.LogInfo("last rates: update fps: %.1f render fps: %.1f frame: %.2fms",
			m.UpdateRate(), m.RenderRate(), m.FrameTime())
	}
	return nil
}

// OnKey logs key events delivered through the world event bus. It never
// consumes the event.
func OnKey(listener interface{}, evt core.Event) bool {
	switch evt.Input.Action {
	case core.KEY_ACTION_PRESS:
		if evt.Input.Key == core.KEY_A {
			core.LogDebug("Explicit - A key pressed!")
		}
	case core.KEY_ACTION_RELEASE:
		if evt.Input.Key == core.KEY_B {
			core.LogDebug("Explicit - B key released!")
		}
	}
	return false
}
