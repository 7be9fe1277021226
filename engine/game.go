package engine

import (
	"time"

	"github.com/spaghettifunk/cekidot/engine/core"
)

// Context is the single owned bundle handed to every game callback.
type Context[S any] struct {
	State  *S
	Input  core.KeyboardState
	Canvas Canvas

	// Frame rates published by the World once per second. Read only.
	Metrics *core.FrameMetrics
}

type Game[S any] struct {
	ApplicationConfig *ApplicationConfig
	State             S
	FnInitialize      Initialize[S]
	FnUpdate          Update[S]
	FnRender          Render[S]
	FnOnResize        OnResize[S]
	FnShutdown        Shutdown[S]
}

type Initialize[S any] func(ctx *Context[S]) error
type Update[S any] func(ctx *Context[S]) (core.LoopOutcome, error)
type Render[S any] func(ctx *Context[S], delta time.Duration) (core.LoopOutcome, error)
type OnResize[S any] func(ctx *Context[S], width uint32, height uint32) error
type Shutdown[S any] func(ctx *Context[S]) error
