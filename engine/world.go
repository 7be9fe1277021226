package engine

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spaghettifunk/cekidot/engine/core"
)

type Stage uint8

const (
	// World is built but has not run yet
	WorldStageUninitialized Stage = iota
	// World is running its loop
	WorldStageRunning
	// World is running teardown hooks
	WorldStageTearingDown
	// World has finished and cannot run again
	WorldStageTerminated
)

// Backoff used while suspended, when no frame sleep is configured.
const suspendedSleep = 10 * time.Millisecond

type worldOptions struct {
	clock     *core.Clock
	policy    ErrorPolicy
	interrupt <-chan os.Signal
	reloads   <-chan *ApplicationConfig
	sleep     func(time.Duration)
}

type WorldOption func(*worldOptions)

// WithClock replaces the wall clock driving the scheduler.
func WithClock(c *core.Clock) WorldOption {
	return func(o *worldOptions) {
		o.clock = c
	}
}

// WithErrorPolicy overrides the policy derived from the config.
func WithErrorPolicy(p ErrorPolicy) WorldOption {
	return func(o *worldOptions) {
		o.policy = p
	}
}

// WithInterrupt makes a received signal close the window like the quit key.
func WithInterrupt(ch <-chan os.Signal) WorldOption {
	return func(o *worldOptions) {
		o.interrupt = ch
	}
}

// WithConfigUpdates applies reloaded configs between iterations.
func WithConfigUpdates(ch <-chan *ApplicationConfig) WorldOption {
	return func(o *worldOptions) {
		o.reloads = ch
	}
}

// WithSleep replaces time.Sleep for the frame and suspend backoff.
func WithSleep(fn func(time.Duration)) WorldOption {
	return func(o *worldOptions) {
		o.sleep = fn
	}
}

// World binds the event source, input machine, scheduler and canvas into
// one run loop. Everything runs on the calling goroutine.
type World[S any] struct {
	currentStage Stage
	id           uuid.UUID
	game         *Game[S]
	ctx          *Context[S]
	source       EventSource
	canvas       Canvas
	input        *core.InputState
	scheduler    *core.Scheduler
	events       *core.EventBus
	metrics      *core.FrameMetrics
	opts         worldOptions
	quitKey      core.Key
	frameSleep   time.Duration
	isSuspended  bool
	uptime       time.Duration
}

func NewWorld[S any](g *Game[S], source EventSource, canvas Canvas, options ...WorldOption) (*World[S], error) {
	if g == nil || g.FnUpdate == nil || g.FnRender == nil {
		return nil, core.ErrNilCallback
	}
	if source == nil || canvas == nil {
		return nil, errors.New("world requires an event source and a canvas")
	}
	if g.ApplicationConfig == nil {
		g.ApplicationConfig = DefaultConfig()
	}
	cfg := g.ApplicationConfig
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	opts := worldOptions{sleep: time.Sleep}
	for _, o := range options {
		o(&opts)
	}
	if opts.clock == nil {
		opts.clock = core.NewClock()
	}
	if opts.policy == nil {
		p, err := PolicyFromName(cfg.ErrorPolicy)
		if err != nil {
			return nil, err
		}
		opts.policy = p
	}

	input := core.NewInputState()
	w := &World[S]{
		currentStage: WorldStageUninitialized,
		id:           uuid.New(),
		game:         g,
		source:       source,
		canvas:       canvas,
		input:        input,
		events:       core.NewEventBus(),
		metrics:      core.NewFrameMetrics(),
		opts:         opts,
		quitKey:      cfg.QuitKeyCode(),
		frameSleep:   time.Duration(cfg.FrameSleep),
	}
	w.ctx = &Context[S]{
		State:   &g.State,
		Input:   input,
		Canvas:  canvas,
		Metrics: w.metrics,
	}

	s, err := core.NewScheduler(cfg.TickRate, opts.clock, w.updateStep, w.renderStep)
	if err != nil {
		return nil, err
	}
	s.SetResizeHandler(w.resizeCanvas)
	w.scheduler = s
	return w, nil
}

// Events exposes the bus every drained platform event is fired on.
func (w *World[S]) Events() *core.EventBus {
	return w.events
}

func (w *World[S]) Stage() Stage {
	return w.currentStage
}

// ID identifies this world in logs.
func (w *World[S]) ID() uuid.UUID {
	return w.id
}

// Uptime is the time spent in the running stage of the last Run.
func (w *World[S]) Uptime() time.Duration {
	return w.uptime
}

// Run starts the world, loops until the window closes or a step exits, and
// tears down. The returned code is meant for os.Exit: 0 after a quit key or
// interrupt, the requested code after Exit, the policy's code after an
// aborting failure. A World runs at most once.
func (w *World[S]) Run() (int, error) {
	if w.currentStage != WorldStageUninitialized {
		return 1, core.ErrWorldTerminated
	}

	if err := w.start(); err != nil {
		w.currentStage = WorldStageTerminated
		return 1, err
	}

	w.currentStage = WorldStageRunning
	w.opts.clock.Start()
	core.LogInfo("World %s running at %v Hz (timestep %s).", w.id, w.game.ApplicationConfig.TickRate, w.scheduler.Timestep())
	code, runErr := w.loop()
	w.uptime = w.opts.clock.Elapsed()
	w.opts.clock.Stop()

	w.currentStage = WorldStageTearingDown
	endErr := w.teardown()
	w.currentStage = WorldStageTerminated

	if endErr != nil && code == 0 {
		code = 1
	}
	core.LogInfo("World %s terminated with code %d after %s.", w.id, code, w.uptime)
	return code, errors.Join(runErr, endErr)
}

func (w *World[S]) start() error {
	if err := w.input.OnStart(); err != nil {
		return fmt.Errorf("input start: %w", err)
	}
	if err := w.canvas.OnStart(); err != nil {
		return errors.Join(fmt.Errorf("canvas start: %w", err), w.input.OnEnd())
	}

	w.source.EnableEvents(
		core.EVENT_CODE_FRAMEBUFFER_SIZE,
		core.EVENT_CODE_KEY,
		core.EVENT_CODE_BUTTON,
		core.EVENT_CODE_POSITION,
	)

	if fn := w.game.FnInitialize; fn != nil {
		if err := fn(w.ctx); err != nil {
			return errors.Join(fmt.Errorf("game initialize: %w", err), w.input.OnEnd(), w.canvas.OnEnd())
		}
	}
	if fn := w.game.FnOnResize; fn != nil {
		if err := fn(w.ctx, w.canvas.Width(), w.canvas.Height()); err != nil {
			return errors.Join(fmt.Errorf("game resize: %w", err), w.input.OnEnd(), w.canvas.OnEnd())
		}
	}
	return nil
}

func (w *World[S]) loop() (int, error) {
	for !w.source.ShouldClose() {
		w.applyConfigUpdates()
		if w.checkInterrupt() {
			break
		}

		w.source.PollEvents()

		if w.isSuspended {
			w.opts.sleep(max(w.frameSleep, suspendedSleep))
		} else {
			w.input.BeginTick()
			next, err := w.scheduler.Tick()
			if err != nil {
				if d := w.opts.policy("tick", err); d.Abort {
					return d.Code, err
				}
			} else if next.IsExit() {
				core.LogInfo("Exit(%d) requested, shutting down.", next.Code())
				w.source.RequestClose()
				return next.Code(), nil
			}
			if w.frameSleep > 0 {
				w.opts.sleep(w.frameSleep)
			}
		}

		for _, evt := range w.source.Flush() {
			w.input.RecordEvent(evt.Input)

			if evt.AffectsGeometry() {
				if err := w.scheduler.OnResize(); err != nil {
					if d := w.opts.policy("resize", err); d.Abort {
						return d.Code, err
					}
				}
			}

			if evt.IsKeyPress(w.quitKey) {
				core.LogInfo("%s pressed, closing window.", w.quitKey)
				w.source.RequestClose()
			}

			w.events.Fire(evt)
		}
	}
	return 0, nil
}

func (w *World[S]) teardown() error {
	var errs []error
	if fn := w.game.FnShutdown; fn != nil {
		if err := fn(w.ctx); err != nil {
			errs = append(errs, fmt.Errorf("game shutdown: %w", err))
		}
	}
	if err := w.input.OnEnd(); err != nil {
		errs = append(errs, fmt.Errorf("input end: %w", err))
	}
	if err := w.canvas.OnEnd(); err != nil {
		errs = append(errs, fmt.Errorf("canvas end: %w", err))
	}
	w.events.Shutdown()
	return errors.Join(errs...)
}

func (w *World[S]) updateStep() (core.LoopOutcome, error) {
	w.metrics.RecordUpdate()
	next, err := w.game.FnUpdate(w.ctx)
	if err != nil {
		return next, fmt.Errorf("game update: %w", err)
	}
	return next, nil
}

func (w *World[S]) renderStep(delta time.Duration) (core.LoopOutcome, error) {
	next, err := w.game.FnRender(w.ctx, delta)
	if err != nil {
		return next, fmt.Errorf("game render: %w", err)
	}
	if next.IsExit() {
		return next, nil
	}
	if err := w.canvas.OnRender(); err != nil {
		return core.Continue, fmt.Errorf("canvas render: %w", err)
	}

	if w.metrics.RecordRender(delta) {
		core.LogDebug("update fps: %.2f render fps: %.2f frame: %.2fms",
			w.metrics.UpdateRate(), w.metrics.RenderRate(), w.metrics.FrameTime())
	}
	return next, nil
}

func (w *World[S]) resizeCanvas() error {
	size, changed, err := w.canvas.OnResize()
	if err != nil {
		return fmt.Errorf("canvas resize: %w", err)
	}
	if !changed {
		return nil
	}
	core.LogDebug("Window resize: %d, %d", size.Width, size.Height)

	// Handle minimization
	if size.Width == 0 || size.Height == 0 {
		if !w.isSuspended {
			core.LogInfo("Window minimized, suspending application.")
			w.isSuspended = true
		}
		return nil
	}
	if w.isSuspended {
		core.LogInfo("Window restored, resuming application.")
		w.isSuspended = false
	}
	if fn := w.game.FnOnResize; fn != nil {
		if err := fn(w.ctx, size.Width, size.Height); err != nil {
			return fmt.Errorf("game resize: %w", err)
		}
	}
	return nil
}

func (w *World[S]) applyConfigUpdates() {
	if w.opts.reloads == nil {
		return
	}
	select {
	case cfg, ok := <-w.opts.reloads:
		if !ok {
			w.opts.reloads = nil
			return
		}
		core.SetLogLevel(cfg.Level())
		w.frameSleep = time.Duration(cfg.FrameSleep)
		core.LogInfo("Config reloaded: log level %s, frame sleep %s.", cfg.Level(), w.frameSleep)
	default:
	}
}

func (w *World[S]) checkInterrupt() bool {
	if w.opts.interrupt == nil {
		return false
	}
	select {
	case sig := <-w.opts.interrupt:
		core.LogInfo("%s received, closing window.", sig)
		w.source.RequestClose()
		return true
	default:
		return false
	}
}
