/*
This is an example of application that will use the
engine package to test things out
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/cekidot/engine"
	"github.com/spaghettifunk/cekidot/engine/core"
	"github.com/spaghettifunk/cekidot/engine/platform"
	"github.com/spaghettifunk/cekidot/testbed"
)

func main() {
	configPath := flag.String("config", "", "path to a .toml or .yaml config file")
	flag.Parse()

	cfg, err := engine.LoadConfig(*configPath)
	if err != nil {
		core.LogError("failed to load config: %s", err)
		os.Exit(1)
	}
	core.SetLogLevel(cfg.Level())

	p := platform.New()
	if err := p.Startup(cfg.Name, cfg.StartPosX, cfg.StartPosY, cfg.StartWidth, cfg.StartHeight); err != nil {
		core.LogError("%s", err)
		os.Exit(1)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	options := []engine.WorldOption{engine.WithInterrupt(sigCh)}

	var watcher *engine.ConfigWatcher
	if cfg.WatchConfig && *configPath != "" {
		w, err := engine.WatchConfig(*configPath)
		if err != nil {
			core.LogWarn("config watch disabled: %s", err)
		} else {
			watcher = w
			options = append(options, engine.WithConfigUpdates(watcher.Updates()))
		}
	}

	tb := testbed.NewTestGame(cfg)
	canvas := platform.NewWindowCanvas(p, cfg.StartWidth, cfg.StartHeight)

	world, err := engine.NewWorld(tb.Game, p, canvas, options...)
	if err != nil {
		core.LogError("%s", err)
		_ = p.Shutdown()
		os.Exit(1)
	}
	world.Events().Register(core.EVENT_CODE_KEY, tb, testbed.OnKey)

	code, err := world.Run()
	if err != nil {
		core.LogError("world terminated with error: %s", err)
	}
	core.LogInfo("Rendered %d frames in %s.", canvas.Frames(), world.Uptime())
	if watcher != nil {
		if err := watcher.Close(); err != nil {
			core.LogWarn("%s", err)
		}
	}
	if err := p.Shutdown(); err != nil {
		core.LogError("%s", err)
	}
	os.Exit(code)
}
