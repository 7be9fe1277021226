package engine

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/cekidot/engine/core"
)

// ConfigWatcher reloads a config file whenever it is written and publishes
// the latest valid config. Only the newest pending config is kept.
type ConfigWatcher struct {
	path     string
	fsnotify *fsnotify.Watcher
	updates  chan *ApplicationConfig
	done     chan struct{}
	stopped  chan struct{}
	isClosed bool
}

func WatchConfig(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors often replace the file, so watch the directory.
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	cw := &ConfigWatcher{
		path:     abs,
		fsnotify: fsWatch,
		updates:  make(chan *ApplicationConfig, 1),
		done:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
	go cw.start()
	return cw, nil
}

// Updates delivers reloaded configs. It is closed by Close.
func (cw *ConfigWatcher) Updates() <-chan *ApplicationConfig {
	return cw.updates
}

func (cw *ConfigWatcher) Close() error {
	if cw.isClosed {
		return errors.New("config watcher already closed")
	}
	cw.isClosed = true
	close(cw.done)
	<-cw.stopped
	return nil
}

func (cw *ConfigWatcher) start() {
	defer close(cw.stopped)
	for {
		select {
		case e, ok := <-cw.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != cw.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				cw.reload()
			}

		case e, ok := <-cw.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(e.Error())

		case <-cw.done:
			cw.fsnotify.Close()
			close(cw.updates)
			return
		}
	}
}

func (cw *ConfigWatcher) reload() {
	cfg, err := LoadConfig(cw.path)
	if err != nil {
		core.LogWarn("config reload skipped: %s", err)
		return
	}
	// This goroutine is the only sender, so the send cannot block once the
	// stale value is dropped.
	select {
	case <-cw.updates:
	default:
	}
	cw.updates <- cfg
}
