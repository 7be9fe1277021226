package engine

import (
	"os"
	"testing"
	"time"

	"github.com/spaghettifunk/cekidot/engine/core"
)

func TestConfigWatcherPublishesReloads(t *testing.T) {
	path := writeFile(t, "game.toml", "log_level = \"info\"\n")
	cw, err := WatchConfig(path)
	if err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}
	defer cw.Close()

	if err := os.WriteFile(path, []byte("log_level = \"debug\"\nframe_sleep = \"3ms\"\n"), 0o644); err != nil {
		t.Fatalf("rewrite config: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-cw.Updates():
			// A truncating write may be observed before the new content.
			if cfg.Level() == core.DebugLevel {
				if time.Duration(cfg.FrameSleep) != 3*time.Millisecond {
					t.Fatalf("frame sleep = %v", time.Duration(cfg.FrameSleep))
				}
				return
			}
		case <-deadline:
			t.Fatal("no reload observed")
		}
	}
}

func TestConfigWatcherClose(t *testing.T) {
	path := writeFile(t, "game.toml", "")
	cw, err := WatchConfig(path)
	if err != nil {
		t.Fatalf("WatchConfig: %v", err)
	}
	if err := cw.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := cw.Close(); err == nil {
		t.Fatal("second Close succeeded")
	}
	if _, ok := <-cw.Updates(); ok {
		t.Fatal("updates channel still open")
	}
}
