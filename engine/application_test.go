package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spaghettifunk/cekidot/engine/core"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TickRate != 120 || cfg.StartWidth != 640 || cfg.StartHeight != 480 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.QuitKeyCode() != core.KEY_ESCAPE {
		t.Fatalf("default quit key = %s", cfg.QuitKeyCode())
	}
}

func TestLoadConfigTOML(t *testing.T) {
	path := writeFile(t, "game.toml", `
name = "demo"
tick_rate = 60
start_width = 1280
log_level = "debug"
quit_key = "q"
frame_sleep = "4ms"
error_policy = "continue"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Name != "demo" || cfg.TickRate != 60 || cfg.StartWidth != 1280 {
		t.Fatalf("decoded %+v", cfg)
	}
	if cfg.StartHeight != 480 {
		t.Fatalf("missing key did not keep its default: %d", cfg.StartHeight)
	}
	if cfg.Level() != core.DebugLevel || cfg.QuitKeyCode() != core.KEY_Q {
		t.Fatalf("level=%v quit=%v", cfg.Level(), cfg.QuitKeyCode())
	}
	if time.Duration(cfg.FrameSleep) != 4*time.Millisecond {
		t.Fatalf("frame sleep = %v", time.Duration(cfg.FrameSleep))
	}
}

func TestLoadConfigYAML(t *testing.T) {
	path := writeFile(t, "game.yaml", "tick_rate: 30\nframe_sleep: 1s\nstart_pos_x: 5\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TickRate != 30 || cfg.StartPosX != 5 || time.Duration(cfg.FrameSleep) != time.Second {
		t.Fatalf("decoded %+v", cfg)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	path := writeFile(t, "game.toml", "tick_rate = 60\n")
	t.Setenv("CEKIDOT_TICK_RATE", "240")
	t.Setenv("CEKIDOT_FRAME_SLEEP", "2ms")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TickRate != 240 {
		t.Fatalf("tick rate = %v, want env override 240", cfg.TickRate)
	}
	if time.Duration(cfg.FrameSleep) != 2*time.Millisecond {
		t.Fatalf("frame sleep = %v", time.Duration(cfg.FrameSleep))
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name, file, content, want string
	}{
		{"zero rate", "a.toml", "tick_rate = 0\n", "tick rate"},
		{"negative rate", "a.yaml", "tick_rate: -5\n", "tick rate"},
		{"unknown key", "a.toml", "quit_key = \"F13\"\n", "quit key"},
		{"unknown level", "a.toml", "log_level = \"loud\"\n", "log level"},
		{"unknown policy", "a.toml", "error_policy = \"retry\"\n", "error policy"},
		{"unknown field", "a.toml", "fps = 60\n", "decode config"},
		{"bad format", "a.json", "{}", "unsupported config format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeFile(t, tt.file, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file error = %v", err)
	}
}

func TestLoadConfigRejectsZeroRateFromEnv(t *testing.T) {
	t.Setenv("CEKIDOT_TICK_RATE", "0")
	if _, err := LoadConfig(""); !errors.Is(err, core.ErrInvalidTickRate) {
		t.Fatalf("error = %v, want ErrInvalidTickRate", err)
	}
}

func TestLoadConfigBadEnv(t *testing.T) {
	t.Setenv("CEKIDOT_TICK_RATE", "fast")
	_, err := LoadConfig("")
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("error = %v, want parse env prefix", err)
	}
}
