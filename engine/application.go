package engine

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/cekidot/engine/core"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration read from strings such as "4ms".
type Duration time.Duration

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32 `toml:"start_pos_x" yaml:"start_pos_x" env:"CEKIDOT_START_POS_X"`
	// Window starting position y axis, if applicable.
	StartPosY uint32 `toml:"start_pos_y" yaml:"start_pos_y" env:"CEKIDOT_START_POS_Y"`
	// Window starting width, if applicable.
	StartWidth uint32 `toml:"start_width" yaml:"start_width" env:"CEKIDOT_START_WIDTH"`
	// Window starting height, if applicable.
	StartHeight uint32 `toml:"start_height" yaml:"start_height" env:"CEKIDOT_START_HEIGHT"`
	// The application name used in windowing, if applicable.
	Name string `toml:"name" yaml:"name" env:"CEKIDOT_NAME"`
	// Fixed update frequency in Hz.
	TickRate float64 `toml:"tick_rate" yaml:"tick_rate" env:"CEKIDOT_TICK_RATE"`
	LogLevel string  `toml:"log_level" yaml:"log_level" env:"CEKIDOT_LOG_LEVEL"`
	// Abstract key that closes the window when pressed.
	QuitKey string `toml:"quit_key" yaml:"quit_key" env:"CEKIDOT_QUIT_KEY"`
	// Sleep after every tick to cap throughput. Zero disables it.
	FrameSleep Duration `toml:"frame_sleep" yaml:"frame_sleep" env:"CEKIDOT_FRAME_SLEEP"`
	// "abort" or "continue".
	ErrorPolicy string `toml:"error_policy" yaml:"error_policy" env:"CEKIDOT_ERROR_POLICY"`
	WatchConfig bool   `toml:"watch_config" yaml:"watch_config" env:"CEKIDOT_WATCH_CONFIG"`
}

func DefaultConfig() *ApplicationConfig {
	return &ApplicationConfig{
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  640,
		StartHeight: 480,
		Name:        "cekidot",
		TickRate:    120,
		LogLevel:    "info",
		QuitKey:     "ESCAPE",
		ErrorPolicy: "abort",
	}
}

// LoadConfig reads the file at path over the defaults, then applies
// CEKIDOT_* environment overrides and validates the result. The decoder is
// chosen by extension: .toml, .yaml or .yml. An empty path skips the file.
func LoadConfig(path string) (*ApplicationConfig, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := decodeConfig(path, data, cfg); err != nil {
			return nil, fmt.Errorf("decode config %s: %w", path, err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decodeConfig(path string, data []byte, cfg *ApplicationConfig) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		return dec.Decode(cfg)
	case ".yaml", ".yml":
		if len(bytes.TrimSpace(data)) == 0 {
			return nil
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		return dec.Decode(cfg)
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
}

// Validate rejects settings the engine cannot start with.
func (c *ApplicationConfig) Validate() error {
	if _, err := core.UpdateTimestep(c.TickRate); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := core.ParseLogLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, ok := core.ParseKey(c.QuitKey); !ok {
		return fmt.Errorf("invalid config: unknown quit key %q", c.QuitKey)
	}
	if _, err := PolicyFromName(c.ErrorPolicy); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.FrameSleep < 0 {
		return fmt.Errorf("invalid config: negative frame sleep %s", time.Duration(c.FrameSleep))
	}
	return nil
}

// Level returns the parsed log level, falling back to info.
func (c *ApplicationConfig) Level() core.LogLevel {
	level, _ := core.ParseLogLevel(c.LogLevel)
	return level
}

// QuitKeyCode returns the parsed quit key, falling back to escape.
func (c *ApplicationConfig) QuitKeyCode() core.Key {
	if k, ok := core.ParseKey(c.QuitKey); ok {
		return k
	}
	return core.KEY_ESCAPE
}
