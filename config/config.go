// Package config loads the phosphor configuration file. Missing file or
// fields fall back to defaults; a malformed file is an error so a typo
// never silently reverts settings.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/phosphor/vt"
)

// Config is the top-level configuration document
type Config struct {
	// FPS is the render tick rate
	FPS int `toml:"fps"`

	// CursorShape is the configured default: block, beam or underline
	CursorShape string `toml:"cursor_shape"`

	// BlinkIntervalMs is the cursor blink half-period; 0 disables blinking
	BlinkIntervalMs int `toml:"blink_interval_ms"`

	Audio AudioConfig `toml:"audio"`
	Crt   CrtConfig   `toml:"crt"`
}

// AudioConfig controls the audible bell
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

// CrtConfig controls the post-process pass
type CrtConfig struct {
	Enabled       bool    `toml:"enabled"`
	ScanlineDepth float64 `toml:"scanline_depth"`
	Flicker       float64 `toml:"flicker"`
	Curvature     float64 `toml:"curvature"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		FPS:             60,
		CursorShape:     "block",
		BlinkIntervalMs: 530,
		Audio:           AudioConfig{Enabled: true},
		Crt: CrtConfig{
			Enabled:       false,
			ScanlineDepth: 0.15,
			Flicker:       0.1,
			Curvature:     0.2,
		},
	}
}

// Load reads a config file over the defaults. A missing file returns the
// defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.FPS <= 0 || c.FPS > 240 {
		return fmt.Errorf("fps %d out of range 1-240", c.FPS)
	}
	switch c.CursorShape {
	case "block", "beam", "underline":
	default:
		return fmt.Errorf("unknown cursor_shape %q", c.CursorShape)
	}
	if c.BlinkIntervalMs < 0 {
		return fmt.Errorf("blink_interval_ms must not be negative")
	}
	return nil
}

// TickInterval returns the render tick period
func (c *Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// BlinkInterval returns the blink half-period; 0 disables blinking
func (c *Config) BlinkInterval() time.Duration {
	return time.Duration(c.BlinkIntervalMs) * time.Millisecond
}

// Shape maps the configured cursor shape name to the engine type
func (c *Config) Shape() vt.CursorShape {
	switch c.CursorShape {
	case "beam":
		return vt.CursorBeam
	case "underline":
		return vt.CursorUnderline
	default:
		return vt.CursorBlock
	}
}
