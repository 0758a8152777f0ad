package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/vi-snake/constants"
)

// ErrInvalidConfig is returned by Validate for out-of-range settings
var ErrInvalidConfig = errors.New("invalid config")

const (
	minFPS = 1
	maxFPS = 240
)

// Config holds the runtime settings of the game
type Config struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Seed   uint64 `toml:"seed"` // 0 = time based
	FPS    int    `toml:"fps"`
	Debug  bool   `toml:"debug"`
}

// Default returns the reference 30x30 configuration
func Default() *Config {
	return &Config{
		Width:  constants.DefaultGridWidth,
		Height: constants.DefaultGridHeight,
		FPS:    int(time.Second / constants.FrameUpdateInterval),
	}
}

// Load reads a TOML file over the defaults. An empty path or a missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from VI_SNAKE_* environment variables, unparsable values are ignored
func (c *Config) ApplyEnv() {
	if v := os.Getenv("VI_SNAKE_WIDTH"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.Width = val
		}
	}

	if v := os.Getenv("VI_SNAKE_HEIGHT"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.Height = val
		}
	}

	if v := os.Getenv("VI_SNAKE_SEED"); v != "" {
		if val, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = val
		}
	}

	if v := os.Getenv("VI_SNAKE_FPS"); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			c.FPS = val
		}
	}

	if v := os.Getenv("VI_SNAKE_DEBUG"); v != "" {
		if val, err := strconv.ParseBool(v); err == nil {
			c.Debug = val
		}
	}
}

// Validate checks grid dimensions and frame rate
func (c *Config) Validate() error {
	if c.Width < constants.MinGridSize || c.Height < constants.MinGridSize {
		return fmt.Errorf("%w: grid %dx%d below minimum %d", ErrInvalidConfig, c.Width, c.Height, constants.MinGridSize)
	}
	if c.FPS < minFPS || c.FPS > maxFPS {
		return fmt.Errorf("%w: fps %d outside [%d, %d]", ErrInvalidConfig, c.FPS, minFPS, maxFPS)
	}
	return nil
}

// FrameInterval returns the ticker period for the configured frame rate
func (c *Config) FrameInterval() time.Duration {
	if c.FPS <= 0 {
		return constants.FrameUpdateInterval
	}
	return time.Second / time.Duration(c.FPS)
}
