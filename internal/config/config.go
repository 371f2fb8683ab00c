// Package config loads crayon.yaml: window, render and logging settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"crayon/chroma"
	"crayon/internal/logging"

	"gopkg.in/yaml.v3"
)

// Config holds all crayon configuration.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Render  RenderConfig  `yaml:"render"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig sizes the preview window in logical pixels.
type WindowConfig struct {
	Title  string  `yaml:"title"`
	Width  int     `yaml:"width"`
	Height int     `yaml:"height"`
	Scale  float64 `yaml:"scale"` // 0 = monitor scale factor
	TPS    int     `yaml:"tps"`
}

// RenderConfig controls the render command.
type RenderConfig struct {
	Background string `yaml:"background"` // CSS color, empty = transparent
	Format     string `yaml:"format"`     // png, svg
	Smooth     bool   `yaml:"smooth"`
	Workers    int    `yaml:"workers"`
}

type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// DefaultPath is the config file read when none is given.
const DefaultPath = "crayon.yaml"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "crayon",
			Width:  400,
			Height: 400,
			TPS:    60,
		},
		Render: RenderConfig{
			Format:  FormatPNG,
			Workers: 4,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults, then
// applies CRAYON_* environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("CRAYON_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CRAYON_DEV"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("CRAYON_DEV: %w", err)
		}
		c.Logging.Development = b
	}
	if v := os.Getenv("CRAYON_FORMAT"); v != "" {
		c.Render.Format = v
	}
	if v := os.Getenv("CRAYON_BACKGROUND"); v != "" {
		c.Render.Background = v
	}
	for _, o := range []struct {
		env string
		dst *int
	}{
		{"CRAYON_WIDTH", &c.Window.Width},
		{"CRAYON_HEIGHT", &c.Window.Height},
		{"CRAYON_TPS", &c.Window.TPS},
		{"CRAYON_WORKERS", &c.Render.Workers},
	} {
		if v := os.Getenv(o.env); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("%s: %w", o.env, err)
			}
			*o.dst = n
		}
	}
	if v := os.Getenv("CRAYON_SCALE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("CRAYON_SCALE: %w", err)
		}
		c.Window.Scale = f
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.Scale < 0 {
		return fmt.Errorf("invalid window scale %g", c.Window.Scale)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("invalid tps %d", c.Window.TPS)
	}
	switch c.Render.Format {
	case FormatPNG, FormatSVG:
	default:
		return fmt.Errorf("invalid render format %q (valid: png, svg)", c.Render.Format)
	}
	if c.Render.Workers < 1 {
		return fmt.Errorf("invalid worker count %d", c.Render.Workers)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// BackgroundColor parses Render.Background. Empty means no background.
func (c *Config) BackgroundColor() (chroma.Color, error) {
	if c.Render.Background == "" {
		return nil, nil
	}
	col, err := chroma.ParseCSS(c.Render.Background)
	if err != nil {
		return nil, fmt.Errorf("invalid background: %w", err)
	}
	return col, nil
}
