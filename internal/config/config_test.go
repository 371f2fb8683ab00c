package config

import (
	"os"
	"path/filepath"
	"testing"

	"crayon/chroma"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crayon.yaml")
	data := []byte(`
window:
  width: 640
  scale: 2
render:
  format: svg
  background: "#ffffff"
logging:
  level: debug
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 400, cfg.Window.Height, "unset keys keep their defaults")
	assert.Equal(t, 2.0, cfg.Window.Scale)
	assert.Equal(t, FormatSVG, cfg.Render.Format)
	assert.Equal(t, "debug", cfg.Logging.Level)

	bg, err := cfg.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, chroma.RGBA{R: 255, G: 255, B: 255, A: 1}, bg)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [1, 2"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("values", func(t *testing.T) {
		t.Setenv("CRAYON_LOG_LEVEL", "warn")
		t.Setenv("CRAYON_DEV", "true")
		t.Setenv("CRAYON_WIDTH", "123")
		t.Setenv("CRAYON_SCALE", "1.5")
		t.Setenv("CRAYON_FORMAT", "svg")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Logging.Level)
		assert.True(t, cfg.Logging.Development)
		assert.Equal(t, 123, cfg.Window.Width)
		assert.Equal(t, 1.5, cfg.Window.Scale)
		assert.Equal(t, FormatSVG, cfg.Render.Format)
	})

	t.Run("bad number", func(t *testing.T) {
		t.Setenv("CRAYON_TPS", "fast")
		_, err := Load("")
		assert.ErrorContains(t, err, "CRAYON_TPS")
	})
}

func TestValidate(t *testing.T) {
	tcs := []struct {
		name string
		edit func(*Config)
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }},
		{"negative scale", func(c *Config) { c.Window.Scale = -1 }},
		{"zero tps", func(c *Config) { c.Window.TPS = 0 }},
		{"format", func(c *Config) { c.Render.Format = "gif" }},
		{"workers", func(c *Config) { c.Render.Workers = 0 }},
		{"background", func(c *Config) { c.Render.Background = "mauve-ish" }},
		{"level", func(c *Config) { c.Logging.Level = "chatty" }},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.edit(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "crayon.yaml")
	cfg := DefaultConfig()
	cfg.Render.Background = "hsla(200, 50%, 50%, 1)"
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
