package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/neon-highway/parameter"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, parameter.DefaultTuning(), cfg.Tuning)
	assert.Equal(t, parameter.FrameUpdateInterval, cfg.FrameInterval())
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, "auto", cfg.Display.ColorMode)
}

func TestParseMergesOverDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
seed: 42
display:
  fps: 30
tuning:
  base_speed: 250
  min_obstacle_interval: 750ms
audio:
  enabled: false
`))
	require.NoError(t, err)

	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 30, cfg.Display.FPS)
	assert.Equal(t, "auto", cfg.Display.ColorMode, "unset key keeps default")
	assert.Equal(t, 250.0, cfg.Tuning.BaseSpeed)
	assert.Equal(t, 750*time.Millisecond, cfg.Tuning.MinObstacleInterval)
	assert.Equal(t, parameter.RoadWidth, cfg.Tuning.RoadWidth)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, parameter.AudioDefaultVolume, cfg.Audio.Volume)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse([]byte("  \n"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("tuning:\n  road_widht: 100\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"fps low", func(c *Config) { c.Display.FPS = 1 }},
		{"fps high", func(c *Config) { c.Display.FPS = 1000 }},
		{"color mode", func(c *Config) { c.Display.ColorMode = "16" }},
		{"volume", func(c *Config) { c.Audio.Volume = 2 }},
		{"segment length", func(c *Config) { c.Tuning.SegmentLength = 0 }},
		{"segment count", func(c *Config) { c.Tuning.SegmentCount = 1 }},
		{"min interval", func(c *Config) { c.Tuning.MinObstacleInterval = 0 }},
		{"damping", func(c *Config) { c.Tuning.SteeringDamping = 1.5 }},
		{"shake decay", func(c *Config) { c.Tuning.ShakeDecay = 1 }},
		{"lateral ratio", func(c *Config) { c.Tuning.SpawnLateralRatio = 0.6 }},
		{"pothole tolerance", func(c *Config) { c.Tuning.PotholeSafeTolerance = 500 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "error %v wraps ErrInvalid", err)
		})
	}
}

func TestDefaultYAMLRoundTrip(t *testing.T) {
	data, err := DefaultYAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "segment_count: 300")
	assert.Contains(t, string(data), "pickup_interval: 10s")

	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(t.TempDir(), "neon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  color_mode: \"256\"\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "256", cfg.Display.ColorMode)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("display:\n  fps: 0\n"), 0o644))
	_, err = Load(path)
	assert.True(t, errors.Is(err, ErrInvalid))
}
