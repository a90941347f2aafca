// Package config loads game settings from YAML layered over compiled-in defaults.
package config

import (
	"bytes"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/neon-highway/audio"
	"github.com/lixenwraith/neon-highway/parameter"
)

// ErrInvalid is the cause of every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Config is the complete runtime configuration
type Config struct {
	// Seed drives spawn randomness; zero picks one from the clock
	Seed    uint64           `yaml:"seed"`
	Tuning  parameter.Tuning `yaml:"tuning"`
	Display Display          `yaml:"display"`
	Audio   audio.Config     `yaml:"audio"`
	Log     Log              `yaml:"log"`
}

// Display controls frame pacing and terminal colors
type Display struct {
	FPS       int    `yaml:"fps"`
	ColorMode string `yaml:"color_mode"` // auto, 256 or truecolor
}

// Log controls the file sink; the terminal owns stdout while playing
type Log struct {
	File  string `yaml:"file"`
	Debug bool   `yaml:"debug"`
}

// Default returns the compiled-in configuration
func Default() Config {
	return Config{
		Tuning: parameter.DefaultTuning(),
		Display: Display{
			FPS:       int(time.Second / parameter.FrameUpdateInterval),
			ColorMode: "auto",
		},
		Audio: audio.DefaultConfig(),
		Log: Log{
			File: parameter.DefaultLogFile,
		},
	}
}

// Load reads path over the defaults; an empty path yields the defaults
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "read config")
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
// Keys absent from data keep their default; unknown keys are rejected
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, errors.Wrap(err, "decode yaml")
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DefaultYAML renders the defaults as a starting config file
func DefaultYAML() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(Default()); err != nil {
		return nil, errors.Wrap(err, "encode yaml")
	}
	if err := enc.Close(); err != nil {
		return nil, errors.Wrap(err, "encode yaml")
	}
	return buf.Bytes(), nil
}

// FrameInterval is the tick period for the configured FPS
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Display.FPS)
}

// Validate checks every field; failures wrap ErrInvalid
func (c Config) Validate() error {
	if c.Display.FPS < parameter.MinFrameRate || c.Display.FPS > parameter.MaxFrameRate {
		return errors.Wrapf(ErrInvalid, "fps %d outside [%d, %d]", c.Display.FPS, parameter.MinFrameRate, parameter.MaxFrameRate)
	}
	switch c.Display.ColorMode {
	case "auto", "256", "truecolor":
	default:
		return errors.Wrapf(ErrInvalid, "color_mode %q", c.Display.ColorMode)
	}
	if err := c.Audio.Validate(); err != nil {
		return errors.Wrap(ErrInvalid, err.Error())
	}
	return validateTuning(&c.Tuning)
}

func validateTuning(t *parameter.Tuning) error {
	positive := []struct {
		name string
		v    float64
	}{
		{"segment_length", t.SegmentLength},
		{"road_width", t.RoadWidth},
		{"camera_depth", t.CameraDepth},
		{"base_speed", t.BaseSpeed},
		{"speed_step_distance", t.SpeedStepDistance},
		{"collision_window", t.CollisionWindow},
		{"obstacle_base_interval", float64(t.ObstacleBaseInterval)},
		{"min_obstacle_interval", float64(t.MinObstacleInterval)},
		{"pickup_interval", float64(t.PickupInterval)},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return errors.Wrapf(ErrInvalid, "tuning.%s must be positive, got %g", p.name, p.v)
		}
	}

	switch {
	case t.SegmentCount < 2:
		return errors.Wrapf(ErrInvalid, "tuning.segment_count %d below 2", t.SegmentCount)
	case t.ObstacleScoreCap < 0:
		return errors.Wrapf(ErrInvalid, "tuning.obstacle_score_cap %d negative", t.ObstacleScoreCap)
	case t.SpeedStepIncrement < 0:
		return errors.Wrapf(ErrInvalid, "tuning.speed_step_increment %g negative", t.SpeedStepIncrement)
	case t.SteeringDamping <= 0 || t.SteeringDamping > 1:
		return errors.Wrapf(ErrInvalid, "tuning.steering_damping %g outside (0, 1]", t.SteeringDamping)
	case t.ShakeDecay < 0 || t.ShakeDecay >= 1:
		return errors.Wrapf(ErrInvalid, "tuning.shake_decay %g outside [0, 1)", t.ShakeDecay)
	case t.SpawnLateralRatio < 0 || t.SpawnLateralRatio > 0.5:
		return errors.Wrapf(ErrInvalid, "tuning.spawn_lateral_ratio %g outside [0, 0.5]", t.SpawnLateralRatio)
	case t.SpawnLookAheadRatio <= 0 || t.SpawnLookAheadRatio > 1:
		return errors.Wrapf(ErrInvalid, "tuning.spawn_look_ahead_ratio %g outside (0, 1]", t.SpawnLookAheadRatio)
	case t.PotholeSafeTolerance < 0 || t.PotholeSafeTolerance > t.CollisionLateralTolerance:
		return errors.Wrapf(ErrInvalid, "tuning.pothole_safe_tolerance %g outside [0, %g]", t.PotholeSafeTolerance, t.CollisionLateralTolerance)
	}
	return nil
}
