package audio

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/neon-highway/parameter"
)

// Config holds audio output settings
type Config struct {
	Enabled    bool    `yaml:"enabled"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sample_rate"`
}

// DefaultConfig returns the default audio configuration
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		Volume:     parameter.AudioDefaultVolume,
		SampleRate: parameter.AudioSampleRate,
	}
}

// Validate reports out-of-range settings
func (c Config) Validate() error {
	if c.Volume < 0 || c.Volume > 1 {
		return errors.Errorf("audio volume %g outside [0, 1]", c.Volume)
	}
	// Highest cue partial must stay under Nyquist
	if c.SampleRate < 8000 {
		return errors.Errorf("audio sample rate %d below 8000", c.SampleRate)
	}
	return nil
}
