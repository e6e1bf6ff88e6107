package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/upside-gate/constants"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "UPSIDE_GATE_AUDIO_ENABLED"
	EnvMasterVolume = "UPSIDE_GATE_MASTER_VOLUME"
	EnvSampleRate   = "UPSIDE_GATE_SAMPLE_RATE"
)

// AudioConfig holds audio output settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0, scales every voice
	SampleRate   int
}

// DefaultAudioConfig returns the configuration used when nothing is set
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 1.0,
		SampleRate:   constants.DefaultSampleRate,
	}
}

// LoadAudioConfig loads audio configuration from environment variables
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is given as 0-100
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.SetVolumePercent(val)
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// SetVolumePercent sets the master volume from a 0-100 value, clamped
func (c *AudioConfig) SetVolumePercent(percent int) {
	c.MasterVolume = float64(percent) / 100.0
	if c.MasterVolume < 0 {
		c.MasterVolume = 0
	}
	if c.MasterVolume > 1 {
		c.MasterVolume = 1
	}
}
