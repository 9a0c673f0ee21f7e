package audio

import (
	"github.com/lixenwraith/paper-arena/config"
	"github.com/lixenwraith/paper-arena/parameter"
)

// AudioConfig holds mixer settings
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	SampleRate    int
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns full-volume effects at the master default
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = 1.0
	}
	return cfg
}

// FromConfig applies the game config's audio section; volume is clamped to [0, 1]
func FromConfig(c config.AudioConfig) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = c.Enabled
	cfg.MasterVolume = min(max(c.Volume, 0), 1)
	return cfg
}
