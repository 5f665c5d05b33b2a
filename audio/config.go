package audio

import (
	"github.com/lixenwraith/tidewake/config"
	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/parameter"
)

// AudioConfig holds mixer levels and the output rate
type AudioConfig struct {
	Enabled       bool
	MasterVolume  float64
	EffectVolumes [core.SoundTypeCount]float64
	SampleRate    int
}

// DefaultAudioConfig returns built-in levels
func DefaultAudioConfig() *AudioConfig {
	cfg := &AudioConfig{
		Enabled:      true,
		MasterVolume: parameter.AudioMasterVolume,
		SampleRate:   parameter.AudioSampleRate,
	}
	for i := range cfg.EffectVolumes {
		cfg.EffectVolumes[i] = parameter.AudioCueVolume
	}
	// Fanfare plays over a chime on the last pickup
	cfg.EffectVolumes[core.SoundFanfare] = parameter.AudioCueVolume * 0.8
	return cfg
}

// FromConfig maps the loaded audio section onto mixer levels
// Unknown cue names are ignored, volumes are clamped to 0..1
func FromConfig(c config.AudioConfig) *AudioConfig {
	cfg := DefaultAudioConfig()
	cfg.Enabled = c.Enabled
	cfg.MasterVolume = clamp01(c.MasterVolume)
	for name, v := range c.Volumes {
		if st, ok := core.SoundTypeByName(name); ok {
			cfg.EffectVolumes[st] = clamp01(v)
		}
	}
	return cfg
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
