package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/tidewake/core"
	"github.com/lixenwraith/tidewake/parameter"
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateChimeSound generates a short ding for fragment pickup
func CreateChimeSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	fund := NewOscillator(parameter.ChimeSoundFundamental, parameter.ChimeSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, parameter.ChimeSoundDuration, parameter.ChimeSoundAttack, parameter.ChimeSoundFundamentalRelease, rate)

	over := NewOscillator(parameter.ChimeSoundOvertone, parameter.ChimeSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, parameter.ChimeSoundDuration, parameter.ChimeSoundAttack, parameter.ChimeSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	vol := cfg.EffectVolumes[core.SoundChime] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateHornSound generates a low two-voice blast when the helm is taken
func CreateHornSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	body := NewOscillator(parameter.HornSoundPitch, parameter.HornSoundDuration, WaveSaw, rate)
	sub := NewOscillator(parameter.HornSoundPitch/2, parameter.HornSoundDuration, WaveSquare, rate)
	mixed := beep.Mix(
		newVolume(body, 0.6),
		newVolume(sub, 0.25),
	)
	shaped := NewEnvelope(mixed, parameter.HornSoundDuration, parameter.HornSoundAttack, parameter.HornSoundRelease, rate)

	vol := cfg.EffectVolumes[core.SoundHorn] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateSwashSound generates a soft noise swell when the helm is released
func CreateSwashSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewOscillator(0, parameter.SwashSoundDuration, WaveNoise, rate)
	shaped := NewEnvelope(noise, parameter.SwashSoundDuration, parameter.SwashSoundAttack, parameter.SwashSoundRelease, rate)

	vol := cfg.EffectVolumes[core.SoundSwash] * cfg.MasterVolume
	return newVolume(shaped, vol)
}

// CreateFanfareSound generates a two-note rise for the last fragment
func CreateFanfareSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewOscillator(parameter.FanfareNote1Pitch, parameter.FanfareNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.FanfareNote1Duration, parameter.FanfareAttack, parameter.FanfareNote1Release, rate)

	n2 := NewOscillator(parameter.FanfareNote2Pitch, parameter.FanfareNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.FanfareNote2Duration, parameter.FanfareAttack, parameter.FanfareNote2Release, rate)

	sequence := beep.Seq(n1Shaped, n2Shaped)

	vol := cfg.EffectVolumes[core.SoundFanfare] * cfg.MasterVolume
	return newVolume(sequence, vol)
}

// GetSoundEffect returns the streamer for the given cue, nil for unknown types
func GetSoundEffect(soundType core.SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case core.SoundChime:
		return CreateChimeSound(cfg)
	case core.SoundHorn:
		return CreateHornSound(cfg)
	case core.SoundSwash:
		return CreateSwashSound(cfg)
	case core.SoundFanfare:
		return CreateFanfareSound(cfg)
	default:
		return nil
	}
}
