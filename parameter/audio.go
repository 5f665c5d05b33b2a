package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between consecutive cues of the same kind
	MinSoundGap = 50 * time.Millisecond
)

// Chime Sound (fragment pickup)
const (
	ChimeSoundDuration           = 600 * time.Millisecond
	ChimeSoundAttack             = 5 * time.Millisecond
	ChimeSoundFundamentalRelease = 550 * time.Millisecond
	ChimeSoundOvertoneRelease    = 200 * time.Millisecond
	ChimeSoundFundamental        = 880.0
	ChimeSoundOvertone           = 1760.0
)

// Horn Sound (helm taken)
const (
	HornSoundDuration = 350 * time.Millisecond
	HornSoundAttack   = 40 * time.Millisecond
	HornSoundRelease  = 150 * time.Millisecond
	HornSoundPitch    = 146.83
)

// Swash Sound (helm released)
const (
	SwashSoundDuration = 300 * time.Millisecond
	SwashSoundAttack   = 150 * time.Millisecond
	SwashSoundRelease  = 150 * time.Millisecond
)

// Fanfare Sound (all fragments collected)
const (
	FanfareNote1Duration = 80 * time.Millisecond
	FanfareNote2Duration = 280 * time.Millisecond
	FanfareAttack        = 5 * time.Millisecond
	FanfareNote1Release  = 40 * time.Millisecond
	FanfareNote2Release  = 200 * time.Millisecond
	FanfareNote1Pitch    = 987.77
	FanfareNote2Pitch    = 1318.51
)

// Mixer volumes
const (
	AudioMasterVolume = 0.6
	AudioCueVolume    = 0.35
)
