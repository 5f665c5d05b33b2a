package audio

import (
	"errors"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by config")
	ErrNoDevice      = errors.New("no audio output device")
)
