package audio

import (
	"errors"

	"github.com/gopxl/beep"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSaw
	WaveNoise
)

// Output is the device sounds are mixed into
type Output interface {
	// Init opens the device at the given rate with a buffer of bufferSize samples
	Init(rate beep.SampleRate, bufferSize int) error
	// Play adds streamers to the device mix; drained streamers are dropped
	Play(s ...beep.Streamer)
	// Close releases the device
	Close()
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
