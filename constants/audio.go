package constants

import "time"

// Audio Output
const (
	// DefaultSampleRate is the speaker sample rate when none is configured
	DefaultSampleRate = 44100

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond
)

// Drone Voices
const (
	// DroneCutoff is the low-pass cutoff applied to every drone, in Hz
	DroneCutoff = 400.0

	// DroneFilterQ is the low-pass resonance
	DroneFilterQ = 1.122

	// DroneGain is the linear level of each drone voice
	DroneGain = 0.05
)

// DroneFrequencies are the base frequencies of the three drone voices (A1, A2, E3)
var DroneFrequencies = [3]float64{55, 110, 165}

// Tone Envelope
const (
	// ToneGainFloor is the level the tone envelope decays toward
	ToneGainFloor = 0.001
)
