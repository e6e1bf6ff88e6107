package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/pkg/errors"

	"github.com/lixenwraith/upside-gate/constants"
)

// Engine owns the audio output, the drone voices and the transient sounds.
// It is built cold; Initialize opens the output on the first user interaction.
type Engine struct {
	mu     sync.Mutex
	config *AudioConfig
	output Output
	rate   beep.SampleRate

	attempted bool
	drones    []*DroneVoice // nil until Initialize succeeds
}

// NewEngine creates an uninitialized engine. A nil cfg uses defaults, a nil
// out plays through the beep speaker.
func NewEngine(cfg *AudioConfig, out Output) *Engine {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	if out == nil {
		out = NewSpeakerOutput()
	}
	return &Engine{
		config: cfg,
		output: out,
		rate:   beep.SampleRate(cfg.SampleRate),
	}
}

// Initialize opens the output and starts the drones. Only the first call does
// any work; if it fails the engine stays silent for the rest of the session.
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.attempted {
		return nil
	}
	e.attempted = true

	if !e.config.Enabled {
		return ErrAudioDisabled
	}

	if err := e.output.Init(e.rate, e.rate.N(constants.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "initialize audio output")
	}

	drones := make([]*DroneVoice, 0, len(constants.DroneFrequencies))
	for _, freq := range constants.DroneFrequencies {
		voice := NewDroneVoice(freq, e.rate)
		drones = append(drones, voice)
		e.output.Play(e.master(voice))
	}
	e.drones = drones
	return nil
}

// Initialized reports whether the output is open and the drones are playing
func (e *Engine) Initialized() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.drones != nil
}

// Drones returns the drone voices, empty before initialization
func (e *Engine) Drones() []*DroneVoice {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*DroneVoice(nil), e.drones...)
}

// RampDronePitch glides every drone from its present pitch to present*factor over duration
func (e *Engine) RampDronePitch(factor float64, duration time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, d := range e.drones {
		d.Ramp(factor, duration)
	}
}

// PlayNoiseBurst plays duration of white noise once at gain
func (e *Engine) PlayNoiseBurst(duration time.Duration, gain float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.drones == nil {
		return
	}
	e.output.Play(e.master(NewNoiseBurst(duration, gain, e.rate)))
}

// PlayTone plays a decaying sine ping at freq
func (e *Engine) PlayTone(freq float64, duration time.Duration, peak float64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.drones == nil {
		return
	}
	e.output.Play(e.master(NewTone(freq, duration, peak, e.rate)))
}

// Close releases the output. The engine is silent afterwards.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.drones == nil {
		return
	}
	e.output.Close()
	e.drones = nil
}

func (e *Engine) master(s beep.Streamer) beep.Streamer {
	if e.config.MasterVolume == 1 {
		return s
	}
	return newVolume(s, e.config.MasterVolume)
}
