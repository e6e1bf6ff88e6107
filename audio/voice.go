package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/upside-gate/constants"
)

// glider is an endless oscillator whose frequency can be ramped while it plays.
// Stream runs on the speaker goroutine, ramps are requested from the UI, so all
// frequency state sits behind mu.
type glider struct {
	mu   sync.Mutex
	wave WaveType
	rate beep.SampleRate

	phase     float64
	freq      float64 // instantaneous
	target    float64 // where the current or last ramp ends
	step      float64 // per-sample increment while ramping
	remaining int     // samples left in the ramp
}

func (g *glider) Stream(samples [][2]float64) (n int, ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range samples {
		val := waveSample(g.wave, g.phase)
		samples[i][0] = val
		samples[i][1] = val

		g.phase = advancePhase(g.phase, g.freq, g.rate)
		if g.remaining > 0 {
			g.remaining--
			if g.remaining == 0 {
				g.freq = g.target
			} else {
				g.freq += g.step
			}
		}
	}
	return len(samples), true
}

func (g *glider) Err() error { return nil }

// ramp glides linearly from the instantaneous frequency to freq*factor over duration
func (g *glider) ramp(factor float64, duration time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.target = g.freq * factor
	n := g.rate.N(duration)
	if n <= 0 {
		g.freq = g.target
		g.remaining = 0
		return
	}
	g.step = (g.target - g.freq) / float64(n)
	g.remaining = n
}

// DroneVoice is one continuously running sawtooth, low-pass and gain chain
type DroneVoice struct {
	base   float64
	osc    *glider
	output beep.Streamer
}

// NewDroneVoice builds a drone at base Hz
func NewDroneVoice(base float64, rate beep.SampleRate) *DroneVoice {
	osc := &glider{
		wave:   WaveSaw,
		rate:   rate,
		freq:   base,
		target: base,
	}
	filtered := NewLowPass(osc, constants.DroneCutoff, constants.DroneFilterQ, rate)

	return &DroneVoice{
		base:   base,
		osc:    osc,
		output: newVolume(filtered, constants.DroneGain),
	}
}

// Stream never drains; a drone plays for the life of the process
func (v *DroneVoice) Stream(samples [][2]float64) (n int, ok bool) {
	return v.output.Stream(samples)
}

func (v *DroneVoice) Err() error { return v.output.Err() }

// Ramp glides the drone from its present pitch to present*factor over duration.
// Factors compound across calls and are never clamped, so a ramp issued
// mid-glide drifts away from the base frequency.
func (v *DroneVoice) Ramp(factor float64, duration time.Duration) {
	v.osc.ramp(factor, duration)
}

// BaseFrequency returns the frequency the drone was created with
func (v *DroneVoice) BaseFrequency() float64 { return v.base }

// Frequency returns the instantaneous oscillator frequency
func (v *DroneVoice) Frequency() float64 {
	v.osc.mu.Lock()
	defer v.osc.mu.Unlock()
	return v.osc.freq
}

// TargetFrequency returns the frequency the drone settles on once ramps finish
func (v *DroneVoice) TargetFrequency() float64 {
	v.osc.mu.Lock()
	defer v.osc.mu.Unlock()
	return v.osc.target
}
