package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/upside-gate/constants"
)

// oscillator generates raw audio waves of fixed length
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
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		val := waveSample(o.wave, o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase = advancePhase(o.phase, o.freq, o.rate)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// waveSample evaluates one sample of the wave at phase in [0, 1)
func waveSample(wave WaveType, phase float64) float64 {
	switch wave {
	case WaveSine:
		return math.Sin(2 * math.Pi * phase)
	case WaveSaw:
		return 2.0 * (phase - 0.5)
	case WaveNoise:
		return rand.Float64()*2 - 1
	}
	return 0
}

func advancePhase(phase, freq float64, rate beep.SampleRate) float64 {
	phase += freq / float64(rate)
	return phase - math.Floor(phase) // Keep in [0, 1)
}

// decay scales a stream by an exponential curve from peak toward floor and
// ends the stream once the curve has run its length
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	peak     float64
	ratio    float64 // floor/peak
}

// NewExponentialDecay shapes s with a gain falling from peak to floor over duration
func NewExponentialDecay(s beep.Streamer, duration time.Duration, peak, floor float64, rate beep.SampleRate) beep.Streamer {
	ratio := 0.0
	if peak > 0 {
		ratio = floor / peak
	}
	return &decay{
		streamer: s,
		total:    rate.N(duration),
		peak:     peak,
		ratio:    ratio,
	}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	if d.position >= d.total {
		return 0, false
	}
	if remaining := d.total - d.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := d.peak * math.Pow(d.ratio, float64(d.position)/float64(d.total))
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// lowPass is a stereo biquad low-pass filter
type lowPass struct {
	streamer beep.Streamer

	b0, b1, b2, a1, a2 float64
	x1, x2, y1, y2     [2]float64
}

// NewLowPass filters s with a second order low-pass at cutoff Hz
func NewLowPass(s beep.Streamer, cutoff, q float64, rate beep.SampleRate) beep.Streamer {
	w0 := 2 * math.Pi * cutoff / float64(rate)
	cos := math.Cos(w0)
	alpha := math.Sin(w0) / (2 * q)
	a0 := 1 + alpha

	return &lowPass{
		streamer: s,
		b0:       (1 - cos) / 2 / a0,
		b1:       (1 - cos) / a0,
		b2:       (1 - cos) / 2 / a0,
		a1:       -2 * cos / a0,
		a2:       (1 - alpha) / a0,
	}
}

func (f *lowPass) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		for c := 0; c < 2; c++ {
			x := samples[i][c]
			y := f.b0*x + f.b1*f.x1[c] + f.b2*f.x2[c] - f.a1*f.y1[c] - f.a2*f.y2[c]
			f.x2[c], f.x1[c] = f.x1[c], x
			f.y2[c], f.y1[c] = f.y1[c], y
			samples[i][c] = y
		}
	}
	return n, ok
}

func (f *lowPass) Err() error { return f.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound generators

// NewNoiseBurst generates duration of white noise at a flat gain
func NewNoiseBurst(duration time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, duration, WaveNoise, rate)
	return newVolume(noise, gain)
}

// NewTone generates a sine ping at freq whose gain decays from peak over duration
func NewTone(freq float64, duration time.Duration, peak float64, rate beep.SampleRate) beep.Streamer {
	sine := NewOscillator(freq, duration, WaveSine, rate)
	return NewExponentialDecay(sine, duration, peak, constants.ToneGainFloor, rate)
}
