// Package lights implements the wall of letter indicators that flash as text is typed
package lights

import (
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/upside-gate/constants"
)

// Position places an indicator on the wall, in percent of its height and width
type Position struct {
	Top  float64
	Left float64
}

// Indicator is one letter light
type Indicator struct {
	Letter rune
	Index  int
	Pos    Position
	Color  string
	Active bool
}

// Sound is the part of the audio engine the wall drives
type Sound interface {
	Initialize() error
	PlayTone(freq float64, duration time.Duration, peak float64)
}

// Timer is a pending scheduled callback
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Config tunes wall behavior
type Config struct {
	// Debounce restarts a letter's pending clear instead of stacking another
	Debounce bool
	// Rand picks indicator colors; nil seeds from the clock
	Rand *rand.Rand
}

// Wall holds exactly one indicator per letter A-Z
type Wall struct {
	mu         sync.Mutex
	sound      Sound
	scheduler  Scheduler
	debounce   bool
	indicators []*Indicator
	byLetter   map[rune]*Indicator
	pending    map[rune]Timer
}

// LayoutPosition returns the wall position of the letter at index 0-25
func LayoutPosition(index int) Position {
	switch {
	case index < constants.WallRow1End:
		return Position{
			Top:  constants.WallRow1Top,
			Left: constants.WallRow1Left + float64(index)*constants.WallRow1Step,
		}
	case index < constants.WallRow2End:
		return Position{
			Top:  constants.WallRow2Top,
			Left: constants.WallRow2Left + float64(index-constants.WallRow1End)*constants.WallRow2Step,
		}
	default:
		return Position{
			Top:  constants.WallRow3Top,
			Left: constants.WallRow3Left + float64(index-constants.WallRow2End)*constants.WallRow3Step,
		}
	}
}

// BuildIndicators creates the 26 indicators in letter order with random colors
func BuildIndicators(rng *rand.Rand) []*Indicator {
	indicators := make([]*Indicator, 0, len(constants.Alphabet))
	for i, letter := range constants.Alphabet {
		indicators = append(indicators, &Indicator{
			Letter: letter,
			Index:  i,
			Pos:    LayoutPosition(i),
			Color:  constants.LightPalette[rng.Intn(len(constants.LightPalette))],
		})
	}
	return indicators
}

// NewWall builds the wall
func NewWall(sound Sound, scheduler Scheduler, cfg Config) *Wall {
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	w := &Wall{
		sound:      sound,
		scheduler:  scheduler,
		debounce:   cfg.Debounce,
		indicators: BuildIndicators(rng),
		byLetter:   make(map[rune]*Indicator, len(constants.Alphabet)),
		pending:    make(map[rune]Timer),
	}
	for _, ind := range w.indicators {
		w.byLetter[ind.Letter] = ind
	}
	return w
}

// OnTextInput reacts to the full current value of the text field. Only the
// last character counts; it flashes if it is a letter A-Z.
func (w *Wall) OnTextInput(text string) bool {
	if text == "" {
		return false
	}
	last, _ := utf8.DecodeLastRuneInString(strings.ToUpper(text))

	w.mu.Lock()
	_, ok := w.byLetter[last]
	w.mu.Unlock()
	if !ok {
		log.Printf("lights: ignored %q", last)
		return false
	}

	if err := w.sound.Initialize(); err != nil {
		log.Printf("lights: audio unavailable: %v", err)
	}
	return w.Flash(last)
}

// Flash lights the indicator for letter, plays its tone and schedules it to go
// dark after FlashDuration. Each flash schedules its own clear.
func (w *Wall) Flash(letter rune) bool {
	w.mu.Lock()
	ind, ok := w.byLetter[letter]
	if !ok {
		w.mu.Unlock()
		return false
	}
	ind.Active = true
	index := ind.Index

	if w.debounce {
		if prev, ok := w.pending[letter]; ok {
			prev.Stop()
		}
	}
	var timer Timer
	timer = w.scheduler.AfterFunc(constants.FlashDuration, func() {
		w.clear(letter, timer)
	})
	if w.debounce {
		w.pending[letter] = timer
	}
	w.mu.Unlock()

	w.sound.PlayTone(ToneFrequency(index), constants.FlashToneDuration, constants.FlashToneGain)
	return true
}

func (w *Wall) clear(letter rune, timer Timer) {
	w.mu.Lock()
	defer w.mu.Unlock()

	// A replaced timer can still fire if its callback was queued before Stop
	if w.debounce && w.pending[letter] != timer {
		return
	}
	w.byLetter[letter].Active = false
	delete(w.pending, letter)
}

// ToneFrequency returns the flash tone for the letter at index
func ToneFrequency(index int) float64 {
	return constants.FlashToneBase + float64(index)*constants.FlashToneStep
}

// Indicator returns a snapshot of the indicator for letter
func (w *Wall) Indicator(letter rune) (Indicator, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	ind, ok := w.byLetter[letter]
	if !ok {
		return Indicator{}, false
	}
	return *ind, true
}

// Indicators returns snapshots of all indicators in letter order
func (w *Wall) Indicators() []Indicator {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]Indicator, len(w.indicators))
	for i, ind := range w.indicators {
		out[i] = *ind
	}
	return out
}
