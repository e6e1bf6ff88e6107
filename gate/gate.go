// Package gate implements the toggle that flips the screen between the normal
// and the upside-down theme and detunes the drones on the way.
package gate

import (
	"log"
	"time"

	"github.com/lixenwraith/upside-gate/constants"
)

// State is the position of the gate
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Sound is the part of the audio engine the gate drives
type Sound interface {
	Initialize() error
	PlayNoiseBurst(duration time.Duration, gain float64)
	RampDronePitch(factor float64, duration time.Duration)
}

// View is what the screen shows for the current gate state.
// Empty color fields mean the theme default applies.
type View struct {
	UpsideDown    bool
	ContentHidden bool
	Label         string

	TitleColor   string
	ButtonBorder string
	ButtonText   string
	ButtonBack   string
}

// closedView is the initial look of the screen
var closedView = View{
	ContentHidden: true,
	Label:         constants.GateLabelClosed,
}

var openView = View{
	UpsideDown:    true,
	ContentHidden: false,
	Label:         constants.GateLabelOpen,
	TitleColor:    constants.GateTitleColor,
	ButtonBorder:  constants.GateButtonBorderColor,
	ButtonText:    constants.GateButtonTextColor,
	ButtonBack:    constants.GateButtonBackground,
}

// Gate is a two-state toggle, Closed initially, with no terminal state
type Gate struct {
	sound Sound
	state State
	view  View
}

// New creates a closed gate
func New(sound Sound) *Gate {
	return &Gate{
		sound: sound,
		state: Closed,
		view:  closedView,
	}
}

// Activate flips the gate and applies the visual and audio branch for the new state
func (g *Gate) Activate() {
	if err := g.sound.Initialize(); err != nil {
		log.Printf("gate: audio unavailable: %v", err)
	}
	g.sound.PlayNoiseBurst(constants.GateNoiseDuration, constants.GateNoiseGain)

	if g.state == Closed {
		g.state = Open
		g.view = openView
		g.sound.RampDronePitch(constants.GateOpenPitchFactor, constants.GateRampDuration)
	} else {
		g.state = Closed
		g.view = closedView
		g.sound.RampDronePitch(constants.GateClosePitchFactor, constants.GateRampDuration)
	}

	log.Printf("gate: %s", g.state)
}

// State returns the current gate position
func (g *Gate) State() State { return g.state }

// View returns the current look of the screen
func (g *Gate) View() View { return g.view }
