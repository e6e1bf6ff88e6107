package constants

import "time"

// Gate Labels
const (
	GateLabelClosed = "OPEN THE GATE"
	GateLabelOpen   = "CLOSE THE GATE!"
)

// Gate Accent Palette, applied while the gate is open
const (
	GateTitleColor        = "#ff0000"
	GateButtonBorderColor = "#b620e0"
	GateButtonTextColor   = "#b620e0"
	GateButtonBackground  = "#000000"
)

// Gate Sound
const (
	GateNoiseDuration = 500 * time.Millisecond
	GateNoiseGain     = 0.1

	GateRampDuration = 2 * time.Second

	// Opening detunes the drones down, closing brings them back up.
	// 0.8 * 1.25 == 1, so only a full open/close pair is pitch-neutral.
	GateOpenPitchFactor  = 0.8
	GateClosePitchFactor = 1.25
)
