package constants

import "time"

// Alphabet is the set of letters with an indicator on the wall, in index order
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Wall Layout, in percent of the wall area
const (
	WallRow1End = 8  // A-H
	WallRow2End = 17 // I-Q, R-Z follow

	WallRow1Top = 30.0
	WallRow2Top = 50.0
	WallRow3Top = 70.0

	WallRow1Left = 15.0
	WallRow2Left = 10.0
	WallRow3Left = 15.0

	WallRow1Step = 10.0
	WallRow2Step = 9.0
	WallRow3Step = 10.0
)

// LightPalette holds the colors an indicator may be assigned at creation
var LightPalette = [5]string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#ff00ff"}

// Flash Timing
const (
	// FlashDuration is how long an indicator stays active after a flash
	FlashDuration = 500 * time.Millisecond

	FlashToneDuration = 500 * time.Millisecond
	FlashToneGain     = 0.1

	// FlashToneBase is the tone for 'A'; each following letter adds FlashToneStep Hz
	FlashToneBase = 220.0
	FlashToneStep = 20.0
)
