package constants

import "time"

// Frame timing
const (
	// FrameUpdateInterval is the redraw period of the event loop (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize buffers terminal events and scheduled callbacks
	EventQueueSize = 256
)

// Screen text
const (
	Title = "STRANGER TERMINAL"

	UpsideDownContent = "The lights are talking. Spell it out below."

	InputPrompt = "> "
	InputHint   = "type to talk to the wall · enter/click toggles the gate · esc quits"
)

// Layout
const (
	// ButtonPadding is the horizontal padding inside the gate button border
	ButtonPadding = 2

	// InputMaxLength caps the text field; the oldest runes are dropped beyond it
	InputMaxLength = 256
)

// Base palette used while the gate is closed
const (
	ThemeBackground   = "#0b0b10"
	ThemeForeground   = "#d8d8d8"
	ThemeTitle        = "#c0392b"
	ThemeButtonBorder = "#d8d8d8"
	ThemeWallFrame    = "#3a2e22"
	ThemeLightIdle    = 0.35 // brightness scale of an inactive indicator
)

// Upside-down palette used while the gate is open
const (
	UpsideBackground = "#05000a"
	UpsideForeground = "#8e7cc3"
	UpsideWallFrame  = "#2a0f3a"
)
