// Package ui renders the gate, the wall of lights and the text field on a
// terminal screen and routes terminal input to them
package ui

import (
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/upside-gate/constants"
	"github.com/lixenwraith/upside-gate/gate"
	"github.com/lixenwraith/upside-gate/lights"
)

// Gate is the toggle shown as the button
type Gate interface {
	Activate()
	View() gate.View
}

// Wall is the letter wall fed by the text field
type Wall interface {
	OnTextInput(text string) bool
	Indicators() []lights.Indicator
}

// rect is a screen region in cells
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// App owns the screen and the text field
type App struct {
	screen    tcell.Screen
	gate      Gate
	wall      Wall
	scheduler *Scheduler

	width, height int
	input         []rune

	// Button area from the last draw, for mouse hit tests
	button    rect
	mouseDown bool
}

// NewApp creates the app on an initialized screen
func NewApp(screen tcell.Screen, g Gate, w Wall, s *Scheduler) *App {
	width, height := screen.Size()
	return &App{
		screen:    screen,
		gate:      g,
		wall:      w,
		scheduler: s,
		width:     width,
		height:    height,
		input:     make([]rune, 0, constants.InputMaxLength),
	}
}

// Input returns the current text field value
func (a *App) Input() string { return string(a.input) }

// HandleEvent applies one terminal event. It returns false when the user quits.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)

	case *tcell.EventMouse:
		a.handleMouse(ev)

	case *tcell.EventResize:
		a.width, a.height = ev.Size()
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false

	case tcell.KeyEnter:
		a.gate.Activate()

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(a.input) == 0 {
			return true
		}
		a.input = a.input[:len(a.input)-1]
		a.wall.OnTextInput(string(a.input))

	case tcell.KeyRune:
		if len(a.input) >= constants.InputMaxLength {
			a.input = append(a.input[:0], a.input[1:]...)
		}
		a.input = append(a.input, ev.Rune())
		a.wall.OnTextInput(string(a.input))
	}
	return true
}

// handleMouse activates the gate on a primary press inside the button
func (a *App) handleMouse(ev *tcell.EventMouse) {
	pressed := ev.Buttons()&tcell.Button1 != 0
	if !pressed {
		a.mouseDown = false
		return
	}
	if a.mouseDown {
		return // drag or held button
	}
	a.mouseDown = true

	x, y := ev.Position()
	if a.button.contains(x, y) {
		a.gate.Activate()
	}
}

// Run drives the app until the user quits or the screen closes
func (a *App) Run() {
	a.screen.EnableMouse()
	defer a.scheduler.Close()

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, constants.EventQueueSize)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	a.Draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				log.Printf("ui: screen closed")
				return
			}
			if !a.HandleEvent(ev) {
				return
			}

		case f := <-a.scheduler.C():
			f()

		case <-ticker.C:
			a.Draw()
		}
	}
}
