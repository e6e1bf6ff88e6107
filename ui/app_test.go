package ui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/upside-gate/constants"
	"github.com/lixenwraith/upside-gate/gate"
	"github.com/lixenwraith/upside-gate/lights"
)

// silentSound satisfies both the gate and the wall without producing audio
type silentSound struct {
	bursts int
	tones  int
}

func (s *silentSound) Initialize() error { return nil }
func (s *silentSound) PlayNoiseBurst(time.Duration, float64) { s.bursts++ }
func (s *silentSound) RampDronePitch(float64, time.Duration) {}
func (s *silentSound) PlayTone(float64, time.Duration, float64) { s.tones++ }

// recordingWall captures every value the text field reports
type recordingWall struct {
	inputs []string
}

func (w *recordingWall) OnTextInput(text string) bool {
	w.inputs = append(w.inputs, text)
	return true
}

func (w *recordingWall) Indicators() []lights.Indicator { return nil }

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestApp(t *testing.T, w Wall) (*App, *gate.Gate, *silentSound, tcell.SimulationScreen) {
	t.Helper()
	screen := newTestScreen(t)
	snd := &silentSound{}
	g := gate.New(snd)
	if w == nil {
		w = lights.NewWall(snd, NewScheduler(), lights.Config{Rand: rand.New(rand.NewSource(7))})
	}
	return NewApp(screen, g, w, NewScheduler()), g, snd, screen
}

// rowText returns the visible characters of row y
func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func keyRune(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

// TestDrawInitialScreen verifies the closed gate look
func TestDrawInitialScreen(t *testing.T) {
	app, _, _, screen := newTestApp(t, nil)
	app.Draw()

	if !strings.Contains(rowText(screen, titleRow), constants.Title) {
		t.Errorf("Expected title on row %d, got %q", titleRow, rowText(screen, titleRow))
	}
	if !strings.Contains(rowText(screen, buttonRow+1), "OPEN THE GATE") {
		t.Errorf("Expected closed label, got %q", rowText(screen, buttonRow+1))
	}
	if row := rowText(screen, contentRow); strings.TrimSpace(row) != "" {
		t.Errorf("Expected alternate content hidden while the gate is closed, got %q", row)
	}
}

// TestEnterTogglesGate verifies Enter flips the gate and two presses restore the screen
func TestEnterTogglesGate(t *testing.T) {
	app, g, snd, screen := newTestApp(t, nil)
	app.Draw()
	before := rowText(screen, buttonRow+1)

	if !app.HandleEvent(key(tcell.KeyEnter)) {
		t.Fatal("Enter should not quit")
	}
	app.Draw()

	if g.State() != gate.Open {
		t.Fatalf("Expected gate open, got %s", g.State())
	}
	if !strings.Contains(rowText(screen, buttonRow+1), "CLOSE THE GATE!") {
		t.Errorf("Expected open label, got %q", rowText(screen, buttonRow+1))
	}
	if !strings.Contains(rowText(screen, contentRow), flipText(constants.UpsideDownContent)) {
		t.Errorf("Expected alternate content drawn upside down, got %q", rowText(screen, contentRow))
	}

	app.HandleEvent(key(tcell.KeyEnter))
	app.Draw()

	if got := rowText(screen, buttonRow+1); got != before {
		t.Errorf("Expected button row restored to %q, got %q", before, got)
	}
	if snd.bursts != 2 {
		t.Errorf("Expected a noise burst per toggle, got %d", snd.bursts)
	}
}

// TestFlipText verifies text is reversed and each glyph rotated
func TestFlipText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercase", "ab.", "˙qɐ"},
		{"mixed case", "Hi!", "¡ᴉH"},
		{"unmapped kept", "x 1o", "o1 x"},
		{"brackets swap", "(ok)", "(ʞo)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := flipText(tt.in); got != tt.want {
				t.Errorf("flipText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}

	// Turning it over twice gives back text built only from paired glyphs
	if got := flipText(flipText("pqdbun")); got != "pqdbun" {
		t.Errorf("Expected double flip to restore %q, got %q", "pqdbun", got)
	}
}

// TestOpenGateTitleColor verifies the title override reaches the screen
func TestOpenGateTitleColor(t *testing.T) {
	app, _, _, screen := newTestApp(t, nil)
	app.HandleEvent(key(tcell.KeyEnter))
	app.Draw()

	x := strings.Index(rowText(screen, titleRow), constants.Title)
	if x < 0 {
		t.Fatal("Title not drawn")
	}
	_, _, style, _ := screen.GetContent(x, titleRow)
	fg, _, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Expected red title, got %v", fg)
	}
}

// TestMouseClickOnButton verifies clicks inside the button toggle once per press
func TestMouseClickOnButton(t *testing.T) {
	app, g, _, _ := newTestApp(t, nil)
	app.Draw()

	cx := app.button.x + app.button.w/2
	cy := app.button.y + 1

	// Outside the button
	app.HandleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	app.HandleEvent(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	if g.State() != gate.Closed {
		t.Fatal("Expected click outside the button to be ignored")
	}

	// Press, drag within, release
	app.HandleEvent(tcell.NewEventMouse(cx, cy, tcell.Button1, tcell.ModNone))
	app.HandleEvent(tcell.NewEventMouse(cx+1, cy, tcell.Button1, tcell.ModNone))
	app.HandleEvent(tcell.NewEventMouse(cx+1, cy, tcell.ButtonNone, tcell.ModNone))
	if g.State() != gate.Open {
		t.Fatalf("Expected one toggle per press, got %s", g.State())
	}

	app.HandleEvent(tcell.NewEventMouse(cx, cy, tcell.Button1, tcell.ModNone))
	if g.State() != gate.Closed {
		t.Errorf("Expected second click to close the gate, got %s", g.State())
	}
}

// TestTypingFeedsWall verifies every edit reports the whole field value
func TestTypingFeedsWall(t *testing.T) {
	wall := &recordingWall{}
	app, _, _, _ := newTestApp(t, wall)

	app.HandleEvent(keyRune('a'))
	app.HandleEvent(keyRune('1'))
	app.HandleEvent(keyRune('b'))
	app.HandleEvent(key(tcell.KeyBackspace2))

	want := []string{"a", "a1", "a1b", "a1"}
	if len(wall.inputs) != len(want) {
		t.Fatalf("Expected inputs %v, got %v", want, wall.inputs)
	}
	for i := range want {
		if wall.inputs[i] != want[i] {
			t.Errorf("Input %d: expected %q, got %q", i, want[i], wall.inputs[i])
		}
	}
	if app.Input() != "a1" {
		t.Errorf("Expected field %q, got %q", "a1", app.Input())
	}
}

// TestBackspaceOnEmptyField verifies nothing is reported for an empty field
func TestBackspaceOnEmptyField(t *testing.T) {
	wall := &recordingWall{}
	app, _, _, _ := newTestApp(t, wall)

	app.HandleEvent(key(tcell.KeyBackspace))
	if len(wall.inputs) != 0 {
		t.Errorf("Expected no input events, got %v", wall.inputs)
	}
}

// TestInputLengthCap verifies the field drops its oldest runes when full
func TestInputLengthCap(t *testing.T) {
	wall := &recordingWall{}
	app, _, _, _ := newTestApp(t, wall)

	for i := 0; i < constants.InputMaxLength; i++ {
		app.HandleEvent(keyRune('x'))
	}
	app.HandleEvent(keyRune('y'))

	got := app.Input()
	if len([]rune(got)) != constants.InputMaxLength {
		t.Errorf("Expected field capped at %d, got %d", constants.InputMaxLength, len([]rune(got)))
	}
	if !strings.HasSuffix(got, "y") {
		t.Error("Expected newest rune kept")
	}
}

// TestTypingFlashesWall verifies the "A", "1", "B" sequence through the real wall
func TestTypingFlashesWall(t *testing.T) {
	app, _, snd, _ := newTestApp(t, nil)

	app.HandleEvent(keyRune('A'))
	app.HandleEvent(keyRune('1'))
	app.HandleEvent(keyRune('B'))

	if snd.tones != 2 {
		t.Errorf("Expected 2 tones, got %d", snd.tones)
	}

	ind, _ := app.wall.(*lights.Wall).Indicator('B')
	if !ind.Active {
		t.Error("Expected B lit")
	}
}

// TestQuitKeys verifies Escape and Ctrl-C end the loop
func TestQuitKeys(t *testing.T) {
	app, _, _, _ := newTestApp(t, &recordingWall{})

	if app.HandleEvent(key(tcell.KeyEscape)) {
		t.Error("Expected Escape to quit")
	}
	if app.HandleEvent(key(tcell.KeyCtrlC)) {
		t.Error("Expected Ctrl-C to quit")
	}
}

// TestWallDrawsEveryLetter verifies all 26 letters are placed inside the wall
func TestWallDrawsEveryLetter(t *testing.T) {
	app, _, _, screen := newTestApp(t, nil)
	app.Draw()

	area := app.wallArea()
	var wall strings.Builder
	for y := area.y; y < area.y+area.h; y++ {
		wall.WriteString(rowText(screen, y))
	}
	text := wall.String()

	for r := 'A'; r <= 'Z'; r++ {
		if !strings.ContainsRune(text, r) {
			t.Errorf("Letter %c missing from the wall", r)
		}
	}
}

// TestCellForRowBands verifies percentages map into the wall rectangle
func TestCellForRowBands(t *testing.T) {
	area := rect{x: 2, y: 9, w: 76, h: 12}

	for i := 0; i < 26; i++ {
		pos := lights.LayoutPosition(i)
		x, y := area.cellFor(pos.Top, pos.Left)
		if !area.contains(x, y) {
			t.Errorf("Index %d at (%d,%d) outside wall %+v", i, x, y, area)
		}
	}
}

// TestResize verifies the app tracks the new size
func TestResize(t *testing.T) {
	app, _, _, screen := newTestApp(t, nil)
	screen.SetSize(100, 30)

	app.HandleEvent(tcell.NewEventResize(100, 30))
	if app.width != 100 || app.height != 30 {
		t.Errorf("Expected 100x30, got %dx%d", app.width, app.height)
	}
	app.Draw()
}
