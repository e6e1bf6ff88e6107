package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/upside-gate/constants"
)

const (
	titleRow   = 1
	buttonRow  = 3 // top border; label sits one row below
	contentRow = 7
	wallTop    = 9
	bulbRune   = '●'
)

// Draw renders one frame
func (a *App) Draw() {
	view := a.gate.View()
	st := resolveStyles(view)

	a.screen.SetStyle(st.base)
	a.screen.Clear()

	a.drawCentered(titleRow, constants.Title, st.title)
	a.drawButton(view.Label, st)
	if !view.ContentHidden {
		content := constants.UpsideDownContent
		if view.UpsideDown {
			content = flipText(content)
		}
		a.drawCentered(contentRow, content, st.content)
	}
	a.drawWall(st)
	a.drawInput(st)

	a.screen.Show()
}

// flipped maps a glyph to the lookalike it becomes when rotated 180 degrees
var flipped = map[rune]rune{
	'a': 'ɐ', 'b': 'q', 'c': 'ɔ', 'd': 'p', 'e': 'ǝ', 'f': 'ɟ', 'g': 'ƃ',
	'h': 'ɥ', 'i': 'ᴉ', 'j': 'ɾ', 'k': 'ʞ', 'm': 'ɯ', 'n': 'u', 'p': 'd',
	'q': 'b', 'r': 'ɹ', 't': 'ʇ', 'u': 'n', 'v': 'ʌ', 'w': 'ʍ', 'y': 'ʎ',
	'A': '∀', 'C': 'Ɔ', 'E': 'Ǝ', 'F': 'Ⅎ', 'G': '⅁', 'J': 'ſ', 'L': '⅂',
	'M': 'W', 'P': 'Ԁ', 'T': '⊥', 'U': '∩', 'V': 'Λ', 'W': 'M', 'Y': '⅄',
	'.': '˙', ',': '\'', '\'': ',', '!': '¡', '?': '¿', '(': ')', ')': '(',
	'&': '⅋', '_': '‾',
}

// flipText returns s as it reads turned upside down
func flipText(s string) string {
	rs := []rune(s)
	out := make([]rune, len(rs))
	for i, r := range rs {
		if f, ok := flipped[r]; ok {
			r = f
		}
		out[len(rs)-1-i] = r
	}
	return string(out)
}

// drawText writes s from x, advancing by cell width, and returns the next column
func (a *App) drawText(x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= a.width {
			break
		}
		a.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}

func (a *App) drawCentered(y int, s string, style tcell.Style) {
	x := (a.width - runewidth.StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	a.drawText(x, y, s, style)
}

func (a *App) fill(r rect, style tcell.Style) {
	for y := r.y; y < r.y+r.h; y++ {
		for x := r.x; x < r.x+r.w; x++ {
			a.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (a *App) drawBox(r rect, style tcell.Style) {
	right, bottom := r.x+r.w-1, r.y+r.h-1
	for x := r.x + 1; x < right; x++ {
		a.screen.SetContent(x, r.y, tcell.RuneHLine, nil, style)
		a.screen.SetContent(x, bottom, tcell.RuneHLine, nil, style)
	}
	for y := r.y + 1; y < bottom; y++ {
		a.screen.SetContent(r.x, y, tcell.RuneVLine, nil, style)
		a.screen.SetContent(right, y, tcell.RuneVLine, nil, style)
	}
	a.screen.SetContent(r.x, r.y, tcell.RuneULCorner, nil, style)
	a.screen.SetContent(right, r.y, tcell.RuneURCorner, nil, style)
	a.screen.SetContent(r.x, bottom, tcell.RuneLLCorner, nil, style)
	a.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

func (a *App) drawButton(label string, st styles) {
	w := runewidth.StringWidth(label) + 2*constants.ButtonPadding + 2
	a.button = rect{x: (a.width - w) / 2, y: buttonRow, w: w, h: 3}
	if a.button.x < 0 {
		a.button.x = 0
	}

	a.fill(rect{a.button.x + 1, a.button.y + 1, a.button.w - 2, 1}, st.button)
	a.drawBox(a.button, st.border)
	a.drawText(a.button.x+1+constants.ButtonPadding, a.button.y+1, label, st.button)
}

// wallArea is the framed region the indicators are laid out in
func (a *App) wallArea() rect {
	return rect{x: 2, y: wallTop, w: a.width - 4, h: a.height - wallTop - 3}
}

// cellFor maps an indicator position in percent to a screen cell inside the wall
func (r rect) cellFor(top, left float64) (int, int) {
	return r.x + int(left*float64(r.w)/100), r.y + int(top*float64(r.h)/100)
}

func (a *App) drawWall(st styles) {
	area := a.wallArea()
	if area.w < 3 || area.h < 3 {
		return
	}
	a.drawBox(area, st.wallFrame)

	for _, ind := range a.wall.Indicators() {
		x, y := area.cellFor(ind.Pos.Top, ind.Pos.Left)
		a.screen.SetContent(x, y, bulbRune, nil, st.lightStyle(ind.Color, ind.Active))
		if y+1 < area.y+area.h-1 {
			a.screen.SetContent(x, y+1, ind.Letter, nil, st.base)
		}
	}
}

// drawInput shows the tail of the text field that fits on the prompt row
func (a *App) drawInput(st styles) {
	y := a.height - 2
	if y < 0 {
		return
	}
	x := a.drawText(0, y, constants.InputPrompt, st.base)

	visible := a.input
	room := a.width - x - 1
	for room >= 0 && runewidth.StringWidth(string(visible)) > room && len(visible) > 0 {
		visible = visible[1:]
	}
	x = a.drawText(x, y, string(visible), st.base)
	a.screen.ShowCursor(x, y)

	a.drawText(0, a.height-1, constants.InputHint, st.hint)
}
