package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/upside-gate/constants"
	"github.com/lixenwraith/upside-gate/gate"
)

// palette is the resolved set of colors for one theme
type palette struct {
	background colorful.Color
	foreground colorful.Color
	title      colorful.Color
	border     colorful.Color
	wallFrame  colorful.Color
}

var (
	closedPalette = palette{
		background: mustHex(constants.ThemeBackground),
		foreground: mustHex(constants.ThemeForeground),
		title:      mustHex(constants.ThemeTitle),
		border:     mustHex(constants.ThemeButtonBorder),
		wallFrame:  mustHex(constants.ThemeWallFrame),
	}
	upsidePalette = palette{
		background: mustHex(constants.UpsideBackground),
		foreground: mustHex(constants.UpsideForeground),
		title:      mustHex(constants.ThemeTitle),
		border:     mustHex(constants.UpsideForeground),
		wallFrame:  mustHex(constants.UpsideWallFrame),
	}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// override returns the parsed hex color, or fallback when hex is empty or invalid
func override(hex string, fallback colorful.Color) colorful.Color {
	if hex == "" {
		return fallback
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallback
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// styles is the per-frame set of tcell styles derived from the gate view
type styles struct {
	base      tcell.Style
	title     tcell.Style
	button    tcell.Style
	border    tcell.Style
	content   tcell.Style
	wallFrame tcell.Style
	hint      tcell.Style
	bg        colorful.Color
}

func resolveStyles(v gate.View) styles {
	p := closedPalette
	if v.UpsideDown {
		p = upsidePalette
	}
	bg := toTcell(p.background)
	base := tcell.StyleDefault.Background(bg).Foreground(toTcell(p.foreground))

	buttonBack := override(v.ButtonBack, p.background)

	return styles{
		base:      base,
		title:     base.Foreground(toTcell(override(v.TitleColor, p.title))).Bold(true),
		button:    tcell.StyleDefault.Background(toTcell(buttonBack)).Foreground(toTcell(override(v.ButtonText, p.foreground))).Bold(true),
		border:    base.Foreground(toTcell(override(v.ButtonBorder, p.border))),
		content:   base.Foreground(toTcell(p.foreground)).Italic(true),
		wallFrame: base.Foreground(toTcell(p.wallFrame)),
		hint:      base.Foreground(toTcell(p.foreground.BlendLab(p.background, 0.5))),
		bg:        p.background,
	}
}

// lightStyle renders an indicator: bright and bold while active, dimmed into
// the background otherwise
func (s styles) lightStyle(hex string, active bool) tcell.Style {
	c := override(hex, white)
	if active {
		return s.base.Foreground(toTcell(c.BlendLab(white, 0.25))).Bold(true)
	}
	return s.base.Foreground(toTcell(c.BlendLab(s.bg, 1-constants.ThemeLightIdle)))
}
