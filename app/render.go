package app

import (
	"fmt"
	"image/color"

	"sparkcalc/calc"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	colorBG       = color.RGBA{R: 0x08, G: 0x0B, B: 0x10, A: 0xFF}
	colorFG       = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorDim      = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorMenuBG   = color.RGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xFF}
	colorBorder   = color.RGBA{R: 0x2B, G: 0x33, B: 0x44, A: 0xFF}
	colorScreenBG = color.RGBA{R: 0xD8, G: 0xE4, B: 0xC8, A: 0xFF}
	colorScreenFG = color.RGBA{R: 0x10, G: 0x18, B: 0x10, A: 0xFF}
	colorAccent   = color.RGBA{R: 0xFF, G: 0xFF, B: 0x4A, A: 0xFF}
	colorError    = color.RGBA{R: 0xFF, G: 0x7F, B: 0x7F, A: 0xFF}
	colorDigitBG  = color.RGBA{R: 0x30, G: 0x34, B: 0x3C, A: 0xFF}
	colorOpBG     = color.RGBA{R: 0x2A, G: 0x4A, B: 0x7A, A: 0xFF}
	colorFuncBG   = color.RGBA{R: 0x3A, G: 0x30, B: 0x4A, A: 0xFF}
	colorClearBG  = color.RGBA{R: 0x7A, G: 0x2A, B: 0x2A, A: 0xFF}
	colorEvalBG   = color.RGBA{R: 0x2A, G: 0x6A, B: 0x3A, A: 0xFF}
)

type fontSet struct {
	label  tinyfont.Fonter
	screen tinyfont.Fonter
}

func defaultFonts() fontSet {
	return fontSet{
		label:  &proggy.TinySZ8pt7b,
		screen: &freemono.Bold12pt7b,
	}
}

func (c *calculator) render() {
	d := c.d
	w, h := c.fb.Width(), c.fb.Height()
	d.fillRect(rect{0, 0, w, h}, colorBG)

	st := c.eng.State()

	// Angle menu.
	d.fillRect(rect{0, 0, w, menuH}, colorMenuBG)
	drawText(d, c.fonts.label, margin, rect{0, 0, w, menuH}, "Angle", colorFG)
	c.renderToggle(c.lay.menuRad, "Rad", st.Angle == calc.Radians)
	c.renderToggle(c.lay.menuDeg, "Deg", st.Angle == calc.Degrees)

	// Display line, right-aligned.
	scr := c.lay.screen
	d.fillRect(scr, colorScreenBG)
	d.outlineRect(scr, colorBorder)
	text := fitLeft(c.fonts.screen, c.eng.DisplayText(), scr.w-8)
	drawText(d, c.fonts.screen, scr.x+scr.w-4-textWidth(c.fonts.screen, text), scr, text, colorScreenFG)

	// Status line.
	op := st.Op.Symbol()
	if op == "" {
		op = " "
	}
	info := fmt.Sprintf("op %s  pending %d  %s", op, len(st.Inputs), st.Angle)
	drawText(d, c.fonts.label, c.lay.status.x, c.lay.status, info, colorDim)
	if c.status != "" {
		sw := textWidth(c.fonts.label, c.status)
		drawText(d, c.fonts.label, c.lay.status.x+c.lay.status.w-sw, c.lay.status, c.status, colorError)
	}

	for row := range c.lay.cells {
		for col, r := range c.lay.cells[row] {
			label := calc.Buttons[row][col]
			d.fillRect(r, buttonColor(label))
			d.outlineRect(r, colorBorder)
			if row == c.curRow && col == c.curCol {
				d.outlineRect(r, colorAccent)
			}
			x := r.x + (r.w-textWidth(c.fonts.label, label))/2
			drawText(d, c.fonts.label, x, r, label, colorFG)
		}
	}
}

func (c *calculator) renderToggle(r rect, label string, on bool) {
	fg := colorDim
	if on {
		c.d.fillRect(r, colorOpBG)
		fg = colorAccent
	}
	c.d.outlineRect(r, colorBorder)
	x := r.x + (r.w-textWidth(c.fonts.label, label))/2
	drawText(c.d, c.fonts.label, x, r, label, fg)
}

func buttonColor(label string) color.RGBA {
	in, err := calc.ParseIntent(label)
	if err != nil {
		return colorDigitBG
	}
	switch in.Kind {
	case calc.IntentOperator:
		return colorOpBG
	case calc.IntentFunc, calc.IntentPercent, calc.IntentChangeSign:
		return colorFuncBG
	case calc.IntentClear, calc.IntentHardClear:
		return colorClearBG
	case calc.IntentEvaluate:
		return colorEvalBG
	default:
		return colorDigitBG
	}
}

// drawText writes s at x with its glyphs vertically centred in r.
func drawText(d drivers.Displayer, f tinyfont.Fonter, x int, r rect, s string, c color.RGBA) {
	info := f.GetGlyph('0').Info()
	top := r.y + (r.h-int(info.Height))/2
	baseline := top - int(info.YOffset)
	tinyfont.WriteLine(d, f, int16(x), int16(baseline), s, c)
}

func textWidth(f tinyfont.Fonter, s string) int {
	w, _ := tinyfont.LineWidth(f, s)
	return int(w)
}

// fitLeft drops leading runes until s fits in maxW, marking the cut with "<".
func fitLeft(f tinyfont.Fonter, s string, maxW int) string {
	if textWidth(f, s) <= maxW {
		return s
	}
	r := []rune(s)
	for len(r) > 0 {
		r = r[1:]
		t := "<" + string(r)
		if textWidth(f, t) <= maxW {
			return t
		}
	}
	return ""
}
