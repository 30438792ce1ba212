package app

import (
	"unicode"

	"sparkcalc/hal"
)

type keyAction uint8

const (
	keyNone keyAction = iota
	keyPress
	keyMoveUp
	keyMoveDown
	keyMoveLeft
	keyMoveRight
	keyActivate
	keyRadians
	keyDegrees
)

var runeLabels = map[rune]string{
	'.': ".",
	'+': "+",
	'-': "-",
	'*': "*",
	'x': "*",
	'/': "/",
	'%': "%",
	'=': "=",
	'n': "+/-",
	'c': "C",
	's': "sin",
	'o': "cos",
	't': "tan",
	'e': "exp",
	'l': "ln",
}

var codeLabels = map[hal.KeyCode]string{
	hal.KeyEnter:     "=",
	hal.KeyBackspace: "C",
	hal.KeyEscape:    "CE",
	hal.KeyDelete:    "CE",
}

// mapKey translates a key event into an action. For keyPress, label is the
// button to press. Letter keys ignore case. Releases are ignored.
func mapKey(ev hal.KeyEvent) (keyAction, string) {
	if !ev.Press {
		return keyNone, ""
	}
	if ev.Code == hal.KeyUnknown {
		r := unicode.ToLower(ev.Rune)
		switch {
		case r >= '0' && r <= '9':
			return keyPress, string(r)
		case r == ' ':
			return keyActivate, ""
		case r == 'r':
			return keyRadians, ""
		case r == 'd':
			return keyDegrees, ""
		}
		if label, ok := runeLabels[r]; ok {
			return keyPress, label
		}
		return keyNone, ""
	}

	switch ev.Code {
	case hal.KeyUp:
		return keyMoveUp, ""
	case hal.KeyDown:
		return keyMoveDown, ""
	case hal.KeyLeft:
		return keyMoveLeft, ""
	case hal.KeyRight:
		return keyMoveRight, ""
	case hal.KeyF1:
		return keyRadians, ""
	case hal.KeyF2:
		return keyDegrees, ""
	}
	if label, ok := codeLabels[ev.Code]; ok {
		return keyPress, label
	}
	return keyNone, ""
}
