package app

import "sparkcalc/calc"

const (
	gridRows = len(calc.Buttons)
	gridCols = len(calc.Buttons[0])

	margin  = 6
	gap     = 4
	menuH   = 16
	screenH = 40
	statusH = 14
)

type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type hitKind uint8

const (
	hitNone hitKind = iota
	hitCell
	hitRadians
	hitDegrees
)

// layout places the angle menu, the display line, the status line and the
// button grid, top to bottom.
type layout struct {
	menuRad rect
	menuDeg rect
	screen  rect
	status  rect
	cells   [gridRows][gridCols]rect
}

func newLayout(w, h int) layout {
	var l layout
	l.menuRad = rect{x: 58, y: 2, w: 36, h: menuH - 4}
	l.menuDeg = rect{x: 98, y: 2, w: 36, h: menuH - 4}
	l.screen = rect{x: margin, y: menuH + gap, w: w - 2*margin, h: screenH}
	l.status = rect{x: margin, y: l.screen.y + l.screen.h + 2, w: w - 2*margin, h: statusH}

	top := l.status.y + l.status.h + gap
	cellW := (w - 2*margin - (gridCols-1)*gap) / gridCols
	cellH := (h - top - margin - (gridRows-1)*gap) / gridRows
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			l.cells[row][col] = rect{
				x: margin + col*(cellW+gap),
				y: top + row*(cellH+gap),
				w: cellW,
				h: cellH,
			}
		}
	}
	return l
}

func (l layout) hit(x, y int) (kind hitKind, row, col int) {
	switch {
	case l.menuRad.contains(x, y):
		return hitRadians, 0, 0
	case l.menuDeg.contains(x, y):
		return hitDegrees, 0, 0
	}
	for row := range l.cells {
		for col := range l.cells[row] {
			if l.cells[row][col].contains(x, y) {
				return hitCell, row, col
			}
		}
	}
	return hitNone, 0, 0
}
