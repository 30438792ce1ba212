package app

import (
	"errors"
	"fmt"
	"strings"

	"sparkcalc/calc"
	"sparkcalc/hal"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/afero"
)

// ErrScriptDone is returned by the step func once the script has been
// replayed and Config.ExitOnScriptEnd is set.
var ErrScriptDone = errors.New("app: script done")

// statusTicks is how long a status message stays up (1 tick = 1ms on host).
const statusTicks = 2000

// Config configures the calculator task built by New.
type Config struct {
	Angle calc.AngleMode

	// Script names a file of button presses replayed one per step.
	Script string
	Fs     afero.Fs

	ExitOnScriptEnd bool

	// Trace logs every press and the resulting display text.
	Trace bool
	// Debug additionally dumps the engine state after every press.
	Debug bool
}

type calculator struct {
	eng *calc.Engine
	log hal.Logger

	fb hal.Framebuffer
	d  *fbDisplay

	keys  <-chan hal.KeyEvent
	ptrs  <-chan hal.PointerEvent
	ticks <-chan uint64

	lay    layout
	fonts  fontSet
	curRow int
	curCol int

	now         uint64
	status      string
	statusUntil uint64

	script []string
	exit   bool
	trace  bool
	debug  bool

	dirty bool
}

// New builds the calculator on h and returns its per-tick step func.
func New(h hal.HAL, cfg Config) (func() error, error) {
	c, err := newCalculator(h, cfg)
	if err != nil {
		return nil, err
	}
	return c.step, nil
}

func newCalculator(h hal.HAL, cfg Config) (*calculator, error) {
	if h == nil {
		return nil, errors.New("app: nil hal")
	}
	c := &calculator{
		eng:   calc.NewEngine(),
		log:   h.Logger(),
		exit:  cfg.ExitOnScriptEnd,
		trace: cfg.Trace || cfg.Debug,
		debug: cfg.Debug,
		dirty: true,
	}
	if c.log == nil {
		c.log = nopLogger{}
	}
	c.eng.SetAngleMode(cfg.Angle)

	if disp := h.Display(); disp != nil {
		c.fb = disp.Framebuffer()
	}
	if c.fb == nil {
		return nil, errors.New("app: no framebuffer")
	}
	if c.fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("app: unsupported pixel format %d", c.fb.Format())
	}
	c.d = newFBDisplay(c.fb)
	c.lay = newLayout(c.fb.Width(), c.fb.Height())
	c.fonts = defaultFonts()

	if in := h.Input(); in != nil {
		if kbd := in.Keyboard(); kbd != nil {
			c.keys = kbd.Events()
		}
		if ptr := in.Pointer(); ptr != nil {
			c.ptrs = ptr.Events()
		}
	}
	if t := h.Time(); t != nil {
		c.ticks = t.Ticks()
	}

	if cfg.Script != "" {
		fs := cfg.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		steps, err := LoadScript(fs, cfg.Script)
		if err != nil {
			return nil, err
		}
		c.script = steps
		c.log.WriteLineString(fmt.Sprintf("calc: replaying %d presses from %s", len(steps), cfg.Script))
	}

	c.log.WriteLineString("calc: ready, angle=" + cfg.Angle.String())
	return c, nil
}

// step handles everything that arrived since the last call, then repaints
// if anything changed. Presses are applied one at a time, in arrival order.
func (c *calculator) step() error {
	c.drainTicks()
	c.drainInput()

	if len(c.script) > 0 {
		tok := c.script[0]
		c.script = c.script[1:]
		c.runScriptStep(tok)
		if len(c.script) == 0 {
			c.log.WriteLineString("calc: script done, display=" + c.eng.DisplayText())
		}
	} else if c.exit {
		return ErrScriptDone
	}

	if c.status != "" && c.now >= c.statusUntil {
		c.status = ""
		c.dirty = true
	}

	if c.dirty {
		c.dirty = false
		c.render()
		return c.fb.Present()
	}
	return nil
}

func (c *calculator) drainTicks() {
	if c.ticks == nil {
		return
	}
	for {
		select {
		case seq := <-c.ticks:
			c.now = seq
		default:
			return
		}
	}
}

// drainInput handles queued key and pointer events. A nil channel never
// becomes ready, so missing devices are skipped.
func (c *calculator) drainInput() {
	for {
		select {
		case ev := <-c.keys:
			c.handleKey(ev)
		case ev := <-c.ptrs:
			c.handlePointer(ev)
		default:
			return
		}
	}
}

func (c *calculator) handleKey(ev hal.KeyEvent) {
	action, label := mapKey(ev)
	switch action {
	case keyPress:
		c.press(label)
	case keyActivate:
		c.press(calc.Buttons[c.curRow][c.curCol])
	case keyMoveUp:
		c.moveCursor(-1, 0)
	case keyMoveDown:
		c.moveCursor(1, 0)
	case keyMoveLeft:
		c.moveCursor(0, -1)
	case keyMoveRight:
		c.moveCursor(0, 1)
	case keyRadians:
		c.setAngleMode(calc.Radians)
	case keyDegrees:
		c.setAngleMode(calc.Degrees)
	}
}

func (c *calculator) handlePointer(ev hal.PointerEvent) {
	kind, row, col := c.lay.hit(ev.X, ev.Y)
	switch kind {
	case hitCell:
		c.curRow, c.curCol = row, col
		c.press(calc.Buttons[row][col])
	case hitRadians:
		c.setAngleMode(calc.Radians)
	case hitDegrees:
		c.setAngleMode(calc.Degrees)
	}
}

func (c *calculator) moveCursor(dr, dc int) {
	c.curRow = (c.curRow + dr + gridRows) % gridRows
	c.curCol = (c.curCol + dc + gridCols) % gridCols
	c.dirty = true
}

func (c *calculator) setAngleMode(m calc.AngleMode) {
	if c.eng.AngleMode() == m {
		return
	}
	c.eng.SetAngleMode(m)
	c.log.WriteLineString("calc: angle=" + m.String())
	c.dirty = true
}

func (c *calculator) runScriptStep(tok string) {
	if name, ok := strings.CutPrefix(tok, "@"); ok {
		m, err := calc.ParseAngleMode(name)
		if err != nil {
			c.log.WriteLineString(err.Error())
			return
		}
		c.setAngleMode(m)
		return
	}
	c.press(tok)
}

func (c *calculator) press(label string) {
	c.dirty = true
	err := c.eng.Press(label)
	switch {
	case err == nil:
		c.status = ""
	case errors.Is(err, calc.ErrEmptyHistory):
		c.setStatus("empty history")
		c.log.WriteLineString(fmt.Sprintf("press %s: %v", label, err))
	default:
		c.setStatus("error")
		c.log.WriteLineString(fmt.Sprintf("press %s: %v", label, err))
	}

	if c.trace {
		c.log.WriteLineString(fmt.Sprintf("press %s -> %s", label, c.eng.DisplayText()))
	}
	if c.debug {
		c.log.WriteLineString(strings.TrimRight(spew.Sdump(c.eng.State()), "\n"))
	}
}

func (c *calculator) setStatus(s string) {
	c.status = s
	c.statusUntil = c.now + statusTicks
}

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}
func (nopLogger) WriteLineBytes([]byte)  {}
