package calc

import (
	"fmt"
	"sync"
)

// Engine is the calculator state machine: an accumulator, the armed binary
// operation and the angle mode used by trig functions.
//
// Each Dispatch runs to completion under the engine lock.
type Engine struct {
	mu   sync.Mutex
	acc  *Accumulator
	op   Op
	mode AngleMode
}

// State is a copy of the engine state.
type State struct {
	Value   float64
	Display string
	Inputs  []float64
	Op      Op
	Angle   AngleMode
}

type handler func(e *Engine, in Intent) error

var handlers = map[IntentKind]handler{
	IntentDigit:      (*Engine).digit,
	IntentDecimal:    (*Engine).decimal,
	IntentOperator:   (*Engine).operator,
	IntentEvaluate:   (*Engine).evaluate,
	IntentClear:      (*Engine).clear,
	IntentHardClear:  (*Engine).hardClear,
	IntentChangeSign: (*Engine).changeSign,
	IntentPercent:    (*Engine).percent,
	IntentFunc:       (*Engine).unary,
}

// NewEngine returns an engine in radians with nothing armed.
func NewEngine() *Engine {
	return &Engine{acc: NewAccumulator()}
}

// Dispatch applies one intent.
//
// An evaluate with an armed operation and no queued operand returns
// ErrEmptyHistory and leaves the state unchanged.
func (e *Engine) Dispatch(in Intent) error {
	h, ok := handlers[in.Kind]
	if !ok {
		return fmt.Errorf("%w: kind %d", ErrInvalidIntent, in.Kind)
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return h(e, in)
}

// Press parses a button label and dispatches it.
func (e *Engine) Press(label string) error {
	in, err := ParseIntent(label)
	if err != nil {
		return err
	}
	return e.Dispatch(in)
}

// DisplayText returns the text the screen should show.
func (e *Engine) DisplayText() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.acc.Display()
}

// SetAngleMode selects how sin, cos and tan read the value.
func (e *Engine) SetAngleMode(m AngleMode) {
	e.mu.Lock()
	e.mode = m
	e.mu.Unlock()
}

// AngleMode returns the current angle mode.
func (e *Engine) AngleMode() AngleMode {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mode
}

// ArmedOp returns the operation the next evaluate will apply.
func (e *Engine) ArmedOp() Op {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.op
}

// State returns a snapshot of the engine.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return State{
		Value:   e.acc.Value(),
		Display: e.acc.StoredDisplay(),
		Inputs:  e.acc.Inputs(),
		Op:      e.op,
		Angle:   e.mode,
	}
}

// sync copies value into the stored display text.
func (e *Engine) sync() {
	e.acc.SetDisplay(e.acc.Value())
}

func (e *Engine) digit(in Intent) error {
	if in.Digit > 9 {
		return fmt.Errorf("%w: digit %d", ErrInvalidIntent, in.Digit)
	}
	d := float64(in.Digit)
	v := d
	if cur := e.acc.Value(); cur != 0 {
		v = cur*10 + d
	}
	e.acc.SetValue(v)
	e.sync()
	return nil
}

// decimal accepts the point button without changing the value. There is
// no fractional entry path.
func (e *Engine) decimal(Intent) error {
	e.sync()
	return nil
}

func (e *Engine) operator(in Intent) error {
	if in.Op == OpNone || in.Op > OpDivide {
		return fmt.Errorf("%w: operator %s", ErrInvalidIntent, in.Op)
	}
	e.op = in.Op
	e.acc.StoreInput(e.acc.Value())
	e.acc.SetValue(0)
	e.sync()
	return nil
}

// evaluate pops the front operand as the left-hand side and applies the
// armed operation against the current value. The armed operation stays set
// so repeated presses re-apply it.
func (e *Engine) evaluate(Intent) error {
	if e.op == OpNone {
		return nil
	}
	lhs, err := e.acc.LastInput()
	if err != nil {
		return err
	}
	result, requeue := e.op.apply(lhs, e.acc.Value())
	e.acc.SetValue(result)
	if requeue {
		e.acc.StoreInput(result)
	}
	e.sync()
	return nil
}

func (e *Engine) clear(Intent) error {
	e.acc.Clear()
	e.sync()
	return nil
}

func (e *Engine) hardClear(Intent) error {
	e.acc.Reset()
	e.sync()
	return nil
}

func (e *Engine) changeSign(Intent) error {
	e.acc.ChangeSign()
	e.sync()
	return nil
}

// percent takes the current value as a percentage of the front operand.
// The operand is put back afterwards. With nothing queued the value drops
// to zero and no error is reported.
func (e *Engine) percent(Intent) error {
	amount, ok := e.acc.popInput()
	if ok {
		result := Percent(e.acc.Value(), amount)
		e.acc.StoreInput(amount)
		e.acc.SetValue(result)
	} else {
		e.acc.SetValue(0)
	}
	e.sync()
	return nil
}

func (e *Engine) unary(in Intent) error {
	if in.Func < FuncSin || in.Func > FuncLn {
		return fmt.Errorf("%w: func %d", ErrInvalidIntent, in.Func)
	}
	e.acc.SetValue(in.Func.apply(e.acc.Value(), e.mode))
	e.sync()
	return nil
}
