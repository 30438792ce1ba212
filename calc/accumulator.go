package calc

// Accumulator holds the live value, its display text, and the pending
// operand queue.
//
// The display field is only updated through SetDisplay. Display() always
// re-derives the text from value.
type Accumulator struct {
	value   float64
	display string
	inputs  []float64
}

// NewAccumulator returns a zeroed accumulator showing "0".
func NewAccumulator() *Accumulator {
	return &Accumulator{display: "0"}
}

// Reset performs a hard clear: value is zeroed and all queued operands are dropped.
func (a *Accumulator) Reset() {
	a.value = 0
	a.inputs = a.inputs[:0]
}

// Clear zeroes the value and leaves the queue untouched.
func (a *Accumulator) Clear() {
	a.value = 0
}

// Value returns the current operand.
func (a *Accumulator) Value() float64 { return a.value }

// SetValue overwrites value. The stored display text is not touched.
func (a *Accumulator) SetValue(v float64) {
	a.value = v
}

// SetDisplay sets the stored display text to the formatted form of v.
func (a *Accumulator) SetDisplay(v float64) {
	a.display = FormatValue(v)
}

// StoredDisplay returns the text last written by SetDisplay.
func (a *Accumulator) StoredDisplay() string { return a.display }

// Display returns the formatted current value.
func (a *Accumulator) Display() string {
	return FormatValue(a.value)
}

// StoreInput appends v to the back of the queue.
func (a *Accumulator) StoreInput(v float64) {
	a.inputs = append(a.inputs, v)
}

// LastInput removes and returns the front of the queue.
func (a *Accumulator) LastInput() (float64, error) {
	v, ok := a.popInput()
	if !ok {
		return 0, ErrEmptyHistory
	}
	return v, nil
}

func (a *Accumulator) popInput() (float64, bool) {
	if len(a.inputs) == 0 {
		return 0, false
	}
	v := a.inputs[0]
	copy(a.inputs, a.inputs[1:])
	a.inputs = a.inputs[:len(a.inputs)-1]
	return v, true
}

// Pending reports the number of queued operands.
func (a *Accumulator) Pending() int { return len(a.inputs) }

// Inputs returns a copy of the queue, front first.
func (a *Accumulator) Inputs() []float64 {
	out := make([]float64, len(a.inputs))
	copy(out, a.inputs)
	return out
}

// ChangeSign negates the value. Zero becomes negative zero.
func (a *Accumulator) ChangeSign() {
	a.value = -a.value
}

// Percent returns p percent of base.
func Percent(p, base float64) float64 {
	return base * (p / 100)
}
