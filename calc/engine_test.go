package calc

import (
	"errors"
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func press(t *testing.T, e *Engine, labels ...string) {
	t.Helper()
	for _, l := range labels {
		if err := e.Press(l); err != nil {
			t.Fatalf("press %q: %v", l, err)
		}
	}
}

func TestDigitsAppend(t *testing.T) {
	e := NewEngine()
	press(t, e, "7", "8")
	if got := e.DisplayText(); got != "78" {
		t.Fatalf("display=%q, want 78", got)
	}

	e = NewEngine()
	press(t, e, "1", "2", "3", "4", "5", "6", "7", "8", "9", "0")
	if got := e.DisplayText(); got != "1234567890" {
		t.Fatalf("display=%q, want 1234567890", got)
	}
}

func TestLeadingZeroIsReplaced(t *testing.T) {
	e := NewEngine()
	press(t, e, "0", "0", "4")
	if got := e.DisplayText(); got != "4" {
		t.Fatalf("display=%q, want 4", got)
	}
}

func TestDecimalPointIsInert(t *testing.T) {
	e := NewEngine()
	press(t, e, "1", ".", "5")
	if got := e.DisplayText(); got != "15" {
		t.Fatalf("display=%q, want 15", got)
	}
}

func TestAddEvaluate(t *testing.T) {
	e := NewEngine()
	press(t, e, "7", "+", "8", "=")

	want := State{Value: 15, Display: "15", Inputs: []float64{15}, Op: OpAdd, Angle: Radians}
	if diff := cmp.Diff(want, e.State()); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
}

func TestOperatorQueuesOperandAndZeroes(t *testing.T) {
	e := NewEngine()
	press(t, e, "9", "*")

	want := State{Value: 0, Display: "0", Inputs: []float64{9}, Op: OpMultiply}
	if diff := cmp.Diff(want, e.State()); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}
	if got := e.DisplayText(); got != "0" {
		t.Fatalf("display=%q, want 0", got)
	}
}

func TestChainedEvaluateRequeues(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"add", []string{"7", "+", "8", "=", "="}, "30"},
		{"subtract", []string{"9", "-", "2", "=", "="}, "0"},
		{"multiply", []string{"3", "*", "2", "=", "="}, "36"},
		{"add three times", []string{"1", "+", "1", "=", "=", "="}, "8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			press(t, e, tt.keys...)
			if got := e.DisplayText(); got != tt.want {
				t.Fatalf("display=%q, want %q", got, tt.want)
			}
		})
	}
}

func TestDivideDoesNotRequeue(t *testing.T) {
	e := NewEngine()
	press(t, e, "1", "0", "/", "2", "=")
	if got := e.DisplayText(); got != "5" {
		t.Fatalf("display=%q, want 5", got)
	}
	if n := len(e.State().Inputs); n != 0 {
		t.Fatalf("queue len=%d, want 0", n)
	}

	err := e.Press("=")
	if !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("second = err=%v, want ErrEmptyHistory", err)
	}
	if got := e.DisplayText(); got != "5" {
		t.Fatalf("display after failure=%q, want 5", got)
	}
	if op := e.ArmedOp(); op != OpDivide {
		t.Fatalf("armed op=%s, want divide", op)
	}
}

func TestDivideByZeroFlowsThrough(t *testing.T) {
	e := NewEngine()
	press(t, e, "8", "/", "0", "=")
	if got := e.DisplayText(); got != "+Inf" {
		t.Fatalf("display=%q, want +Inf", got)
	}
}

func TestEvaluateWithoutOperatorIsNoop(t *testing.T) {
	e := NewEngine()
	press(t, e, "4", "2")
	before := e.State()
	press(t, e, "=", "=")
	if diff := cmp.Diff(before, e.State()); diff != "" {
		t.Fatalf("state changed (-before +after):\n%s", diff)
	}
}

func TestEvaluateAfterHardClearFails(t *testing.T) {
	e := NewEngine()
	press(t, e, "5", "+", "CE", "3")
	if err := e.Press("="); !errors.Is(err, ErrEmptyHistory) {
		t.Fatalf("err=%v, want ErrEmptyHistory", err)
	}
	if got := e.DisplayText(); got != "3" {
		t.Fatalf("display=%q, want 3", got)
	}
}

func TestPercentWithoutHistory(t *testing.T) {
	e := NewEngine()
	press(t, e, "CE", "5", "0")
	if err := e.Press("%"); err != nil {
		t.Fatalf("percent: %v", err)
	}
	if got := e.DisplayText(); got != "0" {
		t.Fatalf("display=%q, want 0", got)
	}
}

func TestPercentOfQueuedOperand(t *testing.T) {
	e := NewEngine()
	press(t, e, "4", "+", "5", "0", "%")

	want := State{Value: 2, Display: "2", Inputs: []float64{4}, Op: OpAdd}
	if diff := cmp.Diff(want, e.State()); diff != "" {
		t.Fatalf("state mismatch (-want +got):\n%s", diff)
	}

	press(t, e, "=")
	if got := e.DisplayText(); got != "6" {
		t.Fatalf("display=%q, want 6", got)
	}
}

func TestSoftClearIsIdempotent(t *testing.T) {
	e := NewEngine()
	press(t, e, "3", "+", "4", "-", "6")
	wantInputs := []float64{3, 4}
	for i := 0; i < 3; i++ {
		press(t, e, "C")
		st := e.State()
		if st.Value != 0 || st.Display != "0" {
			t.Fatalf("clear %d: value=%v display=%q", i, st.Value, st.Display)
		}
		if diff := cmp.Diff(wantInputs, st.Inputs); diff != "" {
			t.Fatalf("clear %d: queue changed (-want +got):\n%s", i, diff)
		}
	}
}

func TestHardClearResetsEverything(t *testing.T) {
	e := NewEngine()
	press(t, e, "3", "+", "4", "*", "6")
	press(t, e, "CE")
	st := e.State()
	if st.Value != 0 || len(st.Inputs) != 0 {
		t.Fatalf("after CE value=%v inputs=%v", st.Value, st.Inputs)
	}
	if got := e.DisplayText(); got != "0" {
		t.Fatalf("display=%q, want 0", got)
	}
}

func TestChangeSign(t *testing.T) {
	e := NewEngine()
	press(t, e, "1", "2", "+/-")
	if got := e.DisplayText(); got != "-12" {
		t.Fatalf("display=%q, want -12", got)
	}
	press(t, e, "+/-")
	if got := e.DisplayText(); got != "12" {
		t.Fatalf("display=%q, want 12", got)
	}
}

func TestUnaryRadians(t *testing.T) {
	tests := []struct {
		label string
		in    float64
		want  float64
	}{
		{"sin", 1, math.Sin(1)},
		{"cos", 2, math.Cos(2)},
		{"tan", 3, math.Tan(3)},
		{"exp", 2, math.Exp(2)},
		{"ln", 5, math.Log(5)},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			e := NewEngine()
			press(t, e, FormatValue(tt.in), tt.label)
			if got := e.State().Value; got != tt.want {
				t.Fatalf("%s(%v)=%v, want %v", tt.label, tt.in, got, tt.want)
			}
			if got := e.DisplayText(); got != FormatValue(tt.want) {
				t.Fatalf("display=%q, want %q", got, FormatValue(tt.want))
			}
		})
	}
}

func TestUnaryDegrees(t *testing.T) {
	deg := func(v float64) float64 { return v * 180 / math.Pi }
	tests := []struct {
		label string
		in    float64
		want  float64
	}{
		{"sin", 1, math.Sin(deg(1))},
		{"tan", 2, math.Tan(deg(2))},
		// Degree-mode cos is the arc-cosine of the converted value.
		{"cos", 0, math.Acos(0)},
		{"exp", 1, math.Exp(1)},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			e := NewEngine()
			e.SetAngleMode(Degrees)
			press(t, e, FormatValue(tt.in), tt.label)
			if got := e.State().Value; got != tt.want {
				t.Fatalf("%s(%v)=%v, want %v", tt.label, tt.in, got, tt.want)
			}
		})
	}
}

func TestDegreeCosOutOfDomainIsNaN(t *testing.T) {
	e := NewEngine()
	e.SetAngleMode(Degrees)
	press(t, e, "1", "cos")
	if got := e.DisplayText(); got != "NaN" {
		t.Fatalf("display=%q, want NaN", got)
	}
}

func TestLnDomain(t *testing.T) {
	e := NewEngine()
	press(t, e, "ln")
	if got := e.DisplayText(); got != "-Inf" {
		t.Fatalf("ln(0)=%q, want -Inf", got)
	}

	e = NewEngine()
	press(t, e, "3", "+/-", "ln")
	if got := e.DisplayText(); got != "NaN" {
		t.Fatalf("ln(-3)=%q, want NaN", got)
	}
}

func TestAngleModeDoesNotAffectExpLn(t *testing.T) {
	for _, m := range []AngleMode{Radians, Degrees} {
		e := NewEngine()
		e.SetAngleMode(m)
		press(t, e, "2", "exp", "ln")
		if got := e.State().Value; math.Abs(got-2) > 1e-12 {
			t.Fatalf("%s: ln(exp(2))=%v", m, got)
		}
	}
}

func TestDispatchInvalidIntent(t *testing.T) {
	e := NewEngine()
	bad := []Intent{
		{},
		{Kind: IntentDigit, Digit: 10},
		{Kind: IntentOperator, Op: OpNone},
		{Kind: IntentFunc},
	}
	for _, in := range bad {
		if err := e.Dispatch(in); !errors.Is(err, ErrInvalidIntent) {
			t.Fatalf("Dispatch(%+v) err=%v, want ErrInvalidIntent", in, err)
		}
	}
	if diff := cmp.Diff(NewEngine().State(), e.State()); diff != "" {
		t.Fatalf("invalid intents changed state:\n%s", diff)
	}
}

func TestPressUnknownButton(t *testing.T) {
	e := NewEngine()
	if err := e.Press("sqrt"); !errors.Is(err, ErrUnknownButton) {
		t.Fatalf("err=%v, want ErrUnknownButton", err)
	}
}

func TestConcurrentDispatchAndAngleMode(t *testing.T) {
	e := NewEngine()
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				for _, l := range []string{"7", "+", "="} {
					if err := e.Press(l); err != nil && !errors.Is(err, ErrEmptyHistory) {
						t.Errorf("press %q: %v", l, err)
						return
					}
				}
				if g%2 == 0 {
					e.SetAngleMode(Degrees)
				} else {
					e.SetAngleMode(Radians)
				}
				_ = e.DisplayText()
				_ = e.State()
			}
		}(g)
	}
	wg.Wait()

	if _, err := strconv.ParseFloat(e.DisplayText(), 64); err != nil {
		t.Fatalf("display %q: %v", e.DisplayText(), err)
	}
	if m := e.AngleMode(); m != Radians && m != Degrees {
		t.Fatalf("angle=%v", m)
	}
}
