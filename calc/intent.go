package calc

import (
	"fmt"
	"strings"
)

// IntentKind names a discrete user action.
type IntentKind uint8

const (
	IntentDigit IntentKind = iota + 1
	IntentDecimal
	IntentOperator
	IntentEvaluate
	IntentClear
	IntentHardClear
	IntentChangeSign
	IntentPercent
	IntentFunc
)

func (k IntentKind) String() string {
	switch k {
	case IntentDigit:
		return "digit"
	case IntentDecimal:
		return "decimal"
	case IntentOperator:
		return "operator"
	case IntentEvaluate:
		return "evaluate"
	case IntentClear:
		return "clear"
	case IntentHardClear:
		return "hard-clear"
	case IntentChangeSign:
		return "change-sign"
	case IntentPercent:
		return "percent"
	case IntentFunc:
		return "func"
	default:
		return "unknown"
	}
}

// Intent is one button press. Digit, Op and Func are only meaningful for
// the matching Kind.
type Intent struct {
	Kind  IntentKind
	Digit uint8
	Op    Op
	Func  Func
}

// Digit presses digit d (0-9).
func Digit(d uint8) Intent { return Intent{Kind: IntentDigit, Digit: d} }

// Operator arms op and queues the current value.
func Operator(op Op) Intent { return Intent{Kind: IntentOperator, Op: op} }

// Unary applies f to the current value.
func Unary(f Func) Intent { return Intent{Kind: IntentFunc, Func: f} }

// Decimal presses the decimal point.
func Decimal() Intent { return Intent{Kind: IntentDecimal} }

// Evaluate presses "=".
func Evaluate() Intent { return Intent{Kind: IntentEvaluate} }

// Clear presses "C".
func Clear() Intent { return Intent{Kind: IntentClear} }

// HardClear presses "CE".
func HardClear() Intent { return Intent{Kind: IntentHardClear} }

// ChangeSign presses "+/-".
func ChangeSign() Intent { return Intent{Kind: IntentChangeSign} }

// PercentIntent presses "%".
func PercentIntent() Intent { return Intent{Kind: IntentPercent} }

// Buttons is the button grid, row by row.
var Buttons = [5][5]string{
	{"exp", "+/-", "%", "CE", "C"},
	{"ln", "7", "8", "9", "/"},
	{"sin", "4", "5", "6", "*"},
	{"cos", "1", "2", "3", "-"},
	{"tan", "0", ".", "=", "+"},
}

// Label returns the grid label that produces in.
func (in Intent) Label() string {
	switch in.Kind {
	case IntentDigit:
		return string(rune('0' + in.Digit))
	case IntentDecimal:
		return "."
	case IntentOperator:
		return in.Op.Symbol()
	case IntentEvaluate:
		return "="
	case IntentClear:
		return "C"
	case IntentHardClear:
		return "CE"
	case IntentChangeSign:
		return "+/-"
	case IntentPercent:
		return "%"
	case IntentFunc:
		return in.Func.String()
	default:
		return ""
	}
}

// ParseIntent maps a button label to its intent. Operators also accept
// the × and ÷ glyphs.
func ParseIntent(label string) (Intent, error) {
	s := strings.TrimSpace(label)
	if len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
		return Digit(s[0] - '0'), nil
	}
	switch s {
	case ".":
		return Decimal(), nil
	case "+":
		return Operator(OpAdd), nil
	case "-":
		return Operator(OpSubtract), nil
	case "*", "×", "x":
		return Operator(OpMultiply), nil
	case "/", "÷":
		return Operator(OpDivide), nil
	case "=":
		return Evaluate(), nil
	case "C":
		return Clear(), nil
	case "CE":
		return HardClear(), nil
	case "+/-", "±":
		return ChangeSign(), nil
	case "%":
		return PercentIntent(), nil
	}
	switch strings.ToLower(s) {
	case "sin":
		return Unary(FuncSin), nil
	case "cos":
		return Unary(FuncCos), nil
	case "tan":
		return Unary(FuncTan), nil
	case "exp":
		return Unary(FuncExp), nil
	case "ln":
		return Unary(FuncLn), nil
	}
	return Intent{}, fmt.Errorf("%w: %q", ErrUnknownButton, label)
}
