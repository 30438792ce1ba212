package calc

// Op is a binary operation armed by an operator button.
type Op uint8

// OpNone means no operation is armed; evaluate is then a no-op.
const (
	OpNone Op = iota
	OpAdd
	OpSubtract
	OpMultiply
	OpDivide
)

func (o Op) String() string {
	switch o {
	case OpNone:
		return "none"
	case OpAdd:
		return "add"
	case OpSubtract:
		return "subtract"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	default:
		return "unknown"
	}
}

// Symbol returns the button label for o, or "" for OpNone.
func (o Op) Symbol() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	default:
		return ""
	}
}

// apply computes lhs <op> rhs. requeue reports whether the result goes back
// onto the operand queue; divide never requeues.
func (o Op) apply(lhs, rhs float64) (result float64, requeue bool) {
	switch o {
	case OpAdd:
		return lhs + rhs, true
	case OpSubtract:
		return lhs - rhs, true
	case OpMultiply:
		return lhs * rhs, true
	case OpDivide:
		return lhs / rhs, false
	default:
		return rhs, false
	}
}
