package units

import "fmt"

// IncompatibleUnitsError reports a conversion between units whose dimensions
// disagree.
type IncompatibleUnitsError struct {
	From string
	To   string
}

func (e *IncompatibleUnitsError) Error() string {
	return fmt.Sprintf("incompatible units: cannot convert %q to %q", e.From, e.To)
}

// IncompatibleArithmeticError reports an addition or subtraction between
// quantities whose units disagree.
type IncompatibleArithmeticError struct {
	LHS string
	RHS string
}

func (e *IncompatibleArithmeticError) Error() string {
	return fmt.Sprintf("incompatible units in arithmetic: %q and %q", e.LHS, e.RHS)
}

// LengthMismatchError reports elementwise arithmetic between operands whose
// lengths disagree and where neither is a scalar.
type LengthMismatchError struct {
	LHS int
	RHS int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("operand length mismatch: (%d) and (%d)", e.LHS, e.RHS)
}
