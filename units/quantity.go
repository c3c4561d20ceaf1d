package units

import (
	"gonum.org/v1/gonum/floats"
)

// Quantity is an ordered sequence of real values tagged with a Unit.
// Quantities are value types; arithmetic and conversion allocate new
// instances and never mutate operands.
type Quantity struct {
	Values []float64
	Unit   Unit
}

// New creates a quantity from values and a unit. The values are copied.
func New(values []float64, unit Unit) Quantity {
	v := make([]float64, len(values))
	copy(v, values)
	return Quantity{Values: v, Unit: unit}
}

// Scalar creates a single-element quantity.
func Scalar(value float64, unit Unit) Quantity {
	return Quantity{Values: []float64{value}, Unit: unit}
}

// Len returns the number of values.
func (q Quantity) Len() int {
	return len(q.Values)
}

// IsScalar reports whether the quantity holds exactly one value.
func (q Quantity) IsScalar() bool {
	return len(q.Values) == 1
}

// To converts the quantity into target. It fails when the dimensions of the
// two units disagree.
func (q Quantity) To(target Unit) (Quantity, error) {
	if q.Unit.Dims != target.Dims {
		return Quantity{}, &IncompatibleUnitsError{From: q.Unit.Name, To: target.Name}
	}
	factor := q.Unit.Scale / target.Scale
	values := make([]float64, len(q.Values))
	floats.ScaleTo(values, factor, q.Values)
	return Quantity{Values: values, Unit: target}, nil
}

// Add returns the elementwise sum. The units of both operands must be
// identical; different units of the same dimension are rejected.
func (q Quantity) Add(rhs Quantity) (Quantity, error) {
	if q.Unit != rhs.Unit {
		return Quantity{}, &IncompatibleArithmeticError{LHS: q.Unit.Name, RHS: rhs.Unit.Name}
	}
	values, err := combine(q.Values, rhs.Values, floats.AddTo, func(a, b float64) float64 { return a + b })
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Values: values, Unit: q.Unit}, nil
}

// Sub returns the elementwise difference under the same unit rules as Add.
func (q Quantity) Sub(rhs Quantity) (Quantity, error) {
	if q.Unit != rhs.Unit {
		return Quantity{}, &IncompatibleArithmeticError{LHS: q.Unit.Name, RHS: rhs.Unit.Name}
	}
	values, err := combine(q.Values, rhs.Values, floats.SubTo, func(a, b float64) float64 { return a - b })
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Values: values, Unit: q.Unit}, nil
}

// Mul returns the elementwise product. The result unit composes both units;
// multiplication never fails on dimensional grounds.
func (q Quantity) Mul(rhs Quantity) (Quantity, error) {
	values, err := combine(q.Values, rhs.Values, floats.MulTo, func(a, b float64) float64 { return a * b })
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Values: values, Unit: q.Unit.mul(rhs.Unit)}, nil
}

// Div returns the elementwise quotient. The result unit composes both units;
// division never fails on dimensional grounds.
func (q Quantity) Div(rhs Quantity) (Quantity, error) {
	values, err := combine(q.Values, rhs.Values, floats.DivTo, func(a, b float64) float64 { return a / b })
	if err != nil {
		return Quantity{}, err
	}
	return Quantity{Values: values, Unit: q.Unit.div(rhs.Unit)}, nil
}

// combine applies an elementwise operation under the broadcast rules: equal
// lengths operate pairwise, a single-element operand broadcasts against any
// length, anything else is a length mismatch.
func combine(a, b []float64, pairwise func(dst, s, t []float64) []float64, op func(x, y float64) float64) ([]float64, error) {
	switch {
	case len(a) == len(b):
		dst := make([]float64, len(a))
		pairwise(dst, a, b)
		return dst, nil
	case len(a) == 1:
		dst := make([]float64, len(b))
		for i, v := range b {
			dst[i] = op(a[0], v)
		}
		return dst, nil
	case len(b) == 1:
		dst := make([]float64, len(a))
		for i, v := range a {
			dst[i] = op(v, b[0])
		}
		return dst, nil
	default:
		return nil, &LengthMismatchError{LHS: len(a), RHS: len(b)}
	}
}

// Equal reports exact equality of values and unit.
func (q Quantity) Equal(o Quantity) bool {
	return q.Unit == o.Unit && floats.Equal(q.Values, o.Values)
}
