// Package series provides unit-tagged value arrays and indexed series.
//
// An Array is a named array of values carrying a unit and optional epoch and
// channel metadata. A Series attaches an ordered axis to an Array: either an
// explicit index array, or an arithmetic progression derived from a start
// (x0) and a step (dx).
//
// # Building a Series
//
// A Series is constructed only through its Builder, which validates the axis
// definition once at Build:
//
//	s, err := series.NewBuilder().
//		Values([]float64{1, 2, 3, 2, 4, 3}).
//		Unit(units.Meter).
//		X0(units.Scalar(0, units.Second)).
//		DX(units.Scalar(2, units.Second)).
//		Name("Displacement").
//		Build()
//
// An explicit index always takes precedence over x0 and dx; when neither is
// supplied the series has no axis.
//
// # Arithmetic
//
// Add, Sub, Mul and Div combine two series elementwise through the unit
// layer. Metadata is reconciled field by field: the left operand wins, and
// the right operand fills in any field the left leaves absent. The axis is
// reused when its length still matches the result, re-derived from x0 and dx
// when it does not, and dropped otherwise.
package series
