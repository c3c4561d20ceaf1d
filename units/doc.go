// Package units provides dimensioned numeric quantities.
//
// A Unit is a named scale factor plus an exponent vector over the SI base
// dimensions. A Quantity is an array of real values tagged with a Unit.
// Quantities support elementwise arithmetic with dimensional-compatibility
// checks and conversion between units of the same dimension.
//
// # Creating Quantities
//
// Tag values with a predefined or custom unit:
//
//	strain := units.New([]float64{1e-21, 2e-21}, units.Meter)
//	rate := units.Scalar(4096, units.Hertz)
//
//	volt := units.NewUnit("V", 1, units.DimsOf(map[units.Dimension]int{
//		units.Mass: 1, units.Length: 2, units.Time: -3, units.ElectricCurrent: -1,
//	}))
//
// # Conversion
//
// Convert between units sharing a dimension:
//
//	cm, err := strain.To(units.Centimeter)
//
// # Arithmetic
//
// Addition and subtraction require identical units; multiplication and
// division compose units and never fail on dimensional grounds:
//
//	sum, err := a.Add(b)       // errors unless a and b share a unit
//	ratio, err := a.Div(b)     // unit becomes a.Unit/b.Unit
//
// Operands of equal length combine elementwise; a single-element quantity
// broadcasts against any length.
package units
