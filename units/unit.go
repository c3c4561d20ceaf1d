package units

// Dimension identifies one of the SI base dimensions.
type Dimension int

const (
	Length Dimension = iota
	Mass
	Time
	ElectricCurrent
	Temperature
	AmountOfSubstance
	LuminousIntensity

	numDimensions
)

// Dims is the exponent vector of a unit over the base dimensions.
// The zero value is dimensionless.
type Dims [numDimensions]int

// DimsOf builds an exponent vector from dimension/exponent pairs.
func DimsOf(exponents map[Dimension]int) Dims {
	var d Dims
	for dim, exp := range exponents {
		d[dim] = exp
	}
	return d
}

// BaseDim returns the exponent vector of a single base dimension.
func BaseDim(dim Dimension) Dims {
	var d Dims
	d[dim] = 1
	return d
}

// IsZero reports whether d is dimensionless.
func (d Dims) IsZero() bool {
	return d == Dims{}
}

// Mul returns the exponent vector of a product of units.
func (d Dims) Mul(o Dims) Dims {
	var r Dims
	for i := range d {
		r[i] = d[i] + o[i]
	}
	return r
}

// Div returns the exponent vector of a quotient of units.
func (d Dims) Div(o Dims) Dims {
	var r Dims
	for i := range d {
		r[i] = d[i] - o[i]
	}
	return r
}

// Inverse returns the exponent vector with every exponent negated.
func (d Dims) Inverse() Dims {
	var r Dims
	for i := range d {
		r[i] = -d[i]
	}
	return r
}

// Unit is a named scale factor plus a dimension vector. Two units are
// interconvertible when their dimension vectors are equal; the scale relates
// each unit to the coherent SI unit of its dimension.
type Unit struct {
	Name  string
	Scale float64
	Dims  Dims
}

// NewUnit creates a unit with the given name, scale factor and dimensions.
func NewUnit(name string, scale float64, dims Dims) Unit {
	return Unit{Name: name, Scale: scale, Dims: dims}
}

// Predefined units.
var (
	Dimensionless = NewUnit("", 1, Dims{})
	Meter         = NewUnit("m", 1, BaseDim(Length))
	Centimeter    = NewUnit("cm", 0.01, BaseDim(Length))
	Second        = NewUnit("s", 1, BaseDim(Time))
	Millisecond   = NewUnit("ms", 1e-3, BaseDim(Time))
	Hertz         = NewUnit("Hz", 1, BaseDim(Time).Inverse())
	Joule         = NewUnit("J", 1, DimsOf(map[Dimension]int{Mass: 1, Length: 2, Time: -2}))
	Watt          = NewUnit("W", 1, DimsOf(map[Dimension]int{Mass: 1, Length: 2, Time: -3}))
)

// mul composes the unit of a product of quantities.
func (u Unit) mul(o Unit) Unit {
	return Unit{
		Name:  composeName(u.Name, o.Name, "*"),
		Scale: u.Scale * o.Scale,
		Dims:  u.Dims.Mul(o.Dims),
	}
}

// div composes the unit of a quotient of quantities.
func (u Unit) div(o Unit) Unit {
	return Unit{
		Name:  composeName(u.Name, o.Name, "/"),
		Scale: u.Scale / o.Scale,
		Dims:  u.Dims.Div(o.Dims),
	}
}

func composeName(a, b, op string) string {
	switch {
	case b == "":
		return a
	case a == "" && op == "*":
		return b
	case a == "" && op == "/":
		return "1/" + b
	default:
		return a + op + b
	}
}
