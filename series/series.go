package series

import (
	"fmt"

	"github.com/sartorproj/gwseries/detector"
	"github.com/sartorproj/gwseries/gpstime"
	"github.com/sartorproj/gwseries/units"
)

// Series is an Array with an ordered axis. The axis is defined either by an
// explicit index quantity or by a start (x0) and step (dx) pair from which
// an arithmetic progression is derived; a series may also have no axis.
// Series are immutable and constructed only through a Builder.
type Series struct {
	array  *Array
	x0     *units.Quantity
	dx     *units.Quantity
	xindex *units.Quantity
}

// Builder accumulates the fields of a Series and validates them once at
// Build.
type Builder struct {
	values    []float64
	hasValues bool
	unit      units.Unit
	name      string
	epoch     *gpstime.Time
	channel   *detector.Channel
	x0        *units.Quantity
	dx        *units.Quantity
	xindex    *units.Quantity
}

// NewBuilder creates an empty Series builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Values sets the value array. It is the only required field.
func (b *Builder) Values(values []float64) *Builder {
	b.values = values
	b.hasValues = true
	return b
}

// Unit sets the unit of the values.
func (b *Builder) Unit(unit units.Unit) *Builder {
	b.unit = unit
	return b
}

// Name sets the series name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Epoch sets the GPS epoch.
func (b *Builder) Epoch(epoch gpstime.Time) *Builder {
	b.epoch = &epoch
	return b
}

// Channel sets the channel metadata.
func (b *Builder) Channel(channel *detector.Channel) *Builder {
	b.channel = channel
	return b
}

// X0 sets the axis start as a scalar quantity.
func (b *Builder) X0(x0 units.Quantity) *Builder {
	b.x0 = &x0
	return b
}

// DX sets the axis step as a scalar quantity.
func (b *Builder) DX(dx units.Quantity) *Builder {
	b.dx = &dx
	return b
}

// XIndex sets the explicit axis. An explicit axis always takes precedence
// over x0 and dx.
func (b *Builder) XIndex(xindex units.Quantity) *Builder {
	b.xindex = &xindex
	return b
}

// Build validates the accumulated fields and constructs the Series.
//
// When an explicit index was supplied, its length must equal the value
// length and it is used verbatim; x0 and dx are retained as provenance but
// not re-validated against it. Otherwise, when both x0 and dx were supplied,
// each must be scalar and dimensionally compatible, and the axis is the
// progression x0 + i*dx in x0's unit. Otherwise the axis is absent.
func (b *Builder) Build() (*Series, error) {
	if !b.hasValues {
		return nil, &MissingValueError{Builder: "Series"}
	}
	array := NewArray(b.values, b.unit, b.name, b.epoch, b.channel)

	var xindex *units.Quantity
	switch {
	case b.xindex != nil:
		if b.xindex.Len() != array.Len() {
			return nil, &LengthMismatchError{IndexLen: b.xindex.Len(), ValueLen: array.Len()}
		}
		xindex = b.xindex
	case b.x0 != nil && b.dx != nil:
		derived, err := deriveIndex(array.Len(), *b.x0, *b.dx)
		if err != nil {
			return nil, err
		}
		xindex = &derived
	}

	return &Series{array: array, x0: b.x0, dx: b.dx, xindex: xindex}, nil
}

// deriveIndex materializes the axis x0 + i*dx for i in [0, n) in x0's unit.
func deriveIndex(n int, x0, dx units.Quantity) (units.Quantity, error) {
	if !x0.IsScalar() {
		return units.Quantity{}, &ScalarRequiredError{Field: "x0"}
	}
	if !dx.IsScalar() {
		return units.Quantity{}, &ScalarRequiredError{Field: "dx"}
	}
	if x0.Unit.Dims != dx.Unit.Dims {
		return units.Quantity{}, &units.IncompatibleUnitsError{From: x0.Unit.Name, To: dx.Unit.Name}
	}
	step, err := dx.To(x0.Unit)
	if err != nil {
		return units.Quantity{}, err
	}
	start, d := x0.Values[0], step.Values[0]
	values := make([]float64, n)
	for i := range values {
		values[i] = start + float64(i)*d
	}
	return units.New(values, x0.Unit), nil
}

// Values returns the value array.
func (s *Series) Values() []float64 {
	return s.array.Values()
}

// Unit returns the unit of the values.
func (s *Series) Unit() units.Unit {
	return s.array.Unit()
}

// Name returns the series name, or the empty string when absent.
func (s *Series) Name() string {
	return s.array.Name()
}

// Epoch returns the GPS epoch, or nil when absent.
func (s *Series) Epoch() *gpstime.Time {
	return s.array.Epoch()
}

// Channel returns the channel metadata, or nil when absent.
func (s *Series) Channel() *detector.Channel {
	return s.array.Channel()
}

// Array returns the underlying unit-tagged array.
func (s *Series) Array() *Array {
	return s.array
}

// X0 returns the axis start, or nil when absent.
func (s *Series) X0() *units.Quantity {
	return s.x0
}

// DX returns the axis step, or nil when absent.
func (s *Series) DX() *units.Quantity {
	return s.dx
}

// XIndex returns the materialized axis, or nil when the series has no axis.
func (s *Series) XIndex() *units.Quantity {
	return s.xindex
}

// XUnit returns the unit of the axis: the index's unit when an axis is
// materialized, falling back to x0's and then dx's unit, or nil when none
// is known.
func (s *Series) XUnit() *units.Unit {
	switch {
	case s.xindex != nil:
		return &s.xindex.Unit
	case s.x0 != nil:
		return &s.x0.Unit
	case s.dx != nil:
		return &s.dx.Unit
	default:
		return nil
	}
}

// Add returns the elementwise sum of s and rhs with metadata reconciled
// under the left-preferred policy.
func (s *Series) Add(rhs *Series) (*Series, error) {
	return s.apply(rhs, (*Array).Add)
}

// Sub returns the elementwise difference under the same policy as Add.
func (s *Series) Sub(rhs *Series) (*Series, error) {
	return s.apply(rhs, (*Array).Sub)
}

// Mul returns the elementwise product under the same policy as Add.
func (s *Series) Mul(rhs *Series) (*Series, error) {
	return s.apply(rhs, (*Array).Mul)
}

// Div returns the elementwise quotient under the same policy as Add.
func (s *Series) Div(rhs *Series) (*Series, error) {
	return s.apply(rhs, (*Array).Div)
}

func (s *Series) apply(rhs *Series, op func(*Array, *Array) (*Array, error)) (*Series, error) {
	result, err := op(s.array, rhs.array)
	if err != nil {
		return nil, err
	}
	return propagate(result.quantity, s, rhs), nil
}

// propagate reconciles metadata and axis after an arithmetic operation.
// Each field independently prefers the left operand and falls back to the
// right one when the left is absent: name, epoch, channel, x0, dx and the
// cached axis. The cached axis is reused verbatim when its length equals the
// result length; otherwise the axis is recomputed from x0 and dx when both
// are scalar, and absent otherwise.
func propagate(result units.Quantity, lhs, rhs *Series) *Series {
	name := lhs.array.name
	if name == "" {
		name = rhs.array.name
	}
	epoch := lhs.array.epoch
	if epoch == nil {
		epoch = rhs.array.epoch
	}
	channel := lhs.array.channel
	if channel == nil {
		channel = rhs.array.channel
	}
	x0 := firstQuantity(lhs.x0, rhs.x0)
	dx := firstQuantity(lhs.dx, rhs.dx)
	cached := firstQuantity(lhs.xindex, rhs.xindex)

	var xindex *units.Quantity
	switch {
	case cached != nil && cached.Len() == result.Len():
		xindex = cached
	case x0 != nil && dx != nil && x0.IsScalar() && dx.IsScalar():
		derived, err := deriveIndex(result.Len(), *x0, *dx)
		if err != nil {
			// Builder validation rules this out for any series that
			// carries both fields.
			panic(fmt.Sprintf("series: axis re-derivation failed: %v", err))
		}
		xindex = &derived
	}

	array := &Array{quantity: result, name: name, epoch: epoch, channel: channel}
	return &Series{array: array, x0: x0, dx: dx, xindex: xindex}
}

func firstQuantity(a, b *units.Quantity) *units.Quantity {
	if a != nil {
		return a
	}
	return b
}
