package series

import (
	"math"

	"github.com/sartorproj/gwseries/detector"
	"github.com/sartorproj/gwseries/gpstime"
	"github.com/sartorproj/gwseries/units"
)

// Array is a named, unit-tagged array of values with optional epoch and
// channel metadata. Arrays are immutable after construction; arithmetic and
// conversion return new instances.
type Array struct {
	quantity units.Quantity
	name     string
	epoch    *gpstime.Time
	channel  *detector.Channel
}

// NewArray creates an array from values and a unit. A zero-value unit is
// replaced by the dimensionless unit. Name, epoch and channel are optional;
// pass the zero value or nil to leave them absent.
func NewArray(values []float64, unit units.Unit, name string, epoch *gpstime.Time, channel *detector.Channel) *Array {
	if unit == (units.Unit{}) {
		unit = units.Dimensionless
	}
	return &Array{
		quantity: units.New(values, unit),
		name:     name,
		epoch:    epoch,
		channel:  channel,
	}
}

// Values returns the value array.
func (a *Array) Values() []float64 {
	return a.quantity.Values
}

// Quantity returns the values together with their unit.
func (a *Array) Quantity() units.Quantity {
	return a.quantity
}

// Unit returns the unit of the values.
func (a *Array) Unit() units.Unit {
	return a.quantity.Unit
}

// Name returns the array name, or the empty string when absent.
func (a *Array) Name() string {
	return a.name
}

// Epoch returns the GPS epoch, or nil when absent.
func (a *Array) Epoch() *gpstime.Time {
	return a.epoch
}

// Channel returns the channel metadata, or nil when absent.
func (a *Array) Channel() *detector.Channel {
	return a.channel
}

// Len returns the number of values.
func (a *Array) Len() int {
	return a.quantity.Len()
}

// To converts the values into target, preserving name, epoch and channel.
// It fails when the dimensions of the two units disagree.
func (a *Array) To(target units.Unit) (*Array, error) {
	converted, err := a.quantity.To(target)
	if err != nil {
		return nil, err
	}
	return &Array{quantity: converted, name: a.name, epoch: a.epoch, channel: a.channel}, nil
}

// Add returns the elementwise sum of a and rhs. The result carries the left
// operand's name, epoch and channel.
func (a *Array) Add(rhs *Array) (*Array, error) {
	return a.apply(rhs, units.Quantity.Add)
}

// Sub returns the elementwise difference of a and rhs under the same
// metadata rules as Add.
func (a *Array) Sub(rhs *Array) (*Array, error) {
	return a.apply(rhs, units.Quantity.Sub)
}

// Mul returns the elementwise product of a and rhs under the same metadata
// rules as Add.
func (a *Array) Mul(rhs *Array) (*Array, error) {
	return a.apply(rhs, units.Quantity.Mul)
}

// Div returns the elementwise quotient of a and rhs under the same metadata
// rules as Add.
func (a *Array) Div(rhs *Array) (*Array, error) {
	return a.apply(rhs, units.Quantity.Div)
}

func (a *Array) apply(rhs *Array, op func(units.Quantity, units.Quantity) (units.Quantity, error)) (*Array, error) {
	result, err := op(a.quantity, rhs.quantity)
	if err != nil {
		return nil, err
	}
	return &Array{quantity: result, name: a.name, epoch: a.epoch, channel: a.channel}, nil
}

// Mean returns the arithmetic mean of the values, or 0 for an empty array.
func (a *Array) Mean() float64 {
	values := a.quantity.Values
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Min returns the smallest value, or NaN for an empty array.
func (a *Array) Min() float64 {
	values := a.quantity.Values
	if len(values) == 0 {
		return math.NaN()
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest value, or NaN for an empty array.
func (a *Array) Max() float64 {
	values := a.quantity.Values
	if len(values) == 0 {
		return math.NaN()
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// RMS returns the root mean square of the values, or 0 for an empty array.
func (a *Array) RMS() float64 {
	values := a.quantity.Values
	if len(values) == 0 {
		return 0
	}
	sumSq := 0.0
	for _, v := range values {
		sumSq += v * v
	}
	return math.Sqrt(sumSq / float64(len(values)))
}
