package timeseries

import (
	"fmt"

	"github.com/sartorproj/gwseries/detector"
	"github.com/sartorproj/gwseries/gpstime"
	"github.com/sartorproj/gwseries/series"
	"github.com/sartorproj/gwseries/units"
)

// TimeSeries is a series whose axis is interpreted as GPS time. It stores no
// state beyond the wrapped series; epoch, sample rate and duration are
// computed from the axis on demand.
type TimeSeries struct {
	series *series.Series
}

// Builder accumulates the fields of a TimeSeries and validates them once at
// Build. The time-domain fields map onto the series axis: Times becomes the
// explicit index, Epoch or T0 becomes the axis start, and DT or SampleRate
// becomes the axis step.
type Builder struct {
	values     []float64
	hasValues  bool
	unit       units.Unit
	name       string
	channel    *detector.Channel
	epoch      *gpstime.Time
	rawT0      *float64
	dt         *units.Quantity
	sampleRate *units.Quantity
	times      *units.Quantity
}

// NewBuilder creates an empty TimeSeries builder.
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

// Channel sets the channel metadata.
func (b *Builder) Channel(channel *detector.Channel) *Builder {
	b.channel = channel
	return b
}

// Epoch sets the GPS epoch of the first sample. It takes precedence over a
// raw T0.
func (b *Builder) Epoch(epoch gpstime.Time) *Builder {
	b.epoch = &epoch
	return b
}

// T0 sets the GPS epoch of the first sample as a raw seconds count.
func (b *Builder) T0(t0 float64) *Builder {
	b.rawT0 = &t0
	return b
}

// DT sets the time between successive samples as a scalar quantity. It takes
// precedence over a sample rate.
func (b *Builder) DT(dt units.Quantity) *Builder {
	b.dt = &dt
	return b
}

// SampleRate sets the number of samples per second as a scalar quantity. At
// build time it is inverted into dt and converted to seconds.
func (b *Builder) SampleRate(sampleRate units.Quantity) *Builder {
	b.sampleRate = &sampleRate
	return b
}

// Times sets the complete array of GPS times accompanying the data. An
// explicit times array always takes precedence over the epoch and step
// fields.
func (b *Builder) Times(times units.Quantity) *Builder {
	b.times = &times
	return b
}

// Build validates the accumulated fields and constructs the TimeSeries. All
// axis validation beyond the sample-rate scalar check is performed by the
// underlying series builder.
func (b *Builder) Build() (*TimeSeries, error) {
	if !b.hasValues {
		return nil, &series.MissingValueError{Builder: "TimeSeries"}
	}
	sb := series.NewBuilder().Values(b.values).Unit(b.unit)
	if b.name != "" {
		sb.Name(b.name)
	}
	if b.channel != nil {
		sb.Channel(b.channel)
	}
	if b.times != nil {
		sb.XIndex(*b.times)
	} else {
		switch {
		case b.epoch != nil:
			sb.X0(units.Scalar(b.epoch.GPSSeconds(), units.Second))
		case b.rawT0 != nil:
			sb.X0(units.Scalar(*b.rawT0, units.Second))
		}
		switch {
		case b.dt != nil:
			sb.DX(*b.dt)
		case b.sampleRate != nil:
			dt, err := invertSampleRate(*b.sampleRate)
			if err != nil {
				return nil, err
			}
			sb.DX(dt)
		}
	}
	s, err := sb.Build()
	if err != nil {
		return nil, err
	}
	return &TimeSeries{series: s}, nil
}

// invertSampleRate converts a samples-per-second quantity into a per-sample
// duration in seconds.
func invertSampleRate(rate units.Quantity) (units.Quantity, error) {
	if !rate.IsScalar() {
		return units.Quantity{}, &series.ScalarRequiredError{Field: "sample rate"}
	}
	inverted, err := units.Scalar(1, units.Dimensionless).Div(rate)
	if err != nil {
		return units.Quantity{}, err
	}
	return inverted.To(units.Second)
}

// Values returns the value array.
func (ts *TimeSeries) Values() []float64 {
	return ts.series.Values()
}

// Unit returns the unit of the values.
func (ts *TimeSeries) Unit() units.Unit {
	return ts.series.Unit()
}

// Name returns the series name, or the empty string when absent.
func (ts *TimeSeries) Name() string {
	return ts.series.Name()
}

// Channel returns the channel metadata, or nil when absent.
func (ts *TimeSeries) Channel() *detector.Channel {
	return ts.series.Channel()
}

// Series returns the underlying indexed series.
func (ts *TimeSeries) Series() *series.Series {
	return ts.series
}

// T0 returns the GPS start time as a scalar quantity, or nil when absent.
func (ts *TimeSeries) T0() *units.Quantity {
	return ts.series.X0()
}

// DT returns the time between successive samples, or nil when absent.
func (ts *TimeSeries) DT() *units.Quantity {
	return ts.series.DX()
}

// Times returns the materialized time axis, or nil when the series has no
// axis.
func (ts *TimeSeries) Times() *units.Quantity {
	return ts.series.XIndex()
}

// Epoch returns the GPS time of the first sample, reconstructed from the
// axis start, or nil when no start is known.
func (ts *TimeSeries) Epoch() *gpstime.Time {
	t0 := ts.T0()
	if t0 == nil {
		return nil
	}
	epoch := gpstime.FromGPSSeconds(t0.Values[0])
	return &epoch
}

// SampleRate returns 1/dt converted to Hz, or nil when dt is absent.
func (ts *TimeSeries) SampleRate() *units.Quantity {
	dt := ts.DT()
	if dt == nil {
		return nil
	}
	inverted, err := units.Scalar(1, units.Dimensionless).Div(*dt)
	if err != nil {
		panic(fmt.Sprintf("timeseries: sample rate inversion failed: %v", err))
	}
	rate, err := inverted.To(units.Hertz)
	if err != nil {
		panic(fmt.Sprintf("timeseries: sample rate conversion failed: %v", err))
	}
	return &rate
}

// Duration returns the span of the time axis, last value minus first, in the
// axis unit. An empty axis yields a zero duration; an absent axis yields
// nil.
func (ts *TimeSeries) Duration() *units.Quantity {
	times := ts.Times()
	if times == nil {
		return nil
	}
	var duration units.Quantity
	if times.Len() == 0 {
		duration = units.Scalar(0, times.Unit)
	} else {
		duration = units.Scalar(times.Values[times.Len()-1]-times.Values[0], times.Unit)
	}
	return &duration
}

// Add returns the elementwise sum of ts and rhs, delegating metadata and
// axis reconciliation to the wrapped series.
func (ts *TimeSeries) Add(rhs *TimeSeries) (*TimeSeries, error) {
	return ts.apply(rhs, (*series.Series).Add)
}

// Sub returns the elementwise difference under the same policy as Add.
func (ts *TimeSeries) Sub(rhs *TimeSeries) (*TimeSeries, error) {
	return ts.apply(rhs, (*series.Series).Sub)
}

// Mul returns the elementwise product under the same policy as Add.
func (ts *TimeSeries) Mul(rhs *TimeSeries) (*TimeSeries, error) {
	return ts.apply(rhs, (*series.Series).Mul)
}

// Div returns the elementwise quotient under the same policy as Add.
func (ts *TimeSeries) Div(rhs *TimeSeries) (*TimeSeries, error) {
	return ts.apply(rhs, (*series.Series).Div)
}

func (ts *TimeSeries) apply(rhs *TimeSeries, op func(*series.Series, *series.Series) (*series.Series, error)) (*TimeSeries, error) {
	result, err := op(ts.series, rhs.series)
	if err != nil {
		return nil, err
	}
	return &TimeSeries{series: result}, nil
}
