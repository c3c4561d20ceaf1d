// Package detector provides metadata records describing detector data channels.
package detector

import (
	"fmt"
	"strings"

	"github.com/sartorproj/gwseries/units"
)

// Range is a closed frequency interval in Hz.
type Range struct {
	Low  float64
	High float64
}

// Channel describes a single detector data channel, e.g.
// "H1:GWOSC-4KHZ_RAMP_C00". All fields besides the name are optional.
// A Channel is a plain value record carried through series operations
// unchanged.
type Channel struct {
	// Name of the channel, typically "Detector:ChannelName".
	Name string

	// SampleRate of the channel in Hz.
	SampleRate *units.Quantity

	// Unit of the data carried by this channel.
	Unit *units.Unit

	// FrequencyRange over which the channel is valid.
	FrequencyRange *Range

	// Safe indicates whether the channel is unaffected by the
	// gravitational-wave signal and safe to use in noise studies.
	Safe *bool

	// Frametype is the LDAS name for frames that contain this channel,
	// e.g. "L1_HOFT_C00".
	Frametype string

	// Model of the detector, e.g. "LIGO" or "Virgo".
	Model string
}

// New creates a channel with the given name. Optional metadata is attached
// with the With setters, each of which returns the channel for chaining.
func New(name string) *Channel {
	return &Channel{Name: name}
}

// WithSampleRate sets the sample rate in Hz.
func (c *Channel) WithSampleRate(rate float64) *Channel {
	q := units.Scalar(rate, units.Hertz)
	c.SampleRate = &q
	return c
}

// WithUnit sets the unit of the channel data.
func (c *Channel) WithUnit(u units.Unit) *Channel {
	c.Unit = &u
	return c
}

// WithFrequencyRange sets the valid frequency range in Hz.
func (c *Channel) WithFrequencyRange(low, high float64) *Channel {
	c.FrequencyRange = &Range{Low: low, High: high}
	return c
}

// WithSafe sets the safety flag.
func (c *Channel) WithSafe(safe bool) *Channel {
	c.Safe = &safe
	return c
}

// WithFrametype sets the LDAS frame type.
func (c *Channel) WithFrametype(frametype string) *Channel {
	c.Frametype = frametype
	return c
}

// WithModel sets the detector model.
func (c *Channel) WithModel(model string) *Channel {
	c.Model = model
	return c
}

func (c *Channel) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Channel(name='%s'", c.Name)
	if c.SampleRate != nil {
		fmt.Fprintf(&b, ", sample_rate=%v%s", c.SampleRate.Values[0], c.SampleRate.Unit.Name)
	}
	if c.Unit != nil {
		fmt.Fprintf(&b, ", unit=%s", c.Unit.Name)
	}
	if c.FrequencyRange != nil {
		fmt.Fprintf(&b, ", frequency_range=(%v, %v)", c.FrequencyRange.Low, c.FrequencyRange.High)
	}
	if c.Safe != nil {
		fmt.Fprintf(&b, ", safe=%t", *c.Safe)
	}
	if c.Frametype != "" {
		fmt.Fprintf(&b, ", frametype='%s'", c.Frametype)
	}
	if c.Model != "" {
		fmt.Fprintf(&b, ", model='%s'", c.Model)
	}
	b.WriteString(")")
	return b.String()
}
