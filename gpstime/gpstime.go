// Package gpstime provides a GPS time scalar.
package gpstime

import "strconv"

// Time is an instant on the GPS time scale, stored as seconds since the GPS
// epoch (1980-01-06 00:00:00 UTC). Time is a comparable value type.
type Time struct {
	seconds float64
}

// FromGPSSeconds creates a Time from a GPS seconds count.
func FromGPSSeconds(seconds float64) Time {
	return Time{seconds: seconds}
}

// GPSSeconds returns the time as a GPS seconds count.
func (t Time) GPSSeconds() float64 {
	return t.seconds
}

// Before reports whether t is earlier than o.
func (t Time) Before(o Time) bool {
	return t.seconds < o.seconds
}

// After reports whether t is later than o.
func (t Time) After(o Time) bool {
	return t.seconds > o.seconds
}

func (t Time) String() string {
	return "GPS " + strconv.FormatFloat(t.seconds, 'f', -1, 64)
}
