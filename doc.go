// Package gwseries provides data structures for instrument time-series
// measurements such as gravitational-wave detector strain channels.
//
// GWSeries models physical-quantity arrays carrying units, an ordered
// sampling axis, channel metadata, and a semi-open interval algebra used to
// describe validity and quality windows over that axis.
//
// # Quick Start
//
// Build a time series from a GPS epoch and a sample rate:
//
//	ts, err := timeseries.NewBuilder().
//		Values([]float64{1, 2, 3, 4}).
//		Unit(units.Meter).
//		T0(1126259446).
//		SampleRate(units.Scalar(4096, units.Hertz)).
//		Name("H1 strain").
//		Build()
//
// Combine detector-availability windows:
//
//	h1 := segments.New(0.0, 10.0)
//	l1 := segments.New(5.0, 15.0)
//	both := h1.Intersect(l1) // [5, 10)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - units: dimensioned quantities, unit conversion and arithmetic
//   - gpstime: GPS time scalar
//   - detector: channel metadata records
//   - series: unit-tagged arrays and indexed series
//   - timeseries: time-domain series with epoch, sample rate and duration
//   - segments: semi-open interval algebra
package gwseries
