// Package timeseries provides time-domain series.
//
// A TimeSeries is a series whose axis is interpreted as GPS time. The
// builder accepts the time-domain vocabulary — an explicit array of times, or
// an epoch paired with either a per-sample duration (dt) or a sample rate —
// and maps it onto the underlying series axis.
//
// # Building a TimeSeries
//
//	ts, err := timeseries.NewBuilder().
//		Values(strain).
//		Unit(units.Meter).
//		Epoch(gpstime.FromGPSSeconds(1126259446)).
//		SampleRate(units.Scalar(4096, units.Hertz)).
//		Name("H1:GW-STRAIN").
//		Build()
//
// # Computed Views
//
// Epoch, sample rate and duration are derived from the axis at call time,
// never stored:
//
//	ts.Epoch()      // GPS time of the first sample
//	ts.SampleRate() // 1/dt in Hz
//	ts.Duration()   // last minus first time, in the axis unit
//
// Each view is absent (nil) when its inputs are absent.
package timeseries
