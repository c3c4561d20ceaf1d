// Package main demonstrates building, combining and windowing detector
// time series.
package main

import (
	"fmt"
	"log"

	"github.com/sartorproj/gwseries/detector"
	"github.com/sartorproj/gwseries/gpstime"
	"github.com/sartorproj/gwseries/segments"
	"github.com/sartorproj/gwseries/timeseries"
	"github.com/sartorproj/gwseries/units"
)

func main() {
	channel := detector.New("H1:GW-STRAIN").
		WithSampleRate(4096).
		WithUnit(units.Meter).
		WithSafe(false).
		WithModel("LIGO")
	fmt.Println(channel)

	// A strain series defined by its GPS epoch and sample rate.
	strain, err := timeseries.NewBuilder().
		Values([]float64{1.0, 2.0, 3.0, 2.0, 4.0, 3.0, 2.0, 1.0}).
		Unit(units.Meter).
		Epoch(gpstime.FromGPSSeconds(1126259446)).
		SampleRate(units.Scalar(4096, units.Hertz)).
		Name("GW150914 strain").
		Channel(channel).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("name:        %s\n", strain.Name())
	fmt.Printf("epoch:       %s\n", strain.Epoch())
	fmt.Printf("sample rate: %v %s\n", strain.SampleRate().Values[0], strain.SampleRate().Unit.Name)
	fmt.Printf("duration:    %v %s\n", strain.Duration().Values[0], strain.Duration().Unit.Name)
	fmt.Printf("mean strain: %v %s\n", strain.Series().Array().Mean(), strain.Unit().Name)

	// Adding a calibration offset: metadata missing on the left is filled
	// in from the right operand.
	offset, err := timeseries.NewBuilder().
		Values([]float64{0.1}).
		Unit(units.Meter).
		Build()
	if err != nil {
		log.Fatal(err)
	}
	calibrated, err := offset.Add(strain)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("calibrated:  %s, %d samples\n", calibrated.Name(), len(calibrated.Values()))

	// Unit conversion preserves metadata.
	cm, err := calibrated.Series().Array().To(units.Centimeter)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("in cm:       first sample %v %s\n", cm.Values()[0], cm.Unit().Name)

	// Observing windows of two detectors, combined with the segment
	// algebra.
	h1 := segments.New(1126259000.0, 1126260000.0)
	l1 := segments.New(1126259500.0, 1126260500.0)

	fmt.Printf("H1:          %s\n", h1)
	fmt.Printf("L1:          %s\n", l1)
	fmt.Printf("coincident:  %s\n", h1.Intersect(l1))
	fmt.Printf("either:      %s\n", h1.Union(l1))
	fmt.Printf("H1 only:     %s\n", h1.Sub(l1))
	fmt.Printf("event in H1: %t\n", h1.Contains(1126259462.4))
}
