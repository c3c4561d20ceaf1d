package gpstime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundTrip(t *testing.T) {
	tm := FromGPSSeconds(1126259446.5)
	assert.Equal(t, 1126259446.5, tm.GPSSeconds())
}

func TestComparisons(t *testing.T) {
	early := FromGPSSeconds(100)
	late := FromGPSSeconds(200)

	assert.True(t, early.Before(late))
	assert.True(t, late.After(early))
	assert.False(t, early.After(late))
	assert.Equal(t, early, FromGPSSeconds(100), "times are comparable values")
}

func TestString(t *testing.T) {
	assert.Equal(t, "GPS 1126259446.5", FromGPSSeconds(1126259446.5).String())
}
