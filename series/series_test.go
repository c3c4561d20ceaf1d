package series

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gwseries/detector"
	"github.com/sartorproj/gwseries/gpstime"
	"github.com/sartorproj/gwseries/units"
)

func TestBuildWithX0DX(t *testing.T) {
	x0 := units.Scalar(0, units.Second)
	dx := units.Scalar(2, units.Second)

	s, err := NewBuilder().
		Values([]float64{1, 2, 3, 2, 4, 3}).
		Unit(units.Meter).
		X0(x0).
		DX(dx).
		Name("Displacement").
		Epoch(gpstime.FromGPSSeconds(0)).
		Channel(detector.New("TEST_CHANNEL")).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, 3, 2, 4, 3}, s.Values())
	assert.Equal(t, units.Meter, s.Unit())
	assert.Equal(t, "Displacement", s.Name())
	assert.True(t, s.X0().Equal(x0))
	assert.True(t, s.DX().Equal(dx))
	require.NotNil(t, s.XIndex())
	assert.Equal(t, []float64{0, 2, 4, 6, 8, 10}, s.XIndex().Values)
	assert.Equal(t, units.Second, s.XIndex().Unit)
	assert.Equal(t, units.Second, *s.XUnit())
	assert.Equal(t, "TEST_CHANNEL", s.Channel().Name)
}

func TestBuildWithExplicitIndex(t *testing.T) {
	xindex := units.New([]float64{0, 1, 2, 3, 4}, units.Second)

	s, err := NewBuilder().
		Values([]float64{10, 20, 30, 40, 50}).
		Unit(units.Joule).
		XIndex(xindex).
		Name("Energy Series").
		Epoch(gpstime.FromGPSSeconds(100)).
		Channel(detector.New("INDEX_CHAN").WithSampleRate(1)).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 20, 30, 40, 50}, s.Values())
	assert.Equal(t, units.Joule, s.Unit())
	assert.Equal(t, "Energy Series", s.Name())
	assert.Nil(t, s.X0())
	assert.Nil(t, s.DX())
	require.NotNil(t, s.XIndex())
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, s.XIndex().Values)
	assert.Equal(t, units.Second, *s.XUnit())
}

func TestBuildExplicitIndexWinsOverX0DX(t *testing.T) {
	xindex := units.New([]float64{100, 200, 300}, units.Second)
	x0 := units.Scalar(0, units.Second)
	dx := units.Scalar(1, units.Second)

	s, err := NewBuilder().
		Values([]float64{1, 2, 3}).
		XIndex(xindex).
		X0(x0).
		DX(dx).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 200, 300}, s.XIndex().Values)
	// x0 and dx survive as provenance but do not define the axis.
	assert.True(t, s.X0().Equal(x0))
	assert.True(t, s.DX().Equal(dx))
}

func TestBuildWithoutAxis(t *testing.T) {
	s, err := NewBuilder().Values([]float64{1, 2, 3}).Unit(units.Meter).Build()
	require.NoError(t, err)

	assert.Nil(t, s.XIndex())
	assert.Nil(t, s.X0())
	assert.Nil(t, s.DX())
	assert.Nil(t, s.XUnit())
}

func TestBuildDXOnlyHasNoAxis(t *testing.T) {
	s, err := NewBuilder().
		Values([]float64{1, 2}).
		DX(units.Scalar(1, units.Second)).
		Build()
	require.NoError(t, err)

	assert.Nil(t, s.XIndex())
	assert.Equal(t, units.Second, *s.XUnit(), "dx still reports the axis unit")
}

func TestBuildMissingValue(t *testing.T) {
	_, err := NewBuilder().Unit(units.Meter).Build()
	require.Error(t, err)

	var missing *MissingValueError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "value is required to build Series", err.Error())
}

func TestBuildLengthMismatch(t *testing.T) {
	_, err := NewBuilder().
		Values([]float64{1, 2, 3}).
		Unit(units.Joule).
		XIndex(units.New([]float64{0, 1}, units.Second)).
		Build()
	require.Error(t, err)

	var mismatch *LengthMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, 2, mismatch.IndexLen)
	assert.Equal(t, 3, mismatch.ValueLen)
	assert.Contains(t, err.Error(), "(2)")
	assert.Contains(t, err.Error(), "(3)")
}

func TestBuildScalarRequired(t *testing.T) {
	tests := []struct {
		name  string
		x0    units.Quantity
		dx    units.Quantity
		field string
	}{
		{"vector x0", units.New([]float64{0, 1}, units.Second), units.Scalar(1, units.Second), "x0"},
		{"vector dx", units.Scalar(0, units.Second), units.New([]float64{1, 2}, units.Second), "dx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBuilder().
				Values([]float64{1, 2}).
				X0(tt.x0).
				DX(tt.dx).
				Build()
			require.Error(t, err)

			var scalar *ScalarRequiredError
			require.True(t, errors.As(err, &scalar))
			assert.Equal(t, tt.field, scalar.Field)
		})
	}
}

func TestBuildX0DXIncompatibleUnits(t *testing.T) {
	_, err := NewBuilder().
		Values([]float64{1, 2}).
		Unit(units.Joule).
		X0(units.Scalar(0, units.Meter)).
		DX(units.Scalar(1, units.Second)).
		Build()
	require.Error(t, err)

	var incompatible *units.IncompatibleUnitsError
	require.True(t, errors.As(err, &incompatible))
	assert.Equal(t, "m", incompatible.From)
	assert.Equal(t, "s", incompatible.To)
}

func TestBuildConvertsDXIntoX0Unit(t *testing.T) {
	s, err := NewBuilder().
		Values([]float64{1, 2, 3}).
		X0(units.Scalar(0, units.Second)).
		DX(units.Scalar(500, units.Millisecond)).
		Build()
	require.NoError(t, err)

	require.NotNil(t, s.XIndex())
	assert.Equal(t, []float64{0, 0.5, 1}, s.XIndex().Values)
	assert.Equal(t, units.Second, s.XIndex().Unit, "axis carries x0's unit")
}

func TestAddPropagatesLHSMetadata(t *testing.T) {
	xindex := units.New([]float64{0, 1, 2}, units.Second)
	epoch := gpstime.FromGPSSeconds(1000)

	s1, err := NewBuilder().
		Values([]float64{1, 2, 3}).
		Unit(units.Meter).
		XIndex(xindex).
		Name("Series1").
		Epoch(epoch).
		Channel(detector.New("CHAN1")).
		Build()
	require.NoError(t, err)

	s2, err := NewBuilder().
		Values([]float64{10, 20, 30}).
		Unit(units.Meter).
		XIndex(units.New([]float64{0, 1, 2}, units.Second)).
		Name("Series2").
		Epoch(gpstime.FromGPSSeconds(1000)).
		Channel(detector.New("CHAN2")).
		Build()
	require.NoError(t, err)

	sum, err := s1.Add(s2)
	require.NoError(t, err)

	assert.Equal(t, []float64{11, 22, 33}, sum.Values())
	assert.Equal(t, units.Meter, sum.Unit())
	assert.Equal(t, "Series1", sum.Name())
	assert.Equal(t, epoch, *sum.Epoch())
	assert.True(t, sum.XIndex().Equal(xindex))
	assert.Equal(t, "CHAN1", sum.Channel().Name)
}

func TestAddRHSFallback(t *testing.T) {
	s1, err := NewBuilder().
		Values([]float64{1}).
		Unit(units.Meter).
		Name("LHS_Name").
		Build()
	require.NoError(t, err)

	rhsEpoch := gpstime.FromGPSSeconds(200)
	s2, err := NewBuilder().
		Values([]float64{2}).
		Unit(units.Meter).
		Epoch(rhsEpoch).
		Channel(detector.New("RHS_CHANNEL")).
		Build()
	require.NoError(t, err)

	sum, err := s1.Add(s2)
	require.NoError(t, err)

	assert.Equal(t, []float64{3}, sum.Values())
	assert.Equal(t, "LHS_Name", sum.Name(), "left operand wins")
	assert.Equal(t, rhsEpoch, *sum.Epoch(), "right operand fills the gap")
	assert.Equal(t, "RHS_CHANNEL", sum.Channel().Name, "right operand fills the gap")
}

func TestAddBothNamesAbsent(t *testing.T) {
	s1, err := NewBuilder().Values([]float64{1}).Unit(units.Meter).Build()
	require.NoError(t, err)
	s2, err := NewBuilder().Values([]float64{2}).Unit(units.Meter).Build()
	require.NoError(t, err)

	sum, err := s1.Add(s2)
	require.NoError(t, err)
	assert.Empty(t, sum.Name())
}

func TestAddMixedFieldSources(t *testing.T) {
	// Each field follows the precedence independently: the name can come
	// from the left while the channel comes from the right.
	s1, err := NewBuilder().
		Values([]float64{1, 2}).
		Unit(units.Meter).
		Name("X").
		Build()
	require.NoError(t, err)

	rhsEpoch := gpstime.FromGPSSeconds(42)
	s2, err := NewBuilder().
		Values([]float64{3, 4}).
		Unit(units.Meter).
		Epoch(rhsEpoch).
		Build()
	require.NoError(t, err)

	sum, err := s1.Add(s2)
	require.NoError(t, err)
	assert.Equal(t, "X", sum.Name())
	assert.Equal(t, rhsEpoch, *sum.Epoch())
}

func TestAddIncompatibleUnits(t *testing.T) {
	s1, err := NewBuilder().Values([]float64{1}).Unit(units.Meter).Build()
	require.NoError(t, err)
	s2, err := NewBuilder().Values([]float64{2}).Unit(units.Second).Build()
	require.NoError(t, err)

	_, err = s1.Add(s2)
	require.Error(t, err)

	var incompatible *units.IncompatibleArithmeticError
	require.True(t, errors.As(err, &incompatible))
	assert.Equal(t, "m", incompatible.LHS)
	assert.Equal(t, "s", incompatible.RHS)
}

func TestArithmeticRederivesAxisOnLengthChange(t *testing.T) {
	// The left operand is a scalar with a cached single-element axis;
	// broadcasting against a longer right operand makes that cache stale,
	// so the axis is recomputed from x0 and dx at the result length.
	s1, err := NewBuilder().
		Values([]float64{10}).
		Unit(units.Meter).
		X0(units.Scalar(0, units.Second)).
		DX(units.Scalar(2, units.Second)).
		Build()
	require.NoError(t, err)

	s2, err := NewBuilder().
		Values([]float64{1, 2, 3}).
		Unit(units.Meter).
		Build()
	require.NoError(t, err)

	sum, err := s1.Add(s2)
	require.NoError(t, err)

	assert.Equal(t, []float64{11, 12, 13}, sum.Values())
	require.NotNil(t, sum.XIndex())
	assert.Equal(t, []float64{0, 2, 4}, sum.XIndex().Values)
}

func TestArithmeticDropsAxisWhenUnderivable(t *testing.T) {
	// Stale cached axis and no x0/dx to rebuild from: the axis is absent.
	s1, err := NewBuilder().
		Values([]float64{10}).
		Unit(units.Meter).
		XIndex(units.New([]float64{5}, units.Second)).
		Build()
	require.NoError(t, err)

	s2, err := NewBuilder().
		Values([]float64{1, 2, 3}).
		Unit(units.Meter).
		Build()
	require.NoError(t, err)

	sum, err := s1.Add(s2)
	require.NoError(t, err)
	assert.Nil(t, sum.XIndex())
}

func TestDivComposesSeriesUnits(t *testing.T) {
	s1, err := NewBuilder().Values([]float64{10, 20}).Unit(units.Meter).Build()
	require.NoError(t, err)
	s2, err := NewBuilder().Values([]float64{2, 4}).Unit(units.Second).Build()
	require.NoError(t, err)

	quotient, err := s1.Div(s2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5}, quotient.Values())
	assert.Equal(t, "m/s", quotient.Unit().Name)
}
