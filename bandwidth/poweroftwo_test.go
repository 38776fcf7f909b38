package bandwidth_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/findiff/bandwidth"
	"github.com/katalvlaran/findiff/stencil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// constantStrategy is a test stub returning a pre-set bandwidth, positive or
// not, so the decorator's own validation paths can be exercised.
type constantStrategy struct{ h float64 }

func (c constantStrategy) Bandwidth(stencil.Func, stencil.Stencil, float64) (float64, error) {
	return c.h, nil
}

func roundUp(t *testing.T, raw float64) (float64, error) {
	t.Helper()
	strategy, err := bandwidth.NewPowerOfTwo(constantStrategy{h: raw})
	require.NoError(t, err)
	return strategy.Bandwidth(nil, stencil.ThreePointCentral, 0)
}

// TestNewPowerOfTwo_NilInner rejects a nil wrapped strategy.
func TestNewPowerOfTwo_NilInner(t *testing.T) {
	_, err := bandwidth.NewPowerOfTwo(nil)
	assert.ErrorIs(t, err, bandwidth.ErrNilStrategy)

	_, err = bandwidth.NewPowerOfTwoVector(nil)
	assert.ErrorIs(t, err, bandwidth.ErrNilStrategy)
}

// TestPowerOfTwo_Idempotent pins the key property: an exact power of two is
// returned unchanged, so repeated rounding is stable.
func TestPowerOfTwo_Idempotent(t *testing.T) {
	for _, h := range []float64{1.0, 0.5, 0x1p-20, 0x1p+40, 0x1p-1022} {
		got, err := roundUp(t, h)
		require.NoError(t, err)
		assert.Equal(t, h, got, "power of two %g must be a fixed point", h)
	}
}

// TestPowerOfTwo_RoundsUp verifies rounding toward +infinity within a binade.
func TestPowerOfTwo_RoundsUp(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{3.0, 4.0},
		{0.7, 1.0},
		{1e-3, 0x1p-9}, // 2^-10 < 1e-3 < 2^-9
		{math.Nextafter(1, 2), 2.0},
	}
	for _, c := range cases {
		got, err := roundUp(t, c.in)
		require.NoError(t, err)
		assert.Equal(t, c.want, got, "round(%g)", c.in)
	}
}

// TestPowerOfTwo_Subnormal clamps subnormal inputs to the smallest positive
// normal value.
func TestPowerOfTwo_Subnormal(t *testing.T) {
	got, err := roundUp(t, 1e-310)
	require.NoError(t, err)
	assert.Equal(t, 0x1p-1022, got)
}

// TestPowerOfTwo_Overflow errors when no representable power of two lies
// above the input.
func TestPowerOfTwo_Overflow(t *testing.T) {
	_, err := roundUp(t, 0x1.8p+1023) // top binade, fraction set
	assert.ErrorIs(t, err, bandwidth.ErrOverflow)

	_, err = roundUp(t, math.Inf(1))
	assert.ErrorIs(t, err, bandwidth.ErrOverflow)
}

// TestPowerOfTwo_NonPositive rejects zero, negative and NaN inner results.
func TestPowerOfTwo_NonPositive(t *testing.T) {
	for _, h := range []float64{0, -1, math.NaN()} {
		_, err := roundUp(t, h)
		assert.ErrorIs(t, err, bandwidth.ErrNonPositiveBandwidth, "h=%g", h)
	}
}

// TestPowerOfTwoVector rounds each component independently.
func TestPowerOfTwoVector(t *testing.T) {
	inner, err := bandwidth.NewFixedVector(3.0, 0.5)
	require.NoError(t, err)
	strategy, err := bandwidth.NewPowerOfTwoVector(inner)
	require.NoError(t, err)

	m := stencil.MustNewMulti(stencil.ThreePointCentral, stencil.ThreePointCentral)
	hs, err := strategy.BandwidthVector(nil, m, []float64{0, 0})
	require.NoError(t, err)
	assert.Equal(t, []float64{4.0, 0.5}, hs)
}
