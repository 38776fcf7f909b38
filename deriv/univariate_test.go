package deriv_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/findiff/bandwidth"
	"github.com/katalvlaran/findiff/coeffs"
	"github.com/katalvlaran/findiff/deriv"
	"github.com/katalvlaran/findiff/stencil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedUnivariate(t *testing.T, h float64) bandwidth.UnivariateStrategy {
	t.Helper()
	strategy, err := bandwidth.NewFixed(h)
	require.NoError(t, err)
	return strategy
}

// TestNew_Validation covers the nil-collaborator sentinels.
func TestNew_Validation(t *testing.T) {
	cache := coeffs.NewCache()
	strategy := fixedUnivariate(t, 1e-3)

	_, err := deriv.New(nil, stencil.ThreePointCentral, strategy, cache)
	assert.ErrorIs(t, err, deriv.ErrNilFunction)

	_, err = deriv.New(math.Sin, stencil.ThreePointCentral, nil, cache)
	assert.ErrorIs(t, err, deriv.ErrNilStrategy)

	_, err = deriv.New(math.Sin, stencil.ThreePointCentral, strategy, nil)
	assert.ErrorIs(t, err, deriv.ErrNilCache)
}

// TestDerivative_SinAtZero: the three-point central difference of sin at 0
// with h=1e-3 must land within 1e-6 of the exact derivative 1.
func TestDerivative_SinAtZero(t *testing.T) {
	d, err := deriv.New(math.Sin, stencil.ThreePointCentral, fixedUnivariate(t, 1e-3), coeffs.NewCache())
	require.NoError(t, err)

	got, err := d.Value(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-6)
}

// TestDerivative_ForwardOnSquare: the two-point forward difference of x² at
// x=2 equals 4+h for any h, exactly up to round-off:
// ((2+h)² − 2²)/h = 4 + h.
func TestDerivative_ForwardOnSquare(t *testing.T) {
	square := func(x float64) float64 { return x * x }

	for _, h := range []float64{0.5, 0.25, 1e-3} {
		d, err := deriv.New(square, stencil.TwoPointForward, fixedUnivariate(t, h), coeffs.NewCache())
		require.NoError(t, err)

		got, err := d.Value(2)
		require.NoError(t, err)
		assert.InDelta(t, 4+h, got, 1e-9, "h=%g", h)
	}
}

// TestDerivative_SkipsZeroCoefficient: central stencils carry an exactly
// zero coefficient at the evaluation point, so a function with a removable
// singularity there is never sampled at it.
func TestDerivative_SkipsZeroCoefficient(t *testing.T) {
	sinc := func(x float64) float64 {
		if x == 0 {
			panic("sampled the singular point")
		}
		return math.Sin(x) / x
	}

	d, err := deriv.New(sinc, stencil.ThreePointCentral, fixedUnivariate(t, 1e-3), coeffs.NewCache())
	require.NoError(t, err)

	var got float64
	assert.NotPanics(t, func() {
		var verr error
		got, verr = d.Value(0)
		require.NoError(t, verr)
	})
	// sinc is even, so its derivative at 0 is 0.
	assert.InDelta(t, 0.0, got, 1e-9)
}

// TestDerivative_SecondOrder checks a d=2 descriptor end to end:
// (sin)''(x) = −sin(x).
func TestDerivative_SecondOrder(t *testing.T) {
	s := stencil.MustNew(stencil.Central, 2, 2)
	d, err := deriv.New(math.Sin, s, fixedUnivariate(t, 1e-3), coeffs.NewCache())
	require.NoError(t, err)

	got, err := d.Value(1)
	require.NoError(t, err)
	assert.InDelta(t, -math.Sin(1), got, 1e-6)
}

// TestDerivative_ValueAt_Validation rejects non-positive explicit
// bandwidths and strategies producing them.
func TestDerivative_ValueAt_Validation(t *testing.T) {
	d, err := deriv.New(math.Sin, stencil.ThreePointCentral, fixedUnivariate(t, 1e-3), coeffs.NewCache())
	require.NoError(t, err)

	for _, h := range []float64{0, -1e-3, math.NaN()} {
		_, verr := d.ValueAt(0, h)
		assert.ErrorIs(t, verr, deriv.ErrNonPositiveBandwidth, "h=%g", h)
	}
}

// TestDerivative_StrategyDriven wires the rule of thumb in front of the
// evaluator; the chosen bandwidth must still produce an accurate result.
func TestDerivative_StrategyDriven(t *testing.T) {
	cache := coeffs.NewCache()
	strategy, err := bandwidth.NewRuleOfThumb(cache)
	require.NoError(t, err)

	d, err := deriv.New(math.Exp, stencil.FivePointCentral, strategy, cache)
	require.NoError(t, err)

	got, err := d.Value(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-8)
}
