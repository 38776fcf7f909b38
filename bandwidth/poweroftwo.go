package bandwidth

import (
	"math"

	"github.com/katalvlaran/findiff/stencil"
)

// IEEE 754 double layout, used by the power-of-two rounding.
const (
	fractionMask  = 0x000FFFFFFFFFFFFF
	exponentMask  = 0x7FF0000000000000
	exponentShift = 52
	// maxFiniteExponent is the biased exponent of the largest finite binade;
	// rounding up from it would produce +Inf.
	maxFiniteExponent = 2046
	// minNormal is the smallest positive normal double, 2⁻¹⁰²².
	minNormal = 0x1p-1022
)

// PowerOfTwo wraps a univariate strategy and rounds its output up to the next
// power of two. A power-of-two bandwidth makes x ± h exactly representable,
// which removes one source of cancellation error from the resulting
// derivative.
type PowerOfTwo struct {
	inner UnivariateStrategy
}

// NewPowerOfTwo wraps inner. Returns ErrNilStrategy for a nil strategy.
func NewPowerOfTwo(inner UnivariateStrategy) (*PowerOfTwo, error) {
	if inner == nil {
		return nil, ErrNilStrategy
	}

	return &PowerOfTwo{inner: inner}, nil
}

// Bandwidth delegates to the wrapped strategy and rounds the result. The
// rounding is a no-op when the underlying bandwidth is already a power of
// two. Returns ErrNonPositiveBandwidth if the wrapped strategy produced a
// non-positive value and ErrOverflow at the top of the exponent range.
func (p *PowerOfTwo) Bandwidth(f stencil.Func, s stencil.Stencil, x float64) (float64, error) {
	h, err := p.inner.Bandwidth(f, s, x)
	if err != nil {
		return 0, err
	}

	return nextPowerOfTwo(h)
}

// PowerOfTwoVector wraps a multivariate strategy and rounds each element of
// its output up to the next power of two.
type PowerOfTwoVector struct {
	inner MultivariateStrategy
}

// NewPowerOfTwoVector wraps inner. Returns ErrNilStrategy for a nil strategy.
func NewPowerOfTwoVector(inner MultivariateStrategy) (*PowerOfTwoVector, error) {
	if inner == nil {
		return nil, ErrNilStrategy
	}

	return &PowerOfTwoVector{inner: inner}, nil
}

// BandwidthVector delegates to the wrapped strategy and rounds element-wise.
func (p *PowerOfTwoVector) BandwidthVector(f stencil.FuncN, m stencil.MultiStencil, point []float64) ([]float64, error) {
	hs, err := p.inner.BandwidthVector(f, m, point)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(hs))
	for i, h := range hs {
		out[i], err = nextPowerOfTwo(h)
		if err != nil {
			return nil, err
		}
	}

	return out, nil
}

// nextPowerOfTwo returns the smallest power of two ≥ x.
//
// Implementation: on the IEEE 754 bit pattern, a zero fraction means x is
// already a power of two; otherwise drop the fraction and bump the exponent.
// Subnormals round up to the smallest normal power of two.
//
// Errors: ErrNonPositiveBandwidth for x ≤ 0 or NaN; ErrOverflow when the
// bumped exponent leaves the finite range.
func nextPowerOfTwo(x float64) (float64, error) {
	if x <= 0 || math.IsNaN(x) {
		return 0, ErrNonPositiveBandwidth
	}
	if x < minNormal {
		return minNormal, nil
	}

	bits := math.Float64bits(x)
	if bits&fractionMask == 0 {
		// Already a power of two (+Inf also lands here; it has no finite
		// rounding anyway, so reject it explicitly).
		if math.IsInf(x, 1) {
			return 0, ErrOverflow
		}

		return x, nil
	}

	exponent := (bits & exponentMask) >> exponentShift
	if exponent == maxFiniteExponent {
		return 0, ErrOverflow
	}

	return math.Float64frombits((exponent + 1) << exponentShift), nil
}
