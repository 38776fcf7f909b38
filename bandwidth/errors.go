package bandwidth

import "errors"

// Sentinel errors for bandwidth strategies. Constructors and strategy calls
// MUST return these sentinels; tests match them via errors.Is.
var (
	// ErrNonPositiveBandwidth indicates a supplied or computed bandwidth that
	// is not strictly positive (or is NaN).
	ErrNonPositiveBandwidth = errors.New("bandwidth: bandwidth must be positive")

	// ErrNonPositiveEpsilon indicates a configured condition error ≤ 0.
	ErrNonPositiveEpsilon = errors.New("bandwidth: condition error must be positive")

	// ErrBadTrialGrowth indicates an adaptive trial growth factor ≤ 1; the
	// larger trial bandwidth h1 = growth·h2 must strictly exceed h2.
	ErrBadTrialGrowth = errors.New("bandwidth: trial growth factor must exceed 1")

	// ErrBadTrialAdjustment indicates an adaptive trial adjustment ≤ 0.
	ErrBadTrialAdjustment = errors.New("bandwidth: trial adjustment must be positive")

	// ErrNilStrategy indicates a decorator was given a nil strategy to wrap.
	ErrNilStrategy = errors.New("bandwidth: wrapped strategy is nil")

	// ErrNilCache indicates a strategy was built without a coefficient cache.
	ErrNilCache = errors.New("bandwidth: coefficient cache is nil")

	// ErrEmptyVector indicates a fixed vector strategy built with no values.
	ErrEmptyVector = errors.New("bandwidth: at least one bandwidth is required")

	// ErrDimensionMismatch indicates a point whose dimensionality does not
	// match the strategy's or descriptor's.
	ErrDimensionMismatch = errors.New("bandwidth: dimension mismatch")

	// ErrOverflow indicates power-of-two rounding would exceed the
	// representable exponent range.
	ErrOverflow = errors.New("bandwidth: power-of-two rounding overflows")

	// ErrZeroDerivativeOrder indicates a value stencil (derivative order 0)
	// handed to an error-balancing strategy; with no truncation error to
	// trade off, the closed form is undefined.
	ErrZeroDerivativeOrder = errors.New("bandwidth: stencil must have a non-zero derivative order")
)
