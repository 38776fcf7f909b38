package deriv

import "errors"

var (
	// ErrNilFunction is returned by constructors given a nil function.
	ErrNilFunction = errors.New("deriv: function must not be nil")

	// ErrNilStrategy is returned by constructors given a nil bandwidth
	// strategy.
	ErrNilStrategy = errors.New("deriv: bandwidth strategy must not be nil")

	// ErrNilCache is returned by constructors given a nil coefficient cache.
	ErrNilCache = errors.New("deriv: coefficient cache must not be nil")

	// ErrNonPositiveBandwidth is returned when a supplied or strategy-chosen
	// bandwidth is not strictly positive.
	ErrNonPositiveBandwidth = errors.New("deriv: bandwidth must be > 0")

	// ErrDimensionMismatch is returned when a point or bandwidth vector does
	// not match the descriptor's dimensionality.
	ErrDimensionMismatch = errors.New("deriv: dimension mismatch")
)
