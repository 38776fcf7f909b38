package stencil

import "errors"

// Sentinel errors for stencil construction. All constructors MUST return these
// sentinels and tests MUST check them via errors.Is.
var (
	// ErrUnknownType indicates a Type value outside the declared enum.
	ErrUnknownType = errors.New("stencil: unknown stencil type")

	// ErrNegativeDerivativeOrder indicates a derivative order below zero.
	ErrNegativeDerivativeOrder = errors.New("stencil: derivative order must be non-negative")

	// ErrNonPositiveErrorOrder indicates a non-positive error order for a
	// stencil with a non-zero derivative order.
	ErrNonPositiveErrorOrder = errors.New("stencil: error order must be positive for non-zero derivative order")

	// ErrValueErrorOrder indicates a non-zero error order for the degenerate
	// zeroth-derivative ("value") stencil.
	ErrValueErrorOrder = errors.New("stencil: error order must be zero for zero derivative order")

	// ErrValueTypeNotCentral indicates a zero derivative order paired with a
	// one-sided type; the value stencil is central, a one-sided variant would
	// have an empty grid.
	ErrValueTypeNotCentral = errors.New("stencil: value stencil (zero derivative order) must be central")

	// ErrOddCentralErrorOrder indicates an odd error order for a central
	// stencil; central schemes need an even n for symmetric grid bounds.
	ErrOddCentralErrorOrder = errors.New("stencil: central stencil requires an even error order")

	// ErrNoStencils indicates that NewMulti was called without descriptors.
	ErrNoStencils = errors.New("stencil: at least one stencil is required")
)
