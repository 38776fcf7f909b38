package stencil

import "fmt"

// Stencil describes a one-dimensional finite-difference scheme. It is an
// immutable comparable value: two Stencils are equal (==) iff their type,
// derivative order and error order match, which makes Stencil directly usable
// as a map key. The grid bounds and length are pure functions of the three
// inputs, computed once by New.
type Stencil struct {
	typ             Type
	derivativeOrder int
	errorOrder      int
	left            int
	right           int
	length          int
}

// New constructs a validated Stencil descriptor.
//
// Validation rules:
//   - typ must be Forward, Backward or Central (ErrUnknownType).
//   - derivativeOrder must be ≥ 0 (ErrNegativeDerivativeOrder).
//   - derivativeOrder > 0 requires errorOrder > 0 (ErrNonPositiveErrorOrder).
//   - derivativeOrder = 0 requires errorOrder = 0 (ErrValueErrorOrder).
//   - derivativeOrder = 0 requires Central (ErrValueTypeNotCentral).
//   - Central requires an even errorOrder (ErrOddCentralErrorOrder).
//
// Complexity: O(1), no allocation beyond the returned value.
func New(typ Type, derivativeOrder, errorOrder int) (Stencil, error) {
	if !typ.valid() {
		return Stencil{}, ErrUnknownType
	}
	if derivativeOrder < 0 {
		return Stencil{}, ErrNegativeDerivativeOrder
	}
	if derivativeOrder != 0 && errorOrder <= 0 {
		return Stencil{}, ErrNonPositiveErrorOrder
	}
	if derivativeOrder == 0 && errorOrder != 0 {
		return Stencil{}, ErrValueErrorOrder
	}
	if derivativeOrder == 0 && typ != Central {
		return Stencil{}, ErrValueTypeNotCentral
	}
	if typ == Central && errorOrder%2 != 0 {
		return Stencil{}, ErrOddCentralErrorOrder
	}

	s := Stencil{
		typ:             typ,
		derivativeOrder: derivativeOrder,
		errorOrder:      errorOrder,
	}

	// Derive the grid bounds; the half-width of a central stencil uses
	// integer division so that d+n-1 odd and even collapse to the same
	// symmetric window.
	span := derivativeOrder + errorOrder
	switch typ {
	case Backward:
		s.left, s.right = -span, 0
		s.length = span
	case Central:
		half := (span - 1) / 2
		s.left, s.right = -half, half
		s.length = s.right - s.left + 1
	case Forward:
		s.left, s.right = 0, span
		s.length = span
	}

	return s, nil
}

// MustNew is like New but panics on invalid input. It is intended for
// package-level canonical descriptors and tests, where an invalid combination
// is a programmer error.
func MustNew(typ Type, derivativeOrder, errorOrder int) Stencil {
	s, err := New(typ, derivativeOrder, errorOrder)
	if err != nil {
		panic(err)
	}

	return s
}

// Type returns the stencil type.
func (s Stencil) Type() Type { return s.typ }

// DerivativeOrder returns the order d of the derivative being approximated.
func (s Stencil) DerivativeOrder() int { return s.derivativeOrder }

// ErrorOrder returns the order n of the leading truncation-error term.
func (s Stencil) ErrorOrder() int { return s.errorOrder }

// LeftMultiplier returns the leftmost grid offset in units of the bandwidth.
func (s Stencil) LeftMultiplier() int { return s.left }

// RightMultiplier returns the rightmost grid offset in units of the bandwidth.
func (s Stencil) RightMultiplier() int { return s.right }

// Length returns the number of grid points (and coefficients) of the scheme.
func (s Stencil) Length() int { return s.length }

// String renders the descriptor in a stable, human-readable form.
func (s Stencil) String() string {
	return fmt.Sprintf("Stencil[type=%s, derivativeOrder=%d, errorOrder=%d]",
		s.typ, s.derivativeOrder, s.errorOrder)
}

// Canonical descriptors. These cover the schemes used in practice; callers
// with unusual requirements construct their own via New.
var (
	// ThreePointCentral is the three-point central first derivative.
	ThreePointCentral = MustNew(Central, 1, 2)

	// FivePointCentral is the five-point central first derivative.
	FivePointCentral = MustNew(Central, 1, 4)

	// TwoPointForward is the two-point forward first derivative.
	TwoPointForward = MustNew(Forward, 1, 1)

	// FourPointForward is the four-point forward first derivative.
	FourPointForward = MustNew(Forward, 1, 3)

	// Value is the semi-degenerate stencil that simply reproduces the
	// function value: both derivative and error order are zero.
	Value = MustNew(Central, 0, 0)
)
