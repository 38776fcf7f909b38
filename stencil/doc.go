// Package stencil defines the immutable descriptors at the heart of findiff:
// one-dimensional finite-difference schemes and their multivariate
// compositions.
//
// What:
//
//   - Stencil describes a one-dimensional scheme by (Type, derivative order d,
//     error order n). The grid bounds (left/right multipliers) and the number
//     of grid points (length) are derived once, at construction.
//   - MultiStencil is an ordered sequence of Stencils, one per dimension.
//   - Func and FuncN are the function collaborators being differentiated.
//   - Canonical descriptors (ThreePointCentral, TwoPointForward, ...) cover
//     the schemes used in practice.
//
// Why:
//
//   - Descriptors are small comparable values: they key the coefficient cache
//     and may be shared freely across goroutines without synchronization.
//   - All validation happens in New/NewMulti; a Stencil in hand is always
//     well-formed.
//
// Grid bounds per type (d = derivative order, n = error order):
//
//	BACKWARD: left = -(d+n),          right = 0
//	CENTRAL:  left = -⌊(d+n-1)/2⌋,    right = +⌊(d+n-1)/2⌋
//	FORWARD:  left = 0,               right = d+n
//
// Errors (sentinel):
//
//   - ErrUnknownType              if the stencil type is not one of the enum values.
//   - ErrNegativeDerivativeOrder  if d < 0.
//   - ErrNonPositiveErrorOrder    if d > 0 and n ≤ 0.
//   - ErrValueErrorOrder          if d = 0 and n ≠ 0 (the degenerate "value" stencil).
//   - ErrOddCentralErrorOrder     if a CENTRAL stencil is given an odd n.
//   - ErrNoStencils               if NewMulti receives no descriptors.
//
// See: coeffs for the exact coefficients of a descriptor, deriv for
// evaluation.
package stencil
