// SPDX-License-Identifier: MIT

package coeffs

import "errors"

// Sentinel errors for coefficient generation. Tests MUST check them via
// errors.Is; no algorithm in this package panics on user-triggered conditions.
var (
	// ErrSingular is returned when the Taylor-expansion system admits no
	// unique solution. The construction of the system guarantees this cannot
	// occur for a valid descriptor, so observing ErrSingular indicates a
	// descriptor invariant violation; it is fatal and never retried.
	ErrSingular = errors.New("coeffs: singular stencil system")

	// ErrEmptyStencil is returned for a descriptor with an empty grid, such
	// as the zero value of stencil.Stencil. stencil.New never produces one.
	ErrEmptyStencil = errors.New("coeffs: stencil has an empty grid")
)
