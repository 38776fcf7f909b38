// Package stencil: core type declarations shared across findiff.
package stencil

// Type selects the placement of the grid relative to the evaluation point.
type Type int

const (
	// Forward places all grid points at or to the right of the point.
	Forward Type = iota
	// Backward places all grid points at or to the left of the point.
	Backward
	// Central places grid points symmetrically around the point.
	Central
)

// String returns the canonical name of the stencil type.
func (t Type) String() string {
	switch t {
	case Forward:
		return "FORWARD"
	case Backward:
		return "BACKWARD"
	case Central:
		return "CENTRAL"
	default:
		return "UNKNOWN"
	}
}

// valid reports whether t is one of the declared enum values.
func (t Type) valid() bool {
	return t == Forward || t == Backward || t == Central
}

// Func is a univariate function collaborator: one real input, one real
// output. It must be pure and deterministic for derivative and bandwidth
// results to be reproducible.
type Func func(x float64) float64

// FuncN is a multivariate function collaborator: a fixed-length real vector
// in, one real number out. The same purity requirement as Func applies.
// Callers may reuse the point slice between invocations, so implementations
// must not retain it.
type FuncN func(point []float64) float64
