package stencil

import "strings"

// MultiStencil composes one univariate Stencil per dimension into an
// n-dimensional scheme. The dimensionality is fixed at construction and the
// value is immutable afterwards: the constructor copies its input and every
// accessor that returns a slice returns a fresh copy.
type MultiStencil struct {
	stencils []Stencil
}

// NewMulti builds a MultiStencil from one descriptor per dimension, in order.
// Returns ErrNoStencils when called with no descriptors.
func NewMulti(stencils ...Stencil) (MultiStencil, error) {
	if len(stencils) == 0 {
		return MultiStencil{}, ErrNoStencils
	}

	// Copy to keep the composition immutable against caller mutation.
	owned := make([]Stencil, len(stencils))
	copy(owned, stencils)

	return MultiStencil{stencils: owned}, nil
}

// MustNewMulti is like NewMulti but panics on invalid input; intended for
// package-level constants and tests.
func MustNewMulti(stencils ...Stencil) MultiStencil {
	m, err := NewMulti(stencils...)
	if err != nil {
		panic(err)
	}

	return m
}

// Dim returns the number of dimensions.
func (m MultiStencil) Dim() int { return len(m.stencils) }

// At returns the univariate descriptor of dimension i. The index must be in
// [0, Dim()); out-of-range access panics like any slice index.
func (m MultiStencil) At(i int) Stencil { return m.stencils[i] }

// Stencils returns a copy of the per-dimension descriptors.
func (m MultiStencil) Stencils() []Stencil {
	out := make([]Stencil, len(m.stencils))
	copy(out, m.stencils)

	return out
}

// Lengths returns the per-dimension grid lengths, in order.
func (m MultiStencil) Lengths() []int {
	out := make([]int, len(m.stencils))
	for i, s := range m.stencils {
		out[i] = s.Length()
	}

	return out
}

// Size returns the total number of grid points of the tensor-product scheme,
// i.e. the product of the per-dimension lengths.
func (m MultiStencil) Size() int {
	size := 1
	for _, s := range m.stencils {
		size *= s.Length()
	}

	return size
}

// Equal reports whether m and o have the same per-dimension descriptors in
// the same order.
func (m MultiStencil) Equal(o MultiStencil) bool {
	if len(m.stencils) != len(o.stencils) {
		return false
	}
	for i := range m.stencils {
		if m.stencils[i] != o.stencils[i] {
			return false
		}
	}

	return true
}

// String renders the composition in a stable form, e.g.
// "MultiStencil[CENTRAL(1,2), FORWARD(1,1)]". The rendering is injective in
// the per-dimension (type, d, n) triples and is stable for cache keying.
func (m MultiStencil) String() string {
	var b strings.Builder
	b.WriteString("MultiStencil[")
	for i, s := range m.stencils {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(s.typ.String())
		b.WriteByte('(')
		writeInt(&b, s.derivativeOrder)
		b.WriteByte(',')
		writeInt(&b, s.errorOrder)
		b.WriteByte(')')
	}
	b.WriteByte(']')

	return b.String()
}

// writeInt appends the decimal rendering of v without allocating through fmt.
func writeInt(b *strings.Builder, v int) {
	if v < 0 {
		b.WriteByte('-')
		v = -v
	}
	if v >= 10 {
		writeInt(b, v/10)
	}
	b.WriteByte(byte('0' + v%10))
}
