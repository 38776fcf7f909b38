// SPDX-License-Identifier: MIT

package coeffs

import (
	"math/big"

	"github.com/katalvlaran/findiff/stencil"
	"github.com/katalvlaran/findiff/tensor"
)

// Generate computes the exact coefficient vector of a univariate descriptor.
//
// The coefficients are defined by the Taylor-expansion system over the grid
// offsets (m, m+1, ..., m+size-1) with m = s.LeftMultiplier():
//
//	row 0:  all ones                      (weights reproduce the 0th term)
//	row r:  row r-1 scaled element-wise   (A[r][c] = (m+c)^r)
//	rhs:    zero except b[d] = 1          (select the d-th derivative term)
//
// a generalized Vandermonde system. The exact solution is scaled by d! to
// undo the Taylor-series division, yielding coefficients such that
// Σ cᵢ·f(x+(m+i)h)/hᵈ ≈ f⁽ᵈ⁾(x).
//
// The returned vector is freshly allocated on every call; callers may mutate
// it freely. A coefficient that is exactly zero has Sign() == 0.
//
// Errors: ErrEmptyStencil for a zero-length descriptor; ErrSingular,
// propagated unchanged from the exact solve. Neither can occur for a
// descriptor obtained from stencil.New.
func Generate(s stencil.Stencil) ([]*big.Rat, error) {
	size := s.Length()
	if size == 0 {
		return nil, ErrEmptyStencil
	}
	m := s.LeftMultiplier()

	// Build the coefficient matrix row by row; each row is the previous row
	// scaled element-wise by the offsets, which keeps every entry exact and
	// avoids repeated exponentiation.
	a := make([][]*big.Rat, size)
	a[0] = make([]*big.Rat, size)
	for col := 0; col < size; col++ {
		a[0][col] = new(big.Rat).SetInt64(1)
	}
	for row := 1; row < size; row++ {
		a[row] = make([]*big.Rat, size)
		for col := 0; col < size; col++ {
			offset := big.NewRat(int64(m+col), 1)
			a[row][col] = new(big.Rat).Mul(a[row-1][col], offset)
		}
	}

	// Constant vector: the only non-zero entry selects the derivative term.
	b := make([]*big.Rat, size)
	for row := 0; row < size; row++ {
		b[row] = new(big.Rat)
	}
	b[s.DerivativeOrder()].SetInt64(1)

	x, err := solveExact(a, b)
	if err != nil {
		return nil, err
	}

	// Multiply by d! to normalize for the Taylor-series division by d!.
	factorial := new(big.Rat).SetInt(new(big.Int).MulRange(1, int64(s.DerivativeOrder())))
	for _, c := range x {
		c.Mul(c, factorial)
	}

	return x, nil
}

// GenerateMulti computes the exact row-major coefficient tensor of a
// multivariate descriptor as the tensor product of its per-dimension
// univariate coefficients: the coefficient at multi-index (i0,...,ik-1) is
// the product of each dimension's coefficient at i_dim, stored at the
// row-major linear position over the per-dimension lengths.
//
// This is purely combinatorial — no further linear solve — so the exactness
// of the univariate coefficients is preserved in ℚ.
func GenerateMulti(m stencil.MultiStencil) ([]*big.Rat, error) {
	return generateMulti(m, Generate)
}

// generateMulti is the shared tensor-product kernel. The univariate lookup is
// injected so Cache can route it through its memoized vectors while the pure
// GenerateMulti recomputes from scratch.
func generateMulti(m stencil.MultiStencil, uni func(stencil.Stencil) ([]*big.Rat, error)) ([]*big.Rat, error) {
	perDim := make([][]*big.Rat, m.Dim())
	for dim := 0; dim < m.Dim(); dim++ {
		vector, err := uni(m.At(dim))
		if err != nil {
			return nil, err
		}
		perDim[dim] = vector
	}

	it, err := tensor.NewIteration(m.Lengths()...)
	if err != nil {
		// Unreachable for a MultiStencil from stencil.NewMulti: it has at
		// least one dimension and every length is positive.
		return nil, err
	}

	out := make([]*big.Rat, it.Size())
	index := make([]int, m.Dim())
	for c := it.Iterator(); c.Next(); {
		c.IndexInto(index)
		product := new(big.Rat).SetInt64(1)
		for dim, i := range index {
			product.Mul(product, perDim[dim][i])
		}
		out[c.Linear()] = product
	}

	return out, nil
}

// toFloats converts an exact vector to float64 by pointwise conversion.
// Exact zeros convert to exact float zeros, preserving the "skip this grid
// point" signal for evaluators.
func toFloats(exact []*big.Rat) []float64 {
	out := make([]float64, len(exact))
	for i, c := range exact {
		out[i], _ = c.Float64()
	}

	return out
}

// cloneRats deep-copies an exact vector so callers can mutate the result
// without reaching into shared cache state.
func cloneRats(exact []*big.Rat) []*big.Rat {
	out := make([]*big.Rat, len(exact))
	for i, c := range exact {
		out[i] = new(big.Rat).Set(c)
	}

	return out
}
