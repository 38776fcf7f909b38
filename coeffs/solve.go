// SPDX-License-Identifier: MIT

// Package coeffs: exact linear solve over the rational field.
// This file holds the only numerical kernel of the package. It is kept
// separate from the system construction (generate.go) so the two roles stay
// clean: here we solve A·x = b, nothing else.

package coeffs

import "math/big"

// solveExact solves the square system A·x = b exactly over ℚ using an LU-style
// forward elimination with row interchanges, followed by backward
// substitution. Inputs are never mutated; the elimination works on fresh
// copies.
//
// Implementation:
//   - Stage 1: Clone A and b into scratch storage (one fresh big.Rat per entry).
//   - Stage 2: For each column, pick the first row with an exactly non-zero
//     pivot (exact arithmetic needs no magnitude-based pivoting), swap it into
//     place, and eliminate the column below it.
//   - Stage 3: Back-substitute bottom-up; every pivot is non-zero by Stage 2.
//
// Errors:
//   - ErrSingular if some column has no non-zero pivot at or below the diagonal.
//
// Determinism:
//   - Fixed traversal (col↑, row↑, back-substitution row↓) and first-non-zero
//     pivot choice give identical results for identical inputs.
//
// Complexity:
//   - Time O(n³) rational operations, Space O(n²). Rational operand sizes grow
//     during elimination, but n is small (descriptor-determined).
func solveExact(a [][]*big.Rat, b []*big.Rat) ([]*big.Rat, error) {
	n := len(a)

	// Clone the system; elimination owns its scratch space.
	lu := make([][]*big.Rat, n)
	for row := 0; row < n; row++ {
		lu[row] = make([]*big.Rat, n)
		for col := 0; col < n; col++ {
			lu[row][col] = new(big.Rat).Set(a[row][col])
		}
	}
	x := make([]*big.Rat, n)
	for row := 0; row < n; row++ {
		x[row] = new(big.Rat).Set(b[row])
	}

	var (
		col, row, k int      // loop iterators (deterministic order)
		factor      *big.Rat // elimination multiplier for the current row
		term        = new(big.Rat)
	)
	for col = 0; col < n; col++ {
		// Exact pivot search: any non-zero entry will do over a field.
		pivotRow := -1
		for row = col; row < n; row++ {
			if lu[row][col].Sign() != 0 {
				pivotRow = row
				break
			}
		}
		if pivotRow < 0 {
			return nil, ErrSingular
		}
		if pivotRow != col {
			lu[col], lu[pivotRow] = lu[pivotRow], lu[col]
			x[col], x[pivotRow] = x[pivotRow], x[col]
		}

		// Eliminate the column below the pivot.
		pivot := lu[col][col]
		for row = col + 1; row < n; row++ {
			if lu[row][col].Sign() == 0 {
				continue // nothing to eliminate; skip the row walk
			}
			factor = new(big.Rat).Quo(lu[row][col], pivot)
			for k = col; k < n; k++ {
				term.Mul(factor, lu[col][k])
				lu[row][k].Sub(lu[row][k], term)
			}
			term.Mul(factor, x[col])
			x[row].Sub(x[row], term)
		}
	}

	// Backward substitution: bottom-up, pivots guaranteed non-zero.
	for row = n - 1; row >= 0; row-- {
		for k = row + 1; k < n; k++ {
			term.Mul(lu[row][k], x[k])
			x[row].Sub(x[row], term)
		}
		x[row].Quo(x[row], lu[row][row])
	}

	return x, nil
}
