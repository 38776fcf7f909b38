// Package tensor provides row-major multi-index iteration over rectangular
// index spaces of any dimensionality.
//
// What:
//
//   - Iteration describes a rectangular space by its positive per-dimension
//     lengths (L0, ..., Lk-1).
//   - Iterator walks the space lazily in row-major order (last dimension
//     varies fastest), yielding for each position both the multi-index and
//     its linear flattening Σ index[i]·Π_{j>i} L[j].
//
// Why:
//
//   - Tensor-product stencils store their coefficients in a flat row-major
//     vector; this package is the single source of truth for the mapping
//     between multi-indices and flat positions.
//
// Concurrency:
//
//   - Iteration is immutable after construction. Every call to Iterator()
//     returns an independent traversal owning its own state, so the same
//     Iteration may be walked repeatedly and concurrently.
//
// Complexity:
//
//   - Iterator.Next: O(k) worst case per step (odometer carry), O(1) amortized.
//   - Full traversal: O(k·ΠLi) time, O(k) memory.
//
// Errors (sentinel):
//
//   - ErrNoLengths         if the dimension list is empty.
//   - ErrNonPositiveLength if any length is ≤ 0.
package tensor
