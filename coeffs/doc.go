// SPDX-License-Identifier: MIT

// Package coeffs generates finite-difference stencil coefficients exactly,
// over arbitrary-precision rationals, and memoizes them in an injectable,
// concurrency-safe cache.
//
// What:
//
//   - Generate builds the Taylor-expansion linear system of a univariate
//     descriptor — a generalized Vandermonde matrix over the grid offsets —
//     solves it exactly with an LU factorization over ℚ, and scales the
//     solution by d! so that Σ cᵢ·f(x+(left+i)h)/hᵈ ≈ f⁽ᵈ⁾(x).
//   - GenerateMulti composes per-dimension univariate coefficients into the
//     row-major tensor-product coefficient vector of a MultiStencil.
//   - Cache memoizes the exact vectors per descriptor (univariate and
//     multivariate), deriving float64 views on demand.
//
// Why exact arithmetic:
//
//   - Stencil coefficients are always rational. Solving in ℚ removes every
//     trace of round-off from the coefficients themselves — the central
//     assumption of bandwidth selection — and makes "exactly zero"
//     distinguishable from "very small", which lets evaluators skip function
//     samples at zero-weight grid points.
//
// Concurrency:
//
//   - Cache supports concurrent read/insert. Concurrent first-time requests
//     for the same descriptor may recompute (the generation is pure and
//     idempotent), but a stored vector is never observed partially written.
//
// Errors (sentinel):
//
//   - ErrSingular if the stencil system has no unique solution; for a valid
//     descriptor this cannot happen and it is never retried.
//
// See: stencil for the descriptors, tensor for the row-major layout,
// deriv for evaluation against these coefficients.
package coeffs
