// Package findiff is your toolbox for numerical differentiation on regular
// grids — from exact stencil coefficients to adaptive bandwidth selection.
//
// 🚀 What is findiff?
//
//	A small, thread-safe library that brings together:
//		• Stencil descriptors: forward, backward & central schemes of any order
//		• Exact coefficients: rational Taylor-system solve, no round-off at all
//		• Tensor products: multivariate stencils via row-major multi-indexing
//		• Coefficient cache: injectable, concurrency-safe memoization
//		• Bandwidth strategies: fixed, rule-of-thumb, adaptive, power-of-two
//		• Derivative evaluators: univariate & multivariate, singularity-aware
//
// ✨ Why choose findiff?
//
//   - Exact where it matters – coefficients are solved in ℚ, converted once
//   - Rock-solid guarantees – immutable descriptors, R/W-locked cache
//   - Pure Go – no cgo, no hidden deps
//   - Composable – strategies wrap strategies, caches are plain values you own
//
// Under the hood, everything is organized under five subpackages:
//
//	stencil/   — stencil descriptors, canonical schemes & function types
//	tensor/    — row-major multi-index iteration over rectangular spaces
//	coeffs/    — exact rational coefficient generation + the shared cache
//	bandwidth/ — pluggable step-size selection strategies
//	deriv/     — derivative evaluators tying it all together
//
// Quick sketch of a three-point central first derivative:
//
//	    f(x-h)      f(x)      f(x+h)
//	      -1/2        0         +1/2      →  f'(x) ≈ [f(x+h) - f(x-h)] / 2h
//
// Dive into the package docs for full examples and the error contracts of
// every component.
//
//	go get github.com/katalvlaran/findiff
package findiff
