// Package deriv evaluates numerical derivatives at a point.
//
// What:
//
//	An evaluator binds together a function, a stencil descriptor, a
//	bandwidth strategy and a shared coefficient cache. A call samples the
//	function on the grid the descriptor implies, contracts the samples
//	against the cached coefficients and normalizes by the bandwidth raised
//	to the derivative order:
//
//	  f⁽ᵈ⁾(x) ≈ Σᵢ cᵢ·f(x + (left+i)·h) / hᵈ
//
//	Multivariate evaluation runs the same contraction over the tensor-
//	product grid, normalizing by Π h_dimᵈ.
//
// Why:
//
//	The evaluator is the one place where descriptor, coefficients and
//	bandwidth meet; keeping it thin means every accuracy decision lives in
//	the strategy and every exactness decision lives in the cache.
//
// Two evaluators are provided: Derivative for a stencil.Func and
// MultiDerivative for a stencil.FuncN. Both expose a strategy-driven Value
// and a caller-controlled ValueAt. Grid points whose coefficient is exactly
// zero are never sampled, so a function with a removable singularity exactly
// at the evaluation point can still be differentiated with a central
// stencil.
//
// Complexity: O(length) function samples per univariate call, O(Π lengths)
// per multivariate call, plus whatever the bandwidth strategy costs.
//
// Errors: ErrNilFunction, ErrNilStrategy and ErrNilCache at construction;
// ErrNonPositiveBandwidth and ErrDimensionMismatch at evaluation.
//
// See bandwidth for the strategies and coeffs for the cache.
package deriv
