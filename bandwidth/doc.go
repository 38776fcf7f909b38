// Package bandwidth provides pluggable step-size ("bandwidth") selection
// strategies for finite-difference derivatives.
//
// What:
//
//   - UnivariateStrategy and MultivariateStrategy are the two capability
//     interfaces: given a function, a descriptor and a point, produce the
//     strictly positive step size(s) to evaluate with.
//   - Fixed / FixedVector return a constant, validated at construction.
//   - RuleOfThumb evaluates the analytic closed form
//     h = [(d/n) · c_n · (ε·S + δ·S/2)]^(1/(n+d)), with S the ℓ₁ norm of the
//     stencil coefficients, c_n = max(1, |x|) the curvature-scale assumption,
//     ε the condition error and δ the machine round-off.
//   - Adaptive replaces the curvature-scale assumption with an empirical
//     truncation-error estimate from two trial evaluations; it costs extra
//     function samples per request and is intended for offline calibration,
//     not hot paths.
//   - PowerOfTwo / PowerOfTwoVector decorate another strategy and round its
//     output up to the next power of two, so x ± h is exactly representable
//     and cancellation error shrinks.
//   - PerDimension lifts a univariate strategy to a multivariate one by
//     applying it along each axis section of the function.
//
// Composition:
//
//	Strategies wrap strategies by ordinary construction, e.g.
//	PowerOfTwo(RuleOfThumb) or PerDimension(PowerOfTwo(Adaptive)); there is
//	no inheritance anywhere.
//
// Errors (sentinel):
//
//   - ErrNonPositiveBandwidth if a supplied or computed bandwidth is ≤ 0 (or NaN).
//   - ErrNonPositiveEpsilon   if a configured condition error is ≤ 0.
//   - ErrBadTrialGrowth       if the adaptive trial growth factor is ≤ 1.
//   - ErrBadTrialAdjustment   if the adaptive trial adjustment is ≤ 0.
//   - ErrNilStrategy          if a decorator wraps a nil strategy.
//   - ErrNilCache             if a strategy is built without a coefficient cache.
//   - ErrEmptyVector          if a fixed vector strategy receives no values.
//   - ErrDimensionMismatch    if a vector strategy receives a point of the wrong length.
//   - ErrOverflow             if power-of-two rounding exceeds the exponent range.
//   - ErrZeroDerivativeOrder  if an error-balancing strategy receives a value stencil.
//
// See: deriv for the evaluators consuming these strategies.
package bandwidth
