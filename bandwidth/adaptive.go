package bandwidth

import (
	"math"

	"github.com/katalvlaran/findiff/coeffs"
	"github.com/katalvlaran/findiff/stencil"
)

// Adaptive selects the bandwidth from an empirical truncation-error
// estimate.
//
// The truncation error of a finite difference takes the form
// f⁽ᵈ⁾(x) = D{f}(x,h) + C(n,h)·hⁿ. For small h, C loses its dependence on h
// and two trial evaluations pin it down:
//
//	C(n) = (D(h2) − D(h1)) / (h1ⁿ − h2ⁿ),  h1 = growth·h2
//
// If |C(n)| is below the machine epsilon the trial bandwidth is already
// near-optimal and is returned as-is; otherwise C(n) replaces the
// rule-of-thumb curvature-scale assumption in the same closed form.
//
// Each request costs two extra derivative evaluations (a full stencil of
// function samples each), so this strategy is meant for offline calibration:
// find a good bandwidth for typical parameter ranges once, then pin it with
// Fixed for live use.
type Adaptive struct {
	cache       *coeffs.Cache
	epsilon     float64
	trial       float64 // 0 = derive from the rule of thumb
	trialGrowth float64
	trialAdjust float64
}

// NewAdaptive builds the strategy around a shared coefficient cache.
// Supported options: WithEpsilon, WithTrialBandwidth, WithTrialGrowth,
// WithTrialAdjustment. Returns ErrNilCache for a nil cache, plus the option
// sentinels for out-of-range tunables.
func NewAdaptive(cache *coeffs.Cache, opts ...Option) (*Adaptive, error) {
	if cache == nil {
		return nil, ErrNilCache
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return &Adaptive{
		cache:       cache,
		epsilon:     o.epsilon,
		trial:       o.trial,
		trialGrowth: o.trialGrowth,
		trialAdjust: o.trialAdjust,
	}, nil
}

// Bandwidth estimates the truncation error empirically and solves the closed
// form with it. Exactly two extra derivative evaluations are issued per call.
// Returns ErrZeroDerivativeOrder for a value stencil, which has no
// truncation error to estimate.
func (a *Adaptive) Bandwidth(f stencil.Func, s stencil.Stencil, x float64) (float64, error) {
	if s.DerivativeOrder() == 0 {
		return 0, ErrZeroDerivativeOrder
	}

	h2, err := a.trialBandwidth(f, s, x)
	if err != nil {
		return 0, err
	}

	cn, err := a.estimatedTruncationError(f, s, x, h2)
	if err != nil {
		return 0, err
	}
	cn = math.Abs(cn)

	if cn < Epsilon {
		// The estimated truncation error at the trial bandwidth is already
		// negligible — the trial is a good bandwidth in its own right.
		return h2, nil
	}

	l1, err := a.cache.L1Norm(s)
	if err != nil {
		return 0, err
	}

	// Condition and round-off error coefficients, simplified forms.
	absF := math.Abs(f(x))
	fe := absF * l1
	fd := absF * l1 / 2

	n := float64(s.ErrorOrder())
	d := float64(s.DerivativeOrder())
	arg := (d / n) * (1 / cn) * (a.epsilon*fe + Epsilon*fd)

	return math.Pow(arg, 1/(n+d)), nil
}

// trialBandwidth returns the user-specified trial bandwidth if one was
// configured; otherwise it derives one from the power-of-two-rounded rule of
// thumb, scaled by the trial adjustment.
func (a *Adaptive) trialBandwidth(f stencil.Func, s stencil.Stencil, x float64) (float64, error) {
	if a.trial > 0 {
		return a.trial, nil
	}

	ruleOfThumb, err := NewRuleOfThumb(a.cache, WithEpsilon(a.epsilon))
	if err != nil {
		return 0, err
	}
	powerOfTwo, err := NewPowerOfTwo(ruleOfThumb)
	if err != nil {
		return 0, err
	}

	h, err := powerOfTwo.Bandwidth(f, s, x)
	if err != nil {
		return 0, err
	}

	return h * a.trialAdjust, nil
}

// estimatedTruncationError evaluates the derivative at the trial bandwidth h2
// and at h1 = growth·h2, then solves the two-point system for the
// h-independent truncation coefficient.
func (a *Adaptive) estimatedTruncationError(f stencil.Func, s stencil.Stencil, x, h2 float64) (float64, error) {
	h1 := h2 * a.trialGrowth

	fd1, err := derivativeAt(f, s, a.cache, x, h1)
	if err != nil {
		return 0, err
	}
	fd2, err := derivativeAt(f, s, a.cache, x, h2)
	if err != nil {
		return 0, err
	}

	n := float64(s.ErrorOrder())

	return (fd2 - fd1) / (math.Pow(h1, n) - math.Pow(h2, n)), nil
}

// derivativeAt computes the finite-difference derivative of f at x with a
// fixed bandwidth, skipping samples whose coefficient is exactly zero. It
// mirrors the univariate evaluator in deriv; duplicated here because deriv
// depends on this package for its strategy interface.
func derivativeAt(f stencil.Func, s stencil.Stencil, cache *coeffs.Cache, x, h float64) (float64, error) {
	coefficients, err := cache.Coefficients(s)
	if err != nil {
		return 0, err
	}

	derivative := 0.0
	left := s.LeftMultiplier()
	for i, c := range coefficients {
		if c == 0 {
			continue
		}
		derivative += c * f(x+float64(left+i)*h)
	}

	return derivative / math.Pow(h, float64(s.DerivativeOrder())), nil
}
