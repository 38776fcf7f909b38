// Package bandwidth: capability interfaces and functional configuration.
package bandwidth

import (
	"math"

	"github.com/katalvlaran/findiff/stencil"
)

// Epsilon is the double-precision unit round-off, 2⁻⁵³. It is the default
// condition error and the round-off error bound of every strategy here; the
// library computes in float64, so the round-off side is not settable.
const Epsilon = 0x1p-53

// UnivariateStrategy produces the step size for a univariate derivative
// evaluation. The returned bandwidth must be strictly positive.
type UnivariateStrategy interface {
	// Bandwidth returns the step size to use when evaluating the given
	// derivative of f at x.
	Bandwidth(f stencil.Func, s stencil.Stencil, x float64) (float64, error)
}

// MultivariateStrategy produces the per-dimension step sizes for a
// multivariate derivative evaluation. Every element of the returned vector
// must be strictly positive, and its length must equal the descriptor's
// dimensionality.
type MultivariateStrategy interface {
	// BandwidthVector returns the per-dimension step sizes to use when
	// evaluating the given derivative of f at point.
	BandwidthVector(f stencil.FuncN, m stencil.MultiStencil, point []float64) ([]float64, error)
}

// DefaultTrialGrowth is the factor by which the adaptive strategy enlarges
// its trial bandwidth to obtain the second sample: h1 = growth·h2. The value
// 2 keeps h1 a power of two whenever h2 is one.
const DefaultTrialGrowth = 2.0

// DefaultTrialAdjustment scales the rule-of-thumb result when the adaptive
// strategy derives its own trial bandwidth. Experiments in the source
// derivation showed a slightly-too-large trial beats a too-small one when
// estimating the truncation error; the constant is heuristic and therefore
// configurable, not an invariant.
const DefaultTrialAdjustment = 2.0

// Options collects the tunables shared by the analytic and adaptive
// strategies. Zero trial bandwidth means "derive one from the rule of thumb".
type Options struct {
	epsilon     float64
	trial       float64
	trialGrowth float64
	trialAdjust float64
}

// Option mutates Options in the functional-options style.
type Option func(*Options)

// WithEpsilon sets the condition error ε. Values ≤ 0 are rejected by the
// strategy constructor with ErrNonPositiveEpsilon.
func WithEpsilon(epsilon float64) Option {
	return func(o *Options) { o.epsilon = epsilon }
}

// WithTrialBandwidth fixes the adaptive strategy's trial bandwidth h2
// instead of deriving it from the rule of thumb. Values ≤ 0 are rejected by
// the constructor with ErrNonPositiveBandwidth.
func WithTrialBandwidth(h2 float64) Option {
	return func(o *Options) { o.trial = h2 }
}

// WithTrialGrowth sets the factor producing the larger trial bandwidth,
// h1 = growth·h2. Values ≤ 1 are rejected with ErrBadTrialGrowth.
func WithTrialGrowth(growth float64) Option {
	return func(o *Options) { o.trialGrowth = growth }
}

// WithTrialAdjustment scales the derived rule-of-thumb trial bandwidth.
// Values ≤ 0 are rejected with ErrBadTrialAdjustment.
func WithTrialAdjustment(adjust float64) Option {
	return func(o *Options) { o.trialAdjust = adjust }
}

// defaultOptions is the single source of truth for strategy defaults.
func defaultOptions() Options {
	return Options{
		epsilon:     Epsilon,
		trial:       0, // 0 = derive from the rule of thumb
		trialGrowth: DefaultTrialGrowth,
		trialAdjust: DefaultTrialAdjustment,
	}
}

// gatherOptions folds the option list over the defaults and validates the
// result against the sentinel contracts.
func gatherOptions(opts []Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.epsilon <= 0 || math.IsNaN(o.epsilon) {
		return Options{}, ErrNonPositiveEpsilon
	}
	if o.trial < 0 || math.IsNaN(o.trial) {
		return Options{}, ErrNonPositiveBandwidth
	}
	if o.trialGrowth <= 1 || math.IsNaN(o.trialGrowth) {
		return Options{}, ErrBadTrialGrowth
	}
	if o.trialAdjust <= 0 || math.IsNaN(o.trialAdjust) {
		return Options{}, ErrBadTrialAdjustment
	}

	return o, nil
}
