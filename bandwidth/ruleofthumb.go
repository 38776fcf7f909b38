package bandwidth

import (
	"math"

	"github.com/katalvlaran/findiff/coeffs"
	"github.com/katalvlaran/findiff/stencil"
)

// RuleOfThumb selects the bandwidth from the analytic closed form
//
//	h = [ (d/n) · c_n · (ε·S + δ·S/2) ]^(1/(n+d))
//
// where S is the ℓ₁ norm of the stencil coefficients, ε the configured
// condition error, δ the machine round-off, and c_n = max(1, |x|) the
// curvature-scale assumption: the scale of the function's curvature near x is
// taken proportional to x itself (except near zero). The assumption is
// trivial-looking but makes no claims about the particular form of the
// function and works well in practice.
type RuleOfThumb struct {
	cache   *coeffs.Cache
	epsilon float64
}

// NewRuleOfThumb builds the strategy around a shared coefficient cache.
// Supported options: WithEpsilon. Returns ErrNilCache for a nil cache and
// ErrNonPositiveEpsilon for a non-positive condition error.
func NewRuleOfThumb(cache *coeffs.Cache, opts ...Option) (*RuleOfThumb, error) {
	if cache == nil {
		return nil, ErrNilCache
	}
	o, err := gatherOptions(opts)
	if err != nil {
		return nil, err
	}

	return &RuleOfThumb{cache: cache, epsilon: o.epsilon}, nil
}

// Bandwidth evaluates the closed form. The function itself is not sampled:
// the simplified error coefficients absorb |f(x)| into the truncation term.
// Returns ErrZeroDerivativeOrder for a value stencil, whose closed form is
// undefined (d/n = 0/0).
func (r *RuleOfThumb) Bandwidth(_ stencil.Func, s stencil.Stencil, x float64) (float64, error) {
	if s.DerivativeOrder() == 0 {
		return 0, ErrZeroDerivativeOrder
	}

	sum, err := r.cache.L1Norm(s)
	if err != nil {
		return 0, err
	}

	// The curvature-scale assumption; clamped away from zero so the
	// bandwidth never collapses at the origin.
	cn := math.Max(1, math.Abs(x))

	n := float64(s.ErrorOrder())
	d := float64(s.DerivativeOrder())
	arg := (d / n) * cn * ((r.epsilon * sum) + (Epsilon * sum / 2))

	return math.Pow(arg, 1/(n+d)), nil
}
