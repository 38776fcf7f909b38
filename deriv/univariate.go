package deriv

import (
	"math"

	"github.com/katalvlaran/findiff/bandwidth"
	"github.com/katalvlaran/findiff/coeffs"
	"github.com/katalvlaran/findiff/stencil"
)

// Derivative approximates one derivative of a univariate function. It is a
// bound triple of function, descriptor and bandwidth strategy, sharing a
// coefficient cache with every other user of that cache. The zero value is
// not usable; construct with New.
//
// A Derivative is immutable after construction and safe for concurrent use
// as long as the wrapped function and strategy are.
type Derivative struct {
	f        stencil.Func
	s        stencil.Stencil
	strategy bandwidth.UnivariateStrategy
	cache    *coeffs.Cache
}

// New binds f, the descriptor s and a bandwidth strategy into an evaluator.
// Returns ErrNilFunction, ErrNilStrategy or ErrNilCache for missing
// collaborators.
func New(f stencil.Func, s stencil.Stencil, strategy bandwidth.UnivariateStrategy, cache *coeffs.Cache) (*Derivative, error) {
	if f == nil {
		return nil, ErrNilFunction
	}
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	if cache == nil {
		return nil, ErrNilCache
	}

	return &Derivative{f: f, s: s, strategy: strategy, cache: cache}, nil
}

// Stencil returns the bound descriptor.
func (d *Derivative) Stencil() stencil.Stencil { return d.s }

// Value approximates the derivative at x, asking the bandwidth strategy for
// the step size first. Returns ErrNonPositiveBandwidth if the strategy
// produces a step that is not strictly positive.
func (d *Derivative) Value(x float64) (float64, error) {
	h, err := d.strategy.Bandwidth(d.f, d.s, x)
	if err != nil {
		return 0, err
	}

	return d.ValueAt(x, h)
}

// ValueAt approximates the derivative at x with an explicit bandwidth,
// bypassing the strategy. Grid points whose coefficient is exactly zero are
// not sampled. Returns ErrNonPositiveBandwidth for h ≤ 0 or NaN.
func (d *Derivative) ValueAt(x, h float64) (float64, error) {
	if h <= 0 || math.IsNaN(h) {
		return 0, ErrNonPositiveBandwidth
	}

	coefficients, err := d.cache.Coefficients(d.s)
	if err != nil {
		return 0, err
	}

	sum := 0.0
	left := d.s.LeftMultiplier()
	for i, c := range coefficients {
		if c == 0 {
			continue
		}
		sum += c * d.f(x+float64(left+i)*h)
	}

	return sum / math.Pow(h, float64(d.s.DerivativeOrder())), nil
}
