package deriv

import (
	"math"

	"github.com/katalvlaran/findiff/bandwidth"
	"github.com/katalvlaran/findiff/coeffs"
	"github.com/katalvlaran/findiff/stencil"
	"github.com/katalvlaran/findiff/tensor"
)

// MultiDerivative approximates one partial or mixed derivative of a
// multivariate function: dimension i contributes its descriptor's derivative
// order along coordinate i. Like Derivative it is immutable after
// construction and safe for concurrent use as long as the wrapped function
// and strategy are.
type MultiDerivative struct {
	f         stencil.FuncN
	m         stencil.MultiStencil
	strategy  bandwidth.MultivariateStrategy
	cache     *coeffs.Cache
	iteration *tensor.Iteration
}

// NewMulti binds f, the descriptor m and a vector bandwidth strategy into an
// evaluator. Returns ErrNilFunction, ErrNilStrategy or ErrNilCache for
// missing collaborators.
func NewMulti(f stencil.FuncN, m stencil.MultiStencil, strategy bandwidth.MultivariateStrategy, cache *coeffs.Cache) (*MultiDerivative, error) {
	if f == nil {
		return nil, ErrNilFunction
	}
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	if cache == nil {
		return nil, ErrNilCache
	}

	// Descriptor lengths are positive by construction, so this cannot fail.
	iteration, err := tensor.NewIteration(m.Lengths()...)
	if err != nil {
		return nil, err
	}

	return &MultiDerivative{f: f, m: m, strategy: strategy, cache: cache, iteration: iteration}, nil
}

// Stencil returns the bound descriptor.
func (d *MultiDerivative) Stencil() stencil.MultiStencil { return d.m }

// Value approximates the derivative at point, asking the bandwidth strategy
// for the per-dimension step sizes first. Returns ErrDimensionMismatch if
// point does not match the descriptor's dimensionality and
// ErrNonPositiveBandwidth if the strategy produces a non-positive step.
func (d *MultiDerivative) Value(point []float64) (float64, error) {
	if len(point) != d.m.Dim() {
		return 0, ErrDimensionMismatch
	}

	hs, err := d.strategy.BandwidthVector(d.f, d.m, point)
	if err != nil {
		return 0, err
	}

	return d.ValueAt(point, hs)
}

// ValueAt approximates the derivative at point with explicit per-dimension
// bandwidths, bypassing the strategy. The tensor-product grid is walked in
// row-major order; grid points whose coefficient is exactly zero are not
// sampled. Returns ErrDimensionMismatch when point or hs has the wrong
// length and ErrNonPositiveBandwidth for any step ≤ 0 or NaN.
func (d *MultiDerivative) ValueAt(point, hs []float64) (float64, error) {
	dim := d.m.Dim()
	if len(point) != dim || len(hs) != dim {
		return 0, ErrDimensionMismatch
	}
	for _, h := range hs {
		if h <= 0 || math.IsNaN(h) {
			return 0, ErrNonPositiveBandwidth
		}
	}

	coefficients, err := d.cache.CoefficientsMulti(d.m)
	if err != nil {
		return 0, err
	}

	lefts := make([]int, dim)
	for i := 0; i < dim; i++ {
		lefts[i] = d.m.At(i).LeftMultiplier()
	}

	sum := 0.0
	index := make([]int, dim)
	shifted := make([]float64, dim)
	cursor := d.iteration.Iterator()
	for cursor.Next() {
		c := coefficients[cursor.Linear()]
		if c == 0 {
			continue
		}

		cursor.IndexInto(index)
		for i := 0; i < dim; i++ {
			shifted[i] = point[i] + float64(lefts[i]+index[i])*hs[i]
		}
		sum += c * d.f(shifted)
	}

	norm := 1.0
	for i := 0; i < dim; i++ {
		norm *= math.Pow(hs[i], float64(d.m.At(i).DerivativeOrder()))
	}

	return sum / norm, nil
}
