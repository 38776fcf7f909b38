package bandwidth

import "github.com/katalvlaran/findiff/stencil"

// PerDimension lifts a univariate strategy to the multivariate interface by
// applying it independently along each axis: for dimension i it presents the
// wrapped strategy with the one-dimensional section
// t ↦ f(point[0], ..., t, ..., point[k-1]) and that dimension's descriptor.
type PerDimension struct {
	inner UnivariateStrategy
}

// NewPerDimension wraps inner. Returns ErrNilStrategy for a nil strategy.
func NewPerDimension(inner UnivariateStrategy) (*PerDimension, error) {
	if inner == nil {
		return nil, ErrNilStrategy
	}

	return &PerDimension{inner: inner}, nil
}

// BandwidthVector applies the wrapped strategy along every axis section.
// Returns ErrDimensionMismatch if point does not match the descriptor's
// dimensionality.
func (p *PerDimension) BandwidthVector(f stencil.FuncN, m stencil.MultiStencil, point []float64) ([]float64, error) {
	if len(point) != m.Dim() {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, m.Dim())
	for dim := range out {
		section := axisSection(f, point, dim)
		h, err := p.inner.Bandwidth(section, m.At(dim), point[dim])
		if err != nil {
			return nil, err
		}
		out[dim] = h
	}

	return out, nil
}

// axisSection freezes every coordinate of point except dim, yielding the
// univariate restriction of f along that axis. Each invocation copies the
// point, so the section stays pure even if f retains its argument.
func axisSection(f stencil.FuncN, point []float64, dim int) stencil.Func {
	return func(t float64) float64 {
		shifted := make([]float64, len(point))
		copy(shifted, point)
		shifted[dim] = t

		return f(shifted)
	}
}
