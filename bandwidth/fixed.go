package bandwidth

import (
	"math"

	"github.com/katalvlaran/findiff/stencil"
)

// Fixed always returns the same bandwidth, validated once at construction.
// It is the strategy of choice for hot paths: calibrate offline (for example
// with Adaptive) and pin the result.
type Fixed struct {
	h float64
}

// NewFixed validates h and returns the constant strategy.
// Returns ErrNonPositiveBandwidth if h is not strictly positive.
func NewFixed(h float64) (*Fixed, error) {
	if h <= 0 || math.IsNaN(h) {
		return nil, ErrNonPositiveBandwidth
	}

	return &Fixed{h: h}, nil
}

// Bandwidth returns the configured constant; the function, descriptor and
// point are ignored.
func (f *Fixed) Bandwidth(_ stencil.Func, _ stencil.Stencil, _ float64) (float64, error) {
	return f.h, nil
}

// FixedVector always returns the same per-dimension bandwidths, validated
// once at construction.
type FixedVector struct {
	hs []float64
}

// NewFixedVector validates the vector and returns the constant strategy.
// Returns ErrEmptyVector for no values and ErrNonPositiveBandwidth if any
// element is not strictly positive.
func NewFixedVector(hs ...float64) (*FixedVector, error) {
	if len(hs) == 0 {
		return nil, ErrEmptyVector
	}

	owned := make([]float64, len(hs))
	copy(owned, hs)
	for _, h := range owned {
		if h <= 0 || math.IsNaN(h) {
			return nil, ErrNonPositiveBandwidth
		}
	}

	return &FixedVector{hs: owned}, nil
}

// BandwidthVector returns a copy of the configured vector.
// Returns ErrDimensionMismatch if point has a different dimensionality.
func (f *FixedVector) BandwidthVector(_ stencil.FuncN, _ stencil.MultiStencil, point []float64) ([]float64, error) {
	if len(point) != len(f.hs) {
		return nil, ErrDimensionMismatch
	}

	out := make([]float64, len(f.hs))
	copy(out, f.hs)

	return out, nil
}
