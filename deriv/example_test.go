package deriv_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/findiff/bandwidth"
	"github.com/katalvlaran/findiff/coeffs"
	"github.com/katalvlaran/findiff/deriv"
	"github.com/katalvlaran/findiff/stencil"
)

// ExampleDerivative differentiates sin with a three-point central stencil
// and a fixed step.
func ExampleDerivative() {
	cache := coeffs.NewCache()
	strategy, _ := bandwidth.NewFixed(1e-3)

	d, _ := deriv.New(math.Sin, stencil.ThreePointCentral, strategy, cache)
	v, _ := d.Value(0)

	fmt.Printf("%.4f\n", v)
	// Output:
	// 1.0000
}

// ExampleMultiDerivative takes the mixed second derivative ∂²f/∂x∂y of
// f(x,y) = x·y, which equals 1 everywhere.
func ExampleMultiDerivative() {
	cache := coeffs.NewCache()
	strategy, _ := bandwidth.NewFixedVector(0.5, 0.5)

	m := stencil.MustNewMulti(stencil.ThreePointCentral, stencil.ThreePointCentral)
	product := func(point []float64) float64 { return point[0] * point[1] }

	d, _ := deriv.NewMulti(product, m, strategy, cache)
	v, _ := d.Value([]float64{3, -2})

	fmt.Printf("%.4f\n", v)
	// Output:
	// 1.0000
}
