package stencil_test

import (
	"testing"

	"github.com/katalvlaran/findiff/stencil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewMulti_Basics verifies dimensionality, per-dimension access and the
// derived lengths/size of a composition.
func TestNewMulti_Basics(t *testing.T) {
	m, err := stencil.NewMulti(stencil.ThreePointCentral, stencil.TwoPointForward)
	require.NoError(t, err)

	assert.Equal(t, 2, m.Dim())
	assert.Equal(t, stencil.ThreePointCentral, m.At(0))
	assert.Equal(t, stencil.TwoPointForward, m.At(1))
	assert.Equal(t, []int{3, 2}, m.Lengths())
	assert.Equal(t, 6, m.Size(), "size is the product of lengths")
}

// TestNewMulti_Empty ensures an empty composition is rejected.
func TestNewMulti_Empty(t *testing.T) {
	_, err := stencil.NewMulti()
	assert.ErrorIs(t, err, stencil.ErrNoStencils)
}

// TestNewMulti_Immutable ensures the constructor copies its input and the
// accessors return fresh slices.
func TestNewMulti_Immutable(t *testing.T) {
	in := []stencil.Stencil{stencil.ThreePointCentral, stencil.TwoPointForward}
	m, err := stencil.NewMulti(in...)
	require.NoError(t, err)

	// Mutating the input after construction must not leak into m.
	in[0] = stencil.FivePointCentral
	assert.Equal(t, stencil.ThreePointCentral, m.At(0), "constructor must copy")

	// Mutating an accessor result must not leak either.
	out := m.Stencils()
	out[1] = stencil.FivePointCentral
	assert.Equal(t, stencil.TwoPointForward, m.At(1), "accessor must copy")
}

// TestMultiStencil_Equal verifies element-wise, order-sensitive equality.
func TestMultiStencil_Equal(t *testing.T) {
	a := stencil.MustNewMulti(stencil.ThreePointCentral, stencil.TwoPointForward)
	b := stencil.MustNewMulti(stencil.ThreePointCentral, stencil.TwoPointForward)
	c := stencil.MustNewMulti(stencil.TwoPointForward, stencil.ThreePointCentral)
	d := stencil.MustNewMulti(stencil.ThreePointCentral)

	assert.True(t, a.Equal(b), "same descriptors, same order")
	assert.False(t, a.Equal(c), "order matters")
	assert.False(t, a.Equal(d), "dimensionality matters")
}

// TestMultiStencil_String checks the stable rendering used for cache keying.
func TestMultiStencil_String(t *testing.T) {
	m := stencil.MustNewMulti(stencil.ThreePointCentral, stencil.TwoPointForward)
	assert.Equal(t, "MultiStencil[CENTRAL(1,2), FORWARD(1,1)]", m.String())

	n := stencil.MustNewMulti(stencil.MustNew(stencil.Backward, 2, 10))
	assert.Equal(t, "MultiStencil[BACKWARD(2,10)]", n.String())
}
