package tensor

import "errors"

// Sentinel errors for iteration construction.
var (
	// ErrNoLengths indicates an empty dimension list.
	ErrNoLengths = errors.New("tensor: at least one dimension length is required")

	// ErrNonPositiveLength indicates a dimension length ≤ 0.
	ErrNonPositiveLength = errors.New("tensor: dimension lengths must be positive")
)

// Iteration describes a rectangular index space by its per-dimension lengths.
// It is immutable after construction; obtain traversals via Iterator.
type Iteration struct {
	lengths []int
	size    int
}

// NewIteration validates the lengths and returns the described space.
// Returns ErrNoLengths for an empty list and ErrNonPositiveLength if any
// length is not strictly positive.
func NewIteration(lengths ...int) (*Iteration, error) {
	if len(lengths) == 0 {
		return nil, ErrNoLengths
	}

	size := 1
	for _, l := range lengths {
		if l <= 0 {
			return nil, ErrNonPositiveLength
		}
		size *= l
	}

	// Copy so later caller mutation cannot corrupt the space description.
	owned := make([]int, len(lengths))
	copy(owned, lengths)

	return &Iteration{lengths: owned, size: size}, nil
}

// Dim returns the dimensionality of the space.
func (it *Iteration) Dim() int { return len(it.lengths) }

// Lengths returns a copy of the per-dimension lengths.
func (it *Iteration) Lengths() []int {
	out := make([]int, len(it.lengths))
	copy(out, it.lengths)

	return out
}

// Size returns the total number of positions, Π Li.
func (it *Iteration) Size() int { return it.size }

// Iterator starts a fresh row-major traversal. Each returned Iterator owns
// its own index state; traversals never interfere with one another.
func (it *Iteration) Iterator() *Iterator {
	index := make([]int, len(it.lengths))
	// Pre-decrement the fastest dimension so the first Next lands on the
	// all-zero multi-index.
	index[len(index)-1] = -1

	return &Iterator{
		lengths: it.lengths,
		index:   index,
		linear:  -1,
		size:    it.size,
	}
}

// Iterator is a single in-flight row-major traversal. The zero value is not
// usable; obtain instances from Iteration.Iterator.
type Iterator struct {
	lengths []int
	index   []int
	linear  int
	size    int
}

// Next advances to the following position, returning false once the space is
// exhausted. Call it before the first Index/Linear access.
func (c *Iterator) Next() bool {
	if c.linear+1 >= c.size {
		return false
	}

	// Odometer increment: bump the fastest dimension, carrying left on wrap.
	for dim := len(c.index) - 1; dim >= 0; dim-- {
		c.index[dim]++
		if c.index[dim] < c.lengths[dim] {
			break
		}
		c.index[dim] = 0
	}
	c.linear++

	return true
}

// Index returns a copy of the current multi-index.
func (c *Iterator) Index() []int {
	out := make([]int, len(c.index))
	copy(out, c.index)

	return out
}

// IndexInto copies the current multi-index into dst, avoiding an allocation
// per step in tight loops. dst must have length Dim.
func (c *Iterator) IndexInto(dst []int) {
	copy(dst, c.index)
}

// Linear returns the row-major flattening of the current multi-index.
func (c *Iterator) Linear() int { return c.linear }
