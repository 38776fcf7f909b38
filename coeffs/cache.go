// SPDX-License-Identifier: MIT

package coeffs

import (
	"math/big"
	"sync"

	"github.com/katalvlaran/findiff/stencil"
)

// Cache memoizes exact coefficient vectors per descriptor, for both
// univariate and multivariate stencils. Exact generation is expensive, so a
// Cache is typically shared: construct one per process (or per test) and hand
// it to every evaluator and bandwidth strategy.
//
// Concurrency: all methods are safe for concurrent use. A cache miss computes
// outside the lock, so two goroutines racing on the same first-time key may
// both generate; the computation is pure and idempotent, and the first stored
// vector wins. Stored vectors are never handed out directly — exact views are
// deep-copied and float views freshly converted — so a cached vector can
// never be observed partially written or mutated by a caller.
type Cache struct {
	mu    sync.RWMutex
	uni   map[stencil.Stencil][]*big.Rat
	multi map[string][]*big.Rat
}

// NewCache returns an empty coefficient cache. Entries are never evicted; the
// key space is bounded in practice because descriptors are small values drawn
// from a small working set.
func NewCache() *Cache {
	return &Cache{
		uni:   make(map[stencil.Stencil][]*big.Rat),
		multi: make(map[string][]*big.Rat),
	}
}

// Coefficients returns the float64 coefficient vector of a univariate
// descriptor, generating and memoizing the exact form on first use.
func (c *Cache) Coefficients(s stencil.Stencil) ([]float64, error) {
	exact, err := c.exactRef(s)
	if err != nil {
		return nil, err
	}

	return toFloats(exact), nil
}

// Exact returns a deep copy of the exact coefficient vector of a univariate
// descriptor. The copy may be mutated freely.
func (c *Cache) Exact(s stencil.Stencil) ([]*big.Rat, error) {
	exact, err := c.exactRef(s)
	if err != nil {
		return nil, err
	}

	return cloneRats(exact), nil
}

// CoefficientsMulti returns the float64 row-major coefficient tensor of a
// multivariate descriptor, generating and memoizing the exact form (and the
// underlying univariate vectors) on first use.
func (c *Cache) CoefficientsMulti(m stencil.MultiStencil) ([]float64, error) {
	exact, err := c.exactMultiRef(m)
	if err != nil {
		return nil, err
	}

	return toFloats(exact), nil
}

// ExactMulti returns a deep copy of the exact row-major coefficient tensor of
// a multivariate descriptor.
func (c *Cache) ExactMulti(m stencil.MultiStencil) ([]*big.Rat, error) {
	exact, err := c.exactMultiRef(m)
	if err != nil {
		return nil, err
	}

	return cloneRats(exact), nil
}

// L1Norm returns the ℓ₁ norm of the float64 coefficients of a univariate
// descriptor: Σ |cᵢ|. Bandwidth strategies use it as the condition-error
// coefficient.
func (c *Cache) L1Norm(s stencil.Stencil) (float64, error) {
	exact, err := c.exactRef(s)
	if err != nil {
		return 0, err
	}

	norm := 0.0
	for _, coefficient := range exact {
		v, _ := coefficient.Float64()
		if v < 0 {
			v = -v
		}
		norm += v
	}

	return norm, nil
}

// exactRef returns the shared cached exact vector for s, generating it on a
// miss. Callers within the package must treat the result as read-only.
func (c *Cache) exactRef(s stencil.Stencil) ([]*big.Rat, error) {
	c.mu.RLock()
	cached, ok := c.uni[s]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	// Compute outside the lock; duplicate work on a race is acceptable.
	generated, err := Generate(s)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if stored, ok := c.uni[s]; ok {
		// Another goroutine won the race; keep its vector so every caller
		// observes one stable value per key.
		return stored, nil
	}
	c.uni[s] = generated

	return generated, nil
}

// exactMultiRef returns the shared cached exact tensor for m, generating it
// on a miss and routing univariate lookups through the cache.
func (c *Cache) exactMultiRef(m stencil.MultiStencil) ([]*big.Rat, error) {
	key := m.String()

	c.mu.RLock()
	cached, ok := c.multi[key]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	generated, err := generateMulti(m, c.exactRef)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if stored, ok := c.multi[key]; ok {
		return stored, nil
	}
	c.multi[key] = generated

	return generated, nil
}
