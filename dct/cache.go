package dct

import (
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of distinct basis sizes kept by a cache
// created with a non-positive size.
const DefaultCacheSize = 16

type cacheEntry struct {
	basis  *Matrix
	kernel *Matrix
}

// BasisCache keeps recently used bases keyed by N. It is safe for
// concurrent use. Returned bases are shared and must not be modified.
type BasisCache struct {
	entries *lru.Cache[int, cacheEntry]

	hits   atomic.Int64
	misses atomic.Int64
}

// NewBasisCache returns a cache holding at most size bases.
func NewBasisCache(size int) *BasisCache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	// lru.New only fails for a non-positive size.
	entries, _ := lru.New[int, cacheEntry](size)
	return &BasisCache{entries: entries}
}

// Get returns the basis for n, computing and storing it on a miss.
func (c *BasisCache) Get(n int) (*Matrix, error) {
	e, err := c.entry(n)
	if err != nil {
		return nil, err
	}
	return e.basis, nil
}

func (c *BasisCache) entry(n int) (cacheEntry, error) {
	if e, ok := c.entries.Get(n); ok {
		c.hits.Add(1)
		return e, nil
	}

	basis, k, err := kernel(n)
	if err != nil {
		return cacheEntry{}, err
	}
	c.misses.Add(1)

	e := cacheEntry{basis: basis, kernel: k}
	// A concurrent miss may have stored the same size already; keep the first.
	if prev, ok, _ := c.entries.PeekOrAdd(n, e); ok {
		return prev, nil
	}
	return e, nil
}

// Len returns the number of cached bases.
func (c *BasisCache) Len() int {
	return c.entries.Len()
}

// Purge drops all cached bases. Counters are kept.
func (c *BasisCache) Purge() {
	c.entries.Purge()
}

// Stats returns cache hit and miss counts.
func (c *BasisCache) Stats() (hits, misses int64) {
	return c.hits.Load(), c.misses.Load()
}
