// Package digest provides content hashing for decoded payloads, useful for
// deduplication and cache keys when Str/Bin/Ext values are large.
package digest

import (
	"sync"

	"github.com/cespare/xxhash/v2"

	"github.com/lmpynix/minimp/value"
)

// Sum64 computes the xxHash64 digest of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String computes the xxHash64 digest of s without allocating a copy.
func Sum64String(s string) uint64 {
	return xxhash.Sum64String(s)
}

// Cache memoizes the digest of a fixed byte slice, computing it once on
// first access. A Cache is not safe for concurrent use.
type Cache struct {
	data []byte
	sum  uint64
	done bool
}

// NewCache returns a Cache over data. data is borrowed, not copied.
func NewCache(data []byte) *Cache {
	return &Cache{data: data}
}

// Sum returns the digest of the cached data, computing it on first call.
func (c *Cache) Sum() uint64 {
	if !c.done {
		c.sum = Sum64(c.data)
		c.done = true
	}
	return c.sum
}

type decodeResult struct {
	buf []byte // retained so the cached Element's borrowed slices stay valid
	el  value.Element
	n   int
}

// DecodeCache memoizes value.DecodeAt results keyed by the xxHash64 digest of
// the input buffer. It sits above the core decoder, which performs no
// caching of its own: a hot configuration buffer that is re-decoded on every
// request can be decoded once and looked up by digest thereafter.
//
// The cached Element borrows from the buffer it was originally decoded from,
// so DecodeCache retains that buffer for as long as the entry lives. Safe
// for concurrent use.
type DecodeCache struct {
	mu      sync.RWMutex
	entries map[uint64]decodeResult
}

// NewDecodeCache returns an empty DecodeCache.
func NewDecodeCache() *DecodeCache {
	return &DecodeCache{entries: make(map[uint64]decodeResult)}
}

// Decode returns the cached decode of buf if one exists for its digest,
// otherwise it decodes buf via value.DecodeAt, caches the result, and
// returns it.
func (c *DecodeCache) Decode(buf []byte, opts ...value.DecodeOption) (value.Element, int, error) {
	key := Sum64(buf)

	c.mu.RLock()
	cached, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cached.el, cached.n, nil
	}

	el, n, err := value.DecodeAt(buf, 0, opts...)
	if err != nil {
		return value.Element{}, 0, err
	}

	c.mu.Lock()
	c.entries[key] = decodeResult{buf: buf, el: el, n: n}
	c.mu.Unlock()

	return el, n, nil
}

// Len reports the number of distinct buffers currently cached.
func (c *DecodeCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Evict removes the cached entry for buf, if any.
func (c *DecodeCache) Evict(buf []byte) {
	c.mu.Lock()
	delete(c.entries, Sum64(buf))
	c.mu.Unlock()
}
