package extcompress

import "sync"

// resourcePool is a small generic wrapper around sync.Pool for the
// stateful encoder/decoder/compressor handles the codecs below reuse across
// calls instead of constructing fresh (and, for zstd, expensive) instances
// every time.
type resourcePool[T any] struct {
	pool sync.Pool
}

// newResourcePool builds a resourcePool whose New function is create.
func newResourcePool[T any](create func() T) *resourcePool[T] {
	return &resourcePool[T]{pool: sync.Pool{New: func() any { return create() }}}
}

// Get returns a pooled value, creating one if the pool is empty.
func (p *resourcePool[T]) Get() T { return p.pool.Get().(T) }

// Put returns v to the pool for reuse.
func (p *resourcePool[T]) Put(v T) { p.pool.Put(v) }
