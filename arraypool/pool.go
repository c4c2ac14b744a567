package arraypool

import (
	"fmt"
	"math/bits"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/arloliu/spanx/errs"
	"github.com/arloliu/spanx/internal/options"
)

// Pool rents and returns slices of T.
type Pool[T any] interface {
	// Rent returns a slice with len == cap and len >= minLength. Rent(0)
	// returns nil. A negative minLength panics with errs.ErrInvalidArgument.
	Rent(minLength int) []T

	// Return hands buf back to the pool. buf must not be used afterwards.
	// Returning nil is a no-op.
	Return(buf []T)
}

// Stats is a snapshot of pool activity counters.
type Stats struct {
	Rents   uint64 // Rent calls with minLength > 0
	Returns uint64 // Return calls with a non-empty slice
	Misses  uint64 // rentals served by a fresh allocation
	Drops   uint64 // returned slices discarded instead of pooled
}

type bucket[T any] struct {
	size int
	pool sync.Pool
}

// BucketPool is a Pool backed by one sync.Pool per power-of-two size class.
type BucketPool[T any] struct {
	buckets   []bucket[T]
	minShift  int
	minLength int
	maxLength int
	clear     bool
	logger    *zap.Logger

	rents   atomic.Uint64
	returns atomic.Uint64
	misses  atomic.Uint64
	drops   atomic.Uint64
}

var _ Pool[byte] = (*BucketPool[byte])(nil)

// New creates a BucketPool configured by opts.
func New[T any](opts ...Option) (*BucketPool[T], error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	minShift := bits.TrailingZeros(uint(cfg.minLength))
	maxShift := bits.TrailingZeros(uint(cfg.maxLength))

	p := &BucketPool[T]{
		buckets:   make([]bucket[T], maxShift-minShift+1),
		minShift:  minShift,
		minLength: cfg.minLength,
		maxLength: cfg.maxLength,
		clear:     cfg.clearOnReturn,
		logger:    cfg.logger,
	}
	for i := range p.buckets {
		p.buckets[i].size = cfg.minLength << i
	}

	return p, nil
}

// MustNew is New for statically known options; it panics on an option error.
func MustNew[T any](opts ...Option) *BucketPool[T] {
	p, err := New[T](opts...)
	if err != nil {
		panic(err)
	}

	return p
}

// bucketIndex returns the size class for n, or -1 if n exceeds the largest class.
func (p *BucketPool[T]) bucketIndex(n int) int {
	if n <= p.minLength {
		return 0
	}
	if n > p.maxLength {
		return -1
	}

	return bits.Len(uint(n-1)) - p.minShift
}

// Rent implements Pool.
func (p *BucketPool[T]) Rent(minLength int) []T {
	if minLength < 0 {
		panic(fmt.Errorf("%w: negative rent length %d", errs.ErrInvalidArgument, minLength))
	}
	if minLength == 0 {
		return nil
	}

	p.rents.Add(1)

	idx := p.bucketIndex(minLength)
	if idx < 0 {
		p.misses.Add(1)
		p.logger.Debug("arraypool: oversize rental bypasses pool",
			zap.Int("length", minLength), zap.Int("max_length", p.maxLength))

		return make([]T, minLength)
	}

	b := &p.buckets[idx]
	if ptr, ok := b.pool.Get().(*[]T); ok {
		buf := *ptr
		return buf[:cap(buf)]
	}

	p.misses.Add(1)

	return make([]T, b.size)
}

// Return implements Pool.
func (p *BucketPool[T]) Return(buf []T) {
	c := cap(buf)
	if c == 0 {
		return
	}

	p.returns.Add(1)

	idx := p.bucketIndex(c)
	if idx < 0 || p.buckets[idx].size != c {
		p.drops.Add(1)
		p.logger.Debug("arraypool: dropping slice outside size classes", zap.Int("capacity", c))

		return
	}

	buf = buf[:c]
	if p.clear {
		clear(buf)
	}
	p.buckets[idx].pool.Put(&buf)
}

// Stats returns a snapshot of the pool counters.
func (p *BucketPool[T]) Stats() Stats {
	return Stats{
		Rents:   p.rents.Load(),
		Returns: p.returns.Load(),
		Misses:  p.misses.Load(),
		Drops:   p.drops.Load(),
	}
}

// MinArrayLength returns the smallest size class.
func (p *BucketPool[T]) MinArrayLength() int {
	return p.minLength
}

// MaxArrayLength returns the largest size class.
func (p *BucketPool[T]) MaxArrayLength() int {
	return p.maxLength
}
