package vec

import "github.com/arloliu/spanx/internal/options"

// PoolVec is a vector whose storage is rented from an arraypool.Pool, or from
// the Allocator given with WithAllocator.
//
// Outgrown buffers go back to the pool during growth. Dispose returns the
// current buffer; it is idempotent, and any other method called afterwards
// panics with errs.ErrDisposed.
//
//	v := vec.NewPool[int]()
//	defer v.Dispose()
type PoolVec[T any] struct {
	Vec[T]
}

// NewPool returns an empty pool-backed vector. Option errors panic; use
// TryNewPool to receive them instead.
func NewPool[T any](opts ...PoolOption[T]) *PoolVec[T] {
	v, err := TryNewPool(opts...)
	if err != nil {
		panic(err)
	}

	return v
}

// TryNewPool is NewPool with option errors returned.
func TryNewPool[T any](opts ...PoolOption[T]) (*PoolVec[T], error) {
	cfg := &PoolConfig[T]{}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	v := &PoolVec[T]{}
	v.alloc = cfg.alloc
	if v.alloc == nil {
		v.alloc = NewPoolAllocator(cfg.pool)
	}
	if cfg.capacity > 0 {
		v.buf = v.alloc.Allocate(cfg.capacity)
		v.owned = true
	}

	return v, nil
}

// Dispose returns the buffer to the pool and retires the vector.
func (v *PoolVec[T]) Dispose() {
	if v.disposed {
		return
	}
	v.release()
	v.disposed = true
}

// Disposed reports whether Dispose has been called.
func (v *PoolVec[T]) Disposed() bool {
	return v.disposed
}
