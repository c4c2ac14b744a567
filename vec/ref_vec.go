package vec

import "github.com/arloliu/spanx/arraypool"

// RefVec is a scratch vector for transient algorithms. It starts on a
// caller-supplied buffer, usually a local array, and switches to pool rental
// the first time it outgrows that buffer.
//
// A RefVec belongs to the function that created it: it must not be stored in
// a longer-lived structure, returned, or copied. Always pair it with Dispose,
// which returns any rented buffer; the caller's scratch buffer is never handed
// to the pool.
//
//	var scratch [32]int
//	rv := vec.NewRef(scratch[:])
//	defer rv.Dispose()
type RefVec[T any] struct {
	Vec[T]
}

// NewRef returns an empty vector over scratch that escalates to the shared
// pool for T.
func NewRef[T any](scratch []T) *RefVec[T] {
	return NewRefWithPool(scratch, nil)
}

// NewRefWithPool is NewRef renting from pool. A nil pool selects the shared
// pool for T.
func NewRefWithPool[T any](scratch []T, pool arraypool.Pool[T]) *RefVec[T] {
	v := &RefVec[T]{}
	v.alloc = NewPoolAllocator(pool)
	v.buf = scratch[:len(scratch):len(scratch)]
	v.owned = false

	return v
}

// Rented reports whether the vector has left its scratch buffer.
func (v *RefVec[T]) Rented() bool {
	return v.owned
}

// Dispose returns any rented buffer to the pool and retires the vector.
// It is idempotent.
func (v *RefVec[T]) Dispose() {
	if v.disposed {
		return
	}
	v.release()
	v.disposed = true
}
