package vec

import (
	"github.com/arloliu/spanx/arraypool"
	"github.com/arloliu/spanx/internal/growth"
)

// Allocator supplies backing storage to a vector.
type Allocator[T any] interface {
	// Allocate returns a slice with len == cap >= minCapacity.
	Allocate(minCapacity int) []T

	// Release takes back a buffer previously returned by Allocate.
	Release(buf []T)

	// Grow returns the capacity to allocate for a buffer of capacity cur that
	// needs room for add more elements.
	Grow(cur, add int) int
}

// HeapAllocator allocates exact-size slices on the Go heap. Release is a no-op.
type HeapAllocator[T any] struct{}

var _ Allocator[int] = HeapAllocator[int]{}

// Allocate implements Allocator.
func (HeapAllocator[T]) Allocate(minCapacity int) []T {
	return make([]T, minCapacity)
}

// Release implements Allocator.
func (HeapAllocator[T]) Release([]T) {}

// Grow implements Allocator.
func (HeapAllocator[T]) Grow(cur, add int) int {
	return growth.Grow(cur, add)
}

// PoolAllocator rents storage from a pool and returns it on Release.
type PoolAllocator[T any] struct {
	Pool arraypool.Pool[T]
}

var _ Allocator[int] = PoolAllocator[int]{}

// NewPoolAllocator returns a PoolAllocator over pool, or over the shared pool
// for T when pool is nil.
func NewPoolAllocator[T any](pool arraypool.Pool[T]) PoolAllocator[T] {
	if pool == nil {
		pool = arraypool.Shared[T]()
	}

	return PoolAllocator[T]{Pool: pool}
}

// Allocate implements Allocator.
func (a PoolAllocator[T]) Allocate(minCapacity int) []T {
	return a.Pool.Rent(minCapacity)
}

// Release implements Allocator.
func (a PoolAllocator[T]) Release(buf []T) {
	a.Pool.Return(buf)
}

// Grow implements Allocator.
func (PoolAllocator[T]) Grow(cur, add int) int {
	return growth.GrowExact(cur, add)
}
