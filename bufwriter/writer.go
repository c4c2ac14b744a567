package bufwriter

import (
	"fmt"

	"github.com/arloliu/spanx/errs"
	"github.com/arloliu/spanx/vec"
)

// Writer is a buffer writer over a vector of T. The committed region,
// [0, Len()), supports the vec.Vec element operations.
//
// A Writer is not safe for concurrent use.
type Writer[T any] struct {
	*vec.PoolVec[T]
}

// New returns a heap-backed Writer with room for capacity elements.
func New[T any](capacity int) *Writer[T] {
	w, err := newWriter(vec.WithAllocator[T](vec.HeapAllocator[T]{}), vec.WithCapacity[T](capacity))
	if err != nil {
		panic(err)
	}

	return w
}

// NewPooled returns a Writer renting from a pool. Option errors panic; use
// TryNewPooled to receive them instead.
func NewPooled[T any](opts ...Option[T]) *Writer[T] {
	w, err := TryNewPooled(opts...)
	if err != nil {
		panic(err)
	}

	return w
}

// TryNewPooled is NewPooled with option errors returned.
func TryNewPooled[T any](opts ...Option[T]) (*Writer[T], error) {
	return newWriter(opts...)
}

func newWriter[T any](opts ...Option[T]) (*Writer[T], error) {
	v, err := vec.TryNewPool(opts...)
	if err != nil {
		return nil, err
	}

	return &Writer[T]{PoolVec: v}, nil
}

// WrittenCount returns the number of committed elements.
func (w *Writer[T]) WrittenCount() int {
	return w.Len()
}

// FreeCapacity returns the number of elements that fit before the next growth.
func (w *Writer[T]) FreeCapacity() int {
	return w.Cap() - w.Len()
}

// GetSpan returns the writable region past the committed elements, growing the
// buffer so that it holds at least sizeHint elements. A sizeHint of 0 asks for
// a non-empty region of any size.
//
// The region is invalidated by the next call that grows the buffer.
func (w *Writer[T]) GetSpan(sizeHint int) []T {
	if sizeHint < 0 {
		panic(fmt.Errorf("%w: negative size hint %d", errs.ErrInvalidArgument, sizeHint))
	}
	w.Reserve(max(sizeHint, 1))

	return w.Spare()
}

// Advance commits n elements written into the region returned by GetSpan.
// n must be non-negative and fit in FreeCapacity.
func (w *Writer[T]) Advance(n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: cannot advance by negative count %d", errs.ErrInvalidOperation, n))
	}
	if free := w.FreeCapacity(); n > free {
		panic(fmt.Errorf("%w: cannot advance %d past the end of the buffer, %d free",
			errs.ErrInvalidOperation, n, free))
	}
	w.SetLen(w.Len() + n)
}

// Write appends items. It is GetSpan, copy, and Advance in one step.
func (w *Writer[T]) Write(items ...T) {
	w.AddRange(items...)
}

// ToArray returns a copy of the committed elements. With dispose set the
// buffer goes back to its pool and the writer is retired; otherwise the writer
// is cleared and keeps its buffer for the next write sequence.
func (w *Writer[T]) ToArray(dispose bool) []T {
	out := w.PoolVec.ToArray()
	if dispose {
		w.Dispose()
	} else {
		w.Clear()
	}

	return out
}

// Detach moves the buffer out of the writer without copying. The returned
// Lease holds the committed elements and must be released by the caller. The
// writer is left empty and usable.
func (w *Writer[T]) Detach() *Lease[T] {
	alloc := w.Allocator()
	buf, owned := w.PoolVec.Detach()

	return &Lease[T]{data: buf, alloc: alloc, owned: owned}
}
