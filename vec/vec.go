package vec

import (
	"fmt"
	"iter"

	"github.com/arloliu/spanx/errs"
	"github.com/arloliu/spanx/internal/assert"
)

// noCopy makes go vet's copylocks check flag copies of the embedding struct.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Vec is a growable vector of T.
//
// The zero value is an empty heap-backed vector. Vec must not be copied after
// first use; pass *Vec instead.
type Vec[T any] struct {
	_ noCopy

	buf   []T // len(buf) is the capacity
	count int
	alloc Allocator[T]

	// owned is false while buf is a caller-supplied scratch buffer that must
	// never be released.
	owned    bool
	disposed bool
}

// New returns an empty heap-backed vector with room for capacity elements.
// A negative capacity panics with errs.ErrInvalidArgument.
func New[T any](capacity int) *Vec[T] {
	checkNonNegative("capacity", capacity)

	v := &Vec[T]{}
	if capacity > 0 {
		v.buf = make([]T, capacity)
		v.owned = true
	}

	return v
}

// From returns a heap-backed vector holding a copy of items.
func From[T any](items ...T) *Vec[T] {
	v := New[T](len(items))
	copy(v.buf, items)
	v.count = len(items)

	return v
}

// NewWithAllocator returns an empty vector that obtains storage from alloc.
func NewWithAllocator[T any](alloc Allocator[T], capacity int) *Vec[T] {
	checkNonNegative("capacity", capacity)
	if alloc == nil {
		panic(fmt.Errorf("%w: nil allocator", errs.ErrInvalidArgument))
	}

	v := &Vec[T]{alloc: alloc}
	if capacity > 0 {
		v.buf = alloc.Allocate(capacity)
		v.owned = true
	}

	return v
}

func (v *Vec[T]) allocator() Allocator[T] {
	if v.alloc == nil {
		return HeapAllocator[T]{}
	}

	return v.alloc
}

func (v *Vec[T]) checkLive() {
	if v.disposed {
		panic(errs.ErrDisposed)
	}
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	v.checkLive()
	return v.count
}

// Cap returns the capacity of the current buffer.
func (v *Vec[T]) Cap() int {
	v.checkLive()
	return len(v.buf)
}

// IsEmpty reports whether the vector has no elements.
func (v *Vec[T]) IsEmpty() bool {
	v.checkLive()
	return v.count == 0
}

// SetLen sets the number of elements to n, which must lie in [0, Cap()].
// Slots dropped by shrinking are reset to the zero value. Slots exposed by
// growing hold whatever the buffer contains.
func (v *Vec[T]) SetLen(n int) {
	v.checkLive()
	if uint(n) > uint(len(v.buf)) {
		panic(fmt.Errorf("%w: length %d outside [0, %d]", errs.ErrInvalidArgument, n, len(v.buf)))
	}
	if n < v.count {
		clear(v.buf[n:v.count])
	}
	v.count = n
}

// At returns a pointer to the element at index. The pointer is invalidated by
// any operation that grows the vector.
func (v *Vec[T]) At(index int) *T {
	v.checkLive()
	checkIndex(index, v.count)

	return &v.buf[index]
}

// Get returns the element at index.
func (v *Vec[T]) Get(index int) T {
	v.checkLive()
	checkIndex(index, v.count)

	return v.buf[index]
}

// Set replaces the element at index.
func (v *Vec[T]) Set(index int, item T) {
	v.checkLive()
	checkIndex(index, v.count)

	v.buf[index] = item
}

// Slice returns a view of the elements. The view aliases the vector's buffer
// and is invalidated by growth and by Dispose.
func (v *Vec[T]) Slice() []T {
	v.checkLive()
	return v.buf[:v.count:v.count]
}

// Spare returns the unused tail of the buffer, [Len(), Cap()). Writing there
// and then calling SetLen commits the written elements.
func (v *Vec[T]) Spare() []T {
	v.checkLive()
	return v.buf[v.count:]
}

// ToArray returns a freshly allocated copy of the elements.
func (v *Vec[T]) ToArray() []T {
	v.checkLive()

	out := make([]T, v.count)
	copy(out, v.buf[:v.count])

	return out
}

// Clone returns a heap-backed copy of the vector.
func (v *Vec[T]) Clone() *Vec[T] {
	v.checkLive()
	return From(v.buf[:v.count]...)
}

// All returns an iterator over index/element pairs. Ranging over it after
// Dispose panics with errs.ErrDisposed.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.checkLive()
		for i := 0; i < v.count; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		v.checkLive()
		for i := 0; i < v.count; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Reserve ensures room for at least additional more elements without further
// growth.
func (v *Vec[T]) Reserve(additional int) {
	v.checkLive()
	checkNonNegative("capacity", additional)

	if free := len(v.buf) - v.count; additional > free {
		v.grow(additional - free)
	}
}

// EnsureCapacity ensures Cap() >= capacity.
func (v *Vec[T]) EnsureCapacity(capacity int) {
	v.checkLive()
	checkNonNegative("capacity", capacity)

	if capacity > len(v.buf) {
		v.grow(capacity - len(v.buf))
	}
}

// TrimExcess shrinks the buffer to fit the elements when more than a tenth of
// it is unused. A caller-supplied scratch buffer is left in place, and so is
// any buffer the allocator cannot replace with a smaller one.
func (v *Vec[T]) TrimExcess() {
	v.checkLive()

	if !v.owned || v.count >= len(v.buf)*9/10 {
		return
	}
	if v.count == 0 {
		v.release()
		return
	}

	alloc := v.allocator()
	buf := alloc.Allocate(v.count)
	if len(buf) >= len(v.buf) {
		alloc.Release(buf)
		return
	}
	copy(buf, v.buf[:v.count])
	v.replace(buf)
}

// Reset releases the buffer and empties the vector. The vector stays usable
// and allocates again on the next write.
func (v *Vec[T]) Reset() {
	v.checkLive()
	v.release()
}

// Detach hands the buffer to the caller and empties the vector. buf holds the
// elements and keeps the full capacity. When owned is true the caller must
// hand buf back to Allocator().Release once done with it.
func (v *Vec[T]) Detach() (buf []T, owned bool) {
	v.checkLive()

	buf, owned = v.buf[:v.count], v.owned
	v.buf = nil
	v.count = 0
	v.owned = false

	return buf, owned
}

// Allocator returns the allocator the vector draws storage from.
func (v *Vec[T]) Allocator() Allocator[T] {
	return v.allocator()
}

// grow enlarges the buffer by at least add slots beyond its current capacity.
func (v *Vec[T]) grow(add int) {
	assert.Thatf(add > 0, "grow by %d", add)

	alloc := v.allocator()
	buf := alloc.Allocate(alloc.Grow(len(v.buf), add))
	copy(buf, v.buf[:v.count])
	v.replace(buf)
}

// replace installs buf as the backing storage and releases the previous buffer
// if the vector owns it.
func (v *Vec[T]) replace(buf []T) {
	old, owned := v.buf, v.owned
	v.buf = buf
	v.owned = buf != nil
	if owned && old != nil {
		v.allocator().Release(old)
	}
}

// ensureFree grows the buffer so that at least n more elements fit.
func (v *Vec[T]) ensureFree(n int) {
	if free := len(v.buf) - v.count; n > free {
		v.grow(n - free)
	}
}

// release returns the buffer if owned and empties the vector.
func (v *Vec[T]) release() {
	buf, owned := v.buf, v.owned
	v.buf = nil
	v.count = 0
	v.owned = false
	if owned && buf != nil {
		v.allocator().Release(buf)
	}
}
