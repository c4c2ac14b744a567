package tiny

import (
	"fmt"
	"iter"

	"github.com/arloliu/spanx/errs"
	"github.com/arloliu/spanx/vec"
)

// Vec is a mutable sequence that stores up to four elements inline.
//
// The fifth element, or any InsertRange/AddRange of two or more elements,
// moves the contents into a heap vector. The move is permanent: removing
// elements afterwards does not bring them back inline.
//
// The zero value is an empty inline Vec. A Vec must not be copied after first
// use: a spilled copy would share its heap vector with the original.
type Vec[T any] struct {
	_ noCopy

	shape  shape
	n      int
	inline [InlineCapacity]T
	spill  *vec.Vec[T]
}

// VecOf returns a Vec holding a copy of items.
func VecOf[T any](items ...T) *Vec[T] {
	v := &Vec[T]{}
	if len(items) <= InlineCapacity {
		v.n = copy(v.inline[:], items)
		return v
	}
	v.spill = vec.From(items...)
	v.shape = shapeSpilled

	return v
}

// FromSpan returns a Vec holding a copy of the elements of s.
func FromSpan[T any](s Span[T]) *Vec[T] {
	return VecOf(s.View()...)
}

// spillTo moves the inline elements into a heap vector with room for at least
// capacity elements.
func (v *Vec[T]) spillTo(capacity int) {
	if v.shape == shapeSpilled {
		return
	}

	sv := vec.New[T](max(capacity, 2*InlineCapacity))
	sv.AddRange(v.inline[:v.n]...)
	clear(v.inline[:])

	v.spill = sv
	v.n = 0
	v.shape = shapeSpilled
}

// IsSpilled reports whether the elements live in a heap vector.
func (v *Vec[T]) IsSpilled() bool {
	return v.shape == shapeSpilled
}

// Len returns the number of elements.
func (v *Vec[T]) Len() int {
	if v.shape == shapeSpilled {
		return v.spill.Len()
	}

	return v.n
}

// IsEmpty reports whether the Vec has no elements.
func (v *Vec[T]) IsEmpty() bool {
	return v.Len() == 0
}

// Get returns the element at index.
func (v *Vec[T]) Get(index int) T {
	if v.shape == shapeSpilled {
		return v.spill.Get(index)
	}
	checkIndex(index, v.n)

	return v.inline[index]
}

// At returns a pointer to the element at index. The pointer is invalidated by
// the move to spilled storage and by growth of that storage.
func (v *Vec[T]) At(index int) *T {
	if v.shape == shapeSpilled {
		return v.spill.At(index)
	}
	checkIndex(index, v.n)

	return &v.inline[index]
}

// Set replaces the element at index.
func (v *Vec[T]) Set(index int, item T) {
	*v.At(index) = item
}

// Add appends item.
func (v *Vec[T]) Add(item T) {
	if v.shape == shapeInline {
		if v.n < InlineCapacity {
			v.inline[v.n] = item
			v.n++

			return
		}
		v.spillTo(v.n + 1)
	}
	v.spill.Add(item)
}

// AddRange appends items. Two or more items always spill.
func (v *Vec[T]) AddRange(items ...T) {
	switch len(items) {
	case 0:
		return
	case 1:
		v.Add(items[0])
		return
	}

	v.spillTo(v.Len() + len(items))
	v.spill.AddRange(items...)
}

// Insert inserts item at index, which must lie in [0, Len()].
func (v *Vec[T]) Insert(index int, item T) {
	if v.shape == shapeInline {
		if uint(index) > uint(v.n) {
			panic(fmt.Errorf("%w: %w: insert at %d into inline length %d",
				errs.ErrInvalidOperation, errs.ErrIndexOutOfRange, index, v.n))
		}
		if v.n < InlineCapacity {
			copy(v.inline[index+1:v.n+1], v.inline[index:v.n])
			v.inline[index] = item
			v.n++

			return
		}
		v.spillTo(v.n + 1)
	}
	v.spill.Insert(index, item)
}

// InsertRange inserts items at index. Two or more items always spill.
func (v *Vec[T]) InsertRange(index int, items ...T) {
	switch len(items) {
	case 0:
		if uint(index) > uint(v.Len()) {
			panic(fmt.Errorf("%w: insert at %d into length %d", errs.ErrIndexOutOfRange, index, v.Len()))
		}

		return
	case 1:
		v.Insert(index, items[0])
		return
	}

	if v.shape == shapeInline && uint(index) > uint(v.n) {
		panic(fmt.Errorf("%w: %w: insert at %d into inline length %d",
			errs.ErrInvalidOperation, errs.ErrIndexOutOfRange, index, v.n))
	}
	v.spillTo(v.Len() + len(items))
	v.spill.InsertRange(index, items...)
}

// RemoveAt removes the element at index.
func (v *Vec[T]) RemoveAt(index int) {
	if v.shape == shapeSpilled {
		v.spill.RemoveAt(index)
		return
	}
	checkIndex(index, v.n)

	copy(v.inline[index:v.n], v.inline[index+1:v.n])
	v.n--
	var zero T
	v.inline[v.n] = zero
}

// RemoveFunc removes every element for which del returns true and returns the
// number removed.
func (v *Vec[T]) RemoveFunc(del func(T) bool) int {
	if v.shape == shapeSpilled {
		return v.spill.RemoveFunc(del)
	}

	w := 0
	for r := 0; r < v.n; r++ {
		if del(v.inline[r]) {
			continue
		}
		v.inline[w] = v.inline[r]
		w++
	}
	removed := v.n - w
	clear(v.inline[w:v.n])
	v.n = w

	return removed
}

// Clear removes all elements. A spilled Vec keeps its heap vector.
func (v *Vec[T]) Clear() {
	if v.shape == shapeSpilled {
		v.spill.Clear()
		return
	}
	clear(v.inline[:v.n])
	v.n = 0
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
func (v *Vec[T]) IndexFunc(pred func(T) bool) int {
	for i, item := range v.All() {
		if pred(item) {
			return i
		}
	}

	return -1
}

// Slice returns a view of the elements. The view aliases the Vec and is
// invalidated by the next mutation.
func (v *Vec[T]) Slice() []T {
	if v.shape == shapeSpilled {
		return v.spill.Slice()
	}

	return v.inline[:v.n:v.n]
}

// ToArray returns a freshly allocated copy of the elements.
func (v *Vec[T]) ToArray() []T {
	out := make([]T, v.Len())
	copy(out, v.Slice())

	return out
}

// Span returns the contents as a Span. An inline Vec yields an independent
// inline Span; a spilled Vec yields a Span aliasing its storage, valid until
// the next mutation.
func (v *Vec[T]) Span() Span[T] {
	if v.shape == shapeSpilled {
		return Wrap(v.spill.Slice())
	}

	return CopyFrom(v.inline[:v.n])
}

// All returns an iterator over index/element pairs.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.Slice() {
			if !yield(i, item) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements.
func (v *Vec[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.Slice() {
			if !yield(item) {
				return
			}
		}
	}
}
