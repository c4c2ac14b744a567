package tiny

import (
	"fmt"
	"iter"
	"slices"

	"github.com/arloliu/spanx/errs"
	"github.com/arloliu/spanx/vec"
)

// Span is an immutable sequence of T. The zero value is empty.
//
// Span values are not comparable with ==; see Identical and Equal.
type Span[T any] struct {
	_ [0]func()

	shape  shape
	n      uint8
	inline [InlineCapacity]T
	spill  []T
}

// Of1 returns a one-element inline Span.
func Of1[T any](a T) Span[T] {
	return Span[T]{n: 1, inline: [InlineCapacity]T{a}}
}

// Of2 returns a two-element inline Span.
func Of2[T any](a, b T) Span[T] {
	return Span[T]{n: 2, inline: [InlineCapacity]T{a, b}}
}

// Of3 returns a three-element inline Span.
func Of3[T any](a, b, c T) Span[T] {
	return Span[T]{n: 3, inline: [InlineCapacity]T{a, b, c}}
}

// Of4 returns a four-element inline Span.
func Of4[T any](a, b, c, d T) Span[T] {
	return Span[T]{n: 4, inline: [InlineCapacity]T{a, b, c, d}}
}

// Wrap returns a Span over s without copying. The Span aliases s: writes to s
// are visible through it, and it keeps s reachable.
func Wrap[T any](s []T) Span[T] {
	return Span[T]{shape: shapeSpilled, spill: s[:len(s):len(s)]}
}

// CopyFrom returns a Span holding a private copy of s. Up to four elements are
// stored inline.
func CopyFrom[T any](s []T) Span[T] {
	if len(s) <= InlineCapacity {
		sp := Span[T]{n: uint8(len(s))}
		copy(sp.inline[:], s)

		return sp
	}

	return Span[T]{shape: shapeSpilled, spill: slices.Clone(s)}
}

// Copy returns a Span holding the elements of seq. The first four elements are
// kept inline; a scratch vector is used only once a fifth element arrives.
func Copy[T any](seq iter.Seq[T]) Span[T] {
	var sp Span[T]
	var rv *vec.RefVec[T]
	defer func() {
		if rv != nil {
			rv.Dispose()
		}
	}()

	for item := range seq {
		if rv != nil {
			rv.Add(item)
			continue
		}
		if int(sp.n) < InlineCapacity {
			sp.inline[sp.n] = item
			sp.n++

			continue
		}

		rv = vec.NewRef[T](nil)
		rv.Reserve(2 * InlineCapacity)
		rv.AddRange(sp.inline[:]...)
		rv.Add(item)
	}

	if rv == nil {
		return sp
	}

	return Span[T]{shape: shapeSpilled, spill: rv.ToArray()}
}

// Len returns the number of elements.
func (s Span[T]) Len() int {
	if s.shape == shapeSpilled {
		return len(s.spill)
	}

	return int(s.n)
}

// IsEmpty reports whether the span has no elements.
func (s Span[T]) IsEmpty() bool {
	return s.Len() == 0
}

// IsSpilled reports whether the span references external storage.
func (s Span[T]) IsSpilled() bool {
	return s.shape == shapeSpilled
}

// At returns the element at index.
func (s Span[T]) At(index int) T {
	if s.shape == shapeSpilled {
		checkIndex(index, len(s.spill))
		return s.spill[index]
	}
	checkIndex(index, int(s.n))

	return s.inline[index]
}

// Slice returns the elements in [start, end). A spilled span yields a span over
// the same memory.
func (s Span[T]) Slice(start, end int) Span[T] {
	n := s.Len()
	if start < 0 || end < start || end > n {
		panic(fmt.Errorf("%w: slice [%d:%d] of length %d", errs.ErrInvalidArgument, start, end, n))
	}
	if s.shape == shapeSpilled {
		return Wrap(s.spill[start:end])
	}

	out := Span[T]{n: uint8(end - start)}
	copy(out.inline[:], s.inline[start:end])

	return out
}

// View returns the elements as a slice without copying. For an inline span the
// slice points into *s and is valid as long as s is.
func (s *Span[T]) View() []T {
	if s.shape == shapeSpilled {
		return s.spill
	}

	return s.inline[:s.n:s.n]
}

// ToSlice returns the wrapped slice of a spilled span. For an inline span it
// allocates a copy, or returns nil when onlyIfCheap is set.
func (s Span[T]) ToSlice(onlyIfCheap bool) []T {
	if s.shape == shapeSpilled {
		return s.spill
	}
	if onlyIfCheap || s.n == 0 {
		return nil
	}

	return slices.Clone(s.inline[:s.n])
}

// CopyTo copies the elements into dst. It panics with errs.ErrInvalidArgument
// if dst is shorter than the span.
func (s Span[T]) CopyTo(dst []T) {
	if !s.TryCopyTo(dst) {
		panic(fmt.Errorf("%w: destination length %d, need %d", errs.ErrInvalidArgument, len(dst), s.Len()))
	}
}

// TryCopyTo copies the elements into dst and reports whether dst was long
// enough. Nothing is written when it is not.
func (s Span[T]) TryCopyTo(dst []T) bool {
	if len(dst) < s.Len() {
		return false
	}
	if s.shape == shapeSpilled {
		copy(dst, s.spill)
	} else {
		copy(dst, s.inline[:s.n])
	}

	return true
}

// All returns an iterator over index/element pairs.
func (s Span[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range s.Len() {
			if !yield(i, s.At(i)) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements.
func (s Span[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range s.Len() {
			if !yield(s.At(i)) {
				return
			}
		}
	}
}

func (s Span[T]) String() string {
	if s.shape == shapeSpilled {
		return fmt.Sprint(s.spill)
	}

	return fmt.Sprint(s.inline[:s.n])
}
