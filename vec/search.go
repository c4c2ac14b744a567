package vec

import (
	"slices"

	"github.com/arloliu/spanx/sorting"
)

// IndexOf returns the index of the first element equal to item, or -1.
func IndexOf[T comparable](v *Vec[T], item T) int {
	return slices.Index(v.Slice(), item)
}

// LastIndexOf returns the index of the last element equal to item, or -1.
func LastIndexOf[T comparable](v *Vec[T], item T) int {
	s := v.Slice()
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == item {
			return i
		}
	}

	return -1
}

// Contains reports whether v holds an element equal to item.
func Contains[T comparable](v *Vec[T], item T) bool {
	return IndexOf(v, item) >= 0
}

// IndexOfEq returns the index of the first element e with eq(e, item), or -1.
// A nil eq panics with errs.ErrInvalidArgument.
func (v *Vec[T]) IndexOfEq(item T, eq func(a, b T) bool) int {
	checkComparer(eq == nil)
	for i, e := range v.Slice() {
		if eq(e, item) {
			return i
		}
	}

	return -1
}

// LastIndexOfEq returns the index of the last element e with eq(e, item), or -1.
func (v *Vec[T]) LastIndexOfEq(item T, eq func(a, b T) bool) int {
	checkComparer(eq == nil)
	s := v.Slice()
	for i := len(s) - 1; i >= 0; i-- {
		if eq(s[i], item) {
			return i
		}
	}

	return -1
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
func (v *Vec[T]) IndexFunc(pred func(T) bool) int {
	return slices.IndexFunc(v.Slice(), pred)
}

// BinarySearch searches the sorted vector for item. See sorting.BinarySearch
// for the return convention: a miss returns the complement of the insertion
// point.
func (v *Vec[T]) BinarySearch(item T, compare func(a, b T) int) int {
	return sorting.BinarySearch(v.Slice(), item, compare)
}

// BinarySearchRange searches the sorted range [start, start+count). Hits and
// insertion points are reported as indexes into the whole vector.
func (v *Vec[T]) BinarySearchRange(start, count int, item T, compare func(a, b T) int) int {
	v.checkLive()
	CheckRange(start, count, v.count)
	checkComparer(compare == nil)

	i := sorting.BinarySearch(v.buf[start:start+count], item, compare)
	if i < 0 {
		return ^(start + ^i)
	}

	return start + i
}

// Sort sorts the vector with compare. See package sorting for failure
// semantics.
func (v *Vec[T]) Sort(compare func(a, b T) int) error {
	return sorting.Sort(v.Slice(), compare)
}

// SortRange sorts [start, start+count) with compare.
func (v *Vec[T]) SortRange(start, count int, compare func(a, b T) int) error {
	v.checkLive()
	CheckRange(start, count, v.count)

	return sorting.Sort(v.buf[start:start+count], compare)
}

// Reverse reverses the elements in place.
func (v *Vec[T]) Reverse() {
	slices.Reverse(v.Slice())
}

// ReverseRange reverses [start, start+count) in place.
func (v *Vec[T]) ReverseRange(start, count int) {
	v.checkLive()
	CheckRange(start, count, v.count)

	slices.Reverse(v.buf[start : start+count])
}
