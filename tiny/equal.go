package tiny

import "unsafe"

// Identical reports whether a and b are structurally the same span.
//
// Spans of up to four elements are compared element by element. Longer spans
// are Identical only when they wrap the same memory with the same length;
// their contents are not inspected. Use Equal to compare contents.
func Identical[T comparable](a, b Span[T]) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}

	if n > InlineCapacity {
		return unsafe.SliceData(a.spill) == unsafe.SliceData(b.spill)
	}
	for i := range n {
		if a.At(i) != b.At(i) {
			return false
		}
	}

	return true
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b Span[T]) bool {
	return SequenceEqual(a, b, func(x, y T) bool { return x == y })
}

// SequenceEqual reports whether a and b have the same length and eq holds for
// every pair of elements at the same index.
func SequenceEqual[T any](a, b Span[T], eq func(x, y T) bool) bool {
	n := a.Len()
	if n != b.Len() {
		return false
	}
	for i := range n {
		if !eq(a.At(i), b.At(i)) {
			return false
		}
	}

	return true
}
