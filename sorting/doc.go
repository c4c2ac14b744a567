// Package sorting implements the introspective sort used by spanx containers.
//
// The algorithm is a quicksort with median-of-three pivot selection and
// Hoare-style partitioning. Partitions of at most 16 elements finish with
// insertion sort (2 and 3 elements use a compare-and-swap network), and once
// the recursion depth exceeds 2*(log2(n)+1) the remaining partition is finished
// with heapsort, which bounds the worst case at O(n log n).
//
// The sort is not stable.
//
// SortPairs reorders a parallel values slice alongside the keys. Every key swap
// is mirrored in values, so each value stays paired with its key.
//
// A comparer that panics, or that violates strict weak ordering badly enough to
// drive partitioning out of bounds, does not crash the caller: Sort recovers
// and returns an error wrapping errs.ErrSortComparer. The slice contents are
// then an unspecified permutation of the input.
package sorting
