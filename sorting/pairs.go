package sorting

import (
	"fmt"

	"github.com/arloliu/spanx/errs"
)

// SortPairs sorts keys in ascending order according to compare and applies the
// same permutation to values. keys and values must have equal length.
func SortPairs[K, V any](keys []K, values []V, compare func(a, b K) int) (err error) {
	if compare == nil {
		return fmt.Errorf("%w: nil comparer", errs.ErrInvalidArgument)
	}
	if len(keys) != len(values) {
		return fmt.Errorf("%w: %d keys, %d values", errs.ErrInvalidArgument, len(keys), len(values))
	}
	if len(keys) < 2 {
		return nil
	}

	defer recoverComparer(&err)
	introSortPairs(keys, values, compare, depthLimit(len(keys)))

	return nil
}

func swapIfGreaterPairs[K, V any](keys []K, values []V, compare func(a, b K) int, i, j int) {
	if compare(keys[i], keys[j]) > 0 {
		keys[i], keys[j] = keys[j], keys[i]
		values[i], values[j] = values[j], values[i]
	}
}

func introSortPairs[K, V any](keys []K, values []V, compare func(a, b K) int, depth int) {
	size := len(keys)
	for size > 1 {
		if size <= insertionSortThreshold {
			switch size {
			case 2:
				swapIfGreaterPairs(keys, values, compare, 0, 1)
			case 3:
				swapIfGreaterPairs(keys, values, compare, 0, 1)
				swapIfGreaterPairs(keys, values, compare, 0, 2)
				swapIfGreaterPairs(keys, values, compare, 1, 2)
			default:
				insertionSortPairs(keys[:size], values[:size], compare)
			}

			return
		}

		if depth == 0 {
			heapSortPairs(keys[:size], values[:size], compare)
			return
		}
		depth--

		p := pickPivotAndPartitionPairs(keys[:size], values[:size], compare)
		introSortPairs(keys[p+1:size], values[p+1:size], compare, depth)
		size = p
	}
}

func pickPivotAndPartitionPairs[K, V any](keys []K, values []V, compare func(a, b K) int) int {
	hi := len(keys) - 1
	mid := hi >> 1

	swapIfGreaterPairs(keys, values, compare, 0, mid)
	swapIfGreaterPairs(keys, values, compare, 0, hi)
	swapIfGreaterPairs(keys, values, compare, mid, hi)

	pivot := keys[mid]
	keys[mid], keys[hi-1] = keys[hi-1], keys[mid]
	values[mid], values[hi-1] = values[hi-1], values[mid]

	left, right := 0, hi-1
	for left < right {
		left++
		for compare(keys[left], pivot) < 0 {
			left++
		}
		right--
		for compare(pivot, keys[right]) < 0 {
			right--
		}
		if left >= right {
			break
		}
		keys[left], keys[right] = keys[right], keys[left]
		values[left], values[right] = values[right], values[left]
	}

	if left != hi-1 {
		keys[left], keys[hi-1] = keys[hi-1], keys[left]
		values[left], values[hi-1] = values[hi-1], values[left]
	}

	return left
}

func heapSortPairs[K, V any](keys []K, values []V, compare func(a, b K) int) {
	n := len(keys)
	for i := n >> 1; i >= 1; i-- {
		downHeapPairs(keys, values, compare, i, n)
	}
	for i := n; i > 1; i-- {
		keys[0], keys[i-1] = keys[i-1], keys[0]
		values[0], values[i-1] = values[i-1], values[0]
		downHeapPairs(keys, values, compare, 1, i-1)
	}
}

func downHeapPairs[K, V any](keys []K, values []V, compare func(a, b K) int, i, n int) {
	d := keys[i-1]
	dv := values[i-1]
	for i <= n>>1 {
		child := 2 * i
		if child < n && compare(keys[child-1], keys[child]) < 0 {
			child++
		}
		if compare(d, keys[child-1]) >= 0 {
			break
		}
		keys[i-1] = keys[child-1]
		values[i-1] = values[child-1]
		i = child
	}
	keys[i-1] = d
	values[i-1] = dv
}

func insertionSortPairs[K, V any](keys []K, values []V, compare func(a, b K) int) {
	for i := 0; i < len(keys)-1; i++ {
		t := keys[i+1]
		tv := values[i+1]
		j := i
		for j >= 0 && compare(t, keys[j]) < 0 {
			keys[j+1] = keys[j]
			values[j+1] = values[j]
			j--
		}
		keys[j+1] = t
		values[j+1] = tv
	}
}
