package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"math/bits"
	"runtime"

	"github.com/arloliu/spanx/errs"
)

// insertionSortThreshold is the partition size at or below which insertion sort
// takes over.
const insertionSortThreshold = 16

// Sort sorts keys in ascending order according to compare.
func Sort[T any](keys []T, compare func(a, b T) int) (err error) {
	if compare == nil {
		return fmt.Errorf("%w: nil comparer", errs.ErrInvalidArgument)
	}
	if len(keys) < 2 {
		return nil
	}

	defer recoverComparer(&err)
	introSort(keys, compare, depthLimit(len(keys)))

	return nil
}

// SortOrdered sorts keys in ascending order using cmp.Compare.
func SortOrdered[T cmp.Ordered](keys []T) {
	if len(keys) < 2 {
		return
	}
	introSort(keys, cmp.Compare[T], depthLimit(len(keys)))
}

// depthLimit returns 2*(floor(log2(n))+1).
func depthLimit(n int) int {
	return 2 * bits.Len(uint(n))
}

func recoverComparer(err *error) {
	r := recover()
	if r == nil {
		return
	}

	e, isErr := r.(error)
	if !isErr {
		*err = fmt.Errorf("%w: comparer panicked: %v", errs.ErrSortComparer, r)
		return
	}

	var rte runtime.Error
	if errors.As(e, &rte) {
		*err = fmt.Errorf("%w: bad comparer: %w", errs.ErrSortComparer, e)
		return
	}

	*err = fmt.Errorf("%w: comparer panicked: %w", errs.ErrSortComparer, e)
}

func swapIfGreater[T any](keys []T, compare func(a, b T) int, i, j int) {
	if compare(keys[i], keys[j]) > 0 {
		keys[i], keys[j] = keys[j], keys[i]
	}
}

func introSort[T any](keys []T, compare func(a, b T) int, depth int) {
	size := len(keys)
	for size > 1 {
		if size <= insertionSortThreshold {
			switch size {
			case 2:
				swapIfGreater(keys, compare, 0, 1)
			case 3:
				swapIfGreater(keys, compare, 0, 1)
				swapIfGreater(keys, compare, 0, 2)
				swapIfGreater(keys, compare, 1, 2)
			default:
				insertionSort(keys[:size], compare)
			}

			return
		}

		if depth == 0 {
			heapSort(keys[:size], compare)
			return
		}
		depth--

		p := pickPivotAndPartition(keys[:size], compare)
		introSort(keys[p+1:size], compare, depth)
		size = p
	}
}

// pickPivotAndPartition partitions keys around a median-of-three pivot and
// returns the pivot's final position.
func pickPivotAndPartition[T any](keys []T, compare func(a, b T) int) int {
	hi := len(keys) - 1
	mid := hi >> 1

	swapIfGreater(keys, compare, 0, mid)
	swapIfGreater(keys, compare, 0, hi)
	swapIfGreater(keys, compare, mid, hi)

	pivot := keys[mid]
	keys[mid], keys[hi-1] = keys[hi-1], keys[mid]

	// keys[0] <= pivot <= keys[hi] act as sentinels for the unguarded scans.
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
	}

	if left != hi-1 {
		keys[left], keys[hi-1] = keys[hi-1], keys[left]
	}

	return left
}

func heapSort[T any](keys []T, compare func(a, b T) int) {
	n := len(keys)
	for i := n >> 1; i >= 1; i-- {
		downHeap(keys, compare, i, n)
	}
	for i := n; i > 1; i-- {
		keys[0], keys[i-1] = keys[i-1], keys[0]
		downHeap(keys, compare, 1, i-1)
	}
}

// downHeap sifts the 1-based node i down a max-heap of n elements.
func downHeap[T any](keys []T, compare func(a, b T) int, i, n int) {
	d := keys[i-1]
	for i <= n>>1 {
		child := 2 * i
		if child < n && compare(keys[child-1], keys[child]) < 0 {
			child++
		}
		if compare(d, keys[child-1]) >= 0 {
			break
		}
		keys[i-1] = keys[child-1]
		i = child
	}
	keys[i-1] = d
}

func insertionSort[T any](keys []T, compare func(a, b T) int) {
	for i := 0; i < len(keys)-1; i++ {
		t := keys[i+1]
		j := i
		for j >= 0 && compare(t, keys[j]) < 0 {
			keys[j+1] = keys[j]
			j--
		}
		keys[j+1] = t
	}
}
