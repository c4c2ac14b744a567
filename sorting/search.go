package sorting

import (
	"fmt"

	"github.com/arloliu/spanx/errs"
)

// BinarySearch searches keys, which must be sorted ascending by compare, for
// item.
//
// It returns the index of a matching element when one exists. Otherwise it
// returns the bitwise complement of the insertion point: a negative number n
// such that ^n is the index of the first element greater than item (or
// len(keys) if there is none). Inserting item at ^n keeps keys sorted.
//
//	i := BinarySearch([]int{1, 3, 5, 7}, 4, cmp.Compare[int]) // i < 0, ^i == 2
//	j := BinarySearch([]int{1, 3, 5, 7}, 5, cmp.Compare[int]) // j == 2
//
// When several elements match, any one of their indexes may be returned.
// A nil compare panics with errs.ErrInvalidArgument.
func BinarySearch[T any](keys []T, item T, compare func(a, b T) int) int {
	if compare == nil {
		panic(fmt.Errorf("%w: nil comparer", errs.ErrInvalidArgument))
	}

	lo, hi := 0, len(keys)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		c := compare(keys[mid], item)
		if c == 0 {
			return mid
		}
		if c < 0 {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}

	return ^lo
}
