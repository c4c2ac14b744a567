package vec

import (
	"fmt"
	"unsafe"

	"github.com/arloliu/spanx/errs"
)

func panicIndex(index, length int) {
	panic(fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, index, length))
}

func checkIndex(index, length int) {
	if uint(index) >= uint(length) {
		panicIndex(index, length)
	}
}

func checkInsertIndex(index, length int) {
	if uint(index) > uint(length) {
		panicIndex(index, length)
	}
}

// CheckRange panics with errs.ErrInvalidArgument unless [start, start+count)
// lies within [0, length).
func CheckRange(start, count, length int) {
	if start < 0 || count < 0 || start > length-count {
		panic(fmt.Errorf("%w: range start %d count %d outside length %d",
			errs.ErrInvalidArgument, start, count, length))
	}
}

func checkComparer(isNil bool) {
	if isNil {
		panic(fmt.Errorf("%w: nil comparer", errs.ErrInvalidArgument))
	}
}

func checkNonNegative(name string, n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: negative %s %d", errs.ErrInvalidArgument, name, n))
	}
}

// overlaps reports whether a and b share any memory.
func overlaps[T any](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	elemSize := unsafe.Sizeof(a[0])
	if elemSize == 0 {
		return false
	}

	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))

	return aStart < bStart+uintptr(len(b))*elemSize && bStart < aStart+uintptr(len(a))*elemSize
}
