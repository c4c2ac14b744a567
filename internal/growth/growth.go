// Package growth implements the capacity-growth policy shared by every spanx
// container.
package growth

import (
	"fmt"
	"math"

	"github.com/arloliu/spanx/errs"
	"github.com/arloliu/spanx/internal/assert"
)

const (
	// DefaultMinCapacity is the capacity of the first buffer a heap-backed
	// container allocates.
	DefaultMinCapacity = 16

	// ExactMinCapacity is the first-buffer floor for pool-backed containers,
	// where the pool rounds up to a size class anyway.
	ExactMinCapacity = 1

	// MaxCapacity is the largest buffer any container requests.
	MaxCapacity = math.MaxInt32
)

// Grow returns the new capacity for a buffer of capacity cur that needs room for
// add more elements, using DefaultMinCapacity as the floor.
func Grow(cur, add int) int {
	return GrowFrom(cur, add, DefaultMinCapacity)
}

// GrowExact is Grow with ExactMinCapacity as the floor.
func GrowExact(cur, add int) int {
	return GrowFrom(cur, add, ExactMinCapacity)
}

// GrowFrom returns max(add, floor) for an empty buffer and
// max(cur+add, 2*cur) otherwise.
//
// add must be positive; callers only grow when the immediate need exceeds the
// remaining room. GrowFrom panics with errs.ErrCapacityOverflow when the
// required capacity exceeds MaxCapacity. Doubling is clamped to MaxCapacity.
func GrowFrom(cur, add, floor int) int {
	assert.Thatf(add > 0, "growth requested with add=%d", add)
	assert.Thatf(cur >= 0, "negative current capacity %d", cur)

	if cur == 0 {
		if add > MaxCapacity {
			panic(fmt.Errorf("%w: requested %d, max %d", errs.ErrCapacityOverflow, add, MaxCapacity))
		}

		return max(add, floor)
	}

	if add > MaxCapacity-cur {
		panic(fmt.Errorf("%w: current %d + requested %d exceeds %d",
			errs.ErrCapacityOverflow, cur, add, MaxCapacity))
	}

	need := cur + add
	doubled := MaxCapacity
	if cur <= MaxCapacity/2 {
		doubled = cur * 2
	}

	return max(need, doubled)
}
