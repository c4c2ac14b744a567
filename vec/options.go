package vec

import (
	"fmt"

	"github.com/arloliu/spanx/arraypool"
	"github.com/arloliu/spanx/errs"
	"github.com/arloliu/spanx/internal/options"
)

// PoolConfig holds the settings of a PoolVec.
type PoolConfig[T any] struct {
	pool     arraypool.Pool[T]
	alloc    Allocator[T]
	capacity int
}

// PoolOption configures a PoolVec.
type PoolOption[T any] = options.Option[*PoolConfig[T]]

// WithPool makes the vector rent from pool instead of the shared pool for T.
func WithPool[T any](pool arraypool.Pool[T]) PoolOption[T] {
	return options.New(func(c *PoolConfig[T]) error {
		if pool == nil {
			return fmt.Errorf("%w: nil pool", errs.ErrInvalidArgument)
		}
		c.pool = pool

		return nil
	})
}

// WithCapacity rents an initial buffer of at least n elements.
func WithCapacity[T any](n int) PoolOption[T] {
	return options.New(func(c *PoolConfig[T]) error {
		if n < 0 {
			return fmt.Errorf("%w: negative capacity %d", errs.ErrInvalidArgument, n)
		}
		c.capacity = n

		return nil
	})
}

// WithAllocator draws storage from alloc instead of a pool. It overrides
// WithPool.
func WithAllocator[T any](alloc Allocator[T]) PoolOption[T] {
	return options.New(func(c *PoolConfig[T]) error {
		if alloc == nil {
			return fmt.Errorf("%w: nil allocator", errs.ErrInvalidArgument)
		}
		c.alloc = alloc

		return nil
	})
}
