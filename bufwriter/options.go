package bufwriter

import (
	"github.com/arloliu/spanx/arraypool"
	"github.com/arloliu/spanx/vec"
)

// Option configures a pooled Writer.
type Option[T any] = vec.PoolOption[T]

// WithPool makes the writer rent from pool instead of the shared pool for T.
func WithPool[T any](pool arraypool.Pool[T]) Option[T] {
	return vec.WithPool(pool)
}

// WithCapacity rents an initial buffer of at least n elements.
func WithCapacity[T any](n int) Option[T] {
	return vec.WithCapacity[T](n)
}
