package arraypool

import (
	"reflect"
	"sync"
)

// shared maps element types to their process-wide pool.
var shared sync.Map

// Shared returns the process-wide BucketPool for element type T, creating it
// with default settings on first use.
func Shared[T any]() *BucketPool[T] {
	key := reflect.TypeFor[T]()
	if p, ok := shared.Load(key); ok {
		return p.(*BucketPool[T]) //nolint:forcetypeassert
	}

	p, _ := shared.LoadOrStore(key, MustNew[T]())

	return p.(*BucketPool[T]) //nolint:forcetypeassert
}
