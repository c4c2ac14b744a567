// Package arraypool provides thread-safe pools of reusable slices, bucketed by
// power-of-two size class.
//
// Every pool-backed spanx container rents its backing storage from a Pool and
// returns it exactly once, either on growth (the outgrown buffer) or on
// disposal. A rented slice has len == cap and its length may exceed the
// requested minimum.
//
// # Basic Usage
//
//	p := arraypool.Shared[int]()
//	buf := p.Rent(100) // len(buf) >= 100
//	defer p.Return(buf)
//
// Custom pools are configured with options:
//
//	p, err := arraypool.New[float64](
//	    arraypool.WithMinArrayLength(64),
//	    arraypool.WithMaxArrayLength(1<<16),
//	    arraypool.WithLogger(logger),
//	)
//
// # Ownership
//
// After Return the caller must not touch the slice again. Returning a slice
// whose capacity is not one of the pool's size classes is allowed; the slice is
// dropped and left to the garbage collector.
//
// # Thread Safety
//
// Pools are safe for concurrent Rent and Return. The containers that rent from
// them are not.
package arraypool
