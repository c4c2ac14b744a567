// Package vec provides growable, index-addressable vectors with explicit
// control over where their backing storage comes from.
//
// Three variants share one implementation:
//
//   - Vec: heap-backed. The zero value is an empty vector ready to use.
//   - PoolVec: rents storage from an arraypool.Pool and returns it on growth
//     and on Dispose.
//   - RefVec: starts on a caller-supplied scratch buffer (typically a local
//     array) and escalates to pool rental on first overflow. The scratch buffer
//     is never returned to the pool.
//
// # Growth
//
// When an operation needs more room than the buffer has, the vector computes a
// new capacity (doubling, with a floor of 16 for heap storage and of 1 for pool
// storage, where the pool rounds up to a size class), obtains a new buffer,
// copies the live elements and releases the old buffer. Allocation happens
// before any state changes, so a failed growth leaves the vector untouched.
//
// # Errors
//
// Arguments are validated at the public methods before any mutation. A bad
// index panics with an error wrapping errs.ErrIndexOutOfRange, a bad range or
// capacity with errs.ErrInvalidArgument, and any use of a disposed PoolVec or
// RefVec with errs.ErrDisposed. Vacated slots are reset to the zero value so
// that removed elements are not kept alive.
//
// # Thread Safety
//
// Vectors are not safe for concurrent use.
package vec
