// Package errs defines the sentinel errors shared by every spanx container.
//
// Contract violations detected at a public entry point panic with an error that
// wraps one of these sentinels, so a recovered value can be classified with
// errors.Is. Operations that report failure through a return value (sorting,
// option application, endian readers) return wrapped sentinels directly.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument reports malformed input: negative index, length or capacity,
	// an out-of-range start/count pair, a nil comparer, or mismatched parallel lengths.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIndexOutOfRange reports indexed access outside [0, length).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidOperation reports structural misuse of a container.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrDisposed reports use of a container after its pooled buffer was returned.
	ErrDisposed = fmt.Errorf("%w: container disposed", ErrInvalidOperation)

	// ErrKeyNotFound reports a dictionary lookup miss through a throwing accessor.
	ErrKeyNotFound = errors.New("key not found")

	// ErrSortComparer reports a comparer that panicked or violated ordering during a sort.
	ErrSortComparer = errors.New("sort comparer fault")

	// ErrCapacityOverflow reports a growth request beyond the largest representable buffer.
	ErrCapacityOverflow = errors.New("capacity overflow")
)
