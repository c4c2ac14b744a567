// Package assert provides internal invariant checks that compile to nothing
// unless the spanxdebug build tag is set.
//
// Public entry points validate their arguments unconditionally. Helpers behind
// them trust those checks and only assert, so release builds pay nothing for
// re-validation on hot paths.
package assert

import "fmt"

// That panics with msg when cond is false and debug assertions are enabled.
func That(cond bool, msg string) {
	if Enabled && !cond {
		panic("spanx: assertion failed: " + msg)
	}
}

// Thatf is That with a formatted message. The arguments are only formatted on
// failure.
func Thatf(cond bool, format string, args ...any) {
	if Enabled && !cond {
		panic("spanx: assertion failed: " + fmt.Sprintf(format, args...))
	}
}
