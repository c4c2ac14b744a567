//go:build spanxdebug

package assert

// Enabled is true when the spanxdebug build tag is set.
const Enabled = true
