//go:build !spanxdebug

package assert

// Enabled is false in regular builds.
const Enabled = false
