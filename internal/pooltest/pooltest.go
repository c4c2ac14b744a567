// Package pooltest provides an instrumented arraypool.Pool for tests.
//
// Tracker records every slice it hands out and fails the test on a double
// return, a return of a slice it never rented, or (via AssertBalanced) a
// rental that was never returned.
package pooltest

import (
	"sync"
	"testing"
	"unsafe"

	"github.com/arloliu/spanx/arraypool"
)

// Tracker is an arraypool.Pool that audits rent/return pairing.
type Tracker[T any] struct {
	tb   testing.TB
	pool arraypool.Pool[T]

	mu          sync.Mutex
	outstanding map[*T]int
	rents       int
	returns     int
}

var _ arraypool.Pool[int] = (*Tracker[int])(nil)

// New creates a Tracker that delegates storage to a fresh BucketPool.
func New[T any](tb testing.TB) *Tracker[T] {
	tb.Helper()

	return &Tracker[T]{
		tb:          tb,
		pool:        arraypool.MustNew[T](),
		outstanding: make(map[*T]int),
	}
}

// Rent implements arraypool.Pool.
func (t *Tracker[T]) Rent(minLength int) []T {
	buf := t.pool.Rent(minLength)
	if cap(buf) == 0 {
		return buf
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.rents++
	t.outstanding[unsafe.SliceData(buf)] = cap(buf)

	return buf
}

// Return implements arraypool.Pool.
func (t *Tracker[T]) Return(buf []T) {
	if cap(buf) == 0 {
		return
	}

	t.mu.Lock()
	key := unsafe.SliceData(buf)
	_, ok := t.outstanding[key]
	if ok {
		delete(t.outstanding, key)
		t.returns++
	}
	t.mu.Unlock()

	if !ok {
		t.tb.Errorf("pooltest: returned a slice (cap %d) that is not outstanding: double return or foreign buffer", cap(buf))
		return
	}

	t.pool.Return(buf)
}

// Rents returns the number of non-empty rentals.
func (t *Tracker[T]) Rents() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.rents
}

// Returns returns the number of accepted returns.
func (t *Tracker[T]) Returns() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.returns
}

// Outstanding returns the number of rented slices not yet returned.
func (t *Tracker[T]) Outstanding() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.outstanding)
}

// AssertBalanced fails the test if any rented slice is still outstanding.
func (t *Tracker[T]) AssertBalanced() {
	t.tb.Helper()
	if n := t.Outstanding(); n != 0 {
		t.tb.Errorf("pooltest: %d rented slice(s) never returned", n)
	}
}
