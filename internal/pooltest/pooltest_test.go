package pooltest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func TestTracker_Balanced(t *testing.T) {
	rec := &recorder{TB: t}
	tr := New[int](rec)

	a := tr.Rent(10)
	b := tr.Rent(100)
	require.Equal(t, 2, tr.Outstanding())

	tr.Return(a)
	tr.Return(b)
	tr.AssertBalanced()

	require.Equal(t, 2, tr.Rents())
	require.Equal(t, 2, tr.Returns())
	require.Empty(t, rec.failures)
}

func TestTracker_DoubleReturn(t *testing.T) {
	rec := &recorder{TB: t}
	tr := New[int](rec)

	buf := tr.Rent(8)
	tr.Return(buf)
	tr.Return(buf)

	require.Len(t, rec.failures, 1)
	require.Contains(t, rec.failures[0], "double return")
	require.Equal(t, 1, tr.Returns())
}

func TestTracker_Leak(t *testing.T) {
	rec := &recorder{TB: t}
	tr := New[string](rec)

	_ = tr.Rent(4)
	tr.AssertBalanced()

	require.Len(t, rec.failures, 1)
	require.Contains(t, rec.failures[0], "never returned")
}

func TestTracker_ZeroLength(t *testing.T) {
	rec := &recorder{TB: t}
	tr := New[byte](rec)

	require.Nil(t, tr.Rent(0))
	tr.Return(nil)
	require.Equal(t, 0, tr.Rents())
	require.Empty(t, rec.failures)
}
