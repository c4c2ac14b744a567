package arraypool

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arloliu/spanx/errs"
)

// =============================================================================
// Construction
// =============================================================================

func TestNew_Defaults(t *testing.T) {
	p, err := New[int]()
	require.NoError(t, err)

	assert.Equal(t, DefaultMinArrayLength, p.MinArrayLength())
	assert.Equal(t, DefaultMaxArrayLength, p.MaxArrayLength())
	assert.Len(t, p.buckets, 17)
}

func TestNew_InvalidOptions(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"min not power of two", []Option{WithMinArrayLength(24)}},
		{"max not power of two", []Option{WithMaxArrayLength(1000)}},
		{"zero min", []Option{WithMinArrayLength(0)}},
		{"min above max", []Option{WithMinArrayLength(1024), WithMaxArrayLength(64)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New[byte](tt.opts...)
			require.ErrorIs(t, err, errs.ErrInvalidArgument)
			require.Nil(t, p)
		})
	}
}

func TestMustNew_Panics(t *testing.T) {
	require.Panics(t, func() { MustNew[byte](WithMaxArrayLength(3)) })
}

// =============================================================================
// Rent / Return
// =============================================================================

func TestRent_SizeClasses(t *testing.T) {
	p := MustNew[int](WithMinArrayLength(16), WithMaxArrayLength(1024))

	tests := []struct {
		min  int
		want int
	}{
		{1, 16},
		{16, 16},
		{17, 32},
		{100, 128},
		{1024, 1024},
	}
	for _, tt := range tests {
		buf := p.Rent(tt.min)
		assert.Len(t, buf, tt.want, "rent(%d)", tt.min)
		assert.Equal(t, len(buf), cap(buf), "rented slice must have len == cap")
		p.Return(buf)
	}
}

func TestRent_Zero(t *testing.T) {
	p := MustNew[int]()

	require.Nil(t, p.Rent(0))
	require.Equal(t, uint64(0), p.Stats().Rents)
}

func TestRent_Negative(t *testing.T) {
	p := MustNew[int]()

	defer func() {
		r := recover()
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, errs.ErrInvalidArgument))
	}()
	p.Rent(-1)
}

func TestRent_Oversize(t *testing.T) {
	p := MustNew[byte](WithMaxArrayLength(64))

	buf := p.Rent(100)
	require.Len(t, buf, 100)

	p.Return(buf)
	s := p.Stats()
	assert.Equal(t, uint64(1), s.Misses)
	assert.Equal(t, uint64(1), s.Drops)
}

func TestReturn_NilIsNoop(t *testing.T) {
	p := MustNew[string]()

	require.NotPanics(t, func() { p.Return(nil) })
	require.Equal(t, uint64(0), p.Stats().Returns)
}

func TestReturn_ForeignCapacityDropped(t *testing.T) {
	p := MustNew[int]()

	p.Return(make([]int, 20))
	assert.Equal(t, uint64(1), p.Stats().Drops)
}

func TestReturn_ClearsByDefault(t *testing.T) {
	p := MustNew[*int]()
	v := 7

	buf := p.Rent(16)
	for i := range buf {
		buf[i] = &v
	}
	p.Return(buf)

	for i := range buf {
		require.Nil(t, buf[i], "slot %d should be cleared", i)
	}
}

func TestReturn_NoClear(t *testing.T) {
	p := MustNew[int](WithClearOnReturn(false))

	buf := p.Rent(16)
	buf[3] = 42
	p.Return(buf)

	require.Equal(t, 42, buf[3])
}

func TestReturn_ReslicedBufferRestored(t *testing.T) {
	p := MustNew[int]()

	buf := p.Rent(32)
	p.Return(buf[:5])

	s := p.Stats()
	assert.Equal(t, uint64(0), s.Drops, "a resliced buffer keeps its capacity and is pooled")
}

func TestStats(t *testing.T) {
	p := MustNew[int]()

	a := p.Rent(10)
	b := p.Rent(300)
	p.Return(a)
	p.Return(b)

	s := p.Stats()
	assert.Equal(t, uint64(2), s.Rents)
	assert.Equal(t, uint64(2), s.Returns)
	assert.Equal(t, uint64(2), s.Misses, "an empty pool allocates")
	assert.Equal(t, uint64(0), s.Drops)
}

func TestPool_ConcurrentAccess(t *testing.T) {
	p := MustNew[int]()

	const goroutines = 32
	const iterations = 500

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < iterations; i++ {
				n := (seed*31+i)%200 + 1
				buf := p.Rent(n)
				if len(buf) < n {
					t.Errorf("rent(%d) returned %d", n, len(buf))
					return
				}
				buf[0] = seed
				p.Return(buf)
			}
		}(g)
	}
	wg.Wait()

	s := p.Stats()
	assert.Equal(t, uint64(goroutines*iterations), s.Rents)
	assert.Equal(t, uint64(goroutines*iterations), s.Returns)
}

// =============================================================================
// Shared pools
// =============================================================================

func TestShared_PerElementType(t *testing.T) {
	a := Shared[int]()
	b := Shared[int]()
	c := Shared[string]()

	require.Same(t, a, b)
	require.NotNil(t, c)
	require.Equal(t, DefaultMinArrayLength, c.MinArrayLength())
}

// =============================================================================
// Logging and metrics
// =============================================================================

func TestLogger_DropEvents(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := MustNew[byte](WithLogger(zap.New(core)))

	p.Return(make([]byte, 17))

	entries := logs.FilterMessageSnippet("dropping slice").All()
	require.Len(t, entries, 1)
	require.Equal(t, int64(17), entries[0].ContextMap()["capacity"])
}

func TestWithLogger_Nil(t *testing.T) {
	p := MustNew[byte](WithLogger(nil))
	require.NotPanics(t, func() { p.Return(make([]byte, 3)) })
}

func TestCollector(t *testing.T) {
	p := MustNew[int]()
	buf := p.Rent(10)
	p.Return(buf)

	c := NewCollector("spanx", map[string]StatsProvider{"ints": p})
	require.Equal(t, 4, testutil.CollectAndCount(c))

	expected := `
# HELP spanx_arraypool_rents_total Number of non-empty rentals.
# TYPE spanx_arraypool_rents_total counter
spanx_arraypool_rents_total{pool="ints"} 1
# HELP spanx_arraypool_drops_total Returned slices discarded instead of pooled.
# TYPE spanx_arraypool_drops_total counter
spanx_arraypool_drops_total{pool="ints"} 0
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected),
		"spanx_arraypool_rents_total", "spanx_arraypool_drops_total")
	require.NoError(t, err)
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkRentReturn(b *testing.B) {
	p := MustNew[byte]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf := p.Rent(512)
		p.Return(buf)
	}
}
