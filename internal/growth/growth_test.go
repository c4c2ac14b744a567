package growth

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/spanx/errs"
)

func TestGrow(t *testing.T) {
	tests := []struct {
		name string
		cur  int
		add  int
		want int
	}{
		{"empty single", 0, 1, 16},
		{"empty below floor", 0, 15, 16},
		{"empty above floor", 0, 40, 40},
		{"doubling", 16, 1, 32},
		{"doubling wins", 100, 10, 200},
		{"bulk beyond doubling", 16, 100, 116},
		{"exact double", 8, 8, 16},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Grow(tt.cur, tt.add))
		})
	}
}

func TestGrowExact(t *testing.T) {
	require.Equal(t, 1, GrowExact(0, 1))
	require.Equal(t, 5, GrowExact(0, 5))
	require.Equal(t, 2, GrowExact(1, 1))
	require.Equal(t, 10, GrowExact(3, 7))
}

func TestGrowFromCustomFloor(t *testing.T) {
	require.Equal(t, 64, GrowFrom(0, 3, 64))
	require.Equal(t, 128, GrowFrom(64, 1, 64))
}

func TestGrowSufficiency(t *testing.T) {
	for cur := 0; cur < 200; cur += 7 {
		for add := 1; add < 300; add += 13 {
			got := Grow(cur, add)
			require.GreaterOrEqual(t, got, cur+add, "cur=%d add=%d", cur, add)
			if cur > 0 {
				require.GreaterOrEqual(t, got, cur*2, "cur=%d add=%d", cur, add)
			}
		}
	}
}

func TestGrowClampsDoubling(t *testing.T) {
	cur := MaxCapacity/2 + 10
	require.Equal(t, MaxCapacity, Grow(cur, 1))
}

func TestGrowOverflow(t *testing.T) {
	assertOverflow := func(fn func()) {
		t.Helper()
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected panic")
			err, ok := r.(error)
			require.True(t, ok, "panic value should be an error")
			require.True(t, errors.Is(err, errs.ErrCapacityOverflow))
		}()
		fn()
	}

	assertOverflow(func() { Grow(MaxCapacity, 1) })
	tooBig := MaxCapacity
	tooBig++
	assertOverflow(func() { Grow(0, tooBig) })
	assertOverflow(func() { Grow(MaxCapacity-5, 10) })
}
