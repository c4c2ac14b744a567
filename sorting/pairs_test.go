package sorting

import (
	"cmp"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/spanx/errs"
)

type tagged struct {
	key    int
	origin int
}

func TestSortPairs_KeepsAssociation(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))

	for _, n := range sortSizes {
		keys := randomInts(r, n, 40)
		values := make([]tagged, n)
		for i, k := range keys {
			values[i] = tagged{key: k, origin: i}
		}

		require.NoError(t, SortPairs(keys, values, cmp.Compare[int]), "n=%d", n)

		seen := make(map[int]bool, n)
		for i := range keys {
			if i > 0 {
				require.LessOrEqual(t, keys[i-1], keys[i], "n=%d index %d", n, i)
			}
			require.Equal(t, keys[i], values[i].key, "value moved away from its key at %d", i)
			require.False(t, seen[values[i].origin], "value duplicated")
			seen[values[i].origin] = true
		}
		require.Len(t, seen, n)
	}
}

func TestSortPairs_HeapFallback(t *testing.T) {
	r := rand.New(rand.NewPCG(13, 14))
	keys := randomInts(r, 200, 1000)
	values := make([]int, len(keys))
	for i, k := range keys {
		values[i] = -k
	}

	introSortPairs(keys, values, cmp.Compare[int], 0)
	for i := range keys {
		if i > 0 {
			require.LessOrEqual(t, keys[i-1], keys[i])
		}
		require.Equal(t, -keys[i], values[i])
	}
}

func TestSortPairs_LengthMismatch(t *testing.T) {
	err := SortPairs([]int{1, 2}, []string{"a"}, cmp.Compare[int])
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestSortPairs_NilComparer(t *testing.T) {
	err := SortPairs([]int{1}, []int{1}, nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestSortPairs_BadComparer(t *testing.T) {
	keys := make([]int, 64)
	values := make([]int, 64)

	err := SortPairs(keys, values, func(a, b int) int { return -1 })
	require.ErrorIs(t, err, errs.ErrSortComparer)
}
