package dict

import (
	"cmp"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/spanx/errs"
)

func buildDict(t *testing.T, kv ...string) *OrderedDict[string, string] {
	t.Helper()

	b := NewOrderedDictBuilder[string, string](len(kv) / 2)
	for i := 0; i < len(kv); i += 2 {
		require.NoError(t, b.Add(kv[i], kv[i+1]))
	}

	return b.Build()
}

func TestOrderedDict_InsertionOrder(t *testing.T) {
	d := buildDict(t, "z", "1", "a", "2", "m", "3")

	require.Equal(t, 3, d.Len())
	require.Equal(t, []string{"z", "a", "m"}, slices.Collect(d.Keys()))
	require.Equal(t, []string{"1", "2", "3"}, slices.Collect(d.Values()))

	var pairs []string
	for k, v := range d.All() {
		pairs = append(pairs, k+"="+v)
	}
	require.Equal(t, "z=1,a=2,m=3", strings.Join(pairs, ","))

	k, v := d.At(1)
	require.Equal(t, "a", k)
	require.Equal(t, "2", v)
	require.Equal(t, 2, d.IndexOf("m"))
	require.Equal(t, -1, d.IndexOf("q"))
}

func TestOrderedDict_Lookup(t *testing.T) {
	d := buildDict(t, "a", "1")

	v, ok := d.Get("a")
	require.True(t, ok)
	require.Equal(t, "1", v)
	require.Equal(t, "1", d.MustGet("a"))
	require.True(t, d.ContainsKey("a"))

	_, ok = d.Get("b")
	require.False(t, ok)

	defer func() {
		r := recover()
		err, isErr := r.(error)
		require.True(t, isErr)
		require.True(t, errors.Is(err, errs.ErrKeyNotFound))
	}()
	d.MustGet("b")
}

func TestOrderedDict_ZeroValue(t *testing.T) {
	var d OrderedDict[int, int]

	require.Zero(t, d.Len())
	require.False(t, d.ContainsKey(1))
	_, ok := d.Get(1)
	require.False(t, ok)

	d2 := d.With(1, 10)
	require.Equal(t, 10, d2.MustGet(1))
	require.Zero(t, d.Len())
}

func TestOrderedDict_WithWithout(t *testing.T) {
	d := buildDict(t, "a", "1", "b", "2", "c", "3")

	replaced := d.With("b", "20")
	require.Equal(t, []string{"a", "b", "c"}, slices.Collect(replaced.Keys()), "replacing keeps position")
	require.Equal(t, "20", replaced.MustGet("b"))
	require.Equal(t, "2", d.MustGet("b"), "receiver is unchanged")

	appended := d.With("d", "4")
	require.Equal(t, []string{"a", "b", "c", "d"}, slices.Collect(appended.Keys()))
	require.Equal(t, 3, d.Len())

	removed := d.Without("a")
	require.Equal(t, []string{"b", "c"}, slices.Collect(removed.Keys()))
	require.Equal(t, 0, removed.IndexOf("b"))
	require.Equal(t, 1, removed.IndexOf("c"))
	require.True(t, d.ContainsKey("a"))

	require.Same(t, d, d.Without("zz"))
	require.Zero(t, buildDict(t, "x", "1").Without("x").Len())
}

func TestOrderedDict_SortedByKey(t *testing.T) {
	d := buildDict(t, "c", "3", "a", "1", "b", "2")

	sorted, err := d.SortedByKey(strings.Compare)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c"}, slices.Collect(sorted.Keys()))
	require.Equal(t, []string{"1", "2", "3"}, slices.Collect(sorted.Values()))
	require.Equal(t, "3", sorted.MustGet("c"))
	require.Equal(t, []string{"c", "a", "b"}, slices.Collect(d.Keys()))

	_, err = d.SortedByKey(nil)
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestOrderedDict_SortedByKeyLarge(t *testing.T) {
	b := NewOrderedDictBuilder[int, int](100)
	for i := 100; i > 0; i-- {
		b.Set(i, i*10)
	}
	d, err := b.Build().SortedByKey(cmp.Compare[int])
	require.NoError(t, err)

	i := 1
	for k, v := range d.All() {
		require.Equal(t, i, k)
		require.Equal(t, i*10, v)
		i++
	}
}

func TestOrderedDictBuilder(t *testing.T) {
	b := NewOrderedDictBuilder[string, int](0)
	require.NoError(t, b.Add("a", 1))
	require.ErrorIs(t, b.Add("a", 2), errs.ErrInvalidArgument)

	b.Set("a", 3)
	b.Set("b", 4)
	require.Equal(t, 2, b.Len())

	first := b.Build()
	require.True(t, b.Remove("a"))
	require.False(t, b.Remove("a"))
	second := b.Build()

	require.Equal(t, 3, first.MustGet("a"), "built dictionaries are unaffected by later changes")
	require.False(t, second.ContainsKey("a"))
	require.Equal(t, 0, second.IndexOf("b"))

	require.Zero(t, NewOrderedDictBuilder[int, int](-1).Build().Len())
}

func TestOrderedDict_ToBuilder(t *testing.T) {
	d := buildDict(t, "a", "1")
	b := d.ToBuilder()
	b.Set("b", "2")

	require.Equal(t, 1, d.Len())
	require.Equal(t, 2, b.Build().Len())
}
