package spanx

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/spanx/bufwriter"
	"github.com/arloliu/spanx/endian"
	"github.com/arloliu/spanx/tiny"
)

func TestNewPoolVec(t *testing.T) {
	v := NewPoolVec[int]()
	defer v.Dispose()

	require.Equal(t, 0, v.Cap())
	v.Add(1)
	v.Add(2)
	v.Add(3)
	require.GreaterOrEqual(t, v.Cap(), 3)

	v.RemoveAt(1)
	require.Equal(t, []int{1, 3}, v.ToArray())
}

func TestNewVec(t *testing.T) {
	v := NewVec[string](2)
	v.Add("b")
	v.Add("a")

	require.NoError(t, v.Sort(cmp.Compare[string]))
	require.Equal(t, []string{"a", "b"}, v.Slice())
}

func TestNewScratchVec(t *testing.T) {
	var scratch [4]int
	v := NewScratchVec(scratch[:])
	defer v.Dispose()

	v.AddRange(1, 2)
	require.False(t, v.Rented())
}

func TestNewWriter(t *testing.T) {
	w := NewWriter[int]()
	dst := w.GetSpan(3)
	copy(dst, []int{1, 2, 3})
	w.Advance(3)

	require.Equal(t, []int{1, 2, 3}, w.ToArray(true))
}

func TestNewByteWriter(t *testing.T) {
	w := NewByteWriter(bufwriter.WithEndian(endian.GetBigEndianEngine()))
	defer w.Dispose()

	w.WriteUint16(0x0102)
	require.Equal(t, []byte{0x01, 0x02}, w.Bytes())
	require.Equal(t, Checksum(w.Bytes()), w.Checksum())
}

func TestSortPairs(t *testing.T) {
	keys := []int{3, 1, 2}
	values := []string{"c", "a", "b"}

	require.NoError(t, SortPairs(keys, values, cmp.Compare[int]))
	require.Equal(t, []int{1, 2, 3}, keys)
	require.Equal(t, []string{"a", "b", "c"}, values)

	s := []float64{2.5, -1, 0}
	require.NoError(t, Sort(s, cmp.Compare[float64]))
	require.Equal(t, []float64{-1, 0, 2.5}, s)
}

func TestTinyCopy(t *testing.T) {
	s := TinyCopy(1, 2, 3)
	require.False(t, s.IsSpilled())
	require.True(t, tiny.Equal(tiny.Of3(1, 2, 3), s))
}

func TestDictionaries(t *testing.T) {
	md := NewMultiDict[string, int](1)
	md.Add("k", 1)
	require.Equal(t, 1, md.ValueCount())

	b := NewOrderedDictBuilder[string, int](1)
	b.Set("x", 1)
	require.Equal(t, 1, b.Build().MustGet("x"))
}
