// Package spanx provides low-allocation collections built around contiguous
// slices: growable vectors with heap, pooled, or caller-supplied storage,
// sequences that keep small contents inline, a buffer writer, an introspective
// sort, and two dictionary types.
//
// # Core Features
//
//   - One growth policy for every container: double, with a floor of 16 for
//     heap storage
//   - Size-class array pools with zap logging and Prometheus metrics
//   - Vectors that rent from a pool and return every buffer exactly once
//   - Inline storage for up to four elements with a one-way spill
//   - A GetSpan/Advance buffer writer with ownership transfer via Lease
//   - Introsort with a key/value variant and diagnosable comparer failures
//
// # Basic Usage
//
//	v := spanx.NewPoolVec[int]()
//	defer v.Dispose()
//	v.Add(3)
//	v.Add(1)
//	_ = v.Sort(cmp.Compare[int])
//
//	w := spanx.NewByteWriter()
//	defer w.Dispose()
//	w.WriteUint32(42)
//	_ = w.WriteVarString("cpu.usage")
//	packed, _ := w.Compress(compress.NewS2Compressor())
//
// # Package Structure
//
// This package holds thin top-level wrappers for the most common cases. For
// full control use the packages directly: arraypool, vec, tiny, bufwriter,
// sorting, dict, compress, and endian.
package spanx

import (
	"github.com/arloliu/spanx/bufwriter"
	"github.com/arloliu/spanx/dict"
	"github.com/arloliu/spanx/internal/hash"
	"github.com/arloliu/spanx/sorting"
	"github.com/arloliu/spanx/tiny"
	"github.com/arloliu/spanx/vec"
)

// NewVec returns an empty heap-backed vector with room for capacity elements.
func NewVec[T any](capacity int) *vec.Vec[T] {
	return vec.New[T](capacity)
}

// NewPoolVec returns an empty vector renting from the shared pool for T
// unless vec.WithPool says otherwise. Pair it with Dispose.
func NewPoolVec[T any](opts ...vec.PoolOption[T]) *vec.PoolVec[T] {
	return vec.NewPool(opts...)
}

// NewScratchVec returns a vector over scratch that escalates to the shared
// pool for T. Pair it with Dispose in the same function.
func NewScratchVec[T any](scratch []T) *vec.RefVec[T] {
	return vec.NewRef(scratch)
}

// NewWriter returns a pooled buffer writer.
func NewWriter[T any](opts ...bufwriter.Option[T]) *bufwriter.Writer[T] {
	return bufwriter.NewPooled(opts...)
}

// NewByteWriter returns a pooled byte writer, little-endian unless
// bufwriter.WithEndian says otherwise.
func NewByteWriter(opts ...bufwriter.ByteOption) *bufwriter.ByteWriter {
	return bufwriter.NewByteWriter(opts...)
}

// Sort sorts keys with compare using introsort.
func Sort[T any](keys []T, compare func(a, b T) int) error {
	return sorting.Sort(keys, compare)
}

// SortPairs sorts keys with compare and applies every move to values as well.
func SortPairs[K, V any](keys []K, values []V, compare func(a, b K) int) error {
	return sorting.SortPairs(keys, values, compare)
}

// TinyCopy returns a tiny.Span holding a private copy of items.
func TinyCopy[T any](items ...T) tiny.Span[T] {
	return tiny.CopyFrom(items)
}

// NewMultiDict returns an empty MultiDict with room for capacity keys.
func NewMultiDict[K comparable, V any](capacity int) *dict.MultiDict[K, V] {
	return dict.NewMultiDict[K, V](capacity)
}

// NewOrderedDictBuilder returns a builder for an immutable insertion-ordered
// dictionary.
func NewOrderedDictBuilder[K comparable, V any](capacity int) *dict.OrderedDictBuilder[K, V] {
	return dict.NewOrderedDictBuilder[K, V](capacity)
}

// Checksum returns the xxHash64 of data, the same checksum
// bufwriter.ByteWriter.Checksum reports.
func Checksum(data []byte) uint64 {
	return hash.Bytes(data)
}
