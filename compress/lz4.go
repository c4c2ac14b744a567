package compress

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/spanx/arraypool"
)

// maxLZ4DecompressedSize bounds the scratch buffer AppendDecompressed will try.
const maxLZ4DecompressedSize = 128 * 1024 * 1024

var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor compresses with the LZ4 block format.
//
// Blocks carry no length header, so AppendDecompressed decodes into scratch
// buffers rented from an arraypool, doubling until the block fits, and copies
// the result into dst. The zero value rents from the shared byte pool.
type LZ4Compressor struct {
	pool arraypool.Pool[byte]
}

var _ Codec = LZ4Compressor{}

// NewLZ4Compressor creates an LZ4 codec renting scratch from the shared byte
// pool.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// NewLZ4CompressorWithPool creates an LZ4 codec renting scratch from pool. A
// nil pool selects the shared byte pool.
func NewLZ4CompressorWithPool(pool arraypool.Pool[byte]) LZ4Compressor {
	return LZ4Compressor{pool: pool}
}

func (c LZ4Compressor) scratchPool() arraypool.Pool[byte] {
	if c.pool == nil {
		return arraypool.Shared[byte]()
	}

	return c.pool
}

// MaxCompressedLen returns lz4.CompressBlockBound(n).
func (LZ4Compressor) MaxCompressedLen(n int) int {
	return lz4.CompressBlockBound(n)
}

// AppendCompressed compresses src into dst's spare capacity with a pooled
// lz4.Compressor.
func (c LZ4Compressor) AppendCompressed(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	bound := c.MaxCompressedLen(len(src))
	start := len(dst)
	dst = slices.Grow(dst, bound)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst[start:start+bound])
	if err != nil {
		return dst[:start], fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:start+n], nil
}

// AppendDecompressed decodes the block in src and appends it to dst.
//
// The first scratch buffer holds four times the input size; it doubles on
// lz4.ErrInvalidSourceShortBuffer until maxLZ4DecompressedSize, after which
// that error is returned. Every scratch buffer goes back to the pool.
func (c LZ4Compressor) AppendDecompressed(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	pool := c.scratchPool()
	for size := len(src) * 4; size <= maxLZ4DecompressedSize; size *= 2 {
		scratch := pool.Rent(size)
		n, err := lz4.UncompressBlock(src, scratch)
		if err == nil {
			dst = append(dst, scratch[:n]...)
			pool.Return(scratch)

			return dst, nil
		}
		pool.Return(scratch)

		if !errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return dst, fmt.Errorf("lz4 decompression failed: %w", err)
		}
	}

	return dst, fmt.Errorf("lz4 decompression failed: %w", lz4.ErrInvalidSourceShortBuffer)
}
