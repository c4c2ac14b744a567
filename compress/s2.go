package compress

import (
	"fmt"
	"slices"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/spanx/errs"
)

// S2Compressor encodes S2 blocks directly into the destination's spare
// capacity. Block headers carry the decoded length, so decompression sizes
// its output exactly.
type S2Compressor struct{}

var _ Codec = S2Compressor{}

// NewS2Compressor creates a new S2 compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// MaxCompressedLen returns s2.MaxEncodedLen(n), or -1 when n is too large to
// encode as one block.
func (S2Compressor) MaxCompressedLen(n int) int {
	return s2.MaxEncodedLen(n)
}

// AppendCompressed implements Compressor.
func (c S2Compressor) AppendCompressed(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	bound := c.MaxCompressedLen(len(src))
	if bound < 0 {
		return dst, fmt.Errorf("%w: s2 block of %d bytes is too large", errs.ErrInvalidArgument, len(src))
	}

	start := len(dst)
	dst = slices.Grow(dst, bound)
	out := s2.Encode(dst[start:start+bound], src)

	return dst[:start+len(out)], nil
}

// AppendDecompressed implements Decompressor.
func (S2Compressor) AppendDecompressed(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	n, err := s2.DecodedLen(src)
	if err != nil {
		return dst, fmt.Errorf("s2 decompression failed: %w", err)
	}

	start := len(dst)
	dst = slices.Grow(dst, n)
	out, err := s2.Decode(dst[start:start+n], src)
	if err != nil {
		return dst[:start], fmt.Errorf("s2 decompression failed: %w", err)
	}

	return dst[:start+len(out)], nil
}
