//go:build cgo && gozstd

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"
)

// AppendCompressed encodes src as one frame appended to dst through libzstd.
func (ZstdCompressor) AppendCompressed(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	return gozstd.CompressLevel(dst, src, zstdLevel), nil
}

// AppendDecompressed decodes src through libzstd and appends it to dst.
func (ZstdCompressor) AppendDecompressed(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst, nil
	}

	start := len(dst)
	out, err := gozstd.Decompress(dst, src)
	if err != nil {
		return dst[:start], fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}
