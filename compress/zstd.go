package compress

// zstdLevel is the compression level used by both zstd backends.
const zstdLevel = 3

// ZstdCompressor provides Zstandard compression.
//
// It favors ratio over speed, which suits payloads that are written once and
// shipped or stored, such as serialized writer output. Frames carry their
// content size, so decoding appends without a length hint.
type ZstdCompressor struct{}

var _ Codec = ZstdCompressor{}

// NewZstdCompressor creates a new Zstd compressor with default settings.
//
//	w := bufwriter.NewByteWriter()
//	defer w.Dispose()
//	_, err := src.CompressTo(w, compress.NewZstdCompressor())
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}

// MaxCompressedLen returns the libzstd ZSTD_COMPRESSBOUND of n.
func (ZstdCompressor) MaxCompressedLen(n int) int {
	const smallLimit = 128 << 10

	bound := n + n>>8
	if n < smallLimit {
		bound += (smallLimit - n) >> 11
	}

	return bound
}
