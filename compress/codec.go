package compress

import (
	"fmt"

	"github.com/arloliu/spanx/errs"
	"github.com/arloliu/spanx/format"
)

// Compressor compresses a byte payload into a caller-supplied buffer.
type Compressor interface {
	// AppendCompressed appends the compressed form of src to dst and returns
	// the extended slice. src is not modified and must not overlap dst's spare
	// capacity. An empty src leaves dst unchanged.
	AppendCompressed(dst, src []byte) ([]byte, error)

	// MaxCompressedLen returns the room AppendCompressed needs for n input
	// bytes. With at least that much spare capacity in dst the codec writes in
	// place instead of allocating.
	MaxCompressedLen(n int) int
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	// AppendDecompressed appends the original bytes of src to dst, or returns
	// an error if src is corrupt or was produced by a different algorithm.
	AppendDecompressed(dst, src []byte) ([]byte, error)
}

// Codec combines both compression and decompression.
type Codec interface {
	Compressor
	Decompressor
}

// Compress returns the compressed form of data in a newly allocated slice, or
// nil for empty data.
func Compress(c Compressor, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return c.AppendCompressed(make([]byte, 0, max(c.MaxCompressedLen(len(data)), 0)), data)
}

// Decompress returns the original bytes of data in a newly allocated slice, or
// nil for empty data.
func Decompress(d Decompressor, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return d.AppendDecompressed(nil, data)
}

// Stats describes one compression of a payload.
type Stats struct {
	Algorithm      format.CompressionType
	OriginalSize   int64
	CompressedSize int64
}

// Ratio returns CompressedSize / OriginalSize, or 0 for an empty payload.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space saved as a percentage.
func (s Stats) SpaceSavings() float64 {
	return (1.0 - s.Ratio()) * 100.0
}

// CreateCodec returns a new Codec for compressionType.
func CreateCodec(compressionType format.CompressionType) (Codec, error) {
	switch compressionType {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: invalid compression type %s", errs.ErrInvalidArgument, compressionType)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec returns the shared built-in Codec for compressionType.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: unsupported compression type %s", errs.ErrInvalidArgument, compressionType)
}
