// Package compress provides the codecs a bufwriter.ByteWriter can apply to the
// bytes it has committed.
//
// Codecs append into a caller-supplied buffer instead of allocating their own,
// so output can land directly in rented storage:
//
//	type Codec interface {
//	    AppendCompressed(dst, src []byte) ([]byte, error)
//	    MaxCompressedLen(n int) int
//	    AppendDecompressed(dst, src []byte) ([]byte, error)
//	}
//
// When dst has at least MaxCompressedLen(len(src)) spare capacity,
// AppendCompressed writes in place. Compress and Decompress wrap the append
// methods for callers that want a fresh slice.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): copies its input.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. The pure Go
//     implementation from klauspost/compress is used by default; building with
//     the gozstd tag and cgo enabled switches to the libzstd bindings.
//   - S2 (format.CompressionS2): fast with a reasonable ratio. Decoding sizes
//     its output from the block header.
//   - LZ4 (format.CompressionLZ4): fastest decompression. Blocks carry no
//     length, so decoding goes through scratch rented from an arraypool.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	dst := bufwriter.NewByteWriter()
//	defer dst.Dispose()
//	_, err = src.CompressTo(dst, codec)
//
// # Thread Safety
//
// All codecs are safe for concurrent use. Zstd and LZ4 keep warmed-up encoder
// state in sync.Pools.
package compress
