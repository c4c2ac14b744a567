package bufwriter

import (
	"fmt"
	"io"
	"unsafe"

	"github.com/arloliu/spanx/compress"
	"github.com/arloliu/spanx/endian"
	"github.com/arloliu/spanx/errs"
	"github.com/arloliu/spanx/format"
	"github.com/arloliu/spanx/internal/hash"
	"github.com/arloliu/spanx/internal/options"
)

// MaxVarStringLength is the longest string WriteVarString accepts; its length
// prefix is a single byte.
const MaxVarStringLength = 255

// ByteWriter is a pooled Writer[byte] used as a serialization sink.
type ByteWriter struct {
	*Writer[byte]
	engine endian.EndianEngine
}

var (
	_ io.Writer       = (*ByteWriter)(nil)
	_ io.ByteWriter   = (*ByteWriter)(nil)
	_ io.StringWriter = (*ByteWriter)(nil)
	_ io.WriterTo     = (*ByteWriter)(nil)
)

// NewByteWriter returns a ByteWriter renting from the shared byte pool unless
// WithBytePool says otherwise. Option errors panic; use TryNewByteWriter to
// receive them instead.
func NewByteWriter(opts ...ByteOption) *ByteWriter {
	w, err := TryNewByteWriter(opts...)
	if err != nil {
		panic(err)
	}

	return w
}

// TryNewByteWriter is NewByteWriter with option errors returned.
func TryNewByteWriter(opts ...ByteOption) (*ByteWriter, error) {
	cfg := defaultByteConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	w, err := TryNewPooled(cfg.writerOpts...)
	if err != nil {
		return nil, err
	}

	return &ByteWriter{Writer: w, engine: cfg.engine}, nil
}

// Engine returns the byte order used by the integer writers.
func (w *ByteWriter) Engine() endian.EndianEngine {
	return w.engine
}

// Bytes returns the committed bytes. The slice aliases the writer's buffer.
func (w *ByteWriter) Bytes() []byte {
	return w.Slice()
}

// Write implements io.Writer. It never fails.
func (w *ByteWriter) Write(p []byte) (int, error) {
	w.AddRange(p...)
	return len(p), nil
}

// WriteByte implements io.ByteWriter. It never fails.
func (w *ByteWriter) WriteByte(c byte) error {
	w.Add(c)
	return nil
}

// WriteString implements io.StringWriter. It never fails.
func (w *ByteWriter) WriteString(s string) (int, error) {
	if len(s) == 0 {
		return 0, nil
	}

	n := copy(w.GetSpan(len(s)), s)
	w.Advance(n)

	return n, nil
}

// WriteTo implements io.WriterTo by writing the committed bytes to dst. The
// writer's contents are left in place. A dst that accepts fewer bytes without
// reporting an error yields io.ErrShortWrite.
func (w *ByteWriter) WriteTo(dst io.Writer) (int64, error) {
	data := w.Bytes()
	n, err := dst.Write(data)
	if err == nil && n < len(data) {
		err = io.ErrShortWrite
	}

	return int64(n), err
}

// WriteUint16 appends v in the writer's byte order.
func (w *ByteWriter) WriteUint16(v uint16) {
	w.engine.PutUint16(w.GetSpan(2), v)
	w.Advance(2)
}

// WriteUint32 appends v in the writer's byte order.
func (w *ByteWriter) WriteUint32(v uint32) {
	w.engine.PutUint32(w.GetSpan(4), v)
	w.Advance(4)
}

// WriteUint64 appends v in the writer's byte order.
func (w *ByteWriter) WriteUint64(v uint64) {
	w.engine.PutUint64(w.GetSpan(8), v)
	w.Advance(8)
}

// WriteVarString appends s preceded by its length as one byte. Strings longer
// than MaxVarStringLength are rejected with errs.ErrInvalidArgument and nothing
// is written.
func (w *ByteWriter) WriteVarString(s string) error {
	if len(s) > MaxVarStringLength {
		return fmt.Errorf("%w: string length %d exceeds %d", errs.ErrInvalidArgument, len(s), MaxVarStringLength)
	}

	dst := w.GetSpan(1 + len(s))
	dst[0] = byte(len(s))
	copy(dst[1:], s)
	w.Advance(1 + len(s))

	return nil
}

// ReadVarString decodes a string written by WriteVarString at data[offset:]
// and returns it with the offset just past it.
func ReadVarString(data []byte, offset int) (string, int, error) {
	if offset < 0 || offset >= len(data) {
		return "", offset, fmt.Errorf("%w: var string offset %d outside length %d",
			errs.ErrInvalidArgument, offset, len(data))
	}

	n := int(data[offset])
	end := offset + 1 + n
	if end > len(data) {
		return "", offset, fmt.Errorf("%w: var string of %d bytes at offset %d exceeds length %d",
			errs.ErrInvalidArgument, n, offset, len(data))
	}

	return string(data[offset+1 : end]), end, nil
}

// Checksum returns the xxHash64 of the committed bytes.
func (w *ByteWriter) Checksum() uint64 {
	return hash.Bytes(w.Bytes())
}

// Compress returns the committed bytes compressed with codec in a newly
// allocated slice.
func (w *ByteWriter) Compress(codec compress.Compressor) ([]byte, error) {
	if codec == nil {
		return nil, fmt.Errorf("%w: nil codec", errs.ErrInvalidArgument)
	}

	src := w.Bytes()
	out, err := compress.Compress(codec, src)
	if err != nil {
		return nil, fmt.Errorf("compress %d bytes: %w", len(src), err)
	}

	return out, nil
}

// CompressTo appends the committed bytes, compressed with codec, to dst and
// returns the number of bytes appended. The output is written straight into
// dst's rented buffer. dst must be a different writer.
func (w *ByteWriter) CompressTo(dst *ByteWriter, codec compress.Compressor) (int, error) {
	if codec == nil || dst == nil {
		return 0, fmt.Errorf("%w: nil codec or destination", errs.ErrInvalidArgument)
	}
	if dst == w {
		return 0, fmt.Errorf("%w: cannot compress a writer into itself", errs.ErrInvalidArgument)
	}

	src := w.Bytes()
	n, err := dst.appendWith(codec.MaxCompressedLen(len(src)), func(buf []byte) ([]byte, error) {
		return codec.AppendCompressed(buf, src)
	})
	if err != nil {
		return 0, fmt.Errorf("compress %d bytes: %w", len(src), err)
	}

	return n, nil
}

// WriteDecompressed decodes data with codec and appends the result, returning
// the number of bytes appended. data must not point into the writer's own
// buffer. On error nothing is committed.
func (w *ByteWriter) WriteDecompressed(codec compress.Decompressor, data []byte) (int, error) {
	if codec == nil {
		return 0, fmt.Errorf("%w: nil codec", errs.ErrInvalidArgument)
	}
	if aliases(data, w.Bytes()) || aliases(data, w.Spare()) {
		return 0, fmt.Errorf("%w: source aliases the writer's buffer", errs.ErrInvalidArgument)
	}

	n, err := w.appendWith(len(data), func(buf []byte) ([]byte, error) {
		return codec.AppendDecompressed(buf, data)
	})
	if err != nil {
		return 0, fmt.Errorf("decompress %d bytes: %w", len(data), err)
	}

	return n, nil
}

// appendWith hands fn the writable region, sized for at least hint bytes, as
// an empty slice to append to. Output that stayed in the region is committed
// in place; output fn had to move elsewhere is copied in.
func (w *ByteWriter) appendWith(hint int, fn func(buf []byte) ([]byte, error)) (int, error) {
	spare := w.GetSpan(max(hint, 0))
	out, err := fn(spare[:0])
	if err != nil {
		return 0, err
	}
	if len(out) == 0 {
		return 0, nil
	}

	if unsafe.SliceData(out) == unsafe.SliceData(spare) {
		w.Advance(len(out))
	} else {
		w.AddRange(out...)
	}

	return len(out), nil
}

// CompressWith compresses the committed bytes with the built-in codec for
// compressionType and reports the sizes involved.
func (w *ByteWriter) CompressWith(compressionType format.CompressionType) ([]byte, compress.Stats, error) {
	stats := compress.Stats{Algorithm: compressionType, OriginalSize: int64(w.Len())}

	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, stats, err
	}

	out, err := w.Compress(codec)
	if err != nil {
		return nil, stats, err
	}
	stats.CompressedSize = int64(len(out))

	return out, stats, nil
}

// aliases reports whether out starts inside src's backing array.
func aliases(out, src []byte) bool {
	if cap(out) == 0 || cap(src) == 0 {
		return false
	}

	o := uintptr(unsafe.Pointer(unsafe.SliceData(out)))
	s := uintptr(unsafe.Pointer(unsafe.SliceData(src)))

	return o >= s && o < s+uintptr(cap(src))
}
