package compress

// NoOpCompressor copies data through unchanged.
type NoOpCompressor struct{}

var _ Codec = NoOpCompressor{}

// NewNoOpCompressor creates a pass-through codec.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// AppendCompressed appends src to dst as is.
func (NoOpCompressor) AppendCompressed(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}

// MaxCompressedLen returns n.
func (NoOpCompressor) MaxCompressedLen(n int) int {
	return n
}

// AppendDecompressed appends src to dst as is.
func (NoOpCompressor) AppendDecompressed(dst, src []byte) ([]byte, error) {
	return append(dst, src...), nil
}
