package compress

// NoOpCompressor provides a no-operation compressor that bypasses tile data
// without compression.
//
// This compressor is useful for:
//   - Tiles served uncompressed, or where the transport layer already
//     negotiates compression
//   - Development and debugging, where raw stream bytes must stay inspectable
//   - Baseline measurements when choosing a storage codec for a tileset
//   - Tiles whose integer streams are already dense enough (FastPFOR) that
//     outer compression buys nothing
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-operation compressor that bypasses data.
//
// The returned compressor implements all three interfaces (Compressor,
// Decompressor, and Codec) and simply passes tile buffers through untouched.
//
// Returns:
//   - NoOpCompressor: New no-op compressor instance
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress bypasses compression and returns the input data directly without copying.
//
// This method returns the input slice as-is, without any processing or
// copying, so an uncompressed tile pipeline pays no per-tile allocation.
//
// Note: The returned slice shares the same underlying memory as the input.
// Callers should not modify the input data after calling this method if they
// plan to use the returned slice.
//
// Parameters:
//   - data: Input tile buffer (returned as-is)
//
// Returns:
//   - []byte: Same slice as input data
//   - error: Always nil
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress bypasses decompression and returns the input data directly without copying.
//
// The columnar decoder treats the returned slice as the raw tile buffer; it
// shares the same underlying memory as the input, which is safe because
// decoded tiles never mutate their source bytes.
//
// Parameters:
//   - data: Input tile buffer (returned as-is)
//
// Returns:
//   - []byte: Same slice as input data
//   - error: Always nil
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
