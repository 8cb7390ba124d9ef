package extcompress

// NoOpCompressor passes data through unchanged.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)
var _ SizedDecompressor = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-op compressor.
func NewNoOpCompressor() NoOpCompressor { return NoOpCompressor{} }

func (c NoOpCompressor) Compress(data []byte) ([]byte, error) { return data, nil }

func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) { return data, nil }

// DecompressSized ignores size: an uncompressed payload already is its own
// decompressed form.
func (c NoOpCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	return data, nil
}
