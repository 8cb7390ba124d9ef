package extcompress

// ZstdCompressor compresses Ext payloads with Zstandard.
//
// Use when the payload is large and storage or bandwidth matters more than
// CPU: text blobs, repetitive binary data, cold-stored messages.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor { return ZstdCompressor{} }
