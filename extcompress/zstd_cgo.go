//go:build nobuild

package extcompress

import "github.com/valyala/gozstd"

var _ SizedDecompressor = (*ZstdCompressor)(nil)

// Compress compresses data using cgo-backed Zstandard bindings.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses data with no hint for the decoded size.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return gozstd.Decompress(nil, data)
}

// DecompressSized decompresses into a buffer preallocated to size, the
// original length Wrap recorded, avoiding gozstd's internal buffer growth.
func (c ZstdCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return gozstd.Decompress(make([]byte, 0, size), data)
}
