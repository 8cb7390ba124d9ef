package extcompress

import (
	"errors"

	"github.com/pierrec/lz4/v4"
)

// lz4Compressors pools lz4.Compressor instances; the type carries internal
// match-finding state that benefits from reuse across calls.
var lz4Compressors = newResourcePool(func() *lz4.Compressor { return &lz4.Compressor{} })

// LZ4Compressor compresses Ext payloads with LZ4, prioritizing
// decompression speed over compression ratio. LZ4's raw block format has no
// length header of its own, so unlike S2 or Zstd it cannot self-describe
// its decompressed size; see DecompressSized.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)
var _ SizedDecompressor = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor { return LZ4Compressor{} }

func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	dst := make([]byte, lz4.CompressBlockBound(len(data)))

	lc := lz4Compressors.Get()
	defer lz4Compressors.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DecompressSized decompresses data into a buffer of exactly size bytes,
// the original length Wrap recorded alongside the compressed block. This is
// the path Unwrap takes and never needs to guess or grow a buffer.
func (c LZ4Compressor) DecompressSized(data []byte, size int) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// Decompress handles an LZ4 block whose original size is not known to the
// caller (a codec used directly rather than through Wrap/Unwrap). Since raw
// LZ4 blocks carry no decompressed-size header, it grows a scratch buffer
// geometrically until UncompressBlock stops reporting a too-small
// destination.
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		out, err := c.DecompressSized(data, bufSize)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}
			return nil, err
		}
		return out, nil
	}

	return nil, lz4.ErrInvalidSourceShortBuffer
}
