package extcompress

import (
	"encoding/binary"
	"fmt"

	"github.com/lmpynix/minimp/errs"
	"github.com/lmpynix/minimp/format"
)

// Compressor compresses a byte payload before it is stored in an Ext
// element.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses Compressor without knowing the original size ahead
// of time. Every codec here supports this path, needed for a caller that
// holds compressed bytes without the Wrap/Unwrap envelope around them.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// SizedDecompressor is an optional, faster path for a Decompressor that can
// use a known original payload length to allocate its output buffer exactly
// once instead of guessing and growing. Wrap records that length in its
// envelope specifically so Unwrap can take this path.
type SizedDecompressor interface {
	DecompressSized(data []byte, size int) ([]byte, error)
}

// Codec combines Compressor and Decompressor.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec builds a new Codec for the given compression type.
func CreateCodec(t format.CompressionType) (Codec, error) {
	switch t {
	case format.CompressionNone:
		return NewNoOpCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	case format.CompressionS2:
		return NewS2Compressor(), nil
	case format.CompressionLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, t)
	}
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a shared built-in Codec for the given compression type.
func GetCodec(t format.CompressionType) (Codec, error) {
	if c, ok := builtinCodecs[t]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, t)
}

// Wrap compresses data with the given algorithm and returns a
// self-describing payload suitable for an Ext element:
//
//	[1 byte: format.CompressionType][uvarint: len(data)][compressed bytes...]
//
// The uvarint-encoded original length lets Unwrap hand the payload to a
// SizedDecompressor, which allocates its output buffer exactly once instead
// of guessing a starting size and growing it on failure.
func Wrap(t format.CompressionType, data []byte) ([]byte, error) {
	codec, err := GetCodec(t)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(data)
	if err != nil {
		return nil, fmt.Errorf("extcompress: compress: %w", err)
	}

	var lenBuf [binary.MaxVarintLen64]byte
	lenN := binary.PutUvarint(lenBuf[:], uint64(len(data)))

	out := make([]byte, 1+lenN+len(compressed))
	out[0] = byte(t)
	copy(out[1:], lenBuf[:lenN])
	copy(out[1+lenN:], compressed)
	return out, nil
}

// Unwrap reads the leading format.CompressionType tag and original-length
// uvarint from data, then decompresses the remainder, preferring a
// SizedDecompressor when the codec offers one.
func Unwrap(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("extcompress: empty payload")
	}
	t := format.CompressionType(data[0])
	size, lenN := binary.Uvarint(data[1:])
	if lenN <= 0 {
		return nil, fmt.Errorf("extcompress: malformed length prefix")
	}
	payload := data[1+lenN:]

	codec, err := GetCodec(t)
	if err != nil {
		return nil, err
	}

	var out []byte
	if sc, ok := codec.(SizedDecompressor); ok {
		out, err = sc.DecompressSized(payload, int(size))
	} else {
		out, err = codec.Decompress(payload)
	}
	if err != nil {
		return nil, fmt.Errorf("extcompress: decompress: %w", err)
	}
	return out, nil
}
