//go:build !nobuild

package extcompress

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoders and zstdEncoders pool zstd encoder/decoder handles; the
// klauspost/compress/zstd types are explicitly designed to be reused after
// warmup rather than recreated per call.
var zstdDecoders = newResourcePool(func() *zstd.Decoder {
	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(false),
	)
	if err != nil {
		panic(fmt.Sprintf("extcompress: failed to create zstd decoder: %v", err))
	}
	return decoder
})

var zstdEncoders = newResourcePool(func() *zstd.Encoder {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderCRC(false),
	)
	if err != nil {
		panic(fmt.Sprintf("extcompress: failed to create zstd encoder: %v", err))
	}
	return encoder
})

var _ SizedDecompressor = (*ZstdCompressor)(nil)

// Compress compresses data using a pooled zstd encoder.
func (c ZstdCompressor) Compress(data []byte) ([]byte, error) {
	encoder := zstdEncoders.Get()
	defer zstdEncoders.Put(encoder)
	return encoder.EncodeAll(data, nil), nil
}

// Decompress decompresses zstd-compressed data using a pooled decoder, with
// no hint for the decoded size.
func (c ZstdCompressor) Decompress(data []byte) ([]byte, error) {
	return c.decompressInto(data, nil)
}

// DecompressSized decompresses into a buffer preallocated to size, the
// original length Wrap recorded, so the decoder appends into existing
// capacity instead of growing its own internal buffer as it decodes.
func (c ZstdCompressor) DecompressSized(data []byte, size int) ([]byte, error) {
	return c.decompressInto(data, make([]byte, 0, size))
}

func (c ZstdCompressor) decompressInto(data, dst []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	decoder := zstdDecoders.Get()
	defer zstdDecoders.Put(decoder)

	out, err := decoder.DecodeAll(data, dst)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}
	return out, nil
}
