package value

import (
	"github.com/lmpynix/minimp/endian"
	"github.com/lmpynix/minimp/internal/options"
)

// decodeEngine is the byte-order engine used to read/write numeric payload
// bytes. Length prefixes and counts are always big-endian regardless of this
// setting; see bigEndian in decode.go/encode.go.
type decodeEngine = endian.EndianEngine

type decodeConfig struct {
	engine decodeEngine
}

func newDecodeConfig() *decodeConfig {
	return &decodeConfig{engine: endian.GetBigEndianEngine()}
}

// DecodeOption configures a call to DecodeAt.
type DecodeOption = options.Option[*decodeConfig]

// WithHostEndian configures DecodeAt to read Int/UInt/Float/Double payload
// bytes using the host's native byte order instead of the wire-mandated
// big-endian order. This is the non-standard escape hatch from the format's
// endian_flag; length prefixes and counts are unaffected and always
// big-endian.
func WithHostEndian() DecodeOption {
	return options.NoError(func(c *decodeConfig) {
		c.engine = endian.EngineForFlag(true)
	})
}

type encodeConfig struct {
	engine decodeEngine
}

func newEncodeConfig() *encodeConfig {
	return &encodeConfig{engine: endian.GetBigEndianEngine()}
}

// EncodeOption configures a call to EncodeAt.
type EncodeOption = options.Option[*encodeConfig]

// WithHostEndianEncode configures EncodeAt to write Int/UInt/Float/Double
// payload bytes using the host's native byte order. See WithHostEndian.
func WithHostEndianEncode() EncodeOption {
	return options.NoError(func(c *encodeConfig) {
		c.engine = endian.EngineForFlag(true)
	})
}
