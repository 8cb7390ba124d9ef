// Package format defines the wire-level vocabulary of the MessagePack format:
// the tag byte layout and the Kind discriminant used throughout the value and
// extcompress packages.
package format

// Kind identifies the variant of a decoded or to-be-encoded MessagePack element.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindInt
	KindUInt
	KindFloat
	KindDouble
	KindStr
	KindBin
	KindExt
	KindArray
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindUInt:
		return "UInt"
	case KindFloat:
		return "Float"
	case KindDouble:
		return "Double"
	case KindStr:
		return "Str"
	case KindBin:
		return "Bin"
	case KindExt:
		return "Ext"
	case KindArray:
		return "Array"
	case KindMap:
		return "Map"
	default:
		return "Unknown"
	}
}

// CompressionType identifies the compression algorithm wrapping an Ext payload.
// This has no bearing on the core codec; it is used by the extcompress package.
type CompressionType uint8

const (
	CompressionNone CompressionType = iota + 1
	CompressionZstd
	CompressionS2
	CompressionLZ4
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Tag byte ranges and fixed codes, per the MessagePack specification.
const (
	PosFixintMin byte = 0x00
	PosFixintMax byte = 0x7f

	FixmapMin byte = 0x80
	FixmapMax byte = 0x8f

	FixarrayMin byte = 0x90
	FixarrayMax byte = 0x9f

	FixstrMin byte = 0xa0
	FixstrMax byte = 0xbf

	TagNil      byte = 0xc0
	TagFalse    byte = 0xc2
	TagTrue     byte = 0xc3
	TagBin8     byte = 0xc4
	TagBin16    byte = 0xc5
	TagBin32    byte = 0xc6
	TagExt8     byte = 0xc7
	TagExt16    byte = 0xc8
	TagExt32    byte = 0xc9
	TagFloat32  byte = 0xca
	TagFloat64  byte = 0xcb
	TagUint8    byte = 0xcc
	TagUint16   byte = 0xcd
	TagUint32   byte = 0xce
	TagUint64   byte = 0xcf
	TagInt8     byte = 0xd0
	TagInt16    byte = 0xd1
	TagInt32    byte = 0xd2
	TagInt64    byte = 0xd3
	TagFixext1  byte = 0xd4
	TagFixext2  byte = 0xd5
	TagFixext4  byte = 0xd6
	TagFixext8  byte = 0xd7
	TagFixext16 byte = 0xd8
	TagStr8     byte = 0xd9
	TagStr16    byte = 0xda
	TagStr32    byte = 0xdb
	TagArray16  byte = 0xdc
	TagArray32  byte = 0xdd
	TagMap16    byte = 0xde
	TagMap32    byte = 0xdf

	NegFixintMin byte = 0xe0
	NegFixintMax byte = 0xff
)
