package value

import (
	"math"
	"unicode/utf8"

	"github.com/lmpynix/minimp/endian"
	"github.com/lmpynix/minimp/errs"
	"github.com/lmpynix/minimp/format"
	"github.com/lmpynix/minimp/internal/options"
)

// bigEndian is the engine used for every length/count prefix (str/bin/ext
// header lengths, array/map counts) regardless of the configured payload
// engine. MessagePack headers are always big-endian on the wire; only
// Int/UInt/Float/Double payload bytes may be switched to host order.
var bigEndian = endian.GetBigEndianEngine()

// DecodeAt reads one Element starting at offset in buf, returning the
// element, the number of bytes consumed, and an error if buf is truncated or
// contains an unrecognized tag.
//
// The returned Element borrows Str/Bin/Ext payload bytes and, for
// Array/Map, a view directly from buf; see the package doc for the
// borrowing discipline this implies.
func DecodeAt(buf []byte, offset int, opts ...DecodeOption) (Element, int, error) {
	cfg := newDecodeConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return Element{}, 0, err
	}
	return decodeAt(buf, offset, cfg.engine)
}

func decodeAt(buf []byte, offset int, engine decodeEngine) (Element, int, error) {
	if offset < 0 || offset >= len(buf) {
		return Element{}, 0, errs.ErrBufferTooShort
	}
	tag := buf[offset]

	switch {
	case tag <= format.PosFixintMax:
		return Element{Kind: KindInt, Int: int64(tag)}, 1, nil
	case tag >= format.NegFixintMin:
		// tag >= 0xe0, not tag > 0xe0: 0xe0 itself is a valid negative
		// fixint (-32) and must not fall through to the unknown-tag case.
		return Element{Kind: KindInt, Int: int64(int8(tag))}, 1, nil
	case tag >= format.FixmapMin && tag <= format.FixmapMax:
		return decodeMap(buf, offset, int(tag&0x0f), 1, 0, engine)
	case tag >= format.FixarrayMin && tag <= format.FixarrayMax:
		return decodeArray(buf, offset, int(tag&0x0f), 1, 0, engine)
	case tag >= format.FixstrMin && tag <= format.FixstrMax:
		return decodeStr(buf, offset, int(tag&0x1f), 1)
	}

	switch tag {
	case format.TagNil:
		return Element{Kind: KindNil}, 1, nil
	case format.TagFalse:
		return Element{Kind: KindBool, Bool: false}, 1, nil
	case format.TagTrue:
		return Element{Kind: KindBool, Bool: true}, 1, nil
	case format.TagBin8:
		return decodeBinHeader(buf, offset, 1)
	case format.TagBin16:
		return decodeBinHeader(buf, offset, 2)
	case format.TagBin32:
		return decodeBinHeader(buf, offset, 4)
	case format.TagExt8:
		return decodeExtHeader(buf, offset, 1)
	case format.TagExt16:
		return decodeExtHeader(buf, offset, 2)
	case format.TagExt32:
		return decodeExtHeader(buf, offset, 4)
	case format.TagFloat32:
		return decodeFloat32(buf, offset, engine)
	case format.TagFloat64:
		return decodeFloat64(buf, offset, engine)
	case format.TagUint8:
		return decodeUint(buf, offset, 1, engine)
	case format.TagUint16:
		return decodeUint(buf, offset, 2, engine)
	case format.TagUint32:
		return decodeUint(buf, offset, 4, engine)
	case format.TagUint64:
		return decodeUint(buf, offset, 8, engine)
	case format.TagInt8:
		return decodeInt(buf, offset, 1, engine)
	case format.TagInt16:
		return decodeInt(buf, offset, 2, engine)
	case format.TagInt32:
		return decodeInt(buf, offset, 4, engine)
	case format.TagInt64:
		return decodeInt(buf, offset, 8, engine)
	case format.TagFixext1:
		return decodeFixext(buf, offset, 1)
	case format.TagFixext2:
		return decodeFixext(buf, offset, 2)
	case format.TagFixext4:
		return decodeFixext(buf, offset, 4)
	case format.TagFixext8:
		return decodeFixext(buf, offset, 8)
	case format.TagFixext16:
		return decodeFixext(buf, offset, 16)
	case format.TagStr8:
		return decodeStrHeader(buf, offset, 1)
	case format.TagStr16:
		return decodeStrHeader(buf, offset, 2)
	case format.TagStr32:
		return decodeStrHeader(buf, offset, 4)
	case format.TagArray16:
		return decodeArrayHeader(buf, offset, 2, engine)
	case format.TagArray32:
		return decodeArrayHeader(buf, offset, 4, engine)
	case format.TagMap16:
		return decodeMapHeader(buf, offset, 2, engine)
	case format.TagMap32:
		return decodeMapHeader(buf, offset, 4, engine)
	}

	return Element{}, 0, errs.ErrUnknownTag
}

func need(buf []byte, offset, n int) error {
	if offset+n > len(buf) {
		return errs.ErrBufferTooShort
	}
	return nil
}

func decodeUint(buf []byte, offset, width int, engine decodeEngine) (Element, int, error) {
	if err := need(buf, offset, 1+width); err != nil {
		return Element{}, 0, err
	}
	p := buf[offset+1 : offset+1+width]
	var u uint64
	switch width {
	case 1:
		u = uint64(p[0])
	case 2:
		u = uint64(engine.Uint16(p))
	case 4:
		u = uint64(engine.Uint32(p))
	case 8:
		u = engine.Uint64(p)
	}
	return Element{Kind: KindUInt, UInt: u, UIntWidth: width}, 1 + width, nil
}

func decodeInt(buf []byte, offset, width int, engine decodeEngine) (Element, int, error) {
	if err := need(buf, offset, 1+width); err != nil {
		return Element{}, 0, err
	}
	p := buf[offset+1 : offset+1+width]
	var i int64
	switch width {
	case 1:
		i = int64(int8(p[0]))
	case 2:
		i = int64(int16(engine.Uint16(p)))
	case 4:
		i = int64(int32(engine.Uint32(p)))
	case 8:
		i = int64(engine.Uint64(p))
	}
	return Element{Kind: KindInt, Int: i, IntWidth: width}, 1 + width, nil
}

func decodeFloat32(buf []byte, offset int, engine decodeEngine) (Element, int, error) {
	if err := need(buf, offset, 5); err != nil {
		return Element{}, 0, err
	}
	bits := engine.Uint32(buf[offset+1 : offset+5])
	return Element{Kind: KindFloat, Float32: math.Float32frombits(bits)}, 5, nil
}

func decodeFloat64(buf []byte, offset int, engine decodeEngine) (Element, int, error) {
	if err := need(buf, offset, 9); err != nil {
		return Element{}, 0, err
	}
	bits := engine.Uint64(buf[offset+1 : offset+9])
	return Element{Kind: KindDouble, Float64: math.Float64frombits(bits)}, 9, nil
}

func decodeStr(buf []byte, offset, length, hdrWidth int) (Element, int, error) {
	start := offset + 1
	if err := need(buf, offset, 1+length); err != nil {
		return Element{}, 0, err
	}
	s := buf[start : start+length]
	if !utf8.Valid(s) {
		return Element{}, 0, errs.ErrInvalidUTF8
	}
	return Element{Kind: KindStr, Str: s, StrHdrWidth: 0}, 1 + length, nil
}

func decodeStrHeader(buf []byte, offset, hdrWidth int) (Element, int, error) {
	if err := need(buf, offset, 1+hdrWidth); err != nil {
		return Element{}, 0, err
	}
	length := int(readUint(buf[offset+1:offset+1+hdrWidth], hdrWidth, bigEndian))
	start := offset + 1 + hdrWidth
	if err := need(buf, start, length); err != nil {
		return Element{}, 0, err
	}
	s := buf[start : start+length]
	if !utf8.Valid(s) {
		return Element{}, 0, errs.ErrInvalidUTF8
	}
	return Element{Kind: KindStr, Str: s, StrHdrWidth: hdrWidth}, 1 + hdrWidth + length, nil
}

func decodeBinHeader(buf []byte, offset, hdrWidth int) (Element, int, error) {
	if err := need(buf, offset, 1+hdrWidth); err != nil {
		return Element{}, 0, err
	}
	length := int(readUint(buf[offset+1:offset+1+hdrWidth], hdrWidth, bigEndian))
	start := offset + 1 + hdrWidth
	if err := need(buf, start, length); err != nil {
		return Element{}, 0, err
	}
	return Element{Kind: KindBin, Bin: buf[start : start+length], BinHdrWidth: hdrWidth}, 1 + hdrWidth + length, nil
}

func decodeFixext(buf []byte, offset, length int) (Element, int, error) {
	if err := need(buf, offset, 2+length); err != nil {
		return Element{}, 0, err
	}
	extType := int8(buf[offset+1])
	data := buf[offset+2 : offset+2+length]
	return Element{Kind: KindExt, ExtType: extType, ExtData: data, ExtHdrWidth: 0}, 2 + length, nil
}

func decodeExtHeader(buf []byte, offset, hdrWidth int) (Element, int, error) {
	if err := need(buf, offset, 1+hdrWidth+1); err != nil {
		return Element{}, 0, err
	}
	length := int(readUint(buf[offset+1:offset+1+hdrWidth], hdrWidth, bigEndian))
	extType := int8(buf[offset+1+hdrWidth])
	start := offset + 1 + hdrWidth + 1
	if err := need(buf, start, length); err != nil {
		return Element{}, 0, err
	}
	data := buf[start : start+length]
	return Element{Kind: KindExt, ExtType: extType, ExtData: data, ExtHdrWidth: hdrWidth}, 1 + hdrWidth + 1 + length, nil
}

func decodeArray(buf []byte, offset, count, hdrLen, hdrWidth int, engine decodeEngine) (Element, int, error) {
	base := offset + hdrLen
	view := newArrayView(buf, base, count, hdrWidth, engine)
	walk := *view
	for i := 0; i < count; i++ {
		if _, _, err := walk.Next(); err != nil {
			return Element{}, 0, err
		}
	}
	return Element{Kind: KindArray, Array: view}, hdrLen + walk.cursor - base, nil
}

func decodeArrayHeader(buf []byte, offset, hdrWidth int, engine decodeEngine) (Element, int, error) {
	if err := need(buf, offset, 1+hdrWidth); err != nil {
		return Element{}, 0, err
	}
	count := int(readUint(buf[offset+1:offset+1+hdrWidth], hdrWidth, bigEndian))
	return decodeArray(buf, offset, count, 1+hdrWidth, hdrWidth, engine)
}

func decodeMap(buf []byte, offset, pairs, hdrLen, hdrWidth int, engine decodeEngine) (Element, int, error) {
	base := offset + hdrLen
	view := newMapView(buf, base, pairs, hdrWidth, engine)
	walk := *view
	for i := 0; i < pairs; i++ {
		if _, _, err := walk.Next(); err != nil {
			return Element{}, 0, err
		}
	}
	return Element{Kind: KindMap, Map: view}, hdrLen + walk.cursor - base, nil
}

func decodeMapHeader(buf []byte, offset, hdrWidth int, engine decodeEngine) (Element, int, error) {
	if err := need(buf, offset, 1+hdrWidth); err != nil {
		return Element{}, 0, err
	}
	pairs := int(readUint(buf[offset+1:offset+1+hdrWidth], hdrWidth, bigEndian))
	return decodeMap(buf, offset, pairs, 1+hdrWidth, hdrWidth, engine)
}

// readUint reads a big-endian unsigned integer of the given width (1, 2, or
// 4 bytes) from p. Header length/count fields never exceed 4 bytes.
func readUint(p []byte, width int, engine decodeEngine) uint64 {
	switch width {
	case 1:
		return uint64(p[0])
	case 2:
		return uint64(engine.Uint16(p))
	case 4:
		return uint64(engine.Uint32(p))
	}
	return 0
}
