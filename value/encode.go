package value

import (
	"math"

	"github.com/lmpynix/minimp/format"
	"github.com/lmpynix/minimp/internal/options"
	"github.com/lmpynix/minimp/width"
)

// EncodeAt writes e into buf starting at offset using the most compact valid
// wire representation, returning the number of bytes written and true on
// success.
//
// EncodeAt never returns an error: the only failure mode is insufficient
// capacity in buf, which it reports by returning (0, false) rather than
// overloading a zero byte count, since 0 is itself the correct byte count
// for no variant of this format. Callers that need to distinguish "ran out
// of room" from a programming mistake should pre-size buf using
// Element.ByteSize.
func EncodeAt(buf []byte, offset int, e Element, opts ...EncodeOption) (int, bool) {
	cfg := newEncodeConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return 0, false
	}
	return encodeAt(buf, offset, e, cfg.engine)
}

func encodeAt(buf []byte, offset int, e Element, engine decodeEngine) (int, bool) {
	switch e.Kind {
	case KindNil:
		return put1(buf, offset, format.TagNil)
	case KindBool:
		if e.Bool {
			return put1(buf, offset, format.TagTrue)
		}
		return put1(buf, offset, format.TagFalse)
	case KindInt:
		return encodeInt(buf, offset, e.Int, engine)
	case KindUInt:
		return encodeUint(buf, offset, e.UInt, engine)
	case KindFloat:
		return encodeFloat32(buf, offset, e.Float32, engine)
	case KindDouble:
		return encodeFloat64(buf, offset, e.Float64, engine)
	case KindStr:
		return encodeStr(buf, offset, e.Str)
	case KindBin:
		return encodeBin(buf, offset, e.Bin)
	case KindExt:
		return encodeExt(buf, offset, e.ExtType, e.ExtData)
	case KindArray:
		return encodeArray(buf, offset, e, engine)
	case KindMap:
		return encodeMap(buf, offset, e, engine)
	default:
		return 0, false
	}
}

func room(buf []byte, offset, n int) bool {
	return offset >= 0 && offset+n <= len(buf)
}

func put1(buf []byte, offset int, b byte) (int, bool) {
	if !room(buf, offset, 1) {
		return 0, false
	}
	buf[offset] = b
	return 1, true
}

// intWireSize returns the number of bytes encodeInt writes for i, without
// writing anything.
func intWireSize(i int64) int {
	if i >= 0 && i <= int64(format.PosFixintMax) {
		return 1
	}
	if i < 0 && i >= -32 {
		return 1
	}
	return 1 + width.MinSizeSigned(i)
}

// uintWireSize returns the number of bytes encodeUint writes for u, without
// writing anything.
func uintWireSize(u uint64) int {
	return 1 + width.MinSizeUnsigned(u)
}

func encodeInt(buf []byte, offset int, i int64, engine decodeEngine) (int, bool) {
	if i >= 0 && i <= int64(format.PosFixintMax) {
		return put1(buf, offset, byte(i))
	}
	if i < 0 && i >= -32 {
		return put1(buf, offset, byte(int8(i)))
	}

	w := width.MinSizeSigned(i)
	switch w {
	case 1:
		if !room(buf, offset, 2) {
			return 0, false
		}
		buf[offset] = format.TagInt8
		buf[offset+1] = byte(int8(i))
		return 2, true
	case 2:
		if !room(buf, offset, 3) {
			return 0, false
		}
		buf[offset] = format.TagInt16
		engine.PutUint16(buf[offset+1:offset+3], uint16(int16(i)))
		return 3, true
	case 4:
		if !room(buf, offset, 5) {
			return 0, false
		}
		buf[offset] = format.TagInt32
		engine.PutUint32(buf[offset+1:offset+5], uint32(int32(i)))
		return 5, true
	default:
		if !room(buf, offset, 9) {
			return 0, false
		}
		buf[offset] = format.TagInt64
		engine.PutUint64(buf[offset+1:offset+9], uint64(i))
		return 9, true
	}
}

// encodeUint always encodes using a uintN tag, even for values that would
// also fit a positive fixint. Callers wanting the most compact nonnegative
// encoding should build an IntElem instead.
func encodeUint(buf []byte, offset int, u uint64, engine decodeEngine) (int, bool) {
	w := width.MinSizeUnsigned(u)
	switch w {
	case 1:
		if !room(buf, offset, 2) {
			return 0, false
		}
		buf[offset] = format.TagUint8
		buf[offset+1] = byte(u)
		return 2, true
	case 2:
		if !room(buf, offset, 3) {
			return 0, false
		}
		buf[offset] = format.TagUint16
		engine.PutUint16(buf[offset+1:offset+3], uint16(u))
		return 3, true
	case 4:
		if !room(buf, offset, 5) {
			return 0, false
		}
		buf[offset] = format.TagUint32
		engine.PutUint32(buf[offset+1:offset+5], uint32(u))
		return 5, true
	default:
		if !room(buf, offset, 9) {
			return 0, false
		}
		buf[offset] = format.TagUint64
		engine.PutUint64(buf[offset+1:offset+9], u)
		return 9, true
	}
}

func encodeFloat32(buf []byte, offset int, f float32, engine decodeEngine) (int, bool) {
	if !room(buf, offset, 5) {
		return 0, false
	}
	buf[offset] = format.TagFloat32
	engine.PutUint32(buf[offset+1:offset+5], math.Float32bits(f))
	return 5, true
}

func encodeFloat64(buf []byte, offset int, f float64, engine decodeEngine) (int, bool) {
	if !room(buf, offset, 9) {
		return 0, false
	}
	buf[offset] = format.TagFloat64
	engine.PutUint64(buf[offset+1:offset+9], math.Float64bits(f))
	return 9, true
}

func encodeStr(buf []byte, offset int, s []byte) (int, bool) {
	length := len(s)
	switch {
	case length <= 31:
		total := 1 + length
		if !room(buf, offset, total) {
			return 0, false
		}
		buf[offset] = format.FixstrMin | byte(length)
		copy(buf[offset+1:offset+total], s)
		return total, true
	case length <= math.MaxUint8:
		return encodeStrN(buf, offset, s, format.TagStr8, 1)
	case length <= math.MaxUint16:
		return encodeStrN(buf, offset, s, format.TagStr16, 2)
	default:
		return encodeStrN(buf, offset, s, format.TagStr32, 4)
	}
}

// encodeStrN writes the real payload length as the length prefix, not a
// header-width indicator, and copies exactly len(s) payload bytes — an
// earlier draft conflated the two and copied the wrong slice bounds.
func encodeStrN(buf []byte, offset int, s []byte, tag byte, hdrWidth int) (int, bool) {
	length := len(s)
	total := 1 + hdrWidth + length
	if !room(buf, offset, total) {
		return 0, false
	}
	buf[offset] = tag
	writeUint(buf[offset+1:offset+1+hdrWidth], uint64(length), hdrWidth, bigEndian)
	copy(buf[offset+1+hdrWidth:offset+total], s)
	return total, true
}

func encodeBin(buf []byte, offset int, b []byte) (int, bool) {
	length := len(b)
	switch {
	case length <= math.MaxUint8:
		return encodeBinN(buf, offset, b, format.TagBin8, 1)
	case length <= math.MaxUint16:
		return encodeBinN(buf, offset, b, format.TagBin16, 2)
	default:
		return encodeBinN(buf, offset, b, format.TagBin32, 4)
	}
}

func encodeBinN(buf []byte, offset int, b []byte, tag byte, hdrWidth int) (int, bool) {
	length := len(b)
	total := 1 + hdrWidth + length
	if !room(buf, offset, total) {
		return 0, false
	}
	buf[offset] = tag
	writeUint(buf[offset+1:offset+1+hdrWidth], uint64(length), hdrWidth, bigEndian)
	copy(buf[offset+1+hdrWidth:offset+total], b)
	return total, true
}

func encodeExt(buf []byte, offset int, extType int8, data []byte) (int, bool) {
	length := len(data)
	switch length {
	case 1, 2, 4, 8, 16:
		total := 2 + length
		if !room(buf, offset, total) {
			return 0, false
		}
		buf[offset] = fixextTag(length)
		buf[offset+1] = byte(extType)
		copy(buf[offset+2:offset+total], data)
		return total, true
	}

	switch {
	case length <= math.MaxUint8:
		return encodeExtN(buf, offset, extType, data, format.TagExt8, 1)
	case length <= math.MaxUint16:
		return encodeExtN(buf, offset, extType, data, format.TagExt16, 2)
	default:
		return encodeExtN(buf, offset, extType, data, format.TagExt32, 4)
	}
}

func fixextTag(length int) byte {
	switch length {
	case 1:
		return format.TagFixext1
	case 2:
		return format.TagFixext2
	case 4:
		return format.TagFixext4
	case 8:
		return format.TagFixext8
	default:
		return format.TagFixext16
	}
}

func encodeExtN(buf []byte, offset int, extType int8, data []byte, tag byte, hdrWidth int) (int, bool) {
	length := len(data)
	total := 1 + hdrWidth + 1 + length
	if !room(buf, offset, total) {
		return 0, false
	}
	buf[offset] = tag
	writeUint(buf[offset+1:offset+1+hdrWidth], uint64(length), hdrWidth, bigEndian)
	buf[offset+1+hdrWidth] = byte(extType)
	copy(buf[offset+1+hdrWidth+1:offset+total], data)
	return total, true
}

func encodeArray(buf []byte, offset int, e Element, engine decodeEngine) (int, bool) {
	items, count, err := arrayItems(e)
	if err != nil {
		return 0, false
	}

	hdrN, ok := encodeArrayHeader(buf, offset, count)
	if !ok {
		return 0, false
	}

	pos := offset + hdrN
	for i := 0; i < count; i++ {
		el, ferr := items(i)
		if ferr != nil {
			return 0, false
		}
		n, ok := encodeAt(buf, pos, el, engine)
		if !ok {
			return 0, false
		}
		pos += n
	}
	return pos - offset, true
}

func arrayItems(e Element) (func(int) (Element, error), int, error) {
	if e.Array != nil {
		clone := *e.Array
		clone.Reset()
		return clone.Get, clone.Len(), nil
	}
	items := e.Items
	return func(i int) (Element, error) { return items[i], nil }, len(items), nil
}

func encodeArrayHeader(buf []byte, offset, count int) (int, bool) {
	switch {
	case count <= 15:
		return put1(buf, offset, format.FixarrayMin|byte(count))
	case count <= math.MaxUint16:
		if !room(buf, offset, 3) {
			return 0, false
		}
		buf[offset] = format.TagArray16
		writeUint(buf[offset+1:offset+3], uint64(count), 2, bigEndian)
		return 3, true
	default:
		if !room(buf, offset, 5) {
			return 0, false
		}
		buf[offset] = format.TagArray32
		writeUint(buf[offset+1:offset+5], uint64(count), 4, bigEndian)
		return 5, true
	}
}

func encodeMap(buf []byte, offset int, e Element, engine decodeEngine) (int, bool) {
	pairs, count, err := mapPairs(e)
	if err != nil {
		return 0, false
	}

	hdrN, ok := encodeMapHeader(buf, offset, count)
	if !ok {
		return 0, false
	}

	pos := offset + hdrN
	for i := 0; i < count; i++ {
		p, ferr := pairs(i)
		if ferr != nil {
			return 0, false
		}
		n, ok := encodeAt(buf, pos, p.Key, engine)
		if !ok {
			return 0, false
		}
		pos += n
		n, ok = encodeAt(buf, pos, p.Value, engine)
		if !ok {
			return 0, false
		}
		pos += n
	}
	return pos - offset, true
}

func mapPairs(e Element) (func(int) (MapPair, error), int, error) {
	if e.Map != nil {
		clone := *e.Map
		clone.Reset()
		// MapView has no random-access Get; materialize the cursor walk.
		n := clone.Len()
		collected := make([]MapPair, 0, n)
		for {
			p, ok, err := clone.Next()
			if err != nil {
				return nil, 0, err
			}
			if !ok {
				break
			}
			collected = append(collected, p)
		}
		return func(i int) (MapPair, error) { return collected[i], nil }, n, nil
	}
	pairs := e.Pairs
	return func(i int) (MapPair, error) { return pairs[i], nil }, len(pairs), nil
}

// The pair-count prefix is written directly from count, the same quantity
// the decoder's MapView loops against; there is no elements/2 conversion
// here to get backwards.
func encodeMapHeader(buf []byte, offset, count int) (int, bool) {
	switch {
	case count <= 15:
		return put1(buf, offset, format.FixmapMin|byte(count))
	case count <= math.MaxUint16:
		if !room(buf, offset, 3) {
			return 0, false
		}
		buf[offset] = format.TagMap16
		writeUint(buf[offset+1:offset+3], uint64(count), 2, bigEndian)
		return 3, true
	default:
		if !room(buf, offset, 5) {
			return 0, false
		}
		buf[offset] = format.TagMap32
		writeUint(buf[offset+1:offset+5], uint64(count), 4, bigEndian)
		return 5, true
	}
}

func writeUint(p []byte, v uint64, width int, engine decodeEngine) {
	switch width {
	case 1:
		p[0] = byte(v)
	case 2:
		engine.PutUint16(p, uint16(v))
	case 4:
		engine.PutUint32(p, uint32(v))
	}
}
