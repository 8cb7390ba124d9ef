package value

import (
	"github.com/lmpynix/minimp/format"
	"github.com/lmpynix/minimp/width"
)

// Kind re-exports format.Kind so callers of this package don't need a
// separate import for the tagged-union discriminant.
type Kind = format.Kind

const (
	KindNil    = format.KindNil
	KindBool   = format.KindBool
	KindInt    = format.KindInt
	KindUInt   = format.KindUInt
	KindFloat  = format.KindFloat
	KindDouble = format.KindDouble
	KindStr    = format.KindStr
	KindBin    = format.KindBin
	KindExt    = format.KindExt
	KindArray  = format.KindArray
	KindMap    = format.KindMap
)

// Element is a single decoded or to-be-encoded MessagePack value.
//
// A decoded Element has exactly the fields for its Kind populated; the rest
// are zero. Int/UInt preserve the *original* on-wire width (IntWidth/UIntWidth
// in {0,1,2,4,8}, 0 meaning a fixint form) so that ByteSize is a total
// function of the bytes the value was decoded from, even when the value
// would fit a narrower tag on re-encode.
//
// Array and Map have two mutually exclusive representations. A decoded
// Element populates Array/Map with a lazy view over the source buffer, and
// leaves Items/Pairs nil. An Element built by hand for EncodeAt populates
// Items/Pairs with the child elements and leaves Array/Map nil. EncodeAt and
// ByteSize both check Array/Map first, falling back to Items/Pairs.
type Element struct {
	Kind Kind

	Bool bool

	Int      int64
	IntWidth int // 0, 1, 2, 4, or 8; 0 denotes a fixint

	UInt      uint64
	UIntWidth int // 1, 2, 4, or 8 when decoded; 0 on a hand-built element

	Float32 float32
	Float64 float64

	// Str and Bin borrow directly from the buffer DecodeAt was called with.
	Str        []byte
	StrHdrWidth int // 0, 1, 2, or 4

	Bin        []byte
	BinHdrWidth int // 1, 2, or 4 when decoded (there is no fixbin); 0 on a hand-built element

	ExtType    int8
	ExtData    []byte
	ExtHdrWidth int // 0, 1, 2, or 4

	Array *ArrayView
	Map   *MapView

	Items []Element
	Pairs []MapPair
}

// MapPair is one key/value pair of a Map element.
type MapPair struct {
	Key   Element
	Value Element
}

// Nil returns the Nil element.
func Nil() Element { return Element{Kind: KindNil} }

// BoolElem returns a Bool element.
func BoolElem(b bool) Element { return Element{Kind: KindBool, Bool: b} }

// IntElem returns an Int element. EncodeAt picks the narrowest valid
// representation for i regardless of IntWidth; IntWidth here is advisory and
// overwritten by DecodeAt on the way back in.
func IntElem(i int64) Element { return Element{Kind: KindInt, Int: i} }

// UIntElem returns a UInt element. Note the canonicalization rule from the
// encoder: nonnegative values passed as UInt always encode as uintN, never as
// a positive fixint. Use IntElem for the most compact nonnegative encoding.
func UIntElem(u uint64) Element { return Element{Kind: KindUInt, UInt: u} }

// FloatElem returns a 32-bit Float element.
func FloatElem(f float32) Element { return Element{Kind: KindFloat, Float32: f} }

// DoubleElem returns a 64-bit Double element.
func DoubleElem(f float64) Element { return Element{Kind: KindDouble, Float64: f} }

// StrElem returns a Str element wrapping s. s is borrowed, not copied.
func StrElem(s []byte) Element { return Element{Kind: KindStr, Str: s} }

// BinElem returns a Bin element wrapping b. b is borrowed, not copied.
func BinElem(b []byte) Element { return Element{Kind: KindBin, Bin: b} }

// ExtElem returns an Ext element with the given application type tag and
// payload. data is borrowed, not copied.
func ExtElem(extType int8, data []byte) Element {
	return Element{Kind: KindExt, ExtType: extType, ExtData: data}
}

// ArrayElem returns an Array element to be encoded from items.
func ArrayElem(items []Element) Element {
	return Element{Kind: KindArray, Items: items}
}

// MapElem returns a Map element to be encoded from pairs.
func MapElem(pairs []MapPair) Element {
	return Element{Kind: KindMap, Pairs: pairs}
}

// ByteSize returns the exact number of bytes e occupies (or would occupy) on
// the wire.
//
// For a decoded Array/Map, this clones and resets the underlying view and
// iterates every element to sum their sizes — an O(n) operation, same as
// byte_size in the distilled spec. For a hand-built Array/Map (Items/Pairs),
// it recurses into each child's own ByteSize.
func (e Element) ByteSize() int {
	switch e.Kind {
	case KindNil, KindBool:
		return 1
	case KindInt:
		if e.IntWidth == 0 {
			return intWireSize(e.Int)
		}
		return 1 + e.IntWidth
	case KindUInt:
		if e.UIntWidth == 0 {
			return uintWireSize(e.UInt)
		}
		return 1 + e.UIntWidth
	case KindFloat:
		return 5
	case KindDouble:
		return 9
	case KindStr:
		if e.StrHdrWidth == 0 && len(e.Str) > 31 {
			return 1 + width.MinSizeUnsigned(uint64(len(e.Str))) + len(e.Str)
		}
		return 1 + e.StrHdrWidth + len(e.Str)
	case KindBin:
		if e.BinHdrWidth == 0 {
			return 1 + width.MinSizeUnsigned(uint64(len(e.Bin))) + len(e.Bin)
		}
		return 1 + e.BinHdrWidth + len(e.Bin)
	case KindExt:
		if e.ExtHdrWidth == 0 {
			switch len(e.ExtData) {
			case 1, 2, 4, 8, 16:
			default:
				return 2 + width.MinSizeUnsigned(uint64(len(e.ExtData))) + len(e.ExtData)
			}
		}
		return 2 + e.ExtHdrWidth + len(e.ExtData)
	case KindArray:
		if e.Array != nil {
			return 1 + e.Array.HeaderWidth() + e.Array.byteSize()
		}
		total := 1 + headerWidthForCount(len(e.Items))
		for _, it := range e.Items {
			total += it.ByteSize()
		}
		return total
	case KindMap:
		if e.Map != nil {
			return 1 + e.Map.HeaderWidth() + e.Map.byteSize()
		}
		total := 1 + headerWidthForCount(len(e.Pairs))
		for _, p := range e.Pairs {
			total += p.Key.ByteSize() + p.Value.ByteSize()
		}
		return total
	default:
		return 0
	}
}

// headerWidthForCount returns the length-prefix width (0, 2, or 4) an
// array/map header needs for n elements/pairs.
func headerWidthForCount(n int) int {
	switch {
	case n <= 15:
		return 0
	case n <= 65535:
		return 2
	default:
		return 4
	}
}
