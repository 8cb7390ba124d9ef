// Package minimp is a thin top-level convenience wrapper around the value
// package's codec entry points. The module's other packages (format for the
// wire vocabulary, extcompress for Ext-payload compression, digest for
// content hashing, and sizing for buffer capacity estimation) are not
// wrapped here and are imported directly.
//
// Most programs only need value.DecodeAt/value.EncodeAt directly; this
// package exists for callers who want the common path under one import.
package minimp

import "github.com/lmpynix/minimp/value"

// Element is value.Element.
type Element = value.Element

// DecodeAt reads one Element starting at offset in buf. See value.DecodeAt.
func DecodeAt(buf []byte, offset int, opts ...value.DecodeOption) (Element, int, error) {
	return value.DecodeAt(buf, offset, opts...)
}

// EncodeAt writes e into buf starting at offset. See value.EncodeAt.
func EncodeAt(buf []byte, offset int, e Element, opts ...value.EncodeOption) (int, bool) {
	return value.EncodeAt(buf, offset, e, opts...)
}

// Encode allocates a buffer exactly sized for e and encodes into it.
func Encode(e Element, opts ...value.EncodeOption) []byte {
	buf := make([]byte, e.ByteSize())
	n, ok := value.EncodeAt(buf, 0, e, opts...)
	if !ok {
		return nil
	}
	return buf[:n]
}

// Decode decodes a single Element from the start of buf.
func Decode(buf []byte, opts ...value.DecodeOption) (Element, int, error) {
	return value.DecodeAt(buf, 0, opts...)
}
