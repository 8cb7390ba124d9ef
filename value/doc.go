// Package value implements the MessagePack value model together with the
// decoder and encoder that produce and consume it.
//
// # Overview
//
// An Element is a tagged union mirroring the MessagePack type system: Nil,
// Bool, Int, UInt, Float, Double, Str, Bin, Ext, Array, and Map. DecodeAt
// reads one Element (and, for Array/Map, a lazy view over its children)
// starting at a byte offset in a caller-owned buffer; EncodeAt writes one
// Element into a caller-owned buffer using the most compact valid wire
// representation.
//
// # Borrowing
//
// A decoded Element never copies payload bytes: Str, Bin, and Ext hold
// sub-slices of the buffer passed to DecodeAt, and Array/Map hold a view over
// the same buffer. None of these is valid once the underlying buffer is
// reused or goes out of scope — this package has no way to enforce that
// statically, so callers must not retain a decoded Element past the lifetime
// of its source buffer.
//
// # Allocation
//
// Decoding never copies payload bytes. DecodeAt and EncodeAt do allocate on
// the heap: each call allocates its option configuration, decoding an Array
// or Map allocates the *ArrayView/*MapView stored in the Element, and
// re-encoding a decoded Array or Map allocates the closures (and, for a Map,
// the pair slice) used to walk it. Array/Map construction for encoding takes
// an ordinary []Element/[]MapPair slice the caller builds however they like.
package value
