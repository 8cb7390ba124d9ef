// Package endian provides byte order utilities for binary encoding and decoding.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a unified EndianEngine interface.
// This enables cleaner API design and improved performance for binary data operations.
//
// # Basic Usage
//
// MessagePack mandates big-endian on the wire, so GetBigEndianEngine is the default
// used throughout this module:
//
//	import "github.com/lmpynix/minimp/endian"
//
//	engine := endian.GetBigEndianEngine()
//
// The decoder and encoder also accept a single "host-endian" escape hatch for paired
// peers on the same architecture (non-standard, opt-in): EngineForFlag(true) resolves
// to the host's native byte order instead.
//
// # Performance
//
// Using EndianEngine (which includes AppendByteOrder) provides approximately 30%
// better performance for appending operations compared to ByteOrder alone:
//
//	// Using EndianEngine (recommended)
//	buf = engine.AppendUint64(buf, value)  // ~30% faster
//
//	// Using ByteOrder only
//	tmp := make([]byte, 8)
//	engine.PutUint64(tmp, value)
//	buf = append(buf, tmp...)  // Slower, extra allocation
//
// # Thread Safety
//
// All functions and methods in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// hostEngine is resolved once at package init from binary.NativeEndian, the
// standard library's own byte-order-of-this-machine value. Earlier revisions
// of this package reimplemented that detection with an unsafe.Pointer probe
// over a sentinel uint16; binary.NativeEndian does the identical job without
// reaching for unsafe, so there's no reason to keep a private copy of it.
var hostEngine = resolveHostEngine()

func resolveHostEngine() EndianEngine {
	if binary.NativeEndian.String() == binary.BigEndian.String() {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the running host is little-endian.
func IsNativeLittleEndian() bool {
	return hostEngine == EndianEngine(binary.LittleEndian)
}

// IsNativeBigEndian reports whether the running host is big-endian.
func IsNativeBigEndian() bool {
	return hostEngine == EndianEngine(binary.BigEndian)
}

// CompareNativeEndian reports whether engine matches the host's native byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == hostEngine
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// HostEngine returns the engine matching the host's native byte order.
func HostEngine() EndianEngine {
	return hostEngine
}

// EngineForFlag resolves the module's single boolean configuration knob to an
// engine. hostEndian=false (the default, standard-conformant choice) yields
// big-endian, the byte order MessagePack mandates on the wire. hostEndian=true
// is the non-standard "local-endian fields" interoperability escape hatch for
// paired peers that are known to share the same architecture.
func EngineForFlag(hostEndian bool) EndianEngine {
	if hostEndian {
		return HostEngine()
	}

	return GetBigEndianEngine()
}
