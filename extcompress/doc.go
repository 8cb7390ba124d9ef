// Package extcompress wraps general-purpose compression algorithms around
// Ext payloads.
//
// MessagePack's Ext type carries an application-defined type tag plus an
// opaque byte payload; this package supplies that opacity. An encoder that
// wants to shrink a large Str/Bin/Ext payload before handing it to
// value.EncodeAt compresses it first with Wrap, storing the chosen
// algorithm alongside the compressed bytes so Unwrap can reverse it without
// out-of-band configuration.
//
// # Supported algorithms
//
//   - None:  no compression, data passed through unchanged
//   - Zstd:  best compression ratio, moderate speed
//   - S2:    balanced speed and ratio (Snappy-compatible)
//   - LZ4:   fastest decompression
//
// # Wire format
//
// Wrap prefixes the compressed payload with a single format.CompressionType
// byte and a uvarint-encoded original length so Unwrap is self-describing
// and never has to guess a destination buffer size:
//
//	[1 byte: format.CompressionType][uvarint: original length][compressed bytes...]
//
// A codec that can use that length to allocate its output buffer exactly
// once implements SizedDecompressor; Unwrap prefers it over the plain
// Decompress path. LZ4's raw block format is the main beneficiary: without
// the recorded length, decompressing it requires guessing a buffer size and
// growing it on failure.
package extcompress
