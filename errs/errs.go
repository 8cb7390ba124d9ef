// Package errs collects the sentinel errors returned by the packages layered
// above the core codec.
//
// value.DecodeAt returns a genuine error (ErrBufferTooShort, ErrUnknownTag,
// ErrInvalidUTF8, ...) since a decode failure always has a specific, useful
// cause to report. value.EncodeAt is the one that reports failure as a
// distinguished boolean instead: encoding only fails one way (the
// destination buffer is too small), so there's nothing a sentinel error
// would add there. Sentinels here otherwise cover the auxiliary packages
// (sizing, digest, extcompress, cmd/mpx) that do real I/O and configuration
// validation and so have genuine errors worth distinguishing.
package errs

import "errors"

var (
	// ErrBufferTooShort is returned when a byte slice is shorter than a
	// declared payload requires.
	ErrBufferTooShort = errors.New("minimp: buffer too short")

	// ErrUnknownTag is returned when a tag byte does not match any known
	// MessagePack variant.
	ErrUnknownTag = errors.New("minimp: unknown tag byte")

	// ErrInvalidUTF8 is returned when a Str payload is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("minimp: invalid UTF-8 in str payload")

	// ErrIndexOutOfRange is returned by random-access array/map operations.
	ErrIndexOutOfRange = errors.New("minimp: index out of range")

	// ErrUnsupportedCompression is returned by extcompress for an unknown
	// format.CompressionType.
	ErrUnsupportedCompression = errors.New("minimp: unsupported compression type")

	// ErrNoSamples is returned by sizing.Analyze when given no samples.
	ErrNoSamples = errors.New("minimp: no samples provided")

	// ErrEncodeFailed is returned by the CLI when
	// value.EncodeAt reports a capacity failure.
	ErrEncodeFailed = errors.New("minimp: encode failed, buffer too small")
)
