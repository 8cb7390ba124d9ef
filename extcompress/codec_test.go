package extcompress

import (
	"testing"

	"github.com/lmpynix/minimp/format"
	"github.com/stretchr/testify/require"
)

func TestNoOpRoundTrip(t *testing.T) {
	data := []byte("hello world")
	c := NewNoOpCompressor()
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestS2RoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly: the quick brown fox jumps over the lazy dog")
	c := NewS2Compressor()
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestLZ4RoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly: the quick brown fox jumps over the lazy dog")
	c := NewLZ4Compressor()
	compressed, err := c.Compress(data)
	require.NoError(t, err)
	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestLZ4DecompressSizedMatchesGuessedGrowth(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly: the quick brown fox jumps over the lazy dog")
	c := NewLZ4Compressor()
	compressed, err := c.Compress(data)
	require.NoError(t, err)

	sized, err := c.DecompressSized(compressed, len(data))
	require.NoError(t, err)
	require.Equal(t, data, sized)

	guessed, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, guessed)
}

func TestZstdRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly: the quick brown fox jumps over the lazy dog")
	c := NewZstdCompressor()
	compressed, err := c.Compress(data)
	require.NoError(t, err)

	out, err := c.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, data, out)

	sized, err := c.DecompressSized(compressed, len(data))
	require.NoError(t, err)
	require.Equal(t, data, sized)
}

func TestS2DecompressSized(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly: the quick brown fox jumps over the lazy dog")
	c := NewS2Compressor()
	compressed, err := c.Compress(data)
	require.NoError(t, err)

	out, err := c.DecompressSized(compressed, len(data))
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestWrapUnwrapRoundTrip(t *testing.T) {
	data := []byte("payload to wrap")
	for _, ct := range []format.CompressionType{format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		wrapped, err := Wrap(ct, data)
		require.NoError(t, err)
		require.Equal(t, byte(ct), wrapped[0])

		out, err := Unwrap(wrapped)
		require.NoError(t, err)
		require.Equal(t, data, out)
	}
}

func TestWrapUnwrapEmptyPayload(t *testing.T) {
	wrapped, err := Wrap(format.CompressionS2, nil)
	require.NoError(t, err)

	out, err := Unwrap(wrapped)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestUnwrapMalformedLengthPrefix(t *testing.T) {
	_, err := Unwrap([]byte{byte(format.CompressionNone)})
	require.Error(t, err)
}

func TestUnwrapEmptyInput(t *testing.T) {
	_, err := Unwrap(nil)
	require.Error(t, err)
}

func TestCreateCodecUnknown(t *testing.T) {
	_, err := CreateCodec(format.CompressionType(99))
	require.Error(t, err)
}
