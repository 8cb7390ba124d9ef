package minimp

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/lmpynix/minimp/value"
)

func TestEncodeDecode(t *testing.T) {
	el := value.ArrayElem([]value.Element{
		value.IntElem(42),
		value.StrElem([]byte("hello")),
		value.BoolElem(true),
	})

	buf := Encode(el)
	require.NotNil(t, buf)

	got, n, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)
	require.Equal(t, value.KindArray, got.Kind)
	require.Equal(t, 3, got.Array.Len())
}

func TestEncodeAtFailsOnOverflow(t *testing.T) {
	// Encode with a deliberately undersized destination via EncodeAt directly.
	buf := make([]byte, 0)
	n, ok := EncodeAt(buf, 0, value.IntElem(1000))
	require.False(t, ok)
	require.Equal(t, 0, n)
}
