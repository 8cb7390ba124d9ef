package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayViewResetReplaysFromStart(t *testing.T) {
	buf := []byte{0x92, 0x01, 0x02}
	el, _, err := DecodeAt(buf, 0)
	require.NoError(t, err)

	first, ok, err := el.Array.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1), first.Int)

	el.Array.Reset()
	again, ok, err := el.Array.Next()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int64(1), again.Int)
}

func TestArrayViewNextExhausts(t *testing.T) {
	buf := []byte{0x91, 0x2a}
	el, _, err := DecodeAt(buf, 0)
	require.NoError(t, err)

	_, ok, err := el.Array.Next()
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = el.Array.Next()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestArrayViewGetOutOfRange(t *testing.T) {
	buf := []byte{0x91, 0x2a}
	el, _, err := DecodeAt(buf, 0)
	require.NoError(t, err)

	_, err = el.Array.Get(5)
	require.Error(t, err)
}

func TestMapViewIteratesAllPairs(t *testing.T) {
	buf := []byte{0x83, 0x01, 0x0a, 0x02, 0x0b, 0x03, 0x0c}
	el, n, err := DecodeAt(buf, 0)
	require.NoError(t, err)
	require.Equal(t, len(buf), n)

	var keys []int64
	for {
		p, ok, err := el.Map.Next()
		require.NoError(t, err)
		if !ok {
			break
		}
		keys = append(keys, p.Key.Int)
	}
	require.Equal(t, []int64{1, 2, 3}, keys)
}

func TestArrayElementByteSizeMatchesEncodedLength(t *testing.T) {
	el := ArrayElem([]Element{IntElem(1000), StrElem([]byte("hello"))})
	buf := make([]byte, el.ByteSize())
	n, ok := EncodeAt(buf, 0, el)
	require.True(t, ok)
	require.Equal(t, len(buf), n)
}
