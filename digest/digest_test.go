package digest

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum64Deterministic(t *testing.T) {
	data := []byte("hello digest")
	require.Equal(t, Sum64(data), Sum64(data))
}

func TestSum64StringMatchesSum64(t *testing.T) {
	s := "hello digest"
	require.Equal(t, Sum64String(s), Sum64([]byte(s)))
}

func TestCacheMemoizes(t *testing.T) {
	data := []byte("cached payload")
	c := NewCache(data)
	first := c.Sum()
	second := c.Sum()
	require.Equal(t, first, second)
	require.Equal(t, Sum64(data), first)
}

func TestSum64DiffersForDifferentData(t *testing.T) {
	require.NotEqual(t, Sum64([]byte("a")), Sum64([]byte("b")))
}

func TestDecodeCacheHitsOnSecondCall(t *testing.T) {
	buf := []byte{0x2a} // fixint 42
	c := NewDecodeCache()

	el, n, err := c.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, int64(42), el.Int)
	require.Equal(t, 1, c.Len())

	el2, n2, err := c.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, el, el2)
	require.Equal(t, n, n2)
	require.Equal(t, 1, c.Len())
}

func TestDecodeCacheDistinctBuffers(t *testing.T) {
	c := NewDecodeCache()
	_, _, err := c.Decode([]byte{0x01})
	require.NoError(t, err)
	_, _, err = c.Decode([]byte{0x02})
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
}

func TestDecodeCacheEvict(t *testing.T) {
	buf := []byte{0x05}
	c := NewDecodeCache()
	_, _, err := c.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	c.Evict(buf)
	require.Equal(t, 0, c.Len())
}

func TestDecodeCachePropagatesDecodeError(t *testing.T) {
	c := NewDecodeCache()
	_, _, err := c.Decode(nil)
	require.Error(t, err)
	require.Equal(t, 0, c.Len())
}
