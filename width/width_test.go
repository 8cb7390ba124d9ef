package width

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinSizeSigned(t *testing.T) {
	cases := []struct {
		name string
		in   int64
		want int
	}{
		{"zero", 0, 1},
		{"max int8", math.MaxInt8, 1},
		{"min int8", math.MinInt8, 1},
		{"just above int8", math.MaxInt8 + 1, 2},
		{"just below int8", math.MinInt8 - 1, 2},
		{"max int16", math.MaxInt16, 2},
		{"min int16", math.MinInt16, 2},
		{"just above int16", math.MaxInt16 + 1, 4},
		{"just below int16", math.MinInt16 - 1, 4},
		{"max int32", math.MaxInt32, 4},
		{"min int32", math.MinInt32, 4},
		{"just above int32", math.MaxInt32 + 1, 8},
		{"just below int32", math.MinInt32 - 1, 8},
		{"max int64", math.MaxInt64, 8},
		{"min int64", math.MinInt64, 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, MinSizeSigned(tc.in))
		})
	}
}

func TestMinSizeUnsigned(t *testing.T) {
	cases := []struct {
		name string
		in   uint64
		want int
	}{
		{"zero", 0, 1},
		{"max uint8", math.MaxUint8, 1},
		{"just above uint8", math.MaxUint8 + 1, 2},
		{"max uint16", math.MaxUint16, 2},
		{"just above uint16", math.MaxUint16 + 1, 4},
		{"max uint32", math.MaxUint32, 4},
		{"just above uint32", math.MaxUint32 + 1, 8},
		{"max uint64", math.MaxUint64, 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, MinSizeUnsigned(tc.in))
		})
	}
}
