package pbwire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestZigZag32(t *testing.T) {
	tests := []struct {
		in   int32
		want uint32
	}{
		{0, 0},
		{-1, 1},
		{1, 2},
		{-2, 3},
		{2, 4},
		{math.MaxInt32, math.MaxUint32 - 1},
		{math.MinInt32, math.MaxUint32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ZigZag32(tt.in), "ZigZag32(%d)", tt.in)
		assert.Equal(t, tt.in, UnZigZag32(tt.want), "UnZigZag32(%d)", tt.want)
	}
}

func TestZigZag64(t *testing.T) {
	samples := []int64{0, -1, 1, -2, 2, 63, -64, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64}
	for _, v := range samples {
		assert.Equal(t, protowire.EncodeZigZag(v), ZigZag64(v), "ZigZag64(%d)", v)
		assert.Equal(t, v, UnZigZag64(ZigZag64(v)))
	}
	assert.Equal(t, uint64(math.MaxUint64), ZigZag64(math.MinInt64))
}

func TestZigZag32_Bijection(t *testing.T) {
	// Walk the int32 space with a stride that still hits both ends.
	for v := int64(math.MinInt32); v <= math.MaxInt32; v += 65521 {
		assert.Equal(t, int32(v), UnZigZag32(ZigZag32(int32(v))))
	}
	assert.Equal(t, int32(math.MaxInt32), UnZigZag32(ZigZag32(math.MaxInt32)))
}
