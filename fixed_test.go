package pbwire

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestAppendFixed32(t *testing.T) {
	assert.Equal(t, []byte{0xD0, 0x07, 0x00, 0x00}, AppendFixed32(nil, 2000))
	assert.Equal(t, []byte{0x78, 0x56, 0x34, 0x12}, AppendFixed32(nil, 0x12345678))
	assert.Equal(t, protowire.AppendFixed32(nil, math.MaxUint32), AppendFixed32(nil, math.MaxUint32))
}

func TestAppendFixed64(t *testing.T) {
	assert.Equal(t, []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}, AppendFixed64(nil, 0x0102030405060708))
	assert.Equal(t, protowire.AppendFixed64(nil, 2000), AppendFixed64(nil, 2000))
}

func TestFixed_RoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 2000, 1 << 31, math.MaxUint32} {
		got, err := DecodeFixed32(AppendFixed32(nil, v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	for _, v := range []uint64{0, 1, 2000, 1 << 63, math.MaxUint64} {
		got, err := DecodeFixed64(AppendFixed64(nil, v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestFloat_LittleEndian(t *testing.T) {
	// 1.0f is 0x3F800000.
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3F}, AppendFloat(nil, 1))
	// 1.0 is 0x3FF0000000000000.
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}, AppendDouble(nil, 1))
	assert.Equal(t, protowire.AppendFixed64(nil, math.Float64bits(12.113133)), AppendDouble(nil, 12.113133))
}

func TestFloat_RoundTripBitExact(t *testing.T) {
	negZero := math.Copysign(0, -1)
	doubles := []float64{0, negZero, 1, -1, 1.22, 12.113133, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), math.Inf(-1)}
	for _, v := range doubles {
		got, err := DecodeDouble(AppendDouble(nil, v))
		require.NoError(t, err)
		assert.Equal(t, math.Float64bits(v), math.Float64bits(got), "double %v", v)
	}

	floats := []float32{0, float32(negZero), 1, -1, 123.45, math.MaxFloat32, math.SmallestNonzeroFloat32}
	for _, v := range floats {
		got, err := DecodeFloat(AppendFloat(nil, v))
		require.NoError(t, err)
		assert.Equal(t, math.Float32bits(v), math.Float32bits(got), "float %v", v)
	}

	nan := math.Float64frombits(0x7FF8000000000001)
	got, err := DecodeDouble(AppendDouble(nil, nan))
	require.NoError(t, err)
	assert.Equal(t, uint64(0x7FF8000000000001), math.Float64bits(got), "NaN payload survives")
}

func TestDecodeFixed_WrongLength(t *testing.T) {
	_, err := DecodeFixed32([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = DecodeFixed32([]byte{1, 2, 3, 4, 5})
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = DecodeFixed64(make([]byte, 7))
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = DecodeFloat(nil)
	assert.ErrorIs(t, err, ErrMalformedInput)
	_, err = DecodeDouble(make([]byte, 9))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "double needs 8 bytes, got 9")
}
