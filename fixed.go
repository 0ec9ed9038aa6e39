package pbwire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Order is the byte order of every fixed-width value on the wire.
var Order = binary.LittleEndian

const (
	// SizeFixed32 is the encoded size of fixed32, sfixed32 and float values.
	SizeFixed32 = 4
	// SizeFixed64 is the encoded size of fixed64, sfixed64 and double values.
	SizeFixed64 = 8
)

// AppendFixed32 appends the 4 little-endian bytes of v to b.
func AppendFixed32(b []byte, v uint32) []byte { return Order.AppendUint32(b, v) }

// AppendFixed64 appends the 8 little-endian bytes of v to b.
func AppendFixed64(b []byte, v uint64) []byte { return Order.AppendUint64(b, v) }

// AppendFloat appends the IEEE-754 bit pattern of v to b in little-endian
// order, independent of the host's byte order.
func AppendFloat(b []byte, v float32) []byte { return AppendFixed32(b, math.Float32bits(v)) }

// AppendDouble appends the IEEE-754 bit pattern of v to b in little-endian
// order, independent of the host's byte order.
func AppendDouble(b []byte, v float64) []byte { return AppendFixed64(b, math.Float64bits(v)) }

// DecodeFixed32 reconstructs a little-endian 32-bit value. p must be exactly
// SizeFixed32 bytes long.
func DecodeFixed32(p []byte) (uint32, error) {
	if len(p) != SizeFixed32 {
		return 0, fmt.Errorf("%w: fixed32 needs %d bytes, got %d", ErrMalformedInput, SizeFixed32, len(p))
	}
	return Order.Uint32(p), nil
}

// DecodeFixed64 reconstructs a little-endian 64-bit value. p must be exactly
// SizeFixed64 bytes long.
func DecodeFixed64(p []byte) (uint64, error) {
	if len(p) != SizeFixed64 {
		return 0, fmt.Errorf("%w: fixed64 needs %d bytes, got %d", ErrMalformedInput, SizeFixed64, len(p))
	}
	return Order.Uint64(p), nil
}

// DecodeFloat reinterprets exactly 4 little-endian bytes as a float32.
// The conversion is bit-exact, so negative zero and NaN payloads survive.
func DecodeFloat(p []byte) (float32, error) {
	if len(p) != SizeFixed32 {
		return 0, fmt.Errorf("%w: float needs %d bytes, got %d", ErrMalformedInput, SizeFixed32, len(p))
	}
	return math.Float32frombits(Order.Uint32(p)), nil
}

// DecodeDouble reinterprets exactly 8 little-endian bytes as a float64.
func DecodeDouble(p []byte) (float64, error) {
	if len(p) != SizeFixed64 {
		return 0, fmt.Errorf("%w: double needs %d bytes, got %d", ErrMalformedInput, SizeFixed64, len(p))
	}
	return math.Float64frombits(Order.Uint64(p)), nil
}
