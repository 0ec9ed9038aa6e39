package pbwire

import "golang.org/x/exp/constraints"

const (
	// MaxVarintLen32 is the longest varint encoding of a 32-bit value.
	MaxVarintLen32 = 5
	// MaxVarintLen64 is the longest varint encoding of a 64-bit value:
	// ceil(64/7) groups of 7 bits.
	MaxVarintLen64 = 10
)

// AppendVarint appends the varint encoding of v to b and returns the
// extended slice. Groups of 7 bits are emitted least significant first, with
// the continuation bit 0x80 set on every byte but the last.
//
// Negative int32 and int64 values reach this function as their 64-bit
// two's-complement pattern and therefore always take 10 bytes.
func AppendVarint(b []byte, v uint64) []byte {
	for v > 0x7F {
		b = append(b, byte(v&0x7F)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// SizeVarint returns the number of bytes AppendVarint would emit for v.
func SizeVarint[T constraints.Unsigned](v T) int {
	n := 1
	for x := uint64(v); x > 0x7F; x >>= 7 {
		n++
	}
	return n
}

// DecodeVarint decodes the varint at the start of p, returning the value and
// the number of bytes consumed.
//
// It fails with ErrTruncatedData if p ends while the continuation bit is
// still set, and with ErrVarintOverflow if the encoding runs past
// MaxVarintLen64 bytes or its 10th byte holds more than the single bit left
// in a uint64.
func DecodeVarint(p []byte) (uint64, int, error) {
	var v uint64
	for i := 0; i < MaxVarintLen64; i++ {
		if i >= len(p) {
			return 0, 0, ErrTruncatedData
		}
		c := p[i]
		if i == MaxVarintLen64-1 && c > 1 {
			return 0, 0, ErrVarintOverflow
		}
		v |= uint64(c&0x7F) << (7 * i)
		if c < 0x80 {
			return v, i + 1, nil
		}
	}
	return 0, 0, ErrVarintOverflow
}
