package pbwire

import "fmt"

// AppendBytes appends p to b as a length-delimited value: the varint byte
// count followed by the bytes themselves.
func AppendBytes(b []byte, p []byte) []byte {
	b = AppendVarint(b, uint64(len(p)))
	return append(b, p...)
}

// SizeBytes returns the encoded size of p as a length-delimited value.
func SizeBytes(p []byte) int {
	return SizeVarint(uint64(len(p))) + len(p)
}

// ConsumeBytes decodes the length-delimited value at the start of p. It
// returns the payload, aliasing p, and the total number of bytes consumed.
func ConsumeBytes(p []byte) ([]byte, int, error) {
	size, n, err := DecodeVarint(p)
	if err != nil {
		return nil, 0, err
	}
	if size > uint64(len(p)-n) {
		return nil, 0, fmt.Errorf("%w: length prefix %d exceeds %d remaining bytes", ErrTruncatedData, size, len(p)-n)
	}
	end := n + int(size)
	return p[n:end:end], end, nil
}
