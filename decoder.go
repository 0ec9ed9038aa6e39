package pbwire

import "fmt"

// Decoder reads a sequence of scalar encodings from a byte slice.
//
// Like Encoder it tracks the first error: once a read fails, later reads
// return zero values and leave the offset where the failure happened.
// The slice is never modified, and byte slices returned by ReadBytes and
// ReadRaw alias it.
type Decoder struct {
	B   []byte // source slice
	N   int    // current read position
	err error
}

// NewDecoder creates a Decoder positioned at the start of p.
func NewDecoder(p []byte) *Decoder {
	return &Decoder{B: p}
}

func (d *Decoder) Err() error     { return d.err }
func (d *Decoder) Offset() int    { return d.N }
func (d *Decoder) Remaining() int { return max(len(d.B)-d.N, 0) }

// Finish returns the latched error, or ErrTrailingData if unread bytes remain.
func (d *Decoder) Finish() error {
	if d.err != nil {
		return d.err
	}
	if rest := d.Remaining(); rest > 0 {
		return fmt.Errorf("%w: %d bytes at offset %d", ErrTrailingData, rest, d.N)
	}
	return nil
}

func (d *Decoder) setError(err error) {
	if d.err == nil && err != nil {
		d.err = err
	}
}

// rest returns the unread bytes, or nil with ErrTruncatedData latched when N
// has been moved past the end of B.
func (d *Decoder) rest() []byte {
	if d.err != nil {
		return nil
	}
	if d.N < 0 || d.N > len(d.B) {
		d.setError(fmt.Errorf("%w: offset %d outside %d bytes", ErrTruncatedData, d.N, len(d.B)))
		return nil
	}
	return d.B[d.N:]
}

// next returns the following n bytes and advances past them.
func (d *Decoder) next(n int) []byte {
	rest := d.rest()
	if d.err != nil {
		return nil
	}
	if n < 0 || n > len(rest) {
		d.setError(fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrTruncatedData, n, d.N, d.Remaining()))
		return nil
	}
	p := d.B[d.N : d.N+n : d.N+n]
	d.N += n
	return p
}

// ReadVarint reads an unsigned varint.
func (d *Decoder) ReadVarint() uint64 {
	p := d.rest()
	if d.err != nil {
		return 0
	}
	v, n, err := DecodeVarint(p)
	if err != nil {
		d.setError(fmt.Errorf("%w at offset %d", err, d.N))
		return 0
	}
	d.N += n
	return v
}

func (d *Decoder) ReadBool() bool     { return d.ReadVarint() != 0 }
func (d *Decoder) ReadInt32() int32   { return int32(d.ReadVarint()) }
func (d *Decoder) ReadInt64() int64   { return int64(d.ReadVarint()) }
func (d *Decoder) ReadUint32() uint32 { return uint32(d.ReadVarint()) }
func (d *Decoder) ReadUint64() uint64 { return d.ReadVarint() }
func (d *Decoder) ReadSint32() int32  { return UnZigZag32(uint32(d.ReadVarint())) }
func (d *Decoder) ReadSint64() int64  { return UnZigZag64(d.ReadVarint()) }

// ReadFixed32 reads 4 little-endian bytes.
func (d *Decoder) ReadFixed32() uint32 {
	p := d.next(SizeFixed32)
	if p == nil {
		return 0
	}
	v, _ := DecodeFixed32(p)
	return v
}

// ReadFixed64 reads 8 little-endian bytes.
func (d *Decoder) ReadFixed64() uint64 {
	p := d.next(SizeFixed64)
	if p == nil {
		return 0
	}
	v, _ := DecodeFixed64(p)
	return v
}

// ReadSfixed32 reads a value written by Encoder.WriteSfixed32.
func (d *Decoder) ReadSfixed32() int32 { return UnZigZag32(d.ReadFixed32()) }

// ReadSfixed64 reads a value written by Encoder.WriteSfixed64.
func (d *Decoder) ReadSfixed64() int64 { return UnZigZag64(d.ReadFixed64()) }

func (d *Decoder) ReadFloat() float32 {
	p := d.next(SizeFixed32)
	if p == nil {
		return 0
	}
	v, _ := DecodeFloat(p)
	return v
}

func (d *Decoder) ReadDouble() float64 {
	p := d.next(SizeFixed64)
	if p == nil {
		return 0
	}
	v, _ := DecodeDouble(p)
	return v
}

// ReadBytes reads a length-delimited value.
func (d *Decoder) ReadBytes() []byte {
	rest := d.rest()
	if d.err != nil {
		return nil
	}
	p, n, err := ConsumeBytes(rest)
	if err != nil {
		d.setError(fmt.Errorf("%w at offset %d", err, d.N))
		return nil
	}
	d.N += n
	return p
}

// ReadRaw reads exactly n bytes with no length prefix.
func (d *Decoder) ReadRaw(n int) []byte { return d.next(n) }
