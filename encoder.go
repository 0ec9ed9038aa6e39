package pbwire

import (
	"io"

	"golang.org/x/exp/constraints"
)

// Encoder appends protobuf scalar encodings to a Buffer.
//
// Integer writes are checked by the Encoder's Validator before any byte is
// emitted. The first error is latched: the failing write leaves the buffer
// untouched and every later write becomes a no-op, so a chain of writes
// needs a single Err check at the end.
//
// An Encoder is meant to build one message on one goroutine.
type Encoder struct {
	buf       *Buffer
	validator Validator
	err       error // first error encountered. Subsequent writes become no-ops.
	pooled    bool  // created by encoderPool; only these are accepted back
}

var _ io.WriterTo = (*Encoder)(nil)

// NewEncoder returns an Encoder writing to buf and validating integers with
// v. A nil buf gets a fresh Buffer; a nil v falls back to DefaultPolicy.
func NewEncoder(buf *Buffer, v Validator) *Encoder {
	if buf == nil {
		buf = &Buffer{}
	}
	if v == nil {
		v = DefaultPolicy
	}
	return &Encoder{buf: buf, validator: v}
}

func (e *Encoder) Buffer() *Buffer { return e.buf }
func (e *Encoder) Bytes() []byte   { return e.buf.Bytes() }
func (e *Encoder) Len() int        { return e.buf.Len() }
func (e *Encoder) Err() error      { return e.err }

// Equal reports whether the encoded bytes are exactly other.
func (e *Encoder) Equal(other []byte) bool { return e.buf.Equal(other) }

// Result returns the encoded bytes and the latched error, if any.
func (e *Encoder) Result() ([]byte, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.buf.Bytes(), nil
}

// Reset clears both the buffer and the latched error.
func (e *Encoder) Reset() {
	e.buf.Reset()
	e.err = nil
}

// WriteTo implements io.WriterTo. It refuses to write a message whose
// encoding failed part way.
func (e *Encoder) WriteTo(w io.Writer) (int64, error) {
	if e.err != nil {
		return 0, e.err
	}
	return e.buf.WriteTo(w)
}

// setError records the first non-nil error.
func (e *Encoder) setError(err error) {
	if e.err == nil && err != nil {
		e.err = err
	}
}

// check runs the validator and latches its error. It reports whether the
// write may proceed.
func (e *Encoder) check(kind Kind, v Number) bool {
	if e.err != nil {
		return false
	}
	e.setError(e.validator.Validate(kind, v))
	return e.err == nil
}

func (e *Encoder) varint(v uint64)  { e.buf.B = AppendVarint(e.buf.B, v) }
func (e *Encoder) fixed32(v uint32) { e.buf.B = AppendFixed32(e.buf.B, v) }
func (e *Encoder) fixed64(v uint64) { e.buf.B = AppendFixed64(e.buf.B, v) }

// --- Varint family ---

// WriteBool writes a single varint byte, 0x01 for true and 0x00 for false.
func (e *Encoder) WriteBool(v bool) *Encoder {
	if e.err != nil {
		return e
	}
	if v {
		e.buf.B = append(e.buf.B, 1)
	} else {
		e.buf.B = append(e.buf.B, 0)
	}
	return e
}

// WriteVarint writes v as a varint without any range check.
func (e *Encoder) WriteVarint(v uint64) *Encoder {
	if e.err != nil {
		return e
	}
	e.varint(v)
	return e
}

// WriteInt32 writes an int32 varint. Negative values take 10 bytes.
func (e *Encoder) WriteInt32(v int64) *Encoder {
	if e.check(KindInt32, Int(v)) {
		e.varint(uint64(v))
	}
	return e
}

// WriteInt64 writes an int64 varint. Negative values take 10 bytes.
func (e *Encoder) WriteInt64(v int64) *Encoder {
	if e.check(KindInt64, Int(v)) {
		e.varint(uint64(v))
	}
	return e
}

// WriteUint32 writes a uint32 varint. v is taken as int64 so that negative
// and oversized inputs reach the validator intact.
func (e *Encoder) WriteUint32(v int64) *Encoder {
	if e.check(KindUint32, Int(v)) {
		e.varint(uint64(v))
	}
	return e
}

// WriteUint64 writes a uint64 varint.
func (e *Encoder) WriteUint64(v uint64) *Encoder {
	if e.check(KindUint64, Uint(v)) {
		e.varint(v)
	}
	return e
}

// WriteSint32 writes a zigzag-encoded sint32 varint.
func (e *Encoder) WriteSint32(v int64) *Encoder {
	if e.check(KindInt32, Int(v)) {
		e.varint(uint64(ZigZag32(int32(v))))
	}
	return e
}

// WriteSint64 writes a zigzag-encoded sint64 varint.
func (e *Encoder) WriteSint64(v int64) *Encoder {
	if e.check(KindInt64, Int(v)) {
		e.varint(ZigZag64(v))
	}
	return e
}

// WriteInteger validates v against kind and writes it as a varint. It serves
// callers holding integers of arbitrary Go type, e.g. a negative int64 bound
// for a uint64 field, which the typed methods cannot express.
func WriteInteger[T constraints.Integer](e *Encoder, kind Kind, v T) *Encoder {
	return e.WriteNumber(kind, NumberOf(v))
}

// WriteNumber validates n against kind and writes its two's-complement
// pattern as a varint.
func (e *Encoder) WriteNumber(kind Kind, n Number) *Encoder {
	if e.check(kind, n) {
		e.varint(n.Bits())
	}
	return e
}

// --- Fixed-width family ---

// WriteFixed32 writes 4 little-endian bytes. Any value in the uint32 range
// is accepted.
func (e *Encoder) WriteFixed32(v int64) *Encoder {
	if e.check(KindUint32, Int(v)) {
		e.fixed32(uint32(v))
	}
	return e
}

// WriteFixed64 writes 8 little-endian bytes.
func (e *Encoder) WriteFixed64(v uint64) *Encoder {
	if e.check(KindUint64, Uint(v)) {
		e.fixed64(v)
	}
	return e
}

// WriteSfixed32 zigzag-encodes v and writes the result as 4 little-endian
// bytes.
func (e *Encoder) WriteSfixed32(v int64) *Encoder {
	if e.check(KindInt32, Int(v)) {
		e.fixed32(ZigZag32(int32(v)))
	}
	return e
}

// WriteSfixed64 zigzag-encodes v and writes the result as 8 little-endian
// bytes.
func (e *Encoder) WriteSfixed64(v int64) *Encoder {
	if e.check(KindInt64, Int(v)) {
		e.fixed64(ZigZag64(v))
	}
	return e
}

// WriteFloat writes the 4-byte IEEE-754 pattern of v.
func (e *Encoder) WriteFloat(v float32) *Encoder {
	if e.err != nil {
		return e
	}
	e.buf.B = AppendFloat(e.buf.B, v)
	return e
}

// WriteDouble writes the 8-byte IEEE-754 pattern of v.
func (e *Encoder) WriteDouble(v float64) *Encoder {
	if e.err != nil {
		return e
	}
	e.buf.B = AppendDouble(e.buf.B, v)
	return e
}

// --- Strings ---

// WriteString appends s verbatim, without a length prefix. Use AppendString
// for a field value.
func (e *Encoder) WriteString(s string) *Encoder {
	if s == "" || e.err != nil {
		return e
	}
	e.buf.B = append(e.buf.B, s...)
	return e
}

// WriteBytes appends p verbatim, without a length prefix. A nil p is a no-op.
func (e *Encoder) WriteBytes(p []byte) *Encoder {
	if p == nil || e.err != nil {
		return e
	}
	e.buf.B = append(e.buf.B, p...)
	return e
}

// AppendString writes s as a length-delimited value: varint length, then
// the bytes. The empty string is written as a single 0x00.
func (e *Encoder) AppendString(s string) *Encoder {
	if e.err != nil {
		return e
	}
	e.varint(uint64(len(s)))
	e.buf.B = append(e.buf.B, s...)
	return e
}

// AppendBytes writes p as a length-delimited value. A nil p is absent and
// writes nothing; a non-nil empty p writes a zero length.
func (e *Encoder) AppendBytes(p []byte) *Encoder {
	if p == nil || e.err != nil {
		return e
	}
	e.buf.B = AppendBytes(e.buf.B, p)
	return e
}
