package pbwire

import (
	"bytes"
	"io"
)

// Buffer is an append-only, growable byte sequence that encoded values are
// written to. Unlike bytes.Buffer it has no read side: bytes only ever get
// appended, never consumed, until Reset.
//
// A Buffer is owned by a single encoder and is not safe for concurrent use.
type Buffer struct {
	B []byte // accumulated bytes
}

var (
	_ io.Writer       = (*Buffer)(nil)
	_ io.ByteWriter   = (*Buffer)(nil)
	_ io.StringWriter = (*Buffer)(nil)
	_ io.WriterTo     = (*Buffer)(nil)
)

// NewBuffer creates a Buffer whose initial contents are p. The Buffer takes
// ownership of p; a nil p yields an empty Buffer.
func NewBuffer(p []byte) *Buffer {
	return &Buffer{B: p}
}

// Append appends p to the end of the buffer.
func (b *Buffer) Append(p []byte) {
	b.B = append(b.B, p...)
}

// Write implements the io.Writer interface. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.B = append(b.B, p...)
	return len(p), nil
}

// WriteString implements the io.StringWriter interface for efficiency.
func (b *Buffer) WriteString(s string) (int, error) {
	b.B = append(b.B, s...)
	return len(s), nil
}

// WriteByte implements the io.ByteWriter interface for efficiency.
func (b *Buffer) WriteByte(c byte) error {
	b.B = append(b.B, c)
	return nil
}

// WriteTo implements io.WriterTo, writing the accumulated bytes to w.
// The buffer is left untouched.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, ErrWriteToNil
	}
	n, err := w.Write(b.B)
	if err == nil && n < len(b.B) {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// Bytes returns a view of the accumulated bytes. The view's capacity is
// clipped, so appending to it never overwrites later writes to the buffer.
func (b *Buffer) Bytes() []byte { return b.B[:len(b.B):len(b.B)] }

// String returns the accumulated bytes as a string.
func (b *Buffer) String() string { return string(b.B) }

// Equal reports whether the buffer holds exactly the bytes in other.
func (b *Buffer) Equal(other []byte) bool { return bytes.Equal(b.B, other) }

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return len(b.B) }

// Grow makes room for at least n more bytes without another allocation.
func (b *Buffer) Grow(n int) {
	if n > 0 && cap(b.B)-len(b.B) < n {
		grown := make([]byte, len(b.B), 2*cap(b.B)+n)
		copy(grown, b.B)
		b.B = grown
	}
}

// Reset empties the buffer, keeping its capacity for reuse.
func (b *Buffer) Reset() { b.B = b.B[:0] }
