package pbwire

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shortWriter accepts at most n bytes per call.
type shortWriter struct {
	bytes.Buffer
	n int
}

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) > w.n {
		p = p[:w.n]
	}
	return w.Buffer.Write(p)
}

func TestBuffer_Append(t *testing.T) {
	t.Run("Associative", func(t *testing.T) {
		split := &Buffer{}
		split.Append([]byte{'a', 'b'})
		split.Append([]byte{'c'})

		whole := &Buffer{}
		whole.Append([]byte{'a', 'b', 'c'})

		assert.Equal(t, whole.Bytes(), split.Bytes())
		assert.True(t, split.Equal([]byte("abc")))
	})

	t.Run("NeverReordersExisting", func(t *testing.T) {
		b := NewBuffer([]byte("test"))
		b.Append(nil)
		b.Append([]byte{})
		b.Append([]byte("ing"))
		assert.Equal(t, "testing", b.String())
	})

	t.Run("StartsEmpty", func(t *testing.T) {
		b := NewBuffer(nil)
		assert.Zero(t, b.Len())
		assert.Empty(t, b.Bytes())
		assert.True(t, b.Equal(nil))
		assert.True(t, b.Equal([]byte{}))
	})
}

func TestBuffer_IOInterfaces(t *testing.T) {
	b := &Buffer{}
	n, err := b.Write([]byte{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.NoError(t, b.WriteByte(3))
	n, err = b.WriteString("\x04\x05")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, b.Bytes())

	var out bytes.Buffer
	written, err := b.WriteTo(&out)
	require.NoError(t, err)
	assert.EqualValues(t, 5, written)
	assert.Equal(t, b.Bytes(), out.Bytes())
	assert.Equal(t, 5, b.Len(), "WriteTo does not consume the buffer")
}

func TestBuffer_WriteToErrors(t *testing.T) {
	b := NewBuffer([]byte("abcdef"))

	_, err := b.WriteTo(nil)
	assert.ErrorIs(t, err, ErrWriteToNil)

	w := &shortWriter{n: 3}
	n, err := b.WriteTo(w)
	assert.ErrorIs(t, err, io.ErrShortWrite)
	assert.EqualValues(t, 3, n)
}

func TestBuffer_BytesViewDoesNotAlias(t *testing.T) {
	b := &Buffer{}
	b.Grow(64)
	b.Append([]byte{1, 2, 3})

	view := b.Bytes()
	assert.Equal(t, len(view), cap(view))
	_ = append(view, 0xEE)

	b.Append([]byte{4})
	assert.Equal(t, []byte{1, 2, 3, 4}, b.Bytes())
}

func TestBuffer_GrowAndReset(t *testing.T) {
	b := NewBuffer([]byte{9})
	b.Grow(100)
	assert.GreaterOrEqual(t, cap(b.B)-len(b.B), 100)
	assert.Equal(t, []byte{9}, b.Bytes(), "Grow keeps contents")

	capacity := cap(b.B)
	b.Reset()
	assert.Zero(t, b.Len())
	assert.Equal(t, capacity, cap(b.B))
}
