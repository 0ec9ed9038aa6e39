package pbwire

import (
	"math"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func BenchmarkEncoderScalars(b *testing.B) {
	e := NewEncoder(&Buffer{B: make([]byte, 0, 256)}, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Reset()
		e.WriteInt32(int64(i)).
			WriteSint64(-int64(i)).
			WriteUint64(math.MaxUint64).
			WriteFixed32(2000).
			WriteDouble(12.113133).
			AppendString("testing")
	}
}

func BenchmarkEncoderPooled(b *testing.B) {
	for i := 0; i < b.N; i++ {
		e := AcquireEncoder(nil)
		e.WriteInt32(int64(i)).AppendString("testing")
		ReleaseEncoder(e)
	}
}

func BenchmarkAppendVarint(b *testing.B) {
	buf := make([]byte, 0, MaxVarintLen64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = AppendVarint(buf[:0], uint64(i)<<20)
	}
}

// Baseline comparison using protowire directly, to see overhead of the
// validation and latching in Encoder.
func BenchmarkProtowireAppendVarint(b *testing.B) {
	buf := make([]byte, 0, MaxVarintLen64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = protowire.AppendVarint(buf[:0], uint64(i)<<20)
	}
}

func BenchmarkDecodeVarint(b *testing.B) {
	data := AppendVarint(nil, math.MaxUint64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = DecodeVarint(data)
	}
}
