package pbwire

import "sync"

// maxPooledSize bounds the buffers returned to the pool, so one oversized
// message does not pin its memory for the life of the process.
const maxPooledSize = 64 * 1024

// encoderPool reuses encoders and their buffers across messages. This
// reduces GC pressure when many short messages are built back to back.
var encoderPool = sync.Pool{
	New: func() any {
		// 512 bytes covers most scalar-heavy messages without re-allocation.
		return &Encoder{buf: &Buffer{B: make([]byte, 0, 512)}, pooled: true}
	},
}

// AcquireEncoder returns an empty Encoder from the pool, validating with v
// (DefaultPolicy if nil). Release it with ReleaseEncoder once its bytes have
// been copied or written out.
func AcquireEncoder(v Validator) *Encoder {
	e := encoderPool.Get().(*Encoder)
	if v == nil {
		v = DefaultPolicy
	}
	e.validator = v
	return e
}

// ReleaseEncoder resets e and returns it to the pool. e and any slice
// obtained from its Bytes must not be used afterwards. Encoders that did not
// come from AcquireEncoder are left alone, since their Buffer belongs to the
// caller.
func ReleaseEncoder(e *Encoder) {
	if e == nil || !e.pooled || cap(e.buf.B) > maxPooledSize {
		return
	}
	e.Reset()
	e.validator = nil
	encoderPool.Put(e)
}
