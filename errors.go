package pbwire

import (
	"errors"
	"fmt"
)

var (
	// ErrRange indicates an integer lies outside the range of the kind it is
	// being written as. Every *RangeError unwraps to it.
	ErrRange = errors.New("pbwire: value out of range")

	// ErrMalformedInput indicates a decode operation was handed bytes that
	// cannot hold a value of the requested type.
	ErrMalformedInput = errors.New("pbwire: malformed input")

	// ErrTruncatedData indicates the input ended before the value did.
	ErrTruncatedData = fmt.Errorf("%w: truncated data", ErrMalformedInput)

	// ErrVarintOverflow indicates a varint that does not terminate within
	// MaxVarintLen64 bytes or does not fit in 64 bits.
	ErrVarintOverflow = fmt.Errorf("%w: varint overflows uint64", ErrMalformedInput)

	// ErrTrailingData is returned by Decoder.Finish when bytes remain after the
	// last value was read.
	ErrTrailingData = errors.New("pbwire: trailing data found after decoding")

	// ErrUnknownKind indicates a Policy holds no range for the requested kind.
	ErrUnknownKind = errors.New("pbwire: no range registered for kind")

	// ErrWriteToNil indicates a WriteTo operation was attempted on a nil io.Writer.
	ErrWriteToNil = errors.New("pbwire: WriteTo called with a nil io.Writer")
)
