package pbwire

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Kind names the integer range a value is validated against before it is
// narrowed onto the wire.
type Kind uint8

const (
	KindInt32 Kind = iota + 1
	KindInt64
	KindUint32
	KindUint64
)

var kindNames = [...]string{
	KindInt32:  "int32",
	KindInt64:  "int64",
	KindUint32: "uint32",
	KindUint64: "uint64",
}

var kindDescriptions = [...]string{
	KindInt32:  "32 bit integer",
	KindInt64:  "64 bit integer",
	KindUint32: "unsigned 32 bit integer",
	KindUint64: "unsigned 64 bit integer",
}

func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Describe returns the human readable name used in range errors.
func (k Kind) Describe() string {
	if k == 0 || int(k) >= len(kindDescriptions) {
		return k.String()
	}
	return kindDescriptions[k]
}

// ParseKind returns the Kind whose String form is s.
func ParseKind(s string) (Kind, bool) {
	for k := KindInt32; int(k) < len(kindNames); k++ {
		if kindNames[k] == s {
			return k, true
		}
	}
	return 0, false
}

// Number is an integer as seen by a Validator. It is stored as sign and
// magnitude so that every int64 and every uint64 is representable.
type Number struct {
	neg bool
	abs uint64
}

// Int returns the Number for a signed value.
func Int(v int64) Number {
	if v < 0 {
		return Number{neg: true, abs: -uint64(v)}
	}
	return Number{abs: uint64(v)}
}

// Uint returns the Number for an unsigned value.
func Uint(v uint64) Number { return Number{abs: v} }

// NumberOf returns the Number for a value of any integer type.
func NumberOf[T constraints.Integer](v T) Number {
	if v < 0 {
		return Int(int64(v))
	}
	return Uint(uint64(v))
}

// IsNegative reports whether n is below zero.
func (n Number) IsNegative() bool { return n.neg }

// Int64 returns n as an int64 and whether it fits.
func (n Number) Int64() (int64, bool) {
	if n.neg {
		return -int64(n.abs), n.abs <= 1<<63
	}
	return int64(n.abs), n.abs < 1<<63
}

// Uint64 returns n as a uint64 and whether it fits.
func (n Number) Uint64() (uint64, bool) { return n.abs, !n.neg }

// Bits returns the 64-bit two's-complement pattern of n. This is the value
// a varint write emits once n has passed validation.
func (n Number) Bits() uint64 {
	if n.neg {
		return -n.abs
	}
	return n.abs
}

// Cmp compares n and m, returning -1, 0 or +1.
func (n Number) Cmp(m Number) int {
	switch {
	case n.neg != m.neg:
		if n.neg {
			return -1
		}
		return 1
	case n.abs == m.abs:
		return 0
	case (n.abs < m.abs) != n.neg:
		return -1
	default:
		return 1
	}
}

func (n Number) String() string {
	if n.neg {
		return "-" + strconv.FormatUint(n.abs, 10)
	}
	return strconv.FormatUint(n.abs, 10)
}

// Validator decides whether a value may be written as the given kind.
// Encoders call it before emitting any byte of an integer write; a non-nil
// error aborts the write.
type Validator interface {
	Validate(kind Kind, v Number) error
}

// ValidatorFunc adapts an ordinary function to the Validator interface.
type ValidatorFunc func(kind Kind, v Number) error

func (f ValidatorFunc) Validate(kind Kind, v Number) error { return f(kind, v) }

// RangeError reports a value outside the range of its kind.
type RangeError struct {
	Kind  Kind
	Value Number
	Range Range
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("pbwire: %s is not a valid %s. The value must be between %s and %s.",
		e.Value, e.Kind.Describe(), e.Range.Min, e.Range.Max)
}

func (e *RangeError) Unwrap() error { return ErrRange }
