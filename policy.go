package pbwire

import (
	"fmt"
	"math"

	"github.com/puzpuzpuz/xsync/v4"
)

// Range is an inclusive interval of integers.
type Range struct {
	Min Number
	Max Number
}

// Contains reports whether v lies within r.
func (r Range) Contains(v Number) bool {
	return r.Min.Cmp(v) <= 0 && v.Cmp(r.Max) <= 0
}

// The ranges of the protobuf scalar integer types.
var (
	RangeInt32  = Range{Min: Int(math.MinInt32), Max: Int(math.MaxInt32)}
	RangeInt64  = Range{Min: Int(math.MinInt64), Max: Int(math.MaxInt64)}
	RangeUint32 = Range{Min: Uint(0), Max: Uint(math.MaxUint32)}
	RangeUint64 = Range{Min: Uint(0), Max: Uint(math.MaxUint64)}
)

// Policy is a Validator backed by a table of ranges per kind.
//
// The table is safe for concurrent use, so a single Policy can serve every
// encoder in a process while ranges are adjusted with Set.
type Policy struct {
	ranges *xsync.Map[Kind, Range]
}

var _ Validator = (*Policy)(nil)

// DefaultPolicy validates against the protobuf ranges. NewEncoder uses it
// when no validator is supplied.
var DefaultPolicy = NewPolicy()

// NewPolicy creates a Policy preloaded with the protobuf ranges.
func NewPolicy() *Policy {
	p := &Policy{ranges: xsync.NewMap[Kind, Range]()}
	p.Set(KindInt32, RangeInt32)
	p.Set(KindInt64, RangeInt64)
	p.Set(KindUint32, RangeUint32)
	p.Set(KindUint64, RangeUint64)
	return p
}

// Set replaces the range for kind.
func (p *Policy) Set(kind Kind, r Range) {
	p.ranges.Store(kind, r)
}

// Range returns the range registered for kind.
func (p *Policy) Range(kind Kind) (Range, bool) {
	return p.ranges.Load(kind)
}

// Validate returns a *RangeError if v is outside the range of kind.
func (p *Policy) Validate(kind Kind, v Number) error {
	r, ok := p.ranges.Load(kind)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	if !r.Contains(v) {
		return &RangeError{Kind: kind, Value: v, Range: r}
	}
	return nil
}
