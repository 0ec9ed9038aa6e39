// Package script reads lists of typed scalar values from YAML and runs them
// through a pbwire Encoder or Decoder.
//
// A script is a YAML sequence of entries:
//
//	- kind: int32
//	  value: 150
//	- kind: string
//	  value: testing
//	  delimited: true
//	- kind: bytes
//	  value: "deadbeef"
//
// Integer values keep full precision: they are parsed from the YAML scalar
// text rather than through float64. Bytes values are hex. A null value for
// string or bytes is absent and writes nothing.
package script

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/oy3o/pbwire"
)

// Kinds lists the accepted entry kinds.
var Kinds = []string{
	"bool", "varint",
	"int32", "int64", "uint32", "uint64",
	"sint32", "sint64",
	"fixed32", "fixed64", "sfixed32", "sfixed64",
	"float", "double",
	"string", "bytes",
}

var ErrUnknownKind = errors.New("script: unknown kind")

// Entry is one value of a script.
type Entry struct {
	Kind      string    `yaml:"kind"`
	Value     yaml.Node `yaml:"value"`
	Delimited bool      `yaml:"delimited,omitempty"`
}

// Parse reads a script from r.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	if err := yaml.NewDecoder(r).Decode(&entries); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("script: failed to parse: %w", err)
	}
	return entries, nil
}

// Encode writes every entry to e, stopping at the first failure. The
// returned error names the offending entry.
func Encode(e *pbwire.Encoder, entries []Entry) error {
	for i := range entries {
		if err := encodeEntry(e, &entries[i]); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, entries[i].Kind, err)
		}
		if err := e.Err(); err != nil {
			return fmt.Errorf("entry %d (%s): %w", i, entries[i].Kind, err)
		}
	}
	return nil
}

func isNull(n *yaml.Node) bool {
	return n.Kind == 0 || (n.Kind == yaml.ScalarNode && n.Tag == "!!null")
}

// parseNumber reads an integer scalar without going through float64.
func parseNumber(n *yaml.Node) (pbwire.Number, error) {
	if n.Kind != yaml.ScalarNode {
		return pbwire.Number{}, fmt.Errorf("expected an integer scalar at line %d", n.Line)
	}
	if v, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
		return pbwire.Int(v), nil
	}
	v, err := strconv.ParseUint(n.Value, 0, 64)
	if err != nil {
		return pbwire.Number{}, fmt.Errorf("invalid integer %q at line %d: %w", n.Value, n.Line, err)
	}
	return pbwire.Uint(v), nil
}

// scalarText returns the text of a string scalar, decoding !!binary values.
func scalarText(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode {
		return "", fmt.Errorf("expected a scalar at line %d", n.Line)
	}
	if n.Tag == "!!binary" {
		var s string
		if err := n.Decode(&s); err != nil {
			return "", err
		}
		return s, nil
	}
	return n.Value, nil
}

func signed(n pbwire.Number) (int64, error) {
	v, ok := n.Int64()
	if !ok {
		return 0, fmt.Errorf("%w: %s does not fit in 64 signed bits", pbwire.ErrRange, n)
	}
	return v, nil
}

func unsigned(n pbwire.Number) (uint64, error) {
	v, ok := n.Uint64()
	if !ok {
		return 0, fmt.Errorf("%w: %s is negative", pbwire.ErrRange, n)
	}
	return v, nil
}

func encodeEntry(e *pbwire.Encoder, entry *Entry) error {
	switch entry.Kind {
	case "bool":
		var v bool
		if err := entry.Value.Decode(&v); err != nil {
			return err
		}
		e.WriteBool(v)
		return nil
	case "float", "double":
		var v float64
		if err := entry.Value.Decode(&v); err != nil {
			return err
		}
		if entry.Kind == "float" {
			f := float32(v)
			if math.IsInf(float64(f), 0) && !math.IsInf(v, 0) {
				return fmt.Errorf("%w: %g overflows a float", pbwire.ErrRange, v)
			}
			e.WriteFloat(f)
		} else {
			e.WriteDouble(v)
		}
		return nil
	case "string":
		if isNull(&entry.Value) {
			return nil
		}
		text, err := scalarText(&entry.Value)
		if err != nil {
			return err
		}
		if entry.Delimited {
			e.AppendString(text)
		} else {
			e.WriteString(text)
		}
		return nil
	case "bytes":
		if isNull(&entry.Value) {
			return nil
		}
		if entry.Value.Kind != yaml.ScalarNode {
			return fmt.Errorf("expected a hex scalar at line %d", entry.Value.Line)
		}
		p, err := hex.DecodeString(entry.Value.Value)
		if err != nil {
			return fmt.Errorf("invalid hex at line %d: %w", entry.Value.Line, err)
		}
		if entry.Delimited {
			e.AppendBytes(p)
		} else {
			e.WriteBytes(p)
		}
		return nil
	}

	n, err := parseNumber(&entry.Value)
	if err != nil {
		return err
	}
	switch entry.Kind {
	case "varint":
		e.WriteVarint(n.Bits())
	case "int32", "int64", "uint32", "uint64":
		kind, _ := pbwire.ParseKind(entry.Kind)
		e.WriteNumber(kind, n)
	case "sint32", "sint64", "sfixed32", "sfixed64", "fixed32":
		v, err := signed(n)
		if err != nil {
			return err
		}
		switch entry.Kind {
		case "sint32":
			e.WriteSint32(v)
		case "sint64":
			e.WriteSint64(v)
		case "sfixed32":
			e.WriteSfixed32(v)
		case "sfixed64":
			e.WriteSfixed64(v)
		case "fixed32":
			e.WriteFixed32(v)
		}
	case "fixed64":
		v, err := unsigned(n)
		if err != nil {
			return err
		}
		e.WriteFixed64(v)
	default:
		return fmt.Errorf("%w %q", ErrUnknownKind, entry.Kind)
	}
	return nil
}

// Result is one decoded value. A slice of results marshals to YAML that
// Parse accepts back.
type Result struct {
	Kind      string `yaml:"kind"`
	Value     any    `yaml:"value"`
	Delimited bool   `yaml:"delimited,omitempty"`
}

// Decode reads one value per kind from d. Strings and bytes are read as
// length-delimited values; bytes come back hex encoded, as does a string
// that is not valid UTF-8.
func Decode(d *pbwire.Decoder, kinds []string) ([]Result, error) {
	results := make([]Result, 0, len(kinds))
	for i, kind := range kinds {
		r := Result{Kind: kind}
		switch kind {
		case "bool":
			r.Value = d.ReadBool()
		case "varint", "uint64":
			r.Value = d.ReadUint64()
		case "int32":
			r.Value = d.ReadInt32()
		case "int64":
			r.Value = d.ReadInt64()
		case "uint32":
			r.Value = d.ReadUint32()
		case "sint32":
			r.Value = d.ReadSint32()
		case "sint64":
			r.Value = d.ReadSint64()
		case "fixed32":
			r.Value = d.ReadFixed32()
		case "fixed64":
			r.Value = d.ReadFixed64()
		case "sfixed32":
			r.Value = d.ReadSfixed32()
		case "sfixed64":
			r.Value = d.ReadSfixed64()
		case "float":
			r.Value = d.ReadFloat()
		case "double":
			r.Value = d.ReadDouble()
		case "string":
			// Invalid UTF-8 is reported as bytes so the YAML stays valid.
			if p := d.ReadBytes(); utf8.Valid(p) {
				r.Value = string(p)
			} else {
				r.Kind = "bytes"
				r.Value = hex.EncodeToString(p)
			}
			r.Delimited = true
		case "bytes":
			r.Value = hex.EncodeToString(d.ReadBytes())
			r.Delimited = true
		default:
			return results, fmt.Errorf("entry %d: %w %q", i, ErrUnknownKind, kind)
		}
		if err := d.Err(); err != nil {
			return results, fmt.Errorf("entry %d (%s): %w", i, kind, err)
		}
		results = append(results, r)
	}
	return results, d.Finish()
}
