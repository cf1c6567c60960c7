package payload

import (
	"math"
	"strconv"
	"strings"
)

// Kind is the variant held by a Value
type Kind int

const (
	KindNull Kind = iota
	KindScalar
	KindSequence
	KindMapping
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// ScalarType distinguishes the scalar flavours
type ScalarType int

const (
	ScalarString ScalarType = iota
	ScalarNumber
	ScalarBool
)

// Value is an immutable node of a decoded document. The zero Value is Null.
type Value struct {
	kind    Kind
	scalar  ScalarType
	text    string
	items   []Value
	mapping Mapping
}

// Null returns the null value
func Null() Value { return Value{} }

// String returns a string scalar
func String(s string) Value {
	return Value{kind: KindScalar, scalar: ScalarString, text: s}
}

// Number returns a numeric scalar from its literal form. The literal is
// normalised the way a script runtime prints numbers (1.50 -> 1.5, 1e2 -> 100).
func Number(literal string) Value {
	return Value{kind: KindScalar, scalar: ScalarNumber, text: normalizeNumber(literal)}
}

// Int returns a numeric scalar
func Int(i int64) Value {
	return Value{kind: KindScalar, scalar: ScalarNumber, text: strconv.FormatInt(i, 10)}
}

// Float returns a numeric scalar
func Float(f float64) Value {
	return Value{kind: KindScalar, scalar: ScalarNumber, text: formatFloat(f)}
}

// Bool returns a boolean scalar
func Bool(b bool) Value {
	return Value{kind: KindScalar, scalar: ScalarBool, text: strconv.FormatBool(b)}
}

// Sequence returns an ordered list value
func Sequence(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindSequence, items: cp}
}

// FromMapping wraps a mapping into a Value
func FromMapping(m Mapping) Value {
	return Value{kind: KindMapping, mapping: m.Clone()}
}

func (v Value) Kind() Kind             { return v.kind }
func (v Value) ScalarType() ScalarType { return v.scalar }
func (v Value) IsNull() bool           { return v.kind == KindNull }

// IsEmpty reports whether the value is null or the empty string. Empty values
// never produce output elements.
func (v Value) IsEmpty() bool {
	switch v.kind {
	case KindNull:
		return true
	case KindScalar:
		return v.scalar == ScalarString && v.text == ""
	default:
		return false
	}
}

// Truthy follows script truthiness: null, "", false and 0 are falsy, every
// sequence and mapping is truthy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindScalar:
		switch v.scalar {
		case ScalarBool:
			return v.text == "true"
		case ScalarNumber:
			f, err := strconv.ParseFloat(v.text, 64)
			if err != nil {
				return v.text != ""
			}
			return f != 0 && !math.IsNaN(f)
		default:
			return v.text != ""
		}
	default:
		return true
	}
}

// Text returns the string form of a scalar. Null and composite values yield "".
func (v Value) Text() string {
	if v.kind != KindScalar {
		return ""
	}
	return v.text
}

// Items returns the entries of a sequence
func (v Value) Items() []Value {
	if v.kind != KindSequence {
		return nil
	}
	return v.items
}

// Mapping returns the fields of a mapping value; other kinds yield an empty mapping
func (v Value) Mapping() Mapping {
	if v.kind != KindMapping {
		return Mapping{}
	}
	return v.mapping
}

// Get looks up a field of a mapping value
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMapping {
		return Value{}, false
	}
	return v.mapping.Get(key)
}

// Equal reports deep equality, including field order
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindScalar:
		return v.scalar == o.scalar && v.text == o.text
	case KindSequence:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	default:
		return v.mapping.Equal(o.mapping)
	}
}

func normalizeNumber(literal string) string {
	literal = strings.TrimSpace(literal)
	f, err := strconv.ParseFloat(literal, 64)
	if err != nil {
		return literal
	}
	return formatFloat(f)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'g', -1, 64)
		// Go pads negative exponents to two digits
		return strings.Replace(s, "e-0", "e-", 1)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
