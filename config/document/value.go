package document

import (
	"encoding/json"
	"math"
	"strconv"
)

// Kind identifies the type of a document node or leaf value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindDouble
	KindString
	KindObject
	KindArray
)

// String returns the human-readable kind name used in error messages.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is a scalar leaf: null, boolean, integer, double or string.
// Integers and doubles are distinct kinds and never converted into each other.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Integer returns an integer value.
func Integer(i int64) Value {
	return Value{kind: KindInteger, i: i}
}

// Double returns a floating-point value.
func Double(f float64) Value {
	return Value{kind: KindDouble, f: f}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// AsInt returns the integer and true if the value is an integer.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInteger
}

// AsDouble returns the float and true if the value is a double.
func (v Value) AsDouble() (float64, bool) {
	return v.f, v.kind == KindDouble
}

// AsString returns the string and true if the value is a string.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsBool returns the boolean and true if the value is a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// String returns the JSON text of the value.
func (v Value) String() string {
	return string(v.appendJSON(nil))
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.appendJSON(nil), nil
}

func (v Value) appendJSON(dst []byte) []byte {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(dst, v.b)
	case KindInteger:
		return strconv.AppendInt(dst, v.i, 10)
	case KindDouble:
		return appendDouble(dst, v.f)
	case KindString:
		return appendString(dst, v.s)
	default:
		return append(dst, "null"...)
	}
}

// appendDouble keeps a fractional marker so that a reparse yields a double again.
func appendDouble(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}

	start := len(dst)
	dst = strconv.AppendFloat(dst, f, 'g', -1, 64)

	for _, c := range dst[start:] {
		if c == '.' || c == 'e' || c == 'E' {
			return dst
		}
	}

	return append(dst, ".0"...)
}

func appendString(dst []byte, s string) []byte {
	quoted, err := json.Marshal(s)
	if err != nil {
		return append(dst, `""`...)
	}

	return append(dst, quoted...)
}
