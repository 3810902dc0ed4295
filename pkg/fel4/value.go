package fel4

import "strconv"

// Kind identifies the type of a manifest property value.
type Kind int

// The closed set of value kinds a manifest property may carry.
// Floats, datetimes, arrays, and nested tables are deliberately
// unrepresentable; the manifest format rejects them during conversion.
const (
	// KindBoolean is a TOML boolean property.
	KindBoolean Kind = iota

	// KindInteger is a TOML integer property (64-bit signed).
	KindInteger

	// KindString is a TOML string property.
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a single typed manifest property value.
// A Value is immutable once constructed and safe to copy and share.
// The zero Value is Boolean false.
type Value struct {
	kind Kind
	b    bool
	i    int64
	s    string
}

// BoolValue constructs a boolean Value.
func BoolValue(v bool) Value {
	return Value{kind: KindBoolean, b: v}
}

// IntValue constructs an integer Value.
func IntValue(v int64) Value {
	return Value{kind: KindInteger, i: v}
}

// StringValue constructs a string Value.
func StringValue(v string) Value {
	return Value{kind: KindString, s: v}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload. The second return is false when the
// value is not a boolean.
func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == KindBoolean
}

// Int returns the integer payload. The second return is false when the
// value is not an integer.
func (v Value) Int() (int64, bool) {
	return v.i, v.kind == KindInteger
}

// Str returns the string payload. The second return is false when the
// value is not a string.
func (v Value) Str() (string, bool) {
	return v.s, v.kind == KindString
}

// Interface returns the payload as an untyped scalar, suitable for
// handing to generic encoders (JSON, YAML).
func (v Value) Interface() any {
	switch v.kind {
	case KindInteger:
		return v.i
	case KindString:
		return v.s
	default:
		return v.b
	}
}

// String returns the TOML-style textual form of the value.
// Strings are quoted so that the output round-trips through a TOML parser.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		return strconv.FormatInt(v.i, 10)
	case KindString:
		return strconv.Quote(v.s)
	default:
		return strconv.FormatBool(v.b)
	}
}

// MarshalJSON encodes the value as its bare scalar payload.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindInteger:
		return strconv.AppendInt(nil, v.i, 10), nil
	case KindString:
		return strconv.AppendQuote(nil, v.s), nil
	default:
		return strconv.AppendBool(nil, v.b), nil
	}
}

// MarshalYAML encodes the value as its bare scalar payload.
func (v Value) MarshalYAML() (any, error) {
	return v.Interface(), nil
}
