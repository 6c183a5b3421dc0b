// Package attr defines the typed attribute values exchanged between the
// document accessor, the requirements model and the validation engine.
//
// A Value is one of: a number (remembering whether it was written as an
// integer), a string, a boolean, or a named enumeration member. The zero
// Value is undefined, which is how an attribute that resolves to nothing is
// represented. Values render the way report consumers expect: floats always
// carry a fractional part ("26.0"), integers do not ("26"), booleans are
// "True"/"False" and enum members are "NAME (code)".
package attr

import (
	"fmt"
	"math"
	"strconv"
)

// Kind is the dynamic type of a Value.
type Kind int

const (
	// Undefined is the kind of the zero Value.
	Undefined Kind = iota
	// Number is an integer or floating point number.
	Number
	// String is free text such as a font family.
	String
	// Bool is an on/off flag.
	Bool
	// Enum is a named member of a closed enumeration with an integer code.
	Enum
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Enum:
		return "enum"
	default:
		return "undefined"
	}
}

// Value is a single attribute value.
type Value struct {
	kind    Kind
	num     float64
	integer bool
	str     string
}

// Float returns a floating point number Value.
func Float(f float64) Value {
	return Value{kind: Number, num: f}
}

// Int returns an integer number Value.
func Int(i int64) Value {
	return Value{kind: Number, num: float64(i), integer: true}
}

// Str returns a string Value.
func Str(s string) Value {
	return Value{kind: String, str: s}
}

// Boolean returns a bool Value. Numerically it is 1 or 0.
func Boolean(b bool) Value {
	v := Value{kind: Bool}
	if b {
		v.num = 1
	}
	return v
}

// EnumMember returns an enum Value with the given member name and code.
func EnumMember(name string, code int) Value {
	return Value{kind: Enum, num: float64(code), integer: true, str: name}
}

// Kind returns the dynamic type of v.
func (v Value) Kind() Kind { return v.kind }

// Defined reports whether v holds a value.
func (v Value) Defined() bool { return v.kind != Undefined }

// Numeric reports whether v can be compared as a number.
// Numbers, booleans and enum members are numeric.
func (v Value) Numeric() bool {
	return v.kind == Number || v.kind == Bool || v.kind == Enum
}

// Float returns the numeric value of v. Non-numeric values return 0.
func (v Value) Float() float64 { return v.num }

// Text returns the string payload of a String value or the member name
// of an Enum value.
func (v Value) Text() string { return v.str }

// Bool returns true for a Bool value that is on.
func (v Value) Bool() bool { return v.kind == Bool && v.num != 0 }

// String renders v for reports.
func (v Value) String() string {
	switch v.kind {
	case Number:
		if v.integer {
			return strconv.FormatInt(int64(v.num), 10)
		}
		return FormatFloat(v.num)
	case String:
		return v.str
	case Bool:
		if v.num != 0 {
			return "True"
		}
		return "False"
	case Enum:
		return fmt.Sprintf("%s (%d)", v.str, int64(v.num))
	default:
		return "None"
	}
}

// Interface returns v as a plain Go value suitable for YAML or JSON
// encoding: int, float64, string or bool. Enum members encode as their
// integer code. Undefined values return nil.
func (v Value) Interface() any {
	switch v.kind {
	case Number:
		if v.integer {
			return int(v.num)
		}
		return v.num
	case String:
		return v.str
	case Bool:
		return v.num != 0
	case Enum:
		return int(v.num)
	default:
		return nil
	}
}

// FromInterface converts a decoded YAML or JSON scalar into a Value.
func FromInterface(x any) (Value, error) {
	switch t := x.(type) {
	case int:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case int32:
		return Int(int64(t)), nil
	case uint64:
		return Int(int64(t)), nil
	case float64:
		return Float(t), nil
	case float32:
		return Float(float64(t)), nil
	case bool:
		return Boolean(t), nil
	case string:
		return Str(t), nil
	case Value:
		return t, nil
	default:
		return Value{}, fmt.Errorf("unsupported attribute value %v (%T)", x, x)
	}
}

// FormatFloat renders f the way Python's repr does for the common range:
// the shortest decimal that round-trips, with ".0" appended to integral
// values.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if f == math.Trunc(f) {
		s += ".0"
	}
	return s
}
