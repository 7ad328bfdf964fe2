package lox

import "strconv"

// ValueKind closes the set of runtime value variants: Number, String,
// Bool, Nil, and Callable. The value space is fixed and small, so it is
// modeled as a closed tagged variant rather than an interface{} or
// reflection wrapper.
type ValueKind int

const (
	KindNil ValueKind = iota
	KindNumber
	KindString
	KindBool
	KindCallable
)

// Value is a Lox runtime value: exactly one of Num/Str/Bool/Call is
// meaningful, selected by Kind.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
	Bool bool
	Call Callable
}

var Nil = Value{Kind: KindNil}

func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }
func StringValue(s string) Value  { return Value{Kind: KindString, Str: s} }
func BoolValue(b bool) Value      { return Value{Kind: KindBool, Bool: b} }
func CallableValue(c Callable) Value {
	return Value{Kind: KindCallable, Call: c}
}

// IsTruthy: Nil is falsy, Bool is its own truthiness, every other value
// (including 0 and "") is truthy.
func (v Value) IsTruthy() bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.Bool
	default:
		return true
	}
}

// Equals: Nil == Nil is true, Nil == x is false for any other x, otherwise
// value equality within kind with no cross-kind coercion.
func (v Value) Equals(other Value) bool {
	if v.Kind == KindNil || other.Kind == KindNil {
		return v.Kind == KindNil && other.Kind == KindNil
	}
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNumber:
		return v.Num == other.Num
	case KindString:
		return v.Str == other.Str
	case KindBool:
		return v.Bool == other.Bool
	case KindCallable:
		return v.Call == other.Call
	}
	return false
}

// String renders a value's print form: numbers without a trailing ".0"
// for integral values, booleans as true/false, Nil as nil, strings as
// their raw text.
func (v Value) String() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindString:
		return v.Str
	case KindNumber:
		return formatNumber(v.Num)
	case KindCallable:
		return v.Call.String()
	}
	return ""
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

func (v Value) TypeName() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindCallable:
		return "callable"
	}
	return "unknown"
}
