// Package consteval evaluates the compile-time constant sub-language
// spec.md §4.3 describes: literals, arithmetic/comparison/unary
// operators on constants, and references to other already-evaluated
// consts. It is used wherever the grammar requires a compile-time
// constant — array sizes and struct field defaults.
package consteval

import "github.com/nanov/jsasta/internal/types"

// Value is a resolved constant: exactly one of the four payload fields
// is meaningful, selected by Kind.
type Value struct {
	Kind types.Kind
	I    int32
	F    float64
	S    string
	B    bool
}

// IntValue constructs an Int constant.
func IntValue(i int32) Value { return Value{Kind: types.KindInt, I: i} }

// DoubleValue constructs a Double constant.
func DoubleValue(f float64) Value { return Value{Kind: types.KindDouble, F: f} }

// StringValue constructs a String constant.
func StringValue(s string) Value { return Value{Kind: types.KindString, S: s} }

// BoolValue constructs a Bool constant.
func BoolValue(b bool) Value { return Value{Kind: types.KindBool, B: b} }

// AsDouble returns the value widened to float64, valid only for numeric
// kinds.
func (v Value) AsDouble() float64 {
	if v.Kind == types.KindDouble {
		return v.F
	}
	return float64(v.I)
}
