package signal

import (
	"math"
)

// Value is the polymorphic payload carried by a signal. It is a closed union:
// exactly one of the float, integer, string, or map variants. Keeping the
// variants as distinct types means the 2-decimal rounding rule can only ever
// apply to the float variant by construction.
type Value interface {
	isValue()
}

// FloatValue is the floating-point variant. Stored rounded to 2 decimals.
type FloatValue float64

// IntValue is the integer variant. Never converted to float.
type IntValue int64

// StringValue is the string variant.
type StringValue string

// MapValue is the structured variant, an open string-keyed map.
type MapValue map[string]interface{}

func (FloatValue) isValue()  {}
func (IntValue) isValue()    {}
func (StringValue) isValue() {}
func (MapValue) isValue()    {}

// Float wraps a floating-point payload
func Float(v float64) Value { return FloatValue(v) }

// Int wraps an integer payload
func Int(v int64) Value { return IntValue(v) }

// Str wraps a string payload
func Str(s string) Value { return StringValue(s) }

// Map wraps a structured payload
func Map(m map[string]interface{}) Value { return MapValue(m) }

// NormalizeValue applies the one-time creation normalization: the float
// variant is rounded (half away from zero) to exactly 2 decimal places,
// every other variant passes through unchanged.
func NormalizeValue(v Value) Value {
	if f, ok := v.(FloatValue); ok {
		return FloatValue(math.Round(float64(f)*100) / 100)
	}
	return v
}

// AsNumber extracts a numeric payload. The second return is false for the
// string and map variants.
func AsNumber(v Value) (float64, bool) {
	switch x := v.(type) {
	case FloatValue:
		return float64(x), true
	case IntValue:
		return float64(x), true
	default:
		return 0, false
	}
}

// IsNumeric reports whether the value is the float or integer variant
func IsNumeric(v Value) bool {
	_, ok := AsNumber(v)
	return ok
}
