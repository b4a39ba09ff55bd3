package wordnum

import "strconv"

// Value is the tagged numeric result of a conversion: either an
// integer or a decimal, never both. The ordinal flag lets downstream
// consumers tell "twenty-third" from "twenty-three"; it does not
// affect the numeric value.
type Value struct {
	i       int64
	f       float64
	decimal bool
	ordinal bool
}

// IntegerValue builds an integer Value. Mostly useful in tests and
// when composing results outside the pipeline.
func IntegerValue(n int64) Value {
	return Value{i: n}
}

// DecimalValue builds a decimal Value.
func DecimalValue(f float64) Value {
	return Value{f: f, decimal: true}
}

// IsDecimal reports whether the value carries a fractional part, i.e.
// the input contained "point".
func (v Value) IsDecimal() bool {
	return v.decimal
}

// IsOrdinal reports whether the input was an ordinal expression.
func (v Value) IsOrdinal() bool {
	return v.ordinal
}

// Int64 returns the integer value. For decimal values it truncates.
func (v Value) Int64() int64 {
	if v.decimal {
		return int64(v.f)
	}
	return v.i
}

// Float64 returns the value as a float64, exact for integer values
// within float64 range.
func (v Value) Float64() float64 {
	if v.decimal {
		return v.f
	}
	return float64(v.i)
}

// String formats the value the way its tag dictates: "23" for
// integers, "23.5" for decimals.
func (v Value) String() string {
	if v.decimal {
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	}
	return strconv.FormatInt(v.i, 10)
}

// MarshalJSON emits a bare JSON number, integer or fractional per the
// value's tag.
func (v Value) MarshalJSON() ([]byte, error) {
	return []byte(v.String()), nil
}
