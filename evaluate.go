package wordnum

import "math"

// Evaluate walks a structured expression and computes its numeric
// value. Closed groups sum as coeff×magnitude; a decimal tail composes
// positionally after the point, so digits [0, 5] yield .05, not .5.
// The ordinal flag is carried through to the result without changing
// the value. A degenerate expression with neither groups nor a decimal
// point produces an *EvalError.
func Evaluate(expr *Expression) (Value, error) {
	tail, decimal := expr.DecimalTail()
	if len(expr.Groups()) == 0 && !decimal {
		return Value{}, &EvalError{Message: "empty expression"}
	}

	var n int64
	for _, g := range expr.Groups() {
		n += g.Value()
	}

	if !decimal {
		return Value{i: n, ordinal: expr.IsOrdinal()}, nil
	}

	f := float64(n)
	for i, d := range tail {
		f += float64(d) / math.Pow10(i+1)
	}
	return Value{f: f, decimal: true, ordinal: expr.IsOrdinal()}, nil
}
