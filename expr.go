package wordnum

// Group is one closed magnitude group of a parsed number: the sub-value
// accumulated below the magnitude, and the power-of-ten multiplier that
// closed it. Bare units, tens and hundreds close with magnitude 1.
type Group struct {
	// Coeff is the accumulated sub-value, e.g. 200 in "two hundred thousand".
	Coeff int64
	// Magnitude is the multiplier: 1, 1_000, 1_000_000, ...
	// "hundred" never appears here; it scales Coeff instead.
	Magnitude int64
}

// Value returns the group's contribution to the final number.
func (g Group) Value() int64 {
	return g.Coeff * g.Magnitude
}

// Expression is the structured result of parsing a token sequence.
// Invariants maintained by the parser:
//   - groups are ordered strictly descending by magnitude;
//   - the decimal tail, if present, holds only single digits 0-9;
//   - when ordinal is set, the ordinal word was the final token.
//
// Expressions are built fresh per conversion and never mutated after
// the parser returns them.
type Expression struct {
	groups  []Group
	tail    []int
	decimal bool
	ordinal bool
}

// Groups returns the closed magnitude groups in descending order.
func (e *Expression) Groups() []Group {
	return e.groups
}

// DecimalTail returns the fractional digits and whether a decimal
// point appeared at all. The tail may be empty for an input that ends
// at "point".
func (e *Expression) DecimalTail() ([]int, bool) {
	return e.tail, e.decimal
}

// IsOrdinal reports whether an ordinal marker closed the expression.
func (e *Expression) IsOrdinal() bool {
	return e.ordinal
}
