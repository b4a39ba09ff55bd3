package wordnum

import "fmt"

// Kind classifies a number word by its grammatical role.
// The set is closed: every lexicon entry carries exactly one Kind, and the
// parser switches exhaustively over it.
type Kind int

const (
	// KindUnit is a single digit word: "zero" through "nine".
	KindUnit Kind = iota
	// KindTeen is "ten" through "nineteen".
	KindTeen
	// KindTen is a tens word: "twenty", "thirty", ..., "ninety".
	KindTen
	// KindHundred is the word "hundred". It scales the open group
	// rather than closing it, so it gets its own kind.
	KindHundred
	// KindMagnitude is a group-closing multiplier: "thousand" and above.
	KindMagnitude
	// KindOrdinalUnit is an ordinal form of a unit, teen or tens word:
	// "first", "twelfth", "ninetieth".
	KindOrdinalUnit
	// KindOrdinalMagnitude is an ordinal form of "hundred" or a
	// group-closing magnitude: "hundredth", "thousandth", "millionth".
	KindOrdinalMagnitude
	// KindPoint is the decimal separator word "point".
	KindPoint
	// KindAnd is the conjunction "and", a no-op everywhere.
	KindAnd
)

// kindNames maps kinds to their string representations.
var kindNames = map[Kind]string{
	KindUnit:             "unit",
	KindTeen:             "teen",
	KindTen:              "ten",
	KindHundred:          "hundred",
	KindMagnitude:        "magnitude",
	KindOrdinalUnit:      "ordinal-unit",
	KindOrdinalMagnitude: "ordinal-magnitude",
	KindPoint:            "point",
	KindAnd:              "and",
}

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsOrdinal reports whether the kind marks an ordinal word.
func (k Kind) IsOrdinal() bool {
	return k == KindOrdinalUnit || k == KindOrdinalMagnitude
}

// Token is a single tagged word from the input. Tokens are immutable
// once produced by the tokenizer.
type Token struct {
	// Raw is the word as it appeared in the input.
	Raw string
	// Word is the normalized form used for the lexicon lookup.
	Word string
	// Kind is the grammatical role from the lexicon.
	Kind Kind
	// Value is the base numeric value. Structural tokens ("point",
	// "and") carry 0; ordinals carry their cardinal equivalent.
	Value int64
	// Pos is the 1-based word position in the input, for diagnostics.
	Pos int
}
