// Package wordnum converts natural-language number expressions such as
// "twenty-three", "one hundred and first" or "one point two five" into
// numeric values.
//
// Conversion is a three-stage pipeline: the tokenizer tags each word
// with its lexicon entry, the parser builds a structured expression of
// descending magnitude groups (plus an optional decimal tail and an
// ordinal flag), and the evaluator folds the structure into a tagged
// integer or decimal Value. Each stage is pure; the only shared state
// is the immutable per-locale lexicon.
package wordnum

// Converter is the public entry point. It resolves a locale's lexicon
// once at construction and is safe for concurrent use.
type Converter struct {
	locale Locale
	lex    *Lexicon
}

// New returns a Converter for the given locale. The empty locale
// selects English. A locale with no registered lexicon produces a
// *LocaleError before any conversion runs.
func New(locale Locale) (*Converter, error) {
	if locale == "" {
		locale = English
	}
	lex, ok := lookupLocale(locale)
	if !ok {
		return nil, &LocaleError{Code: string(locale)}
	}
	return &Converter{locale: locale, lex: lex}, nil
}

// Locale returns the locale this converter was built for.
func (c *Converter) Locale() Locale {
	return c.locale
}

// Lexicon returns the converter's lexicon, e.g. for Validate.
func (c *Converter) Lexicon() *Lexicon {
	return c.lex
}

// Convert runs tokenizer → parser → evaluator over text. Any stage
// failure is wrapped in a *ConvertError naming the stage, so callers
// have a single error family to check; errors.As still reaches the
// underlying stage error.
func (c *Converter) Convert(text string) (Value, error) {
	tokens, err := Tokenize(text, c.lex)
	if err != nil {
		return Value{}, &ConvertError{Stage: StageTokenize, Input: text, Err: err}
	}

	expr, err := Parse(tokens)
	if err != nil {
		return Value{}, &ConvertError{Stage: StageParse, Input: text, Err: err}
	}

	v, err := Evaluate(expr)
	if err != nil {
		return Value{}, &ConvertError{Stage: StageEvaluate, Input: text, Err: err}
	}
	return v, nil
}

// Convert converts text with the English lexicon. It is shorthand for
// constructing a Converter with the default locale.
func Convert(text string) (Value, error) {
	c, err := New(English)
	if err != nil {
		return Value{}, err
	}
	return c.Convert(text)
}
