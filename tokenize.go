package wordnum

// Tokenize splits text into normalized word tokens tagged with their
// lexicon entries. Words are split on whitespace and hyphens; the
// conjunction "and" is swallowed and never emitted. Unknown words and
// empty input produce a *TokenizeError. Tokenize is a pure function:
// the lexicon is read-only and no state is shared between calls.
func Tokenize(text string, lex *Lexicon) ([]Token, error) {
	words := SplitWords(text)
	if len(words) == 0 {
		return nil, &TokenizeError{}
	}

	tokens := make([]Token, 0, len(words))
	for i, raw := range words {
		word := Normalize(raw)
		entry, ok := lex.Lookup(word)
		if !ok {
			return nil, &TokenizeError{Word: raw, Pos: i + 1}
		}
		if entry.Kind == KindAnd {
			continue
		}
		tokens = append(tokens, Token{
			Raw:   raw,
			Word:  word,
			Kind:  entry.Kind,
			Value: entry.Value,
			Pos:   i + 1,
		})
	}
	return tokens, nil
}

// Validate reports whether every word of text is in the lexicon.
// It does not check grammar; "one two" validates even though it does
// not parse.
func Validate(text string, lex *Lexicon) bool {
	_, err := Tokenize(text, lex)
	return err == nil
}
