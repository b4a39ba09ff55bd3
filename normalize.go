package wordnum

import (
	"strings"
	"unicode"
)

// Normalize returns the canonical lookup form of a single word:
// trimmed and lowercased. Lexicon keys and tokenizer lookups both go
// through this, so a lexicon may be declared with mixed-case keys.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// isSeparator reports whether r splits words. Hyphens separate like
// whitespace, so a compound such as "twenty-three" yields two words.
func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || r == '-'
}

// SplitWords splits text into raw word fragments on whitespace and
// hyphens. Empty fragments (doubled separators, leading/trailing
// hyphens) are dropped.
func SplitWords(text string) []string {
	return strings.FieldsFunc(text, isSeparator)
}
