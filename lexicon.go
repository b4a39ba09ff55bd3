package wordnum

import (
	"slices"
	"sync"
)

// Entry is the lexicon record for a single word: its grammatical role
// and base numeric value.
type Entry struct {
	Kind  Kind
	Value int64
}

// Lexicon is an immutable mapping from normalized words to entries.
// A Lexicon is built once, registered under a locale code, and shared
// read-only between concurrent conversions.
type Lexicon struct {
	words map[string]Entry
}

// NewLexicon builds a Lexicon from the given word table. The table is
// copied, so the caller may reuse or mutate its map afterwards.
func NewLexicon(words map[string]Entry) *Lexicon {
	w := make(map[string]Entry, len(words))
	for word, e := range words {
		w[Normalize(word)] = e
	}
	return &Lexicon{words: w}
}

// Lookup returns the entry for an already-normalized word.
func (l *Lexicon) Lookup(word string) (Entry, bool) {
	e, ok := l.words[word]
	return e, ok
}

// Len returns the number of words in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Locale identifies a registered lexicon by its language code.
type Locale string

// English is the locale shipped with the package and the default for
// converters constructed without an explicit locale.
const English Locale = "en"

var (
	registryMu sync.RWMutex
	registry   = map[Locale]*Lexicon{}
)

// RegisterLocale makes a lexicon available under the given code.
// The tokenizer, parser and evaluator are locale-agnostic; adding a
// language is only a matter of registering its word table.
// Registration is expected to happen during package init, before
// converters are constructed.
func RegisterLocale(locale Locale, lex *Lexicon) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[locale] = lex
}

// lookupLocale resolves a registered lexicon.
func lookupLocale(locale Locale) (*Lexicon, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	lex, ok := registry[locale]
	return lex, ok
}

// Locales returns the codes of all registered lexicons.
func Locales() []Locale {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Locale, 0, len(registry))
	for loc := range registry {
		out = append(out, loc)
	}
	slices.Sort(out)
	return out
}
