package wordnum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// english returns the registered English lexicon for direct stage tests.
func english(t *testing.T) *Lexicon {
	t.Helper()
	lex, ok := lookupLocale(English)
	require.True(t, ok, "English lexicon not registered")
	return lex
}

func TestTokenizeSplitsHyphens(t *testing.T) {
	tokens, err := Tokenize("Twenty-Three", english(t))
	require.NoError(t, err)
	require.Len(t, tokens, 2)

	assert.Equal(t, "Twenty", tokens[0].Raw)
	assert.Equal(t, "twenty", tokens[0].Word)
	assert.Equal(t, KindTen, tokens[0].Kind)
	assert.Equal(t, int64(20), tokens[0].Value)
	assert.Equal(t, 1, tokens[0].Pos)

	assert.Equal(t, "three", tokens[1].Word)
	assert.Equal(t, KindUnit, tokens[1].Kind)
	assert.Equal(t, int64(3), tokens[1].Value)
	assert.Equal(t, 2, tokens[1].Pos)
}

func TestTokenizeSwallowsConjunction(t *testing.T) {
	tokens, err := Tokenize("one hundred and five", english(t))
	require.NoError(t, err)
	require.Len(t, tokens, 3)

	words := []string{tokens[0].Word, tokens[1].Word, tokens[2].Word}
	assert.Equal(t, []string{"one", "hundred", "five"}, words)
	// positions count the swallowed "and"
	assert.Equal(t, 4, tokens[2].Pos)
}

func TestTokenizeUnknownWord(t *testing.T) {
	_, err := Tokenize("one banana two", english(t))
	var te *TokenizeError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, "banana", te.Word)
	assert.Equal(t, 2, te.Pos)
	assert.Contains(t, te.Error(), "banana")
}

func TestTokenizeEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n", "- -"} {
		_, err := Tokenize(in, english(t))
		var te *TokenizeError
		require.ErrorAs(t, err, &te, "input %q", in)
		assert.Equal(t, "empty input", te.Error())
	}
}

func TestValidate(t *testing.T) {
	lex := english(t)
	tests := []struct {
		in   string
		want bool
	}{
		{"one", true},
		{"twenty one", true},
		{"seven hundred and twenty three", true},
		{"twenty-first", true},
		{"three point one four", true},
		// Validate checks the lexicon, not the grammar
		{"one two", true},
		{"some text", false},
		{"one two text", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Validate(tt.in, lex), "Validate(%q)", tt.in)
	}
}
