package wordnum

import "fmt"

// TokenizeError reports a word that is not in the lexicon, or an input
// that is empty after trimming.
type TokenizeError struct {
	// Word is the offending word; empty for empty input.
	Word string
	// Pos is the 1-based word position; 0 for empty input.
	Pos int
}

func (e *TokenizeError) Error() string {
	if e.Word == "" {
		return "empty input"
	}
	return fmt.Sprintf("unknown word %q at word %d", e.Word, e.Pos)
}

// ParseError reports a token sequence that violates the number grammar.
type ParseError struct {
	// Word is the word at which parsing failed.
	Word string
	// Message describes the violated rule.
	Message string
}

func (e *ParseError) Error() string {
	if e.Word == "" {
		return e.Message
	}
	return fmt.Sprintf("%s at %q", e.Message, e.Word)
}

// EvalError reports a structured expression that cannot be evaluated.
type EvalError struct {
	Message string
}

func (e *EvalError) Error() string {
	return e.Message
}

// LocaleError reports a locale code with no registered lexicon.
type LocaleError struct {
	Code string
}

func (e *LocaleError) Error() string {
	return fmt.Sprintf("no lexicon registered for locale %q", e.Code)
}

// Stage names the pipeline stage a ConvertError originated in.
type Stage string

const (
	StageTokenize Stage = "tokenize"
	StageParse    Stage = "parse"
	StageEvaluate Stage = "evaluate"
)

// ConvertError is the single error family surfaced by Converter.Convert.
// It wraps the stage error, so errors.As still reaches the underlying
// *TokenizeError, *ParseError or *EvalError when callers need details.
type ConvertError struct {
	// Stage is the pipeline stage that failed.
	Stage Stage
	// Input is the text being converted.
	Input string
	// Err is the underlying stage error.
	Err error
}

func (e *ConvertError) Error() string {
	return fmt.Sprintf("convert %q: %s: %v", e.Input, e.Stage, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}
