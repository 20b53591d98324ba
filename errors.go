package npchunk

import (
	"fmt"
)

// GrammarErrorKind classifies a GrammarError
type GrammarErrorKind int

const (
	// ErrSyntax is a declaration line that can not be parsed
	ErrSyntax GrammarErrorKind = iota

	// ErrUndefinedSymbol is a nonterminal used in a right side without any
	// rule of its own
	ErrUndefinedSymbol

	// ErrUnitCycle is a chain of unit rules leading back to its head, like
	// A -> B and B -> A, or A -> A. Such a grammar derives infinitely many
	// trees over one span, so it is rejected when the grammar is loaded. Some
	// chart parsers accept such grammars and cut the cycles while enumerating
	// trees; this one does not
	ErrUnitCycle

	// ErrEmptyGrammar is a grammar text without any rule
	ErrEmptyGrammar
)

func (k GrammarErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax error"
	case ErrUndefinedSymbol:
		return "undefined symbol"
	case ErrUnitCycle:
		return "unit rule cycle"
	case ErrEmptyGrammar:
		return "empty grammar"
	}
	return "unknown"
}

// GrammarError reports a malformed grammar. It is returned at load time,
// before any sentence is parsed
type GrammarError struct {
	Kind GrammarErrorKind

	// Symbol that causes the error, for ErrUndefinedSymbol and ErrUnitCycle
	Symbol string

	// Line number in the grammar text, starting from 1. 0 if unknown
	Line int

	// Text of the offending line or a detail message
	Text string
}

func (e *GrammarError) Error() string {
	switch e.Kind {
	case ErrUndefinedSymbol:
		return fmt.Sprintf("grammar: undefined symbol %s referenced in '%s'", e.Symbol, e.Text)
	case ErrUnitCycle:
		return fmt.Sprintf("grammar: unit rules of %s form a cycle: %s", e.Symbol, e.Text)
	case ErrEmptyGrammar:
		return "grammar: no rules"
	}
	if e.Line > 0 {
		return fmt.Sprintf("grammar: line %d: %s", e.Line, e.Text)
	}
	return "grammar: " + e.Text
}

func syntaxError(line int, ruleText, detail string) *GrammarError {
	return &GrammarError{
		Kind: ErrSyntax,
		Line: line,
		Text: fmt.Sprintf("%s in '%s'", detail, ruleText),
	}
}

// UnknownWordError is returned by Parse when a token is not covered by any
// single-terminal rule of the grammar
type UnknownWordError struct {
	Word string

	// Position of the word in the token sequence
	Position int
}

func (e *UnknownWordError) Error() string {
	return fmt.Sprintf("Grammar does not cover some of the input words: %q.", e.Word)
}
