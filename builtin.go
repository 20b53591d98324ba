package npchunk

import (
	_ "embed"
)

//go:embed grammars/holmes.cfg
var holmesGrammar string

// HolmesGrammar returns the built-in grammar: a small English grammar
// covering sentences from the Sherlock Holmes stories
func HolmesGrammar() *Grammar {
	grammar, err := ParseGrammar(holmesGrammar)
	if err != nil {
		panic(err)
	}
	return grammar
}
