package npchunk

import (
	"fmt"
	"io"
	"strings"
)

// Grammar is a context-free grammar. It is immutable once created, so one
// Grammar can be shared by any number of parsers and goroutines
type Grammar struct {
	start string

	// Nonterminals in the order of their first declaration
	nonterminals []string

	// Map from nonterminal to its alternatives, in declaration order
	alternatives map[string][][]Symbol

	// Map from a word to the nonterminals having a rule A -> "word"
	lexicon map[string][]string

	// Nonterminals ordered so that B comes before A for each unit rule A -> B
	unitOrder []string
}

// ParseGrammar parses grammar from one or more blocks of rule text and merges
// them into one grammar. Conventionally the nonterminal rules and the lexicon
// are written as separate blocks. The start symbol is the left side of the
// first rule
func ParseGrammar(blocks ...string) (*Grammar, error) {
	return buildGrammar("", blocks)
}

// ParseGrammarWithStart is like ParseGrammar but uses start as the start
// symbol
func ParseGrammarWithStart(start string, blocks ...string) (*Grammar, error) {
	return buildGrammar(start, blocks)
}

// declaredRule is a rule with the grammar line it comes from
type declaredRule struct {
	*Rule
	line int
}

func buildGrammar(start string, blocks []string) (*Grammar, error) {
	g := &Grammar{
		start:        start,
		nonterminals: []string{},
		alternatives: map[string][][]Symbol{},
		lexicon:      map[string][]string{},
	}

	lines := strings.Split(strings.Join(blocks, "\n"), "\n")
	declared := []declaredRule{}
	for i, line := range lines {
		line = strings.TrimSpace(line)

		// Comments
		if line == "" || line[0] == '#' {
			continue
		}

		// Parse this rule
		rules, err := ParseRule(line)
		if err != nil {
			if grammarErr, ok := err.(*GrammarError); ok {
				grammarErr.Line = i + 1
			}
			return nil, err
		}
		for _, rule := range rules {
			if g.add(rule) {
				declared = append(declared, declaredRule{rule, i + 1})
			}
		}
	}
	if len(g.nonterminals) == 0 {
		return nil, &GrammarError{Kind: ErrEmptyGrammar}
	}
	if g.start == "" {
		g.start = g.nonterminals[0]
	} else if _, ok := g.alternatives[g.start]; !ok {
		return nil, &GrammarError{
			Kind:   ErrUndefinedSymbol,
			Symbol: g.start,
			Text:   "start symbol"}
	}

	if err := g.checkUndefined(declared); err != nil {
		return nil, err
	}
	if err := g.orderUnitRules(); err != nil {
		return nil, err
	}
	return g, nil
}

// add appends rule to the grammar. It returns false when the same alternative
// was already declared for rule.Left
func (g *Grammar) add(rule *Rule) bool {
	alternatives, ok := g.alternatives[rule.Left]
	if !ok {
		g.nonterminals = append(g.nonterminals, rule.Left)
	}
	for _, right := range alternatives {
		if sameSymbols(right, rule.Right) {
			return false
		}
	}
	g.alternatives[rule.Left] = append(alternatives, rule.Right)

	if rule.IsLexical() {
		word := rule.Right[0].Name
		g.lexicon[word] = append(g.lexicon[word], rule.Left)
	}
	return true
}

// checkUndefined makes sure every nonterminal in a right side has rules
func (g *Grammar) checkUndefined(declared []declaredRule) error {
	for _, rule := range declared {
		for _, symbol := range rule.Right {
			if symbol.IsTerminal() {
				continue
			}
			if _, ok := g.alternatives[symbol.Name]; !ok {
				return &GrammarError{
					Kind:   ErrUndefinedSymbol,
					Symbol: symbol.Name,
					Line:   rule.line,
					Text:   rule.String()}
			}
		}
	}
	return nil
}

// orderUnitRules computes the order nonterminals are completed in over a
// single span. A cycle of unit rules would derive infinitely many trees for
// one span, so it is rejected
func (g *Grammar) orderUnitRules() error {
	graph := NewDirectedGraph()
	for _, nt := range g.nonterminals {
		graph.AddVertex(Vertex(nt))
		for _, right := range g.alternatives[nt] {
			if len(right) == 1 && !right[0].IsTerminal() {
				graph.Add(Vertex(nt), Vertex(right[0].Name))
			}
		}
	}

	if components := graph.StrongComponents(); len(components) > 0 {
		names := []string{}
		for _, v := range components[0] {
			names = append(names, string(v))
		}
		return &GrammarError{
			Kind:   ErrUnitCycle,
			Symbol: names[0],
			Text:   strings.Join(names, ", ")}
	}

	for _, v := range graph.PostOrder() {
		g.unitOrder = append(g.unitOrder, string(v))
	}
	return nil
}

func sameSymbols(a, b []Symbol) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Start returns the start symbol
func (g *Grammar) Start() string {
	return g.start
}

// Nonterminals returns the nonterminals in the order of first declaration
func (g *Grammar) Nonterminals() []string {
	return append([]string(nil), g.nonterminals...)
}

// Alternatives returns the right sides of nonterminal in declaration order.
// It returns nil if nonterminal has no rule
func (g *Grammar) Alternatives(nonterminal string) [][]Symbol {
	alternatives := g.alternatives[nonterminal]
	if alternatives == nil {
		return nil
	}
	copied := make([][]Symbol, len(alternatives))
	for i, right := range alternatives {
		copied[i] = append([]Symbol(nil), right...)
	}
	return copied
}

// IsTerminal returns true if symbol is a literal word
func (g *Grammar) IsTerminal(symbol Symbol) bool {
	return symbol.IsTerminal()
}

// Covers returns true if some single-terminal rule A -> "word" exists
func (g *Grammar) Covers(word string) bool {
	return len(g.lexicon[word]) > 0
}

// Rules returns all rules in declaration order
func (g *Grammar) Rules() []*Rule {
	rules := []*Rule{}
	for _, nt := range g.nonterminals {
		for _, right := range g.alternatives[nt] {
			rules = append(rules, &Rule{
				Left:  nt,
				Right: append([]Symbol(nil), right...)})
		}
	}
	return rules
}

// Print writes the grammar to w, one declaration per nonterminal
func (g *Grammar) Print(w io.Writer) error {
	for _, nt := range g.nonterminals {
		alternatives := []string{}
		for _, right := range g.alternatives[nt] {
			rule := Rule{Left: nt, Right: right}
			alternatives = append(alternatives, rule.String()[len(nt)+len(" -> "):])
		}
		if _, err := fmt.Fprintf(w, "%s -> %s\n", nt, strings.Join(alternatives, " | ")); err != nil {
			return err
		}
	}
	return nil
}

// String converts the grammar to text that ParseGrammar accepts
func (g *Grammar) String() string {
	var b strings.Builder
	g.Print(&b)
	return b.String()
}
