package npchunk

import (
	"fmt"
	"strings"
)

// chartChild is one constituent of a derivation: either the word at a token
// position or a completed chart cell
type chartChild struct {
	cell     *chartCell
	position int
}

// derivation is one way to build a cell: an alternative of its nonterminal
// and the constituents covering the cell's span, from left to right
type derivation struct {
	alternative int
	children    []chartChild
}

// chartCell holds every derivation of symbol over tokens [start, end). Trees
// are never stored, they are enumerated from the derivations on demand
type chartCell struct {
	symbol      string
	start, end  int
	derivations []*derivation
}

// chart is the table of completed cells for a single parse. Cells are stored
// in an arena indexed by (start, end, symbol)
type chart struct {
	grammar *Grammar
	tokens  []string
	symbols map[string]int
	cells   []*chartCell
}

func newChart(grammar *Grammar, tokens []string) *chart {
	c := &chart{
		grammar: grammar,
		tokens:  tokens,
		symbols: map[string]int{},
	}
	for i, nt := range grammar.nonterminals {
		c.symbols[nt] = i
	}
	n := len(tokens)
	c.cells = make([]*chartCell, (n+1)*(n+1)*len(grammar.nonterminals))
	return c
}

func (c *chart) index(symbol string, start, end int) int {
	n := len(c.tokens)
	return (start*(n+1)+end)*len(c.grammar.nonterminals) + c.symbols[symbol]
}

// cell returns the completed cell of symbol over [start, end), or nil when
// symbol does not derive that span
func (c *chart) cell(symbol string, start, end int) *chartCell {
	return c.cells[c.index(symbol, start, end)]
}

// fill completes the chart bottom-up by span length. Within a span the
// nonterminals are visited in unit-rule order, so the cell of B over a span
// is complete before any A -> B over the same span is tried. Every other
// constituent covers a strictly shorter span
func (c *chart) fill(logger Logger) {
	n := len(c.tokens)
	for length := 1; length <= n; length++ {
		for start := 0; start+length <= n; start++ {
			end := start + length
			for _, nt := range c.grammar.unitOrder {
				c.complete(nt, start, end)
			}
		}
		if logger != nil {
			logger.Debug("chart row %d: %s", length, c.row(length))
		}
	}
}

// complete collects the derivations of nt over [start, end). Alternatives
// are tried in declaration order, split points from left to right
func (c *chart) complete(nt string, start, end int) {
	cell := &chartCell{symbol: nt, start: start, end: end}
	for alternative, right := range c.grammar.alternatives[nt] {
		if len(right) > end-start {
			// Each symbol covers at least one token
			continue
		}
		c.match(right, start, end, nil, func(children []chartChild) {
			cell.derivations = append(cell.derivations, &derivation{
				alternative: alternative,
				children:    append([]chartChild(nil), children...),
			})
		})
	}
	if len(cell.derivations) > 0 {
		c.cells[c.index(nt, start, end)] = cell
	}
}

// match finds every way to cover [start, end) with the symbols in right and
// calls emit with the constituents of each
func (c *chart) match(right []Symbol, start, end int, children []chartChild, emit func([]chartChild)) {
	symbol, rest := right[0], right[1:]
	if len(rest) == 0 {
		if child, ok := c.constituent(symbol, start, end); ok {
			emit(append(children, child))
		}
		return
	}

	for split := start + 1; split <= end-len(rest); split++ {
		child, ok := c.constituent(symbol, start, split)
		if !ok {
			continue
		}
		c.match(rest, split, end, append(children, child), emit)
	}
}

// constituent checks symbol covers [start, end). A terminal covers exactly
// one token holding the same word
func (c *chart) constituent(symbol Symbol, start, end int) (chartChild, bool) {
	if symbol.IsTerminal() {
		if end == start+1 && c.tokens[start] == symbol.Name {
			return chartChild{position: start}, true
		}
		return chartChild{}, false
	}
	cell := c.cell(symbol.Name, start, end)
	if cell == nil {
		return chartChild{}, false
	}
	return chartChild{cell: cell, position: start}, true
}

// row formats the cells of one span length for debugging
func (c *chart) row(length int) string {
	columns := []string{}
	for start := 0; start+length <= len(c.tokens); start++ {
		symbols := []string{}
		for _, nt := range c.grammar.nonterminals {
			if cell := c.cell(nt, start, start+length); cell != nil {
				symbols = append(symbols, fmt.Sprintf("%s/%d", nt, len(cell.derivations)))
			}
		}
		columns = append(columns, fmt.Sprintf("[%d: %s]", start, strings.Join(symbols, " ")))
	}
	return strings.Join(columns, " ")
}
