package npchunk

import (
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// SymbolKind tells a terminal from a nonterminal
type SymbolKind int

const (
	// Nonterminal is a named category expanded by rules, like NP or VP
	Nonterminal SymbolKind = iota

	// Terminal is a literal word matched against input tokens
	Terminal
)

// Symbol represents a symbol in the right side of a rule
type Symbol struct {
	Kind SymbolKind
	Name string
}

// NonterminalSymbol creates a nonterminal symbol from name
func NonterminalSymbol(name string) Symbol {
	return Symbol{Kind: Nonterminal, Name: name}
}

// TerminalSymbol creates a terminal symbol from a literal word
func TerminalSymbol(word string) Symbol {
	return Symbol{Kind: Terminal, Name: word}
}

// IsTerminal returns true if s is a literal word
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

// String returns the symbol the way it is written in grammar text. Terminals
// are double quoted, or single quoted when the word holds a double quote
func (s Symbol) String() string {
	if s.IsTerminal() {
		if strings.Contains(s.Name, `"`) {
			return "'" + s.Name + "'"
		}
		return `"` + s.Name + `"`
	}
	return s.Name
}

var identifierRegexp = regexp.MustCompile(`^[A-Za-z_][-\w]*$`)

// isIdentifier checks name is a valid nonterminal name
func isIdentifier(name string) bool {
	return identifierRegexp.MatchString(name)
}

// Rule represents a production rule: Left -> Right[0] Right[1] ...
type Rule struct {
	Left  string
	Right []Symbol
}

// IsUnary returns true if it's a rule like A -> B or A -> "word"
func (r *Rule) IsUnary() bool {
	return len(r.Right) == 1
}

// IsLexical returns true if it's a single-terminal rule like N -> "holmes"
func (r *Rule) IsLexical() bool {
	return r.IsUnary() && r.Right[0].IsTerminal()
}

// String converts rule to string format
func (r *Rule) String() string {
	symbols := make([]string, 0, len(r.Right))
	for _, symbol := range r.Right {
		symbols = append(symbols, symbol.String())
	}
	return r.Left + " -> " + strings.Join(symbols, " ")
}

// ParseRule parses one declaration line. The line would be like:
//
//	VP -> V | V NP | V NP PP
//
// Then returns
//
//	[{VP, [V]}, {VP, [V, NP]}, {VP, [V, NP, PP]}]
//
// Quoted items ('word' or "word") are terminals, bare identifiers are
// nonterminals.
func ParseRule(ruleText string) (rules []*Rule, err error) {
	arrow := strings.Index(ruleText, "->")
	if arrow < 0 {
		return nil, syntaxError(0, ruleText, "missing '->'")
	}

	// Left part
	left := strings.TrimSpace(ruleText[:arrow])
	if !isIdentifier(left) {
		return nil, syntaxError(0, ruleText, "unexpected left side '"+left+"'")
	}

	// Right part
	alternatives, err := splitAlternatives(ruleText[arrow+2:])
	if err != nil {
		return nil, syntaxError(0, ruleText, err.Error())
	}
	for _, right := range alternatives {
		if len(right) == 0 {
			return nil, syntaxError(0, ruleText, "empty alternative")
		}
		rules = append(rules, &Rule{Left: left, Right: right})
	}
	return rules, nil
}

// splitAlternatives scans the right side of a declaration into alternatives.
// A '|' inside a quoted literal is a part of the literal
func splitAlternatives(text string) ([][]Symbol, error) {
	alternatives := [][]Symbol{}
	current := []Symbol{}
	i := 0
	for i < len(text) {
		c := text[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '|':
			alternatives = append(alternatives, current)
			current = []Symbol{}
			i++
		case c == '"' || c == '\'':
			end := strings.IndexByte(text[i+1:], c)
			if end < 0 {
				return nil, errors.Errorf("unterminated literal %s", text[i:])
			}
			word := text[i+1 : i+1+end]
			if word == "" {
				return nil, errors.New("empty literal")
			}
			current = append(current, TerminalSymbol(word))
			i += end + 2
		default:
			j := i
			for j < len(text) && !strings.ContainsRune(" \t\r\n|\"'", rune(text[j])) {
				j++
			}
			name := text[i:j]
			if !isIdentifier(name) {
				return nil, errors.Errorf("unexpected '%s'", name)
			}
			current = append(current, NonterminalSymbol(name))
			i = j
		}
	}
	alternatives = append(alternatives, current)
	return alternatives, nil
}
