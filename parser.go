package npchunk

// Logger receives the debug output of a parser
type Logger interface {
	Debug(format string, v ...any)
}

// Parser is the struct for CFG parsing. A Parser only reads its grammar, so
// once configured it may be used from several goroutines
type Parser struct {
	grammar *Grammar
	logger  Logger
	isDebug bool

	// MaxTrees bounds how many trees a forest yields. 0 means no bound
	MaxTrees int
}

// NewParser creates a new instance of CFG parser with grammar
func NewParser(grammar *Grammar) *Parser {
	return &Parser{grammar: grammar}
}

// NewParserFromText parses the grammar blocks and creates a parser for it
func NewParserFromText(blocks ...string) (*Parser, error) {
	grammar, err := ParseGrammar(blocks...)
	if err != nil {
		return nil, err
	}
	return NewParser(grammar), nil
}

// DebugMode enables debug output: each chart row is written to the logger
func (p *Parser) DebugMode() {
	p.isDebug = true
}

// SetLogger sets the logger used in debug mode
func (p *Parser) SetLogger(logger Logger) {
	p.logger = logger
}

// Grammar returns the grammar of the parser
func (p *Parser) Grammar() *Grammar {
	return p.grammar
}

// Parse parses tokens using the grammar and returns the forest of trees rooted
// at the start symbol over the whole input. If some token is not covered by a
// rule A -> "token", Parse fails with *UnknownWordError before doing any
// work. A sentence without parse gives an empty forest, not an error
func (p *Parser) Parse(tokens []string) (*Forest, error) {
	for i, tok := range tokens {
		if !p.grammar.Covers(tok) {
			return nil, &UnknownWordError{Word: tok, Position: i}
		}
	}

	tokens = append([]string(nil), tokens...)
	forest := &Forest{tokens: tokens, limit: p.MaxTrees}
	if len(tokens) == 0 {
		return forest, nil
	}

	c := newChart(p.grammar, tokens)
	var logger Logger
	if p.isDebug {
		logger = p.logger
	}
	c.fill(logger)
	forest.root = c.cell(p.grammar.start, 0, len(tokens))
	return forest, nil
}

// ParseText normalizes a raw sentence and parses its tokens
func (p *Parser) ParseText(raw string) (*Forest, error) {
	return p.Parse(Normalize(raw))
}
