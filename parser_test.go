package npchunk

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
)

const attachmentRules = `
S -> NP VP
NP -> N | N PP
VP -> V NP PP | V NP
PP -> P NP
`

const attachmentLexicon = `
N -> "holmes" | "pipe" | "armchair"
V -> "lit"
P -> "in"
`

func newTestParser(t *testing.T, blocks ...string) *Parser {
	t.Helper()
	parser, err := NewParserFromText(blocks...)
	if err != nil {
		t.Fatal(err)
	}
	return parser
}

func treeStrings(forest *Forest) []string {
	trees := []string{}
	for tree := range forest.Trees() {
		trees = append(trees, tree.String())
	}
	return trees
}

func parseSentence(t *testing.T, parser *Parser, sentence string) *Forest {
	t.Helper()
	forest, err := parser.ParseText(sentence)
	if err != nil {
		t.Fatal(err)
	}
	return forest
}

func TestParseSingleTree(t *testing.T) {
	parser := newTestParser(t, sentenceRules, sentenceLexicon)
	forest := parseSentence(t, parser, "Holmes sat.")
	if !reflect.DeepEqual(forest.Tokens(), []string{"holmes", "sat"}) {
		t.Fatalf("unexpected tokens %v", forest.Tokens())
	}

	trees := forest.Collect(0)
	if len(trees) != 1 {
		t.Fatalf("1 tree expected, got %d", len(trees))
	}
	expected := NewInternal("S",
		NewInternal("NP", NewInternal("N", NewLeaf("holmes"))),
		NewInternal("VP", NewInternal("V", NewLeaf("sat"))))
	if !trees[0].Equal(expected) {
		t.Fatalf("'%s' != '%s'", trees[0], expected)
	}
	if trees[0].String() != "(S (NP (N holmes)) (VP (V sat)))" {
		t.Fatalf("unexpected string '%s'", trees[0])
	}

	chunks := NPChunks(trees[0])
	if len(chunks) != 1 || ChunkWords(chunks[0]) != "holmes" {
		t.Fatalf("unexpected chunks %v", chunks)
	}
}

func TestParseAttachmentAmbiguity(t *testing.T) {
	parser := newTestParser(t, attachmentRules, attachmentLexicon)
	forest := parseSentence(t, parser, "Holmes lit pipe in armchair")

	expected := []string{
		"(S (NP (N holmes)) (VP (V lit) (NP (N pipe)) (PP (P in) (NP (N armchair)))))",
		"(S (NP (N holmes)) (VP (V lit) (NP (N pipe) (PP (P in) (NP (N armchair))))))",
	}
	for i := 0; i < 3; i++ {
		trees := treeStrings(forest)
		if !reflect.DeepEqual(trees, expected) {
			t.Fatalf("run %d: %v != %v", i, trees, expected)
		}
	}

	// A new parse gives the same sequence
	again := treeStrings(parseSentence(t, parser, "Holmes lit pipe in armchair"))
	if !reflect.DeepEqual(again, expected) {
		t.Fatalf("%v != %v", again, expected)
	}
}

func TestParseAmbiguityCount(t *testing.T) {
	// Binary bracketings of n words: Catalan(n-1) trees
	parser := newTestParser(t, `
NP -> NP NP | N
N -> "pipe"
`)
	catalan := []int{1, 1, 2, 5, 14, 42}
	for n := 1; n <= len(catalan); n++ {
		tokens := strings.Fields(strings.Repeat("pipe ", n))
		forest, err := parser.Parse(tokens)
		if err != nil {
			t.Fatal(err)
		}
		trees := treeStrings(forest)
		if len(trees) != catalan[n-1] {
			t.Fatalf("%d words: %d trees expected, got %d", n, catalan[n-1], len(trees))
		}
		distinct := map[string]bool{}
		for _, tree := range trees {
			distinct[tree] = true
		}
		if len(distinct) != len(trees) {
			t.Fatalf("%d words: duplicated trees in %v", n, trees)
		}
	}
}

func TestParseArbitraryArity(t *testing.T) {
	parser := newTestParser(t, `
S -> N "sat" Adv Adv | N V Adv Adv | N V
Adv -> "down" | "here"
N -> "holmes"
V -> "sat"
`)
	forest := parseSentence(t, parser, "holmes sat down here")
	expected := []string{
		"(S (N holmes) sat (Adv down) (Adv here))",
		"(S (N holmes) (V sat) (Adv down) (Adv here))",
	}
	trees := treeStrings(forest)
	if !reflect.DeepEqual(trees, expected) {
		t.Fatalf("%v != %v", trees, expected)
	}
}

func TestParseRecursion(t *testing.T) {
	parser := newTestParser(t, `
S -> NP VP | S Conj S
NP -> N | AP NP
AP -> Adj | Adj AP
VP -> V | VP Adv
N -> "holmes" | "she"
Adj -> "enigmatical" | "little"
V -> "smiled" | "chuckled"
Adv -> "here" | "never"
Conj -> "and"
`)
	forest := parseSentence(t, parser, "Enigmatical little Holmes smiled here here and she chuckled")
	trees := forest.Collect(0)
	// AP NP splits two ways over "enigmatical little holmes"
	if len(trees) != 2 {
		t.Fatalf("2 trees expected, got %v", treeStrings(forest))
	}
	for _, tree := range trees {
		if !reflect.DeepEqual(tree.Leaves(), forest.Tokens()) {
			t.Fatalf("leaves %v != tokens %v", tree.Leaves(), forest.Tokens())
		}
	}
}

func TestParseUnknownWord(t *testing.T) {
	parser := newTestParser(t, sentenceRules, sentenceLexicon)
	forest, err := parser.ParseText("Holmes sat quietly")
	if forest != nil {
		t.Fatal("no forest expected")
	}
	var unknown *UnknownWordError
	if !errors.As(err, &unknown) {
		t.Fatalf("*UnknownWordError expected, got %v", err)
	}
	if unknown.Word != "quietly" || unknown.Position != 2 {
		t.Fatalf("unexpected error %#v", unknown)
	}
	if !strings.Contains(err.Error(), "quietly") {
		t.Fatalf("unexpected message %s", err)
	}
}

func TestParseWordOnlyInsideLongerRule(t *testing.T) {
	// "down" appears in a right side but has no rule of its own
	parser := newTestParser(t, `
S -> N V "down"
N -> "holmes"
V -> "sat"
`)
	_, err := parser.ParseText("holmes sat down")
	var unknown *UnknownWordError
	if !errors.As(err, &unknown) || unknown.Word != "down" {
		t.Fatalf("unknown word down expected, got %v", err)
	}
}

func TestParseNoParse(t *testing.T) {
	parser := newTestParser(t, sentenceRules, sentenceLexicon)
	forest := parseSentence(t, parser, "sat Holmes")
	if !forest.Empty() {
		t.Fatal("empty forest expected")
	}
	if len(forest.Collect(0)) != 0 {
		t.Fatal("no tree expected")
	}
}

func TestParseEmptyInput(t *testing.T) {
	parser := newTestParser(t, sentenceRules, sentenceLexicon)
	forest := parseSentence(t, parser, "1887 ... 42")
	if len(forest.Tokens()) != 0 {
		t.Fatalf("no token expected, got %v", forest.Tokens())
	}
	if !forest.Empty() {
		t.Fatal("empty forest expected")
	}
	for range forest.Trees() {
		t.Fatal("no tree expected")
	}
}

func TestParseMaxTrees(t *testing.T) {
	parser := newTestParser(t, `
NP -> NP NP | N
N -> "pipe"
`)
	tokens := strings.Fields("pipe pipe pipe pipe pipe")

	parser.MaxTrees = 3
	forest, err := parser.Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(treeStrings(forest)); n != 3 {
		t.Fatalf("3 trees expected, got %d", n)
	}
	if n := len(forest.Collect(2)); n != 2 {
		t.Fatalf("2 trees expected, got %d", n)
	}

	parser.MaxTrees = 0
	forest, err = parser.Parse(tokens)
	if err != nil {
		t.Fatal(err)
	}
	if n := len(treeStrings(forest)); n != 14 {
		t.Fatalf("14 trees expected, got %d", n)
	}
}

func TestForestEarlyStop(t *testing.T) {
	parser := newTestParser(t, `
NP -> NP NP | N
N -> "pipe"
`)
	forest, err := parser.Parse(strings.Fields(strings.Repeat("pipe ", 8)))
	if err != nil {
		t.Fatal(err)
	}
	first := ""
	for tree := range forest.Trees() {
		first = tree.String()
		break
	}
	// Restarting yields the same first tree
	for tree := range forest.Trees() {
		if tree.String() != first {
			t.Fatalf("'%s' != '%s'", tree, first)
		}
		break
	}
}

func TestForestTreesDoNotShareNodes(t *testing.T) {
	parser := newTestParser(t, `
NP -> NP NP | N
N -> "pipe"
`)
	forest, err := parser.Parse(strings.Fields("pipe pipe pipe pipe"))
	if err != nil {
		t.Fatal(err)
	}
	seen := map[*Node]bool{}
	for tree := range forest.Trees() {
		var walk func(*Node)
		walk = func(n *Node) {
			if seen[n] {
				t.Fatalf("node %s shared between trees", n)
			}
			seen[n] = true
			for _, child := range n.Children {
				walk(child)
			}
		}
		walk(tree)
	}
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Debug(format string, v ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func TestParseDebugMode(t *testing.T) {
	parser := newTestParser(t, sentenceRules, sentenceLexicon)
	logger := &recordingLogger{}
	parser.SetLogger(logger)

	parseSentence(t, parser, "Holmes sat")
	if len(logger.lines) != 0 {
		t.Fatal("nothing should be logged without debug mode")
	}

	parser.DebugMode()
	parseSentence(t, parser, "Holmes sat")
	if len(logger.lines) != 2 {
		t.Fatalf("one line per span length expected, got %v", logger.lines)
	}
	if !strings.Contains(logger.lines[0], "[0: NP/1 N/1]") {
		t.Fatalf("unexpected chart row '%s'", logger.lines[0])
	}
	if !strings.Contains(logger.lines[1], "[0: S/1]") {
		t.Fatalf("unexpected chart row '%s'", logger.lines[1])
	}
}

func TestParseHolmesSentences(t *testing.T) {
	parser := NewParser(HolmesGrammar())
	sentences := []string{
		"Holmes sat.",
		"Holmes lit a pipe.",
		"We arrived the day before Thursday.",
		"Holmes sat in the red armchair and he chuckled.",
		"My companion smiled an enigmatical smile.",
		"Holmes chuckled to himself.",
		"She never said a word until we were at the door here.",
		"Holmes sat down and lit his pipe.",
		"I had a country walk on Thursday and came home in a dreadful mess.",
		"I had a little moist red paint in the palm of my hand.",
	}
	for _, sentence := range sentences {
		forest := parseSentence(t, parser, sentence)
		if forest.Empty() {
			t.Fatalf("'%s' should be parsed", sentence)
		}
		for tree := range forest.Trees() {
			if tree.Label() != "S" {
				t.Fatalf("'%s': root %s", sentence, tree.Label())
			}
			if !reflect.DeepEqual(tree.Leaves(), forest.Tokens()) {
				t.Fatalf("'%s': leaves %v != tokens %v", sentence, tree.Leaves(), forest.Tokens())
			}
		}
	}
}

func TestParseConcurrently(t *testing.T) {
	parser := NewParser(HolmesGrammar())
	sentence := "Holmes sat in the red armchair and he chuckled."
	expected := treeStrings(parseSentence(t, parser, sentence))

	var wg sync.WaitGroup
	results := make([][]string, 8)
	errs := make([]error, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			forest, err := parser.ParseText(sentence)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = treeStrings(forest)
		}(i)
	}
	wg.Wait()
	for i := range results {
		if errs[i] != nil {
			t.Fatal(errs[i])
		}
		if !reflect.DeepEqual(results[i], expected) {
			t.Fatalf("goroutine %d: %v != %v", i, results[i], expected)
		}
	}
}
