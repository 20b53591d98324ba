package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ling0322/npchunk/internal/logger"
)

func defaultOptions() *parseOptions {
	return &parseOptions{label: "NP"}
}

func TestRunParseFromPrompt(t *testing.T) {
	var out bytes.Buffer
	err := runParse(defaultOptions(), logger.NewDiscard(), nil, strings.NewReader("Holmes sat.\n"), &out)
	if err != nil {
		t.Fatal(err)
	}
	expected := "Sentence: (S\n  (NP\n    (N\n      holmes))\n  (VP\n    (V\n      sat)))\n\nNoun Phrase Chunks\nholmes\n\n"
	if out.String() != expected {
		t.Fatalf("'%s' != '%s'", out.String(), expected)
	}
}

func TestRunParseFromFile(t *testing.T) {
	dir := t.TempDir()
	sentencePath := filepath.Join(dir, "sentence.txt")
	if err := os.WriteFile(sentencePath, []byte("Holmes lit a pipe."), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	err := runParse(defaultOptions(), logger.NewDiscard(), []string{sentencePath}, strings.NewReader(""), &out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), "Sentence:") {
		t.Fatal("no prompt expected when reading a file")
	}
	if !strings.Contains(out.String(), "Noun Phrase Chunks\nholmes\npipe\n") {
		t.Fatalf("unexpected output '%s'", out.String())
	}
}

func TestRunParseMessages(t *testing.T) {
	testCases := []struct {
		sentence string
		expected string
	}{
		{"Holmes sat quietly.", `Grammar does not cover some of the input words: "quietly".`},
		{"Sat Holmes.", "Could not parse sentence."},
		{"1887", "Could not parse sentence."},
	}
	for _, tc := range testCases {
		var out bytes.Buffer
		err := runParse(defaultOptions(), logger.NewDiscard(), nil, strings.NewReader(tc.sentence), &out)
		if err != nil {
			t.Fatal(err)
		}
		if out.String() != "Sentence: "+tc.expected+"\n" {
			t.Fatalf("unexpected output '%s' for '%s'", out.String(), tc.sentence)
		}
	}
}

func TestRunParseOptions(t *testing.T) {
	dir := t.TempDir()
	grammarPath := filepath.Join(dir, "pipes.cfg")
	grammar := "NP -> NP NP | N\nN -> \"pipe\"\n"
	if err := os.WriteFile(grammarPath, []byte(grammar), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	opts := &parseOptions{grammarPath: grammarPath, maxTrees: 2, label: "N"}
	err := runParse(opts, logger.NewDiscard(), nil, strings.NewReader("pipe pipe pipe pipe"), &out)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out.String(), "N Chunks\n"); n != 2 {
		t.Fatalf("2 trees expected, got %d in '%s'", n, out.String())
	}

	var debugOut bytes.Buffer
	log := logger.NewWithWriters("info", &debugOut, &debugOut)
	opts = &parseOptions{grammarPath: grammarPath, label: "NP", debug: true}
	out.Reset()
	if err := runParse(opts, log, nil, strings.NewReader("pipe pipe"), &out); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(debugOut.String(), "chart row 2") {
		t.Fatalf("chart rows expected in '%s'", debugOut.String())
	}

	opts = &parseOptions{grammarPath: filepath.Join(dir, "missing.cfg"), label: "NP"}
	if err := runParse(opts, logger.NewDiscard(), nil, strings.NewReader("pipe"), &out); err == nil {
		t.Fatal("error expected for a missing grammar")
	}
	opts = &parseOptions{maxTrees: -1, label: "NP"}
	if err := runParse(opts, logger.NewDiscard(), nil, strings.NewReader("pipe"), &out); err == nil {
		t.Fatal("error expected for negative -max")
	}
	if err := runParse(defaultOptions(), logger.NewDiscard(), []string{"a", "b"}, strings.NewReader(""), &out); err == nil {
		t.Fatal("error expected for two files")
	}
}

func TestRunGrammar(t *testing.T) {
	var out bytes.Buffer
	if err := runGrammar("", logger.NewDiscard(), &out); err != nil {
		t.Fatal(err)
	}
	text := out.String()
	if !strings.HasPrefix(text, "# start: S\nS -> NP VP | S Conj S | PP S\n") {
		t.Fatalf("unexpected grammar '%s'", text)
	}
	if !strings.Contains(text, `Conj -> "and" | "until"`) {
		t.Fatalf("lexicon expected in '%s'", text)
	}
}

func TestRunParseQuietAtInfoLevel(t *testing.T) {
	var out, logOut bytes.Buffer
	log := logger.NewWithWriters("info", &logOut, &logOut)
	if err := runParse(defaultOptions(), log, nil, strings.NewReader("Holmes sat."), &out); err != nil {
		t.Fatal(err)
	}
	if logOut.Len() != 0 {
		t.Fatalf("no log lines expected at info level, got '%s'", logOut.String())
	}
	if !strings.Contains(out.String(), "Noun Phrase Chunks\nholmes\n") {
		t.Fatalf("unexpected output '%s'", out.String())
	}
}
