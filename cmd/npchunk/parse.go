package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/pkg/errors"

	"github.com/ling0322/npchunk"
	"github.com/ling0322/npchunk/internal/config"
	"github.com/ling0322/npchunk/internal/logger"
)

type parseOptions struct {
	grammarPath string
	maxTrees    int
	label       string
	debug       bool
}

func parseCmd(cfg *config.Config, log *logger.Logger) *commander.Command {
	opts := &parseOptions{}
	cmd := &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			return runParse(opts, log, args, os.Stdin, os.Stdout)
		},
		UsageLine: "parse [options] [file]",
		Short:     "parses a sentence and prints its trees and noun phrase chunks",
		Long: `
parses a sentence and prints every parse tree followed by its noun phrase chunks

	$ ./npchunk parse [-g <grammar>] [-max <trees>] [-label NP] [-debug] [file]

The sentence is read from file, or from standard input when no file is given.
`,
		Flag: *flag.NewFlagSet("parse", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&opts.grammarPath, "g", cfg.GrammarPath, "Grammar file (.cfg or .yaml), built-in grammar if empty")
	cmd.Flag.IntVar(&opts.maxTrees, "max", cfg.MaxTrees, "Maximum number of trees to print, 0 for all")
	cmd.Flag.StringVar(&opts.label, "label", cfg.ChunkLabel, "Label of chunk nodes")
	cmd.Flag.BoolVar(&opts.debug, "debug", cfg.Debug, "Print the chart while parsing")
	return cmd
}

func runParse(opts *parseOptions, log *logger.Logger, args []string, in io.Reader, out io.Writer) error {
	if opts.maxTrees < 0 {
		return errors.Errorf("-max must not be negative, got %d", opts.maxTrees)
	}
	grammar, err := loadGrammar(opts.grammarPath)
	if err != nil {
		return err
	}
	sentence, err := readSentence(args, in, out)
	if err != nil {
		return err
	}

	parser := npchunk.NewParser(grammar)
	parser.MaxTrees = opts.maxTrees
	if opts.debug {
		log.SetLevel(logger.LevelDebug)
		parser.SetLogger(log)
		parser.DebugMode()
	}

	tokens := npchunk.Normalize(sentence)
	log.Debug("tokens: %s", strings.Join(tokens, " "))
	forest, err := parser.Parse(tokens)
	if err != nil {
		var unknown *npchunk.UnknownWordError
		if errors.As(err, &unknown) {
			fmt.Fprintln(out, unknown.Error())
			return nil
		}
		return err
	}
	if forest.Empty() {
		fmt.Fprintln(out, "Could not parse sentence.")
		return nil
	}

	heading := "Noun Phrase Chunks"
	if opts.label != npchunk.NounPhrase {
		heading = opts.label + " Chunks"
	}
	count := 0
	for tree := range forest.Trees() {
		fmt.Fprintln(out, tree.Pretty())
		fmt.Fprintln(out)
		fmt.Fprintln(out, heading)
		for _, chunk := range npchunk.Chunks(tree, opts.label) {
			fmt.Fprintln(out, npchunk.ChunkWords(chunk))
		}
		fmt.Fprintln(out)
		count++
	}
	log.Debug("printed %d parse trees", count)
	return nil
}

// readSentence reads the whole file named by args, or prompts for one line
func readSentence(args []string, in io.Reader, out io.Writer) (string, error) {
	switch len(args) {
	case 0:
		fmt.Fprint(out, "Sentence: ")
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", errors.Wrap(err, "read sentence")
		}
		return line, nil
	case 1:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", errors.Wrapf(err, "read sentence from %s", args[0])
		}
		return string(data), nil
	}
	return "", errors.Errorf("expected at most one file, got %d arguments", len(args))
}

func loadGrammar(path string) (*npchunk.Grammar, error) {
	if path == "" {
		return npchunk.HolmesGrammar(), nil
	}
	return npchunk.LoadGrammarFile(path)
}
