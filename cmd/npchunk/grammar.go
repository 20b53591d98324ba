package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/ling0322/npchunk/internal/config"
	"github.com/ling0322/npchunk/internal/logger"
)

func grammarCmd(cfg *config.Config, log *logger.Logger) *commander.Command {
	var grammarPath string
	cmd := &commander.Command{
		Run: func(cmd *commander.Command, args []string) error {
			return runGrammar(grammarPath, log, os.Stdout)
		},
		UsageLine: "grammar [-g <grammar>]",
		Short:     "checks a grammar and prints its rules",
		Long: `
checks a grammar and prints its rules, one declaration per nonterminal

	$ ./npchunk grammar [-g <grammar>]
`,
		Flag: *flag.NewFlagSet("grammar", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&grammarPath, "g", cfg.GrammarPath, "Grammar file (.cfg or .yaml), built-in grammar if empty")
	return cmd
}

func runGrammar(grammarPath string, log *logger.Logger, out io.Writer) error {
	grammar, err := loadGrammar(grammarPath)
	if err != nil {
		return err
	}
	log.Debug("start symbol: %s, %d nonterminals", grammar.Start(), len(grammar.Nonterminals()))
	fmt.Fprintf(out, "# start: %s\n", grammar.Start())
	return grammar.Print(out)
}
