package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/ling0322/npchunk/internal/config"
	"github.com/ling0322/npchunk/internal/logger"
)

func allCommands(cfg *config.Config, log *logger.Logger) *commander.Command {
	return &commander.Command{
		UsageLine: "npchunk <command> [arguments]",
		Short:     "parses sentences with a context-free grammar and prints noun phrase chunks",
		Flag:      *flag.NewFlagSet("npchunk", flag.ExitOnError),
		Subcommands: []*commander.Command{
			parseCmd(cfg, log),
			grammarCmd(cfg, log),
		},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New("error")
		log.Fatal("Failed to load configuration: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log := logger.New("error")
		log.Fatal("Invalid configuration: ", err)
	}

	log := logger.New(cfg.LogLevel)
	cmd := allCommands(cfg, log)
	if err := cmd.Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
