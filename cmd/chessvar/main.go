// chessvar replays move scripts for the king-race chess variant and reports
// which moves the rules accept.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessvar-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessvar version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *demo {
		if _, err := runDemo(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := checkStartFEN(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error in -fen: %v\n", err)
		os.Exit(1)
	}

	stats, err := processAllInputs(flag.Args(), os.Stdin, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	reportStatistics(cfg, stats)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.SetLog(file)
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFilename = *outputFile
	cfg.SetOutput(file)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessvar [options] [script-files...]\n\n")
	fmt.Fprintf(os.Stderr, "Replays move scripts for the king-race chess variant.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nScript format:\n")
	fmt.Fprintf(os.Stderr, "  [Game \"name\"]   starts a new game\n")
	fmt.Fprintf(os.Stderr, "  [FEN \"...\"]     sets the game's start position\n")
	fmt.Fprintf(os.Stderr, "  a2a7 a2-a7 a2 a7  a move from one square to another\n")
	fmt.Fprintf(os.Stderr, "  { ... }  ; ...    comments\n")
}
