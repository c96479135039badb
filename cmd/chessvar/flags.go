// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessvar-go/internal/config"
)

var (
	// Output options
	outputFile  = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput  = flag.Bool("J", false, "Output in JSON format")
	showBoard   = flag.Bool("board", true, "Print the final board of each game")
	showThreats = flag.Bool("threats", false, "Print both sides' threatened squares")

	// Replay options
	workers      = flag.Int("workers", 0, "Number of replay workers (0 = number of CPUs)")
	stopOnReject = flag.Bool("stop", false, "Stop replaying a game at its first rejected move")
	stopAfter    = flag.Int("stopafter", 0, "Stop the run after N games with rejected moves (0 = no limit)")
	startFEN     = flag.String("fen", "", "Start position for games without a FEN tag")
	demo         = flag.Bool("demo", false, "Play the demonstration game and exit")

	// Diagnostics
	logFile = flag.String("l", "", "Write diagnostics to log file")
	verbose = flag.Bool("v", false, "Report every rejected move")
	quiet   = flag.Bool("q", false, "Silent mode (no totals)")
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags copies the parsed flags into cfg.
func applyFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.ShowThreats = *showThreats

	cfg.Replay.Workers = *workers
	cfg.Replay.StopOnReject = *stopOnReject
	cfg.Replay.StopAfter = *stopAfter
	cfg.Replay.StartFEN = *startFEN

	applyVerbosityFlags(cfg)
}

// applyVerbosityFlags sets the log level. -q wins over -v.
func applyVerbosityFlags(cfg *config.Config) {
	if *verbose {
		cfg.Verbosity = config.Commentary
	}
	if *quiet {
		cfg.Verbosity = config.Silent
	}
}
