// processor.go - Script replay and the demonstration game
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessvar-go/internal/chess"
	"github.com/lgbarn/chessvar-go/internal/config"
	"github.com/lgbarn/chessvar-go/internal/engine"
	"github.com/lgbarn/chessvar-go/internal/output"
	"github.com/lgbarn/chessvar-go/internal/parser"
	"github.com/lgbarn/chessvar-go/internal/worker"
)

// runStats counts what a run replayed.
type runStats struct {
	games    int
	accepted int
	rejected int
	failed   int // games that could not be set up
	flawed   int // games with a refused move or not set up
}

func (s *runStats) add(r *output.GameReport) {
	s.games++
	if r.Rejected() {
		s.flawed++
	}
	if r.Err != nil {
		s.failed++
		return
	}
	s.accepted += r.Accepted()
	s.rejected += len(r.Rejections)
}

// processInput parses all games from r. Games read before a parse error
// are kept.
func processInput(r io.Reader, name string, cfg *config.Config) []*chess.Game {
	cfg.CurrentInputFile = name

	p := parser.NewParser(r, cfg)
	games, err := p.ParseAllGames()
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error parsing %s: %v\n", name, err)
	}

	return games
}

// processAllInputs replays every game in the named files, or in stdin when
// there are none, and writes one report per game.
func processAllInputs(args []string, stdin io.Reader, cfg *config.Config) (runStats, error) {
	var stats runStats
	w := output.NewReportWriter(cfg.OutputFile, cfg)

	if len(args) == 0 {
		games := processInput(stdin, "stdin", cfg)
		if err := outputReports(games, cfg, w, &stats); err != nil {
			return stats, err
		}
		return stats, w.Close()
	}

	for _, filename := range args {
		if stopReached(cfg, stats) {
			break
		}

		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(cfg.LogFile, "Error opening file %s: %v\n", filename, err)
			continue
		}

		games := processInput(file, filename, cfg)
		file.Close() //nolint:errcheck,gosec // G104: read-only file

		if err := outputReports(games, cfg, w, &stats); err != nil {
			return stats, err
		}
	}

	return stats, w.Close()
}

// stopReached reports whether -stopafter has ended the run.
func stopReached(cfg *config.Config, stats runStats) bool {
	return cfg.Replay.StopAfter > 0 && stats.flawed >= cfg.Replay.StopAfter
}

// outputReports replays games on the worker pool and writes the reports in
// input order. Only this goroutine writes to the log and output.
func outputReports(games []*chess.Game, cfg *config.Config, w output.ReportWriter, stats *runStats) error {
	replayCfg := *cfg
	if cfg.Replay.StopAfter > 0 {
		replayCfg.Replay.StopAfter -= stats.flawed
	}

	for _, report := range worker.ReplayAll(games, &replayCfg) {
		stats.add(report)
		logReport(cfg, report)
		if err := w.WriteReport(report); err != nil {
			return err
		}
	}
	return nil
}

func logReport(cfg *config.Config, r *output.GameReport) {
	if r.Err != nil {
		cfg.Logf(config.Summary, "%s: game %q not replayed: %v\n", cfg.CurrentInputFile, r.Label, r.Err)
		return
	}
	for _, rej := range r.Rejections {
		cfg.Logf(config.Commentary, "%s: rejected %v\n", cfg.CurrentInputFile, rej)
	}
}

// reportStatistics writes the run totals to the log.
func reportStatistics(cfg *config.Config, stats runStats) {
	cfg.Logf(config.Summary, "%d game(s) replayed, %d move(s) accepted, %d rejected.\n",
		stats.games, stats.accepted, stats.rejected)
	if stats.failed > 0 {
		cfg.Logf(config.Summary, "%d game(s) could not be set up.\n", stats.failed)
	}
}

// checkStartFEN reports a bad -fen value before any game is replayed.
func checkStartFEN(cfg *config.Config) error {
	if cfg.Replay.StartFEN == "" {
		return nil
	}
	_, err := engine.NewGameFromFEN(cfg.Replay.StartFEN)
	return err
}

// demoStep is one move of the demonstration game. When show is set the
// position is printed after the move is tried.
type demoStep struct {
	from, to string
	show     bool
}

var demoGame = []demoStep{
	{from: "a2", to: "a7"},
	{from: "f2", to: "g4"},
	{from: "b2", to: "f6"},
	{from: "g1", to: "a7"},
	{from: "c2", to: "e1"},
	{from: "g4", to: "f6"},
	{from: "e1", to: "g2"},
	{from: "h1", to: "g2"},
	{from: "c1", to: "e2"},
	{from: "g2", to: "h3", show: true},
	{from: "b1", to: "f5", show: true},
	{from: "h2", to: "e2"},
	{from: "a1", to: "a2"},
}

// runDemo plays the demonstration game from the initial position, printing
// the position at the marked steps. Rejected steps are logged and skipped.
func runDemo(cfg *config.Config) (*engine.Game, error) {
	g := engine.NewGame()
	for i, step := range demoGame {
		if err := g.Move(step.from, step.to); err != nil {
			cfg.Logf(config.Commentary, "demo step %d: %v\n", i+1, err)
		}
		if !step.show {
			continue
		}
		if err := showPosition(cfg, g); err != nil {
			return g, err
		}
	}
	return g, nil
}

func showPosition(cfg *config.Config, g *engine.Game) error {
	if cfg.Output.JSONFormat {
		return output.WriteJSON(cfg.OutputFile, output.StateToJSON(g))
	}

	if err := output.RenderBoard(cfg.OutputFile, g.Board()); err != nil {
		return err
	}
	if cfg.Output.ShowThreats {
		if err := output.RenderThreats(cfg.OutputFile, g.Threats(chess.White), g.Threats(chess.Black)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(cfg.OutputFile)
	return err
}
