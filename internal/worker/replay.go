package worker

import (
	"runtime"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessvar-go/internal/chess"
	"github.com/lgbarn/chessvar-go/internal/config"
	"github.com/lgbarn/chessvar-go/internal/engine"
	"github.com/lgbarn/chessvar-go/internal/errors"
	"github.com/lgbarn/chessvar-go/internal/output"
)

// FENTag is the script tag giving a game its own starting position.
const FENTag = "FEN"

// Replay plays a game's moves on a fresh engine game. Rejected moves are
// recorded and skipped unless cfg.Replay.StopOnReject is set.
func Replay(game *chess.Game, cfg *config.Config) *output.GameReport {
	report := &output.GameReport{
		Label: game.Label(),
		Moves: game.PlyCount(),
	}

	g, err := startPosition(game, cfg)
	if err != nil {
		report.Err = err
		return report
	}

	for _, m := range game.Moves {
		err := g.Move(m.From, m.To)
		if err == nil {
			continue
		}
		var moveErr *errors.MoveError
		if !errors.As(err, &moveErr) {
			moveErr = &errors.MoveError{Err: err, From: m.From, To: m.To}
		}
		moveErr.Game = report.Label
		moveErr.Line = int(m.Line)
		report.Rejections = append(report.Rejections, moveErr)

		if cfg.Replay.StopOnReject {
			break
		}
	}

	report.Game = g
	return report
}

// startPosition picks the game's FEN tag, then the configured start
// position, then the fixed initial layout.
func startPosition(game *chess.Game, cfg *config.Config) (*engine.Game, error) {
	fen, source := cfg.Replay.StartFEN, "configured start position"
	if game.HasTag(FENTag) {
		fen, source = game.GetTag(FENTag), FENTag+" tag"
	}
	if fen == "" {
		return engine.NewGame(), nil
	}
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, source)
	}
	return g, nil
}

// NewReplayFunc returns a ProcessFunc that replays each item with cfg.
func NewReplayFunc(cfg *config.Config) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		return ProcessResult{
			Game:   item.Game,
			Index:  item.Index,
			Report: Replay(item.Game, cfg),
		}
	}
}

// ReplayAll replays every game on a pool sized by cfg.Replay.Workers and
// returns the reports in input order. With cfg.Replay.StopAfter set, the
// pool is stopped once that many rejected games are seen and the reports
// end no later than the last of them.
func ReplayAll(games []*chess.Game, cfg *config.Config) []*output.GameReport {
	workers := cfg.Replay.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	pool := NewPool(NewReplayFunc(cfg), WithWorkers(workers), WithBufferSize(workers*2))
	pool.Start()

	go func() {
		for i, g := range games {
			if !pool.Submit(WorkItem{Game: g, Index: i}) {
				break
			}
		}
		pool.Close()
	}()

	limit := cfg.Replay.StopAfter
	rejected := 0
	byIndex := make(map[int]*output.GameReport, len(games))
	for result := range pool.Results() {
		byIndex[result.Index] = result.Report
		if limit > 0 && result.Report.Rejected() {
			rejected++
			if rejected >= limit {
				pool.Stop()
			}
		}
	}

	indices := maps.Keys(byIndex)
	slices.Sort(indices)

	// A stopped pool may skip queued items, so keep only the unbroken run
	// of indices from zero.
	reports := make([]*output.GameReport, 0, len(indices))
	rejected = 0
	for _, i := range indices {
		if i != len(reports) {
			break
		}
		r := byIndex[i]
		reports = append(reports, r)
		if limit > 0 && r.Rejected() {
			rejected++
			if rejected == limit {
				break
			}
		}
	}
	return reports
}
