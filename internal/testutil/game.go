package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chessvar-go/internal/chess"
	"github.com/lgbarn/chessvar-go/internal/config"
	"github.com/lgbarn/chessvar-go/internal/parser"
)

// ParseTestScripts parses a move script and returns all games found, or
// nil if parsing fails.
func ParseTestScripts(script string) []*chess.Game {
	cfg := config.NewConfig()
	cfg.Verbosity = config.Silent
	games, err := parser.NewParser(strings.NewReader(script), cfg).ParseAllGames()
	if err != nil {
		return nil
	}
	return games
}

// MustParseScripts parses a move script and returns all games found.
// It calls t.Fatal if parsing fails or no games are found.
func MustParseScripts(t testing.TB, script string) []*chess.Game {
	t.Helper()
	games := ParseTestScripts(script)
	if len(games) == 0 {
		t.Fatalf("failed to parse any games from script:\n%s", script)
	}
	return games
}

// MustParseScript parses a move script and returns its first game.
func MustParseScript(t testing.TB, script string) *chess.Game {
	t.Helper()
	return MustParseScripts(t, script)[0]
}

// BoardOf builds a board from placements written as a piece code and a
// square, e.g. "WK a1" or "BR h8". It calls t.Fatal on malformed entries.
func BoardOf(t testing.TB, placements ...string) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	for _, pl := range placements {
		fields := strings.Fields(pl)
		if len(fields) != 2 || len(fields[0]) != 2 {
			t.Fatalf("placement %q: want \"<code> <square>\"", pl)
		}
		var colour chess.Colour
		switch fields[0][0] {
		case 'W':
			colour = chess.White
		case 'B':
			colour = chess.Black
		default:
			t.Fatalf("placement %q: bad colour", pl)
		}
		kind := chess.ParseKind(fields[0][1])
		if kind == chess.NoKind {
			t.Fatalf("placement %q: bad kind", pl)
		}
		sq, err := chess.ParseSquare(fields[1])
		if err != nil {
			t.Fatalf("placement %q: %v", pl, err)
		}
		board.Set(sq, colour, kind)
	}
	return board
}

// Squares builds a square set from labels. It panics on malformed labels.
func Squares(labels ...string) chess.SquareSet {
	var s chess.SquareSet
	for _, l := range labels {
		s = s.Add(chess.MustParseSquare(l))
	}
	return s
}
