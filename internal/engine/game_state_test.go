package engine

import (
	"testing"

	"github.com/lgbarn/chessvar-go/internal/chess"
	"github.com/lgbarn/chessvar-go/internal/errors"
)

func TestRaceOutcome(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		moves      [][2]string
		wantState  chess.GameState
		wantWinner chess.Colour
		wantWon    bool
	}{
		{
			name:      "white arrives, black cannot follow",
			fen:       "8/K6k/8/8/8/8/8/8 w",
			moves:     [][2]string{{"a7", "a8"}, {"h7", "g7"}},
			wantState: chess.WhiteWon, wantWinner: chess.White, wantWon: true,
		},
		{
			name:      "black answers white's arrival",
			fen:       "8/K6k/8/8/8/8/8/8 w",
			moves:     [][2]string{{"a7", "a8"}, {"h7", "h8"}},
			wantState: chess.Tied,
		},
		{
			name:      "black arrives first",
			fen:       "8/7k/8/K7/8/8/8/8 w",
			moves:     [][2]string{{"a5", "a6"}, {"h7", "h8"}},
			wantState: chess.BlackWon, wantWinner: chess.Black, wantWon: true,
		},
		{
			name:      "nobody arrives",
			fen:       "8/8/K6k/8/8/8/8/8 w",
			moves:     [][2]string{{"a6", "a7"}, {"h6", "h7"}},
			wantState: chess.InProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustFEN(t, tt.fen)
			for _, m := range tt.moves {
				if err := g.Move(m[0], m[1]); err != nil {
					t.Fatalf("Move(%s, %s) error = %v", m[0], m[1], err)
				}
			}
			if g.State() != tt.wantState {
				t.Errorf("State() = %v, want %v", g.State(), tt.wantState)
			}
			winner, won := g.Winner()
			if won != tt.wantWon || (won && winner != tt.wantWinner) {
				t.Errorf("Winner() = %v, %v, want %v, %v", winner, won, tt.wantWinner, tt.wantWon)
			}
			if g.IsFinished() != tt.wantState.IsTerminal() {
				t.Errorf("IsFinished() = %v, want %v", g.IsFinished(), tt.wantState.IsTerminal())
			}
		})
	}
}

// A white king on the last row is not scored until black has replied.
func TestRaceOutcome_ScoredAfterBlackReply(t *testing.T) {
	g := mustFEN(t, "8/K6k/8/8/8/8/8/8 w")
	if err := g.Move("a7", "a8"); err != nil {
		t.Fatalf("Move(a7, a8) error = %v", err)
	}
	if g.State() != chess.InProgress {
		t.Errorf("State() after white arrives = %v, want %v", g.State(), chess.InProgress)
	}
	if g.Turn() != chess.Black {
		t.Errorf("Turn() = %v, want Black", g.Turn())
	}
}

func TestMove_AfterGameOver(t *testing.T) {
	g := mustFEN(t, "8/K6k/8/8/8/8/8/8 w")
	for _, m := range [][2]string{{"a7", "a8"}, {"h7", "h8"}} {
		if err := g.Move(m[0], m[1]); err != nil {
			t.Fatalf("Move(%s, %s) error = %v", m[0], m[1], err)
		}
	}

	before := g.Snapshot()
	for _, m := range [][2]string{{"a8", "b8"}, {"h8", "g8"}} {
		if err := g.Move(m[0], m[1]); !errors.Is(err, errors.ErrGameOver) {
			t.Errorf("Move(%s, %s) error = %v, want %v", m[0], m[1], err, errors.ErrGameOver)
		}
	}
	if g.Snapshot() != before {
		t.Error("moves after game over changed the game")
	}
	if g.HasLegalMoves() {
		t.Error("HasLegalMoves() = true after game over")
	}
}

func TestRaceOutcome_MissingKing(t *testing.T) {
	// Without a black king only white can arrive.
	g := mustFEN(t, "8/K7/8/8/8/8/8/7r w")
	if err := g.Move("a7", "a8"); err != nil {
		t.Fatalf("Move(a7, a8) error = %v", err)
	}
	if err := g.Move("h1", "h7"); err != nil {
		t.Fatalf("Move(h1, h7) error = %v", err)
	}
	if g.State() != chess.WhiteWon {
		t.Errorf("State() = %v, want %v", g.State(), chess.WhiteWon)
	}
}
