package engine

import (
	"github.com/lgbarn/chessvar-go/internal/chess"
	"github.com/lgbarn/chessvar-go/internal/errors"
)

// LegalMoves returns the destinations Move would accept for the piece on
// the labelled square. Each candidate is tried with the same tentative
// apply and rollback as a real move.
func (g *Game) LegalMoves(from string) (chess.SquareSet, error) {
	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return 0, err
	}
	piece, err := g.movablePiece(fromSq)
	if err != nil {
		return 0, err
	}

	var legal chess.SquareSet
	for _, to := range PseudoLegalMoves(piece, g.board.Occupied()).Squares() {
		if target := g.board.Get(to); !target.IsEmpty() && target.Colour == piece.Colour {
			continue
		}
		if g.tryMove(fromSq, to) {
			legal = legal.Add(to)
		}
	}
	return legal, nil
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (g *Game) HasLegalMoves() bool {
	if g.state.IsTerminal() {
		return false
	}
	for _, p := range g.board.Pieces(g.toMove) {
		moves, err := g.LegalMoves(p.Square.String())
		if err == nil && moves.Len() > 0 {
			return true
		}
	}
	return false
}

// ProbeMoves returns the squares the piece on from would reach if it stood
// on probe, against the current occupancy. The game is not modified.
func (g *Game) ProbeMoves(from, probe string) (chess.SquareSet, error) {
	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return 0, err
	}
	probeSq, err := chess.ParseSquare(probe)
	if err != nil {
		return 0, err
	}
	piece := g.board.Get(fromSq)
	if piece.IsEmpty() {
		return 0, errors.ErrEmptySquare
	}
	return ProbeMoves(piece, g.board.Occupied(), probeSq), nil
}

// tryMove reports whether moving from -> to keeps both kings safe. The
// position is always rolled back.
func (g *Game) tryMove(from, to chess.Square) bool {
	tx := g.apply(from, to)
	safe := !g.CheckChecker()
	g.rollback(tx)
	return safe
}
