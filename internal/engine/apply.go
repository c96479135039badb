package engine

import (
	"github.com/lgbarn/chessvar-go/internal/chess"
	"github.com/lgbarn/chessvar-go/internal/errors"
)

// transaction records the two squares a tentative move touches so the
// move can be rolled back exactly.
type transaction struct {
	from     chess.Square
	to       chess.Square
	moved    chess.Piece
	captured chess.Piece
}

// AttemptMove plays a move given as two square labels and reports whether
// it was accepted. A rejected move leaves the game unchanged.
func (g *Game) AttemptMove(from, to string) bool {
	return g.Move(from, to) == nil
}

// Move plays a move given as two square labels. On rejection it returns a
// *errors.MoveError wrapping the reason and the game is unchanged.
func (g *Game) Move(from, to string) error {
	if err := g.move(from, to); err != nil {
		return &errors.MoveError{Err: err, Ply: g.plies + 1, From: from, To: to}
	}
	return nil
}

func (g *Game) move(from, to string) error {
	toSq, err := chess.ParseSquare(to)
	if err != nil {
		return err
	}
	fromSq, err := chess.ParseSquare(from)
	if err != nil {
		return err
	}

	piece, err := g.movablePiece(fromSq)
	if err != nil {
		return err
	}
	if !PseudoLegalMoves(piece, g.board.Occupied()).Has(toSq) {
		return errors.ErrUnreachable
	}
	if target := g.board.Get(toSq); !target.IsEmpty() && target.Colour == piece.Colour {
		return errors.ErrOwnPiece
	}

	tx := g.apply(fromSq, toSq)
	if g.CheckChecker() {
		g.rollback(tx)
		return errors.ErrKingExposed
	}

	g.plies++
	g.advance(piece.Colour)
	return nil
}

// movablePiece returns the piece on sq if the side to move may move it.
func (g *Game) movablePiece(sq chess.Square) (chess.Piece, error) {
	piece := g.board.Get(sq)
	switch {
	case piece.IsEmpty():
		return piece, errors.ErrEmptySquare
	case g.state.IsTerminal():
		return piece, errors.ErrGameOver
	case piece.Colour != g.toMove:
		return piece, errors.ErrWrongTurn
	}
	return piece, nil
}

// apply relocates the piece on from to to, capturing any occupant, and
// rebuilds the threat sets.
func (g *Game) apply(from, to chess.Square) transaction {
	tx := transaction{
		from:     from,
		to:       to,
		moved:    g.board.Get(from),
		captured: g.board.Get(to),
	}
	g.board.Clear(from)
	g.board.Put(to, tx.moved)
	g.recomputeThreats()
	return tx
}

// rollback restores both squares touched by tx and rebuilds the threat sets.
func (g *Game) rollback(tx transaction) {
	g.board.Clear(tx.to)
	g.board.Put(tx.from, tx.moved)
	if !tx.captured.IsEmpty() {
		g.board.Put(tx.to, tx.captured)
	}
	g.recomputeThreats()
}
