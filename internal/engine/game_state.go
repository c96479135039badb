package engine

import "github.com/lgbarn/chessvar-go/internal/chess"

// advance moves the game on after an accepted move by mover.
//
// The race is only scored after Black replies, so a king reaching the last
// row is not a win until the opponent has had one move to also get there.
func (g *Game) advance(mover chess.Colour) {
	if mover == chess.White {
		g.toMove = chess.Black
		return
	}

	whiteHome := g.kingOnLastRow(chess.White)
	blackHome := g.kingOnLastRow(chess.Black)

	switch {
	case whiteHome && !blackHome:
		g.state = chess.WhiteWon
	case whiteHome && blackHome:
		g.state = chess.Tied
	case blackHome:
		g.state = chess.BlackWon
	default:
		g.toMove = chess.White
	}
}

// kingOnLastRow reports whether the colour's king stands on the far row.
// A colour without a king never counts as arrived.
func (g *Game) kingOnLastRow(colour chess.Colour) bool {
	sq, ok := g.board.FindKing(colour)
	return ok && sq.Row() == chess.LastRow
}

// IsFinished returns true if no further moves are accepted.
func (g *Game) IsFinished() bool {
	return g.state.IsTerminal()
}

// Winner returns the winning colour, or false when the game is unfinished
// or tied.
func (g *Game) Winner() (chess.Colour, bool) {
	switch g.state {
	case chess.WhiteWon:
		return chess.White, true
	case chess.BlackWon:
		return chess.Black, true
	}
	return chess.White, false
}
