// Package engine implements move generation, legality checking and game
// state transitions for the king race variant.
package engine

import (
	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessvar-go/internal/chess"
)

// generator computes the pseudo-legal destinations of a piece standing on
// from, given the occupied squares of both colours.
type generator func(occupied chess.SquareSet, from chess.Square) chess.SquareSet

// generators dispatches move generation by kind.
var generators = [chess.NumKinds]generator{
	chess.King:   kingMoves,
	chess.Bishop: bishopMoves,
	chess.Knight: knightMoves,
	chess.Rook:   rookMoves,
}

// leap is a fixed jump on the linear board. fileDelta is the horizontal
// component of the offset; it decides whether the jump would cross the
// left or right edge from a given origin column.
type leap struct {
	offset    int
	fileDelta int
}

var knightLeaps = []leap{
	{-17, -1}, {-15, 1}, {-10, -2}, {-6, 2},
	{6, -2}, {10, 2}, {15, -1}, {17, 1},
}

var kingLeaps = []leap{
	{-9, -1}, {-8, 0}, {-7, 1}, {-1, -1},
	{1, 1}, {7, -1}, {8, 0}, {9, 1},
}

// PseudoLegalMoves returns the squares p could move to from its own square.
// Turn order, friendly occupancy and king safety are not considered.
func PseudoLegalMoves(p chess.Piece, occupied chess.SquareSet) chess.SquareSet {
	return ProbeMoves(p, occupied, p.Square)
}

// ProbeMoves returns the squares p could move to if it stood on probe.
// The piece itself is not modified.
func ProbeMoves(p chess.Piece, occupied chess.SquareSet, probe chess.Square) chess.SquareSet {
	return MovesFor(p.Kind, occupied, probe)
}

// MovesFor returns the pseudo-legal destinations for a piece of the given
// kind standing on from.
func MovesFor(kind chess.Kind, occupied chess.SquareSet, from chess.Square) chess.SquareSet {
	if kind <= chess.NoKind || kind >= chess.NumKinds || !from.IsValid() {
		return 0
	}
	gen := generators[kind]
	if gen == nil {
		return 0
	}
	return gen(occupied, from)
}

// Sliders use magic bitboard lookups. Both the engine's squares and
// dragontoothmg's bitboards put a1 at bit 0, and the lookups include the
// first occupied square on each ray.
func rookMoves(occupied chess.SquareSet, from chess.Square) chess.SquareSet {
	return chess.SquareSet(dragontoothmg.CalculateRookMoveBitboard(uint8(from), uint64(occupied)))
}

func bishopMoves(occupied chess.SquareSet, from chess.Square) chess.SquareSet {
	return chess.SquareSet(dragontoothmg.CalculateBishopMoveBitboard(uint8(from), uint64(occupied)))
}

func knightMoves(_ chess.SquareSet, from chess.Square) chess.SquareSet {
	return jump(from, knightLeaps)
}

func kingMoves(_ chess.SquareSet, from chess.Square) chess.SquareSet {
	return jump(from, kingLeaps)
}

// jump applies each leap whose horizontal component stays on the board
// from the origin column. Range checks alone would let a leap from the
// h-file wrap onto the a-file of a neighbouring rank.
func jump(from chess.Square, leaps []leap) chess.SquareSet {
	var moves chess.SquareSet
	col := from.Col()
	for _, l := range leaps {
		if c := col + l.fileDelta; c < 0 || c >= chess.BoardSize {
			continue
		}
		to := int(from) + l.offset
		if to < 0 || to >= chess.NumSquares {
			continue
		}
		moves = moves.Add(chess.Square(to))
	}
	return moves
}
