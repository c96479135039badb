package engine

import "github.com/lgbarn/chessvar-go/internal/chess"

// ThreatSets holds, per colour, every square that colour's pieces could
// move to. Squares holding friendly pieces are included; the sets are only
// used to test whether a king stands on an attacked square.
type ThreatSets [2]chess.SquareSet

// Of returns the threat set of the given colour.
func (t ThreatSets) Of(colour chess.Colour) chess.SquareSet {
	return t[colour]
}

// ComputeThreats rebuilds both threat sets from scratch.
func ComputeThreats(board *chess.Board) ThreatSets {
	var threats ThreatSets
	occupied := board.Occupied()
	for _, p := range board.All() {
		threats[p.Colour] = threats[p.Colour].Union(PseudoLegalMoves(p, occupied))
	}
	return threats
}

// IsInCheck returns true if any king of the given colour stands on a square
// the opposing colour threatens.
func IsInCheck(board *chess.Board, threats ThreatSets, colour chess.Colour) bool {
	enemy := threats.Of(colour.Opposite())
	for _, p := range board.Pieces(colour) {
		if p.Kind == chess.King && enemy.Has(p.Square) {
			return true
		}
	}
	return false
}

// AnyKingInCheck returns true if a king of either colour is attacked.
func AnyKingInCheck(board *chess.Board, threats ThreatSets) bool {
	return IsInCheck(board, threats, chess.White) || IsInCheck(board, threats, chess.Black)
}
