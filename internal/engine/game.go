package engine

import "github.com/lgbarn/chessvar-go/internal/chess"

// initialLayout is the fixed starting position.
var initialLayout = []struct {
	label  string
	colour chess.Colour
	kind   chess.Kind
}{
	{"a1", chess.White, chess.King},
	{"b1", chess.White, chess.Bishop},
	{"c1", chess.White, chess.Knight},
	{"f1", chess.Black, chess.Knight},
	{"g1", chess.Black, chess.Bishop},
	{"h1", chess.Black, chess.King},
	{"a2", chess.White, chess.Rook},
	{"b2", chess.White, chess.Bishop},
	{"c2", chess.White, chess.Knight},
	{"f2", chess.Black, chess.Knight},
	{"g2", chess.Black, chess.Bishop},
	{"h2", chess.Black, chess.Rook},
}

// Game is one king race game: the position, the side to move, the
// terminal status and the threat sets derived from the position.
//
// A Game is not safe for concurrent use. Independent games share nothing
// and may be used from different goroutines.
type Game struct {
	board   chess.Board
	toMove  chess.Colour
	state   chess.GameState
	threats ThreatSets
	plies   int
}

// Snapshot is a comparable copy of everything a Game exposes.
type Snapshot struct {
	Board   chess.Board
	Turn    chess.Colour
	State   chess.GameState
	Threats ThreatSets
	Plies   int
}

// NewGame creates a game in the fixed starting position with White to move.
func NewGame() *Game {
	g := &Game{toMove: chess.White, state: chess.InProgress}
	for _, entry := range initialLayout {
		g.board.Set(chess.MustParseSquare(entry.label), entry.colour, entry.kind)
	}
	g.recomputeThreats()
	return g
}

// newGameFromBoard creates an in-progress game from an arbitrary position.
func newGameFromBoard(board *chess.Board, toMove chess.Colour) *Game {
	g := &Game{board: *board, toMove: toMove, state: chess.InProgress}
	g.recomputeThreats()
	return g
}

// Turn returns the side to move.
func (g *Game) Turn() chess.Colour {
	return g.toMove
}

// State returns the terminal status of the game.
func (g *Game) State() chess.GameState {
	return g.state
}

// Plies returns the number of accepted moves.
func (g *Game) Plies() int {
	return g.plies
}

// Board returns a copy of the current position.
func (g *Game) Board() *chess.Board {
	return g.board.Copy()
}

// PieceAt returns the piece on the labelled square.
func (g *Game) PieceAt(label string) (chess.Piece, error) {
	sq, err := chess.ParseSquare(label)
	if err != nil {
		return chess.Piece{}, err
	}
	return g.board.Get(sq), nil
}

// Threats returns the squares the given colour's pieces could move to.
func (g *Game) Threats(colour chess.Colour) chess.SquareSet {
	return g.threats.Of(colour)
}

// CheckChecker reports whether any king stands on a square threatened by
// the opposing colour.
func (g *Game) CheckChecker() bool {
	return AnyKingInCheck(&g.board, g.threats)
}

// Snapshot captures the observable state of the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:   g.board,
		Turn:    g.toMove,
		State:   g.state,
		Threats: g.threats,
		Plies:   g.plies,
	}
}

// recomputeThreats rebuilds both threat sets from the current position.
func (g *Game) recomputeThreats() {
	g.threats = ComputeThreats(&g.board)
}
