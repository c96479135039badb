package chess

// GameTag is the script tag naming a game.
const GameTag = "Game"

// Game is a recorded sequence of moves to be replayed from the initial
// position, with the tags that preceded it.
type Game struct {
	// Tags for this game (e.g., Game, White, Black).
	Tags map[string]string

	// Any comment prefixing the game, between the tags and the moves.
	PrefixComment []*Comment

	// The moves, in order.
	Moves []*Move

	// Line numbers of the start and end of the game in the input file.
	StartLine uint
	EndLine   uint
}

// NewGame creates a new empty game.
func NewGame() *Game {
	return &Game{
		Tags: make(map[string]string),
	}
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
	g.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (g *Game) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

// Label returns the game's name, or "" when unnamed.
func (g *Game) Label() string {
	return g.GetTag(GameTag)
}

// PlyCount returns the number of recorded moves.
func (g *Game) PlyCount() int {
	return len(g.Moves)
}

// LastMove returns the last move in the game, or nil if no moves.
func (g *Game) LastMove() *Move {
	if len(g.Moves) == 0 {
		return nil
	}
	return g.Moves[len(g.Moves)-1]
}

// AppendMove adds a move to the end of the game.
func (g *Game) AppendMove(m *Move) {
	g.Moves = append(g.Moves, m)
}

// AppendPrefixComment adds a prefix comment to the game.
func (g *Game) AppendPrefixComment(text string) {
	g.PrefixComment = append(g.PrefixComment, &Comment{Text: text})
}
