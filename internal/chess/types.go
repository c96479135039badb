// Package chess provides core types for the king race chess variant.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the single letter used for the colour in piece codes.
func (c Colour) Letter() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// Kind represents a piece type. The variant only uses kings, bishops,
// knights and rooks.
type Kind int

const (
	NoKind Kind = iota // Empty square
	King
	Bishop
	Knight
	Rook
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"None", "King", "Bishop", "Knight", "Rook"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'K', 'B', 'N', 'R'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// ParseKind converts a piece letter (either case) to a kind.
// It returns NoKind for letters that are not part of the variant.
func ParseKind(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'R', 'r':
		return Rook
	default:
		return NoKind
	}
}

// Board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	// LastRow is the far row both kings race towards.
	LastRow = BoardSize - 1

	FileBase = 'a'
	RankBase = '1'
)

// Piece is a coloured piece standing on a square. The zero value is an
// empty square.
type Piece struct {
	Colour Colour
	Kind   Kind
	Square Square
}

// NewPiece creates a piece of the given colour and kind on sq.
func NewPiece(colour Colour, kind Kind, sq Square) Piece {
	return Piece{Colour: colour, Kind: kind, Square: sq}
}

// IsEmpty reports whether p represents an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Code returns the two-character rendering code, e.g. "WK" or "BN".
func (p Piece) Code() string {
	if p.IsEmpty() {
		return "__"
	}
	return string([]byte{p.Colour.Letter(), p.Kind.Letter()})
}

// String returns a readable description such as "White Knight on c1".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "empty"
	}
	return p.Colour.String() + " " + p.Kind.String() + " on " + p.Square.String()
}

// GameState is the terminal status of a game.
type GameState int

const (
	InProgress GameState = iota
	WhiteWon
	BlackWon
	Tied
)

// String returns the status token used in output.
func (s GameState) String() string {
	switch s {
	case InProgress:
		return "UNFINISHED"
	case WhiteWon:
		return "WHITE_WON"
	case BlackWon:
		return "BLACK_WON"
	case Tied:
		return "TIE"
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further moves are accepted.
func (s GameState) IsTerminal() bool {
	return s != InProgress
}
