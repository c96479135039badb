package chess

// Board is the occupancy of the 64 squares. Each non-empty entry records
// the square it stands on, so Squares[i].Square == i for occupied i.
// Board is a plain value: assigning it copies the whole position.
type Board struct {
	Squares [NumSquares]Piece
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// Get returns the piece at sq, or the empty Piece for empty or invalid squares.
func (b *Board) Get(sq Square) Piece {
	if !sq.IsValid() {
		return Piece{}
	}
	return b.Squares[sq]
}

// Set places a piece of the given colour and kind at sq, replacing any
// occupant. Invalid squares are ignored.
func (b *Board) Set(sq Square, colour Colour, kind Kind) {
	if !sq.IsValid() {
		return
	}
	b.Squares[sq] = NewPiece(colour, kind, sq)
}

// Put stores p at sq, updating its square.
func (b *Board) Put(sq Square, p Piece) {
	if !sq.IsValid() || p.IsEmpty() {
		return
	}
	p.Square = sq
	b.Squares[sq] = p
}

// Clear empties sq.
func (b *Board) Clear(sq Square) {
	if sq.IsValid() {
		b.Squares[sq] = Piece{}
	}
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Get(sq).IsEmpty()
}

// Occupied returns every square holding a piece of either colour.
func (b *Board) Occupied() SquareSet {
	var s SquareSet
	for i := range b.Squares {
		if !b.Squares[i].IsEmpty() {
			s = s.Add(Square(i))
		}
	}
	return s
}

// Pieces returns the pieces of the given colour in square order.
func (b *Board) Pieces(colour Colour) []Piece {
	var out []Piece
	for _, p := range b.Squares {
		if !p.IsEmpty() && p.Colour == colour {
			out = append(out, p)
		}
	}
	return out
}

// All returns every piece on the board in square order.
func (b *Board) All() []Piece {
	var out []Piece
	for _, p := range b.Squares {
		if !p.IsEmpty() {
			out = append(out, p)
		}
	}
	return out
}

// FindKing returns the square of the first king of the given colour.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	for _, p := range b.Squares {
		if p.Kind == King && p.Colour == colour {
			return p.Square, true
		}
	}
	return NoSquare, false
}

// Copy creates a copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
