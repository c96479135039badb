package chess

import (
	"fmt"

	"github.com/lgbarn/chessvar-go/internal/errors"
)

// Square is a linear board index: row*8 + col, with a1 = 0 and h8 = 63.
type Square int8

// NoSquare marks an absent or invalid square.
const NoSquare Square = -1

// NewSquare returns the square at the given column (file) and row (rank),
// both zero based. It returns NoSquare when either is off the board.
func NewSquare(col, row int) Square {
	if col < 0 || col >= BoardSize || row < 0 || row >= BoardSize {
		return NoSquare
	}
	return Square(row*BoardSize + col)
}

// IsValid reports whether sq lies on the board.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < NumSquares
}

// Row returns the zero-based rank of the square.
func (sq Square) Row() int {
	return int(sq) / BoardSize
}

// Col returns the zero-based file of the square.
func (sq Square) Col() int {
	return int(sq) % BoardSize
}

// String returns the two-character label, e.g. "e4", or "-" for an
// invalid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{byte(FileBase + sq.Col()), byte(RankBase + sq.Row())})
}

// ParseSquare converts a two-character label to a square. The file letter
// is case-insensitive.
func ParseSquare(label string) (Square, error) {
	if len(label) != 2 {
		return NoSquare, fmt.Errorf("square %q: want 2 characters: %w", label, errors.ErrInvalidSquare)
	}
	file := label[0]
	if file >= 'A' && file <= 'H' {
		file += 'a' - 'A'
	}
	rank := label[1]
	if file < FileBase || file >= FileBase+BoardSize {
		return NoSquare, fmt.Errorf("square %q: bad file: %w", label, errors.ErrInvalidSquare)
	}
	if rank < RankBase || rank >= RankBase+BoardSize {
		return NoSquare, fmt.Errorf("square %q: bad rank: %w", label, errors.ErrInvalidSquare)
	}
	return NewSquare(int(file-FileBase), int(rank-RankBase)), nil
}

// MustParseSquare is like ParseSquare but panics on malformed labels.
// It is intended for fixed tables and tests.
func MustParseSquare(label string) Square {
	sq, err := ParseSquare(label)
	if err != nil {
		panic(err)
	}
	return sq
}
