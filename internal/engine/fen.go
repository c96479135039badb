package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessvar-go/internal/chess"
	"github.com/lgbarn/chessvar-go/internal/errors"
)

// InitialFEN is the placement and side to move of the starting position.
const InitialFEN = "8/8/8/8/8/8/RBN2nbr/KBN2nbk w"

// NewGameFromFEN creates an in-progress game from the piece placement and
// side-to-move fields of a FEN string. Only K, B, N and R are accepted;
// any further fields are ignored.
func NewGameFromFEN(fen string) (*Game, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePiecePositions(board, parts[0]); err != nil {
		return nil, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, err
	}

	return newGameFromBoard(board, toMove), nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	row := chess.LastRow
	col := 0

	for _, c := range positions {
		switch {
		case c == '/':
			if col != chess.BoardSize {
				return fmt.Errorf("rank %d has %d files: %w", row+1, col, errors.ErrInvalidFEN)
			}
			row--
			col = 0
			if row < 0 {
				return fmt.Errorf("too many ranks: %w", errors.ErrInvalidFEN)
			}
		case c >= '1' && c <= '8':
			col += int(c - '0')
			if col > chess.BoardSize {
				return fmt.Errorf("rank %d overflows: %w", row+1, errors.ErrInvalidFEN)
			}
		default:
			if c > unicode.MaxASCII {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			kind := chess.ParseKind(byte(c))
			if kind == chess.NoKind {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if col >= chess.BoardSize {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			board.Set(chess.NewSquare(col, row), colour, kind)
			col++
		}
	}

	if row != 0 || col != chess.BoardSize {
		return fmt.Errorf("incomplete placement: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field. It defaults to White.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
}

// FEN returns the placement and side to move of the current position.
func (g *Game) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	if g.toMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	return sb.String()
}

// BoardToFEN returns the piece placement field for a board.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder
	writePiecePositions(&sb, board)
	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for row := chess.LastRow; row >= 0; row-- {
		emptyCount := 0
		for col := 0; col < chess.BoardSize; col++ {
			p := board.Get(chess.NewSquare(col, row))
			if p.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			letter := p.Kind.Letter()
			if p.Colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}
}
