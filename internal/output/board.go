// Package output provides board rendering and game report formatting.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessvar-go/internal/chess"
)

// RenderBoard writes the board as eight rows of two-character codes,
// rank 8 first. Empty squares are shown as "__".
func RenderBoard(w io.Writer, b *chess.Board) error {
	_, err := io.WriteString(w, BoardString(b))
	return err
}

// BoardString returns the text RenderBoard writes.
func BoardString(b *chess.Board) string {
	var sb strings.Builder
	for row := chess.LastRow; row >= 0; row-- {
		for col := 0; col < chess.BoardSize; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(b.Get(chess.NewSquare(col, row)).Code())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// RenderThreats writes both colours' threat sets, one per line.
func RenderThreats(w io.Writer, white, black chess.SquareSet) error {
	_, err := fmt.Fprintf(w, "white threats: %s\nblack threats: %s\n", white, black)
	return err
}
