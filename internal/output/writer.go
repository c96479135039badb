package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessvar-go/internal/chess"
	"github.com/lgbarn/chessvar-go/internal/config"
	"github.com/lgbarn/chessvar-go/internal/engine"
	"github.com/lgbarn/chessvar-go/internal/errors"
)

// GameReport is the outcome of replaying one game.
type GameReport struct {
	Label      string
	Moves      int                 // moves read from the script
	Rejections []*errors.MoveError // moves the engine refused, in order
	Err        error               // set when the game could not be replayed at all
	Game       *engine.Game        // final position, nil when Err is set
}

// Accepted returns the number of moves the engine accepted.
func (r *GameReport) Accepted() int {
	if r.Game == nil {
		return 0
	}
	return r.Game.Plies()
}

// Rejected reports whether the game could not be set up or had any move
// refused.
func (r *GameReport) Rejected() bool {
	return r.Err != nil || len(r.Rejections) > 0
}

// ReportWriter is the interface for writing game reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteReport writes a single report to the output.
	WriteReport(r *GameReport) error

	// Close writes any pending output and releases resources.
	Close() error
}

// NewReportWriter returns the writer selected by cfg.
func NewReportWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.JSONFormat {
		return NewJSONWriter(w)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes reports as readable text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{w: w, cfg: cfg}
}

// WriteReport writes a summary line, each rejection, and optionally the
// board and threat sets.
func (tw *TextWriter) WriteReport(r *GameReport) error {
	label := r.Label
	if label == "" {
		label = "?"
	}

	if r.Err != nil {
		_, err := fmt.Fprintf(tw.w, "Game %q: %v\n", label, r.Err)
		return err
	}

	g := r.Game
	status := g.State().String()
	if !g.IsFinished() {
		status += ", " + g.Turn().String() + " to move"
	}
	if _, err := fmt.Fprintf(tw.w, "Game %q: %d of %d moves accepted, %s\n",
		label, r.Accepted(), r.Moves, status); err != nil {
		return err
	}

	for _, rej := range r.Rejections {
		if _, err := fmt.Fprintf(tw.w, "  rejected %v\n", rej); err != nil {
			return err
		}
	}

	if tw.cfg.Output.ShowBoard {
		if err := RenderBoard(tw.w, g.Board()); err != nil {
			return err
		}
	}
	if tw.cfg.Output.ShowThreats {
		if err := RenderThreats(tw.w, g.Threats(chess.White), g.Threats(chess.Black)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(tw.w)
	return err
}

// Close closes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close.
type JSONWriter struct {
	w     io.Writer
	games []*JSONGame
}

// NewJSONWriter creates a new JSON writer.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		games: make([]*JSONGame, 0),
	}
}

// WriteReport buffers a report for output.
func (jw *JSONWriter) WriteReport(r *GameReport) error {
	jw.games = append(jw.games, ReportToJSON(r))
	return nil
}

// Close writes all buffered reports as a JSON array.
func (jw *JSONWriter) Close() error {
	return WriteJSON(jw.w, &JSONOutput{Games: jw.games})
}
