package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessvar-go/internal/chess"
	"github.com/lgbarn/chessvar-go/internal/engine"
	"github.com/lgbarn/chessvar-go/internal/errors"
)

// JSONState is the observable state of a game in JSON format.
type JSONState struct {
	Turn         string      `json:"turn"`
	State        string      `json:"state"`
	FEN          string      `json:"fen"`
	Plies        int         `json:"plies"`
	Pieces       []JSONPiece `json:"pieces"`
	WhiteThreats []string    `json:"whiteThreats"`
	BlackThreats []string    `json:"blackThreats"`
}

// JSONPiece is one occupied square.
type JSONPiece struct {
	Square string `json:"square"`
	Colour string `json:"colour"`
	Kind   string `json:"kind"`
}

// JSONRejection is a move the engine refused.
type JSONRejection struct {
	Ply    int    `json:"ply"`
	From   string `json:"from"`
	To     string `json:"to"`
	Line   int    `json:"line,omitempty"`
	Reason string `json:"reason"`
}

// JSONGame is the replay of one game in JSON format.
type JSONGame struct {
	Label      string          `json:"label,omitempty"`
	Moves      int             `json:"moves"`
	Rejections []JSONRejection `json:"rejections,omitempty"`
	Error      string          `json:"error,omitempty"`
	Final      *JSONState      `json:"final,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// StateToJSON converts the current state of a game to JSON format.
func StateToJSON(g *engine.Game) *JSONState {
	board := g.Board()
	js := &JSONState{
		Turn:         g.Turn().String(),
		State:        g.State().String(),
		FEN:          g.FEN(),
		Plies:        g.Plies(),
		Pieces:       make([]JSONPiece, 0, len(board.All())),
		WhiteThreats: g.Threats(chess.White).Labels(),
		BlackThreats: g.Threats(chess.Black).Labels(),
	}
	for _, p := range board.All() {
		js.Pieces = append(js.Pieces, JSONPiece{
			Square: p.Square.String(),
			Colour: p.Colour.String(),
			Kind:   p.Kind.String(),
		})
	}
	return js
}

// ReportToJSON converts a game report to JSON format.
func ReportToJSON(r *GameReport) *JSONGame {
	jg := &JSONGame{
		Label: r.Label,
		Moves: r.Moves,
	}
	for _, rej := range r.Rejections {
		jg.Rejections = append(jg.Rejections, rejectionToJSON(rej))
	}
	if r.Err != nil {
		jg.Error = r.Err.Error()
	}
	if r.Game != nil {
		jg.Final = StateToJSON(r.Game)
	}
	return jg
}

func rejectionToJSON(e *errors.MoveError) JSONRejection {
	reason := ""
	if e.Err != nil {
		reason = e.Err.Error()
	}
	return JSONRejection{
		Ply:    e.Ply,
		From:   e.From,
		To:     e.To,
		Line:   e.Line,
		Reason: reason,
	}
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
