package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessvar-go/internal/chess"
	"github.com/lgbarn/chessvar-go/internal/config"
	"github.com/lgbarn/chessvar-go/internal/engine"
	"github.com/lgbarn/chessvar-go/internal/errors"
)

func TestBoardString_Initial(t *testing.T) {
	want := strings.Repeat("__ __ __ __ __ __ __ __\n", 6) +
		"WR WB WN __ __ BN BB BR\n" +
		"WK WB WN __ __ BN BB BK\n"

	if diff := cmp.Diff(want, BoardString(engine.NewGame().Board())); diff != "" {
		t.Errorf("BoardString() mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderBoard(t *testing.T) {
	board := chess.NewBoard()
	board.Set(chess.MustParseSquare("h8"), chess.Black, chess.King)
	board.Set(chess.MustParseSquare("a1"), chess.White, chess.Rook)

	var buf bytes.Buffer
	if err := RenderBoard(&buf, board); err != nil {
		t.Fatalf("RenderBoard() error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d rows, want 8", len(lines))
	}
	if lines[0] != "__ __ __ __ __ __ __ BK" {
		t.Errorf("rank 8 = %q", lines[0])
	}
	if lines[7] != "WR __ __ __ __ __ __ __" {
		t.Errorf("rank 1 = %q", lines[7])
	}
}

func TestRenderThreats(t *testing.T) {
	var buf bytes.Buffer
	white := chess.SquareSetOf(chess.MustParseSquare("a1"), chess.MustParseSquare("b2"))
	if err := RenderThreats(&buf, white, 0); err != nil {
		t.Fatalf("RenderThreats() error = %v", err)
	}
	want := "white threats: {a1 b2}\nblack threats: {}\n"
	if buf.String() != want {
		t.Errorf("RenderThreats() = %q, want %q", buf.String(), want)
	}
}

func TestStateToJSON(t *testing.T) {
	g, err := engine.NewGameFromFEN("7k/8/8/8/8/8/8/KN6 b")
	if err != nil {
		t.Fatalf("NewGameFromFEN() error = %v", err)
	}

	want := &JSONState{
		Turn:  "Black",
		State: "UNFINISHED",
		FEN:   "7k/8/8/8/8/8/8/KN6 b",
		Plies: 0,
		Pieces: []JSONPiece{
			{Square: "a1", Colour: "White", Kind: "King"},
			{Square: "b1", Colour: "White", Kind: "Knight"},
			{Square: "h8", Colour: "Black", Kind: "King"},
		},
		// Threat lists are in square order.
		WhiteThreats: []string{"b1", "a2", "b2", "d2", "a3", "c3"},
		BlackThreats: []string{"g7", "h7", "g8"},
	}

	if diff := cmp.Diff(want, StateToJSON(g)); diff != "" {
		t.Errorf("StateToJSON() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, StateToJSON(engine.NewGame())); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"turn", "state", "fen", "plies", "pieces", "whiteThreats", "blackThreats"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
	if decoded["fen"] != engine.InitialFEN {
		t.Errorf("fen = %v, want %q", decoded["fen"], engine.InitialFEN)
	}
	if !strings.Contains(buf.String(), "\n  \"turn\"") {
		t.Error("output is not indented")
	}
}

func replayedReport(t *testing.T) *GameReport {
	t.Helper()
	g := engine.NewGame()
	if err := g.Move("a2", "a7"); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	var rej *errors.MoveError
	if !errors.As(g.Move("a7", "a6"), &rej) {
		t.Fatal("expected a MoveError")
	}
	rej.Line = 2
	return &GameReport{
		Label:      "demo",
		Moves:      2,
		Rejections: []*errors.MoveError{rej},
		Game:       g,
	}
}

func TestTextWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithBoard(true).WithThreats(true).Build()
	w := NewReportWriter(&buf, cfg)
	if _, ok := w.(*TextWriter); !ok {
		t.Fatalf("NewReportWriter() = %T, want *TextWriter", w)
	}

	if err := w.WriteReport(replayedReport(t)); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		`Game "demo": 1 of 2 moves accepted, UNFINISHED, Black to move`,
		`rejected line 2, ply 2, move "a7-a6"`,
		"not this side's turn",
		"WR __ __ __ __ __ __ __",
		"white threats: {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTextWriter_NoBoard(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithBoard(false).Build()
	if err := NewTextWriter(&buf, cfg).WriteReport(replayedReport(t)); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if strings.Contains(buf.String(), "__") {
		t.Errorf("board printed with ShowBoard off:\n%s", buf.String())
	}
}

func TestTextWriter_Error(t *testing.T) {
	var buf bytes.Buffer
	r := &GameReport{Label: "broken", Err: errors.ErrInvalidFEN}
	if err := NewTextWriter(&buf, config.NewConfig()).WriteReport(r); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if got, want := buf.String(), "Game \"broken\": invalid FEN string\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestJSONWriter(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.NewConfigBuilder().WithJSONOutput(true).Build()
	w := NewReportWriter(&buf, cfg)

	if err := w.WriteReport(replayedReport(t)); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if err := w.WriteReport(&GameReport{Label: "broken", Err: errors.ErrInvalidFEN}); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Error("JSON written before Close")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(out.Games) != 2 {
		t.Fatalf("got %d games, want 2", len(out.Games))
	}

	first := out.Games[0]
	wantRej := []JSONRejection{{Ply: 2, From: "a7", To: "a6", Line: 2, Reason: errors.ErrWrongTurn.Error()}}
	if diff := cmp.Diff(wantRej, first.Rejections); diff != "" {
		t.Errorf("rejections mismatch (-want +got):\n%s", diff)
	}
	if first.Final == nil || first.Final.Plies != 1 || first.Final.Turn != "Black" {
		t.Errorf("final state = %+v", first.Final)
	}

	second := out.Games[1]
	if second.Error != "invalid FEN string" || second.Final != nil {
		t.Errorf("second game = %+v", second)
	}
}

func TestGameReport_Rejected(t *testing.T) {
	tests := []struct {
		name string
		r    *GameReport
		want bool
	}{
		{"clean", &GameReport{Game: engine.NewGame()}, false},
		{"refused move", &GameReport{Game: engine.NewGame(), Rejections: []*errors.MoveError{{Err: errors.ErrOwnPiece}}}, true},
		{"not set up", &GameReport{Err: errors.ErrInvalidFEN}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Rejected(); got != tt.want {
				t.Errorf("Rejected() = %v, want %v", got, tt.want)
			}
		})
	}
}
