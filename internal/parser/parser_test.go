package parser

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessvar-go/internal/chess"
	"github.com/lgbarn/chessvar-go/internal/config"
	"github.com/lgbarn/chessvar-go/internal/errors"
)

// parseTestGames is a helper that parses a script and returns its games.
func parseTestGames(t *testing.T, script string) []*chess.Game {
	t.Helper()
	p := NewParser(strings.NewReader(script), config.NewConfig())
	games, err := p.ParseAllGames()
	if err != nil {
		t.Fatalf("ParseAllGames error: %v", err)
	}
	return games
}

// movePairs flattens a game's moves to from-to strings.
func movePairs(g *chess.Game) []string {
	var out []string
	for _, m := range g.Moves {
		out = append(out, m.String())
	}
	return out
}

func TestParseMoveForms(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   []string
	}{
		{"joined", "a2a7 f2g4", []string{"a2-a7", "f2-g4"}},
		{"dashed", "a2-a7 f2-g4", []string{"a2-a7", "f2-g4"}},
		{"spaced", "a2 a7\nf2 g4", []string{"a2-a7", "f2-g4"}},
		{"spaced dash", "a2 - a7", []string{"a2-a7"}},
		{"move numbers", "1. a2a7 f2g4 2. b2f6", []string{"a2-a7", "f2-g4", "b2-f6"}},
		{"upper case kept", "A2A7", []string{"A2-A7"}},
		{"off-board label passes through", "a2a9", []string{"a2-a9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			games := parseTestGames(t, tt.script)
			if len(games) != 1 {
				t.Fatalf("got %d games, want 1", len(games))
			}
			if diff := cmp.Diff(tt.want, movePairs(games[0])); diff != "" {
				t.Errorf("moves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseTagsAndComments(t *testing.T) {
	script := `; demo scripts
[Game "first"]
[White "Ann"]
{opening} a2a7 {rook up}
f2g4 ; knight out

[Game "second"]
b2-e5
`
	games := parseTestGames(t, script)
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}

	first := games[0]
	if got := first.Label(); got != "first" {
		t.Errorf("Label() = %q, want %q", got, "first")
	}
	if got := first.GetTag("White"); got != "Ann" {
		t.Errorf("White = %q, want %q", got, "Ann")
	}
	if len(first.PrefixComment) != 1 || first.PrefixComment[0].Text != "opening" {
		t.Errorf("PrefixComment = %v, want [opening]", first.PrefixComment)
	}
	if !first.Moves[0].HasComments() || first.Moves[0].Comments[0].Text != "rook up" {
		t.Errorf("first move comments = %v, want [rook up]", first.Moves[0].Comments)
	}
	if diff := cmp.Diff([]string{"a2-a7", "f2-g4"}, movePairs(first)); diff != "" {
		t.Errorf("first game moves mismatch (-want +got):\n%s", diff)
	}

	second := games[1]
	if got := second.Label(); got != "second" {
		t.Errorf("Label() = %q, want %q", got, "second")
	}
	if diff := cmp.Diff([]string{"b2-e5"}, movePairs(second)); diff != "" {
		t.Errorf("second game moves mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMovePositions(t *testing.T) {
	games := parseTestGames(t, "a2a7\n  f2 - g4\n")
	moves := games[0].Moves

	want := []struct {
		text         string
		line, column uint
	}{
		{"a2a7", 1, 1},
		{"f2-g4", 2, 3},
	}
	for i, w := range want {
		if moves[i].Text != w.text || moves[i].Line != w.line || moves[i].Column != w.column {
			t.Errorf("move %d = %q at %d:%d, want %q at %d:%d",
				i, moves[i].Text, moves[i].Line, moves[i].Column, w.text, w.line, w.column)
		}
	}
}

func TestParseMultiLineComment(t *testing.T) {
	games := parseTestGames(t, "a2a7 {a comment\nover two lines} f2g4")
	if got := games[0].PlyCount(); got != 2 {
		t.Fatalf("PlyCount = %d, want 2", got)
	}
	if got := games[0].Moves[0].Comments[0].Text; got != "a comment\nover two lines" {
		t.Errorf("comment = %q", got)
	}
	if got := games[0].Moves[1].Line; got != 2 {
		t.Errorf("second move line = %d, want 2", got)
	}
}

func TestParseEmpty(t *testing.T) {
	for _, script := range []string{"", "\n\n", "; only a comment\n"} {
		if games := parseTestGames(t, script); len(games) != 0 {
			t.Errorf("script %q: got %d games, want 0", script, len(games))
		}
	}
}

func TestParseTagOnlyGame(t *testing.T) {
	games := parseTestGames(t, `[Game "empty"]`)
	if len(games) != 1 {
		t.Fatalf("got %d games, want 1", len(games))
	}
	if games[0].PlyCount() != 0 {
		t.Errorf("PlyCount = %d, want 0", games[0].PlyCount())
	}
}

func TestParseHeaderOnlyGames(t *testing.T) {
	type game struct {
		Label string
		FEN   string
		Moves []string
		Start uint
	}
	tests := []struct {
		name   string
		script string
		want   []game
	}{
		{
			name:   "two headers then moves",
			script: "[Game \"one\"]\n[Game \"two\"]\na2a7\n",
			want: []game{
				{Label: "one", Start: 1},
				{Label: "two", Moves: []string{"a2-a7"}, Start: 2},
			},
		},
		{
			name:   "headers only",
			script: "[Game \"a\"]\n[Game \"b\"]\n[Game \"c\"]\n",
			want: []game{
				{Label: "a", Start: 1},
				{Label: "b", Start: 2},
				{Label: "c", Start: 3},
			},
		},
		{
			name:   "other tags stay with their game",
			script: "[Game \"a\"] [FEN \"8/K6k/8/8/8/8/8/8 w\"]\n[Game \"b\"] [FEN \"8/8/K6k/8/8/8/8/8 w\"]\na6a7\n",
			want: []game{
				{Label: "a", FEN: "8/K6k/8/8/8/8/8/8 w", Start: 1},
				{Label: "b", FEN: "8/8/K6k/8/8/8/8/8 w", Moves: []string{"a6-a7"}, Start: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []game
			for _, g := range parseTestGames(t, tt.script) {
				got = append(got, game{Label: g.Label(), FEN: g.GetTag("FEN"), Moves: movePairs(g), Start: g.StartLine})
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("games mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		script     string
		wantLine   int
		wantColumn int
	}{
		{"three letter symbol", "a2a7 abc", 1, 6},
		{"dangling source", "a2a7\nb2", 3, 1},
		{"bad destination", "a2 -- a7", 1, 5},
		{"stray character", "a2a7 @", 1, 6},
		{"unterminated comment", "a2a7\n{never closed", 2, 1},
		{"unmatched brace", "a2a7 }", 1, 6},
		{"tag without value", "[Game]\na2a7", 1, 6},
		{"unterminated string", "[Game \"x\na2a7", 1, 7},
		{"not a square", "aa a7", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			cfg.CurrentInputFile = "script.txt"
			_, err := NewParser(strings.NewReader(tt.script), cfg).ParseAllGames()
			if !errors.Is(err, errors.ErrParseFailure) {
				t.Fatalf("error = %v, want ErrParseFailure", err)
			}
			var pe *errors.ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %T, want *errors.ParseError", err)
			}
			if pe.File != "script.txt" {
				t.Errorf("File = %q, want script.txt", pe.File)
			}
			if pe.Line != tt.wantLine || pe.Column != tt.wantColumn {
				t.Errorf("position = %d:%d, want %d:%d (%v)", pe.Line, pe.Column, tt.wantLine, tt.wantColumn, err)
			}
		})
	}
}

func TestParseErrorKeepsEarlierGames(t *testing.T) {
	script := "[Game \"ok\"]\na2a7\n[Game \"bad\"]\na2 ?"
	games, err := NewParser(strings.NewReader(script), nil).ParseAllGames()
	if err == nil {
		t.Fatal("expected error")
	}
	if len(games) != 1 || games[0].Label() != "ok" {
		t.Errorf("games before error = %d, want the first game", len(games))
	}
}

func TestLexerTokens(t *testing.T) {
	l := NewLexer(strings.NewReader(`[Game "x"] 12. a2-a7 {c}`))
	var got []TokenType
	for {
		tok := l.NextToken()
		got = append(got, tok.Type)
		if tok.Type == EOFToken {
			break
		}
	}
	want := []TokenType{
		TagStart, SymbolToken, StringToken, TagEnd,
		MoveNumber, SymbolToken, DashToken, SymbolToken, CommentToken, EOFToken,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenTypeString(t *testing.T) {
	if got := SymbolToken.String(); got != "SYMBOL" {
		t.Errorf("SymbolToken.String() = %q", got)
	}
	if got := TokenType(99).String(); got != "UNKNOWN" {
		t.Errorf("TokenType(99).String() = %q", got)
	}
}
