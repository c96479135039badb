package parser

import (
	"io"

	"github.com/lgbarn/chessvar-go/internal/chess"
	"github.com/lgbarn/chessvar-go/internal/config"
	"github.com/lgbarn/chessvar-go/internal/errors"
)

// Parser parses move scripts into Game structures.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	cfg          *config.Config

	// pending is a Game tag that ended the previous game's header.
	pending *tag
}

// tag is one parsed [Name "value"] pair.
type tag struct {
	name, value string
	line        uint
}

// NewParser creates a new parser for the given reader.
// If cfg is nil, a default config is created.
func NewParser(r io.Reader, cfg *config.Config) *Parser {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Parser{
		lexer: NewLexer(r),
		cfg:   cfg,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseGame parses a single game from the input.
// Returns nil, nil if no more games are available.
func (p *Parser) ParseGame() (*chess.Game, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	game := chess.NewGame()
	game.StartLine = p.currentToken.Line
	if p.pending != nil {
		game.StartLine = p.pending.line
		game.SetTag(p.pending.name, p.pending.value)
		p.pending = nil
	}

	if err := p.parseOptCommentList(game.AppendPrefixComment); err != nil {
		return nil, err
	}
	if err := p.parseOptTagList(game); err != nil {
		return nil, err
	}
	if p.pending != nil {
		// The header had no moves; the next game starts at the pending tag.
		game.EndLine = p.pending.line
		return game, nil
	}
	if err := p.parseOptCommentList(game.AppendPrefixComment); err != nil {
		return nil, err
	}
	if err := p.parseMoveList(game); err != nil {
		return nil, err
	}
	game.EndLine = p.lexer.LineNumber()

	if p.currentToken.Type == EOFToken && game.Moves == nil && len(game.Tags) == 0 {
		return nil, nil
	}
	return game, nil
}

// ParseAllGames parses all games from the input.
func (p *Parser) ParseAllGames() ([]*chess.Game, error) {
	var games []*chess.Game
	for {
		game, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
		games = append(games, game)
	}
}

// parseOptTagList parses zero or more [Name "value"] tags. A second Game
// tag starts a new game: it is kept in p.pending and the list ends.
func (p *Parser) parseOptTagList(game *chess.Game) error {
	for p.currentToken.Type == TagStart {
		t, err := p.parseTag()
		if err != nil {
			return err
		}
		if t.name == chess.GameTag && game.HasTag(chess.GameTag) {
			p.pending = t
			return nil
		}
		game.SetTag(t.name, t.value)
	}
	return nil
}

// parseTag parses one [Name "value"] tag.
func (p *Parser) parseTag() (*tag, error) {
	t := &tag{line: p.currentToken.Line}

	p.nextToken()
	if p.currentToken.Type != SymbolToken {
		return nil, p.unexpected("tag name")
	}
	t.name = p.currentToken.TokenString

	p.nextToken()
	if p.currentToken.Type != StringToken {
		return nil, p.unexpected("tag value")
	}
	t.value = p.currentToken.TokenString

	p.nextToken()
	if p.currentToken.Type != TagEnd {
		return nil, p.unexpected("']'")
	}
	p.nextToken()
	return t, nil
}

// parseOptCommentList consumes comments, passing each to add.
func (p *Parser) parseOptCommentList(add func(string)) error {
	for {
		switch p.currentToken.Type {
		case CommentToken:
			add(p.currentToken.TokenString)
			p.nextToken()
		case ErrorToken:
			return p.unexpected("")
		default:
			return nil
		}
	}
}

// parseMoveList parses moves until the next game's tags or the end of input.
func (p *Parser) parseMoveList(game *chess.Game) error {
	for {
		switch p.currentToken.Type {
		case EOFToken, TagStart:
			return nil
		case MoveNumber:
			p.nextToken()
		case CommentToken:
			if last := game.LastMove(); last != nil {
				last.AppendComment(p.currentToken.TokenString)
			} else {
				game.AppendPrefixComment(p.currentToken.TokenString)
			}
			p.nextToken()
		case SymbolToken:
			move, err := p.parseMove()
			if err != nil {
				return err
			}
			game.AppendMove(move)
		default:
			return p.unexpected("move")
		}
	}
}

// parseMove parses one move: a four-character symbol such as a2a7, or two
// square symbols optionally joined by a dash.
func (p *Parser) parseMove() (*chess.Move, error) {
	start := p.currentToken
	text := start.TokenString

	switch len(text) {
	case 4:
		if !isSquareShape(text[:2]) || !isSquareShape(text[2:]) {
			return nil, p.unexpected("move")
		}
		p.nextToken()
		return &chess.Move{Text: text, From: text[:2], To: text[2:], Line: start.Line, Column: start.Column}, nil
	case 2:
		if !isSquareShape(text) {
			return nil, p.unexpected("square")
		}
	default:
		return nil, p.unexpected("move")
	}

	from := text
	p.nextToken()
	if p.currentToken.Type == DashToken {
		text += "-"
		p.nextToken()
	}
	if p.currentToken.Type != SymbolToken || !isSquareShape(p.currentToken.TokenString) {
		return nil, p.unexpected("destination square")
	}
	to := p.currentToken.TokenString
	p.nextToken()

	return &chess.Move{Text: text + to, From: from, To: to, Line: start.Line, Column: start.Column}, nil
}

// isSquareShape reports whether s looks like a square label: a letter
// followed by a digit. Whether it names a square on the board is for the
// engine to decide.
func isSquareShape(s string) bool {
	return len(s) == 2 && chTab[s[0]] == Alpha && chTab[s[1]] == Digit
}

// unexpected builds a ParseError for the current token.
func (p *Parser) unexpected(expected string) error {
	tok := p.currentToken
	got := tok.Type.String()
	switch tok.Type {
	case EOFToken:
		got = "end of input"
	case ErrorToken:
		got = tok.TokenString
	case SymbolToken, StringToken:
		got = "\"" + tok.TokenString + "\""
	}
	return &errors.ParseError{
		Err:      errors.ErrParseFailure,
		File:     p.cfg.CurrentInputFile,
		Line:     int(tok.Line),
		Column:   int(tok.Column),
		Expected: expected,
		Got:      got,
	}
}
