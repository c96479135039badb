// Package parser provides move script lexing and parsing.
//
// A script holds one or more games. A game is an optional list of tags,
// such as [Game "opening race"], followed by moves written as two square
// labels: a2a7, a2-a7 or a2 a7. Move numbers ("1.") are ignored, ';'
// comments out the rest of a line and {...} is a comment.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	TagStart
	TagEnd
	StringToken
	SymbolToken
	DashToken
	CommentToken
	MoveNumber
	ErrorToken

	// Internal tokens used for identification
	Whitespace
	DoubleQuote
	CommentStart
	CommentEnd
	LineComment
	Dot
	Alpha
	Digit
	NoToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:     "EOF",
	TagStart:     "TAG_START",
	TagEnd:       "TAG_END",
	StringToken:  "STRING",
	SymbolToken:  "SYMBOL",
	DashToken:    "DASH",
	CommentToken: "COMMENT",
	MoveNumber:   "MOVE_NUMBER",
	ErrorToken:   "ERROR_TOKEN",
	Whitespace:   "WHITESPACE",
	DoubleQuote:  "DOUBLE_QUOTE",
	CommentStart: "COMMENT_START",
	CommentEnd:   "COMMENT_END",
	LineComment:  "LINE_COMMENT",
	Dot:          "DOT",
	Alpha:        "ALPHA",
	Digit:        "DIGIT",
	NoToken:      "NO_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// TokenString holds symbol, string and comment text, or a description
	// of the problem for ErrorToken.
	TokenString string

	// Line and column of the first character, for error reporting
	Line   uint
	Column uint
}

// NewToken creates a new token of the given type.
func NewToken(tokenType TokenType) *Token {
	return &Token{Type: tokenType}
}
