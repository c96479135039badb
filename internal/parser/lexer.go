package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Lexer tokenizes move script input.
type Lexer struct {
	reader  *bufio.Reader
	line    string
	pos     int
	lineNum uint
	eof     bool
}

// Character classification table
var chTab [256]TokenType

func init() {
	initLexTables()
}

// initLexTables initializes the character classification table.
func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}

	chTab['['] = TagStart
	chTab[']'] = TagEnd
	chTab['"'] = DoubleQuote
	chTab['{'] = CommentStart
	chTab['}'] = CommentEnd
	chTab[';'] = LineComment
	chTab['.'] = Dot
	chTab['-'] = DashToken

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}
	chTab['_'] = Alpha
}

// NewLexer creates a new lexer for the given reader.
func NewLexer(r io.Reader) *Lexer {
	return &Lexer{reader: bufio.NewReader(r)}
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() uint {
	return l.lineNum
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	if l.eof {
		return false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && len(line) > 0 {
			l.line = line
			l.pos = 0
			l.lineNum++
			return true
		}
		l.eof = true
		return false
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		line, column := l.lineNum, uint(l.pos+1)
		token := l.getNextSymbol()
		if token.Type == NoToken {
			continue
		}
		if token.Line == 0 {
			token.Line, token.Column = line, column
		}
		return token
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return &Token{Type: EOFToken, Line: l.lineNum + 1, Column: 1}
		}
		return NewToken(NoToken)
	}

	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace:
		for l.pos < len(l.line) && chTab[l.currentChar()] == Whitespace {
			l.advance()
		}
		return NewToken(NoToken)

	case TagStart:
		return NewToken(TagStart)

	case TagEnd:
		return NewToken(TagEnd)

	case DoubleQuote:
		return l.gatherString()

	case CommentStart:
		return l.gatherComment()

	case CommentEnd:
		return &Token{Type: ErrorToken, TokenString: "unmatched '}'"}

	case LineComment:
		l.pos = len(l.line)
		return NewToken(NoToken)

	case DashToken:
		return NewToken(DashToken)

	case Dot:
		for l.pos < len(l.line) && chTab[l.currentChar()] == Dot {
			l.advance()
		}
		return NewToken(NoToken)

	case Alpha, Digit:
		return l.gatherSymbol(symbolStart)

	default:
		return &Token{Type: ErrorToken, TokenString: fmt.Sprintf("character %q", ch)}
	}
}

// gatherSymbol gathers a run of letters and digits. A run of digits
// directly followed by a dot is a move number.
func (l *Lexer) gatherSymbol(start int) *Token {
	for l.pos < len(l.line) {
		t := chTab[l.currentChar()]
		if t != Alpha && t != Digit {
			break
		}
		l.advance()
	}
	text := l.line[start:l.pos]

	if l.currentChar() == '.' && isDigits(text) {
		return &Token{Type: MoveNumber, TokenString: text}
	}
	return &Token{Type: SymbolToken, TokenString: text}
}

// gatherString gathers a double-quoted string on a single line.
func (l *Lexer) gatherString() *Token {
	start := l.pos
	for l.pos < len(l.line) {
		switch l.currentChar() {
		case '"':
			text := l.line[start:l.pos]
			l.advance()
			return &Token{Type: StringToken, TokenString: text}
		case '\n':
			return &Token{Type: ErrorToken, TokenString: "unterminated string"}
		}
		l.advance()
	}
	return &Token{Type: ErrorToken, TokenString: "unterminated string"}
}

// gatherComment gathers a {...} comment, which may span lines.
func (l *Lexer) gatherComment() *Token {
	startLine, startCol := l.lineNum, uint(l.pos)
	var sb strings.Builder

	for {
		for l.pos < len(l.line) {
			ch := l.currentChar()
			l.advance()
			if ch == '}' {
				return &Token{
					Type:        CommentToken,
					TokenString: strings.TrimSpace(sb.String()),
					Line:        startLine,
					Column:      startCol,
				}
			}
			sb.WriteByte(ch)
		}
		if !l.readLine() {
			return &Token{
				Type:        ErrorToken,
				TokenString: "unterminated comment",
				Line:        startLine,
				Column:      startCol,
			}
		}
	}
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if chTab[s[i]] != Digit {
			return false
		}
	}
	return s != ""
}
