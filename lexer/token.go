package lexer

import (
	"fmt"
)

// Token is a lexical unit of a game tree. For escapes the text is the
// escaped character alone and for spaces it is always " ".
type Token struct {
	tt   TokenType
	text string

	line int
	col  int
}

// NewToken creates a lexical unit
func NewToken(tt TokenType, text string, line int, col int) *Token {
	return &Token{
		tt:   tt,
		text: text,
		line: line,
		col:  col,
	}
}

// Type returns the type of the lexical unit
func (t Token) Type() TokenType {
	return t.tt
}

// Pos returns the line and column where the token starts, both 1-based.
func (t Token) Pos() (int, int) {
	return t.line, t.col
}

func (t Token) Text() string {
	return t.text
}

// Is returns true if the token matches the given type
func (t Token) Is(tt TokenType) bool {
	return t.tt == tt
}

// IsValue reports whether the token may appear inside a bracketed value or
// a property identifier.
func (t Token) IsValue() bool {
	switch t.tt {
	case TokenName, TokenEscape, TokenSpace, TokenNewLine:
		return true
	}
	return false
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %v %q", t.line, t.col, tokenName(t.tt), t.text)
}
