package lexer

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Lexer errors
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedEscape  = errors.New("unterminated escape")
)

const eof rune = -1

type lexState func(*Lexer) lexState

var (
	isOpenParen    = isTokenType(TokenOpenParen)
	isCloseParen   = isTokenType(TokenCloseParen)
	isOpenBracket  = isTokenType(TokenOpenBracket)
	isCloseBracket = isTokenType(TokenCloseBracket)
	isSemicolon    = isTokenType(TokenSemicolon)
	isNewLine      = isTokenType(TokenNewLine)
	isSpace        = isTokenType(TokenSpace)
	isName         = isTokenType(TokenName)
	isBackslash    = isTokenType(TokenEscape)
)

// New initializes a Lexer object
func New(r io.Reader) *Lexer {
	return &Lexer{
		in:    bufio.NewReader(r),
		buf:   []rune{},
		line:  1,
		col:   1,
		state: lexDefaultState,
	}
}

// Lexer represents a lexical analyzer. Tokens are produced on demand, one
// call to Next at a time.
type Lexer struct {
	in *bufio.Reader

	state   lexState
	pending []Token
	curr    Token

	lastErr error

	buf []rune

	// position of the next rune to be read
	line int
	col  int

	// position of the first rune of the token being collected
	startLine int
	startCol  int
}

// Next advances the lexer to the next token, it returns false after the
// EOF token has been consumed or when an error occurs.
func (lx *Lexer) Next() bool {
	for len(lx.pending) == 0 {
		if lx.state == nil {
			return false
		}
		lx.state = lx.state(lx)
	}

	lx.curr, lx.pending = lx.pending[0], lx.pending[1:]
	return true
}

// Token returns the token read by the last call to Next.
func (lx *Lexer) Token() Token {
	return lx.curr
}

// Err returns the error that stopped the lexer, if any.
func (lx *Lexer) Err() error {
	return lx.lastErr
}

func (lx *Lexer) emit(tt TokenType) {
	lx.emitText(tt, string(lx.buf))
}

func (lx *Lexer) emitText(tt TokenType, text string) {
	lx.pending = append(lx.pending, Token{
		tt:   tt,
		text: text,

		line: lx.startLine,
		col:  lx.startCol,
	})

	lx.buf = lx.buf[0:0]
}

func (lx *Lexer) mark() {
	lx.startLine, lx.startCol = lx.line, lx.col
}

// peek returns the next rune without consuming it, invalid UTF-8 is
// returned as utf8.RuneError.
func (lx *Lexer) peek() rune {
	r, _, err := lx.in.ReadRune()
	if err != nil {
		return eof
	}
	_ = lx.in.UnreadRune()
	return r
}

func (lx *Lexer) next() (rune, error) {
	r, size, err := lx.in.ReadRune()
	if err != nil {
		return rune(0), err
	}
	if r == utf8.RuneError && size == 1 {
		return rune(0), fmt.Errorf("%d:%d: %w: invalid UTF-8 encoding", lx.line, lx.col, ErrUnexpectedCharacter)
	}

	if r == '\n' {
		lx.line++
		lx.col = 1
	} else {
		lx.col++
	}

	lx.buf = append(lx.buf, r)
	return r, nil
}

func lexDefaultState(lx *Lexer) lexState {
	lx.mark()

	r, err := lx.next()
	if err != nil {
		return lexStateError(err)
	}

	switch {

	case isOpenParen(r):
		return lexEmit(TokenOpenParen)
	case isCloseParen(r):
		return lexEmit(TokenCloseParen)

	case isOpenBracket(r):
		return lexEmit(TokenOpenBracket)
	case isCloseBracket(r):
		return lexEmit(TokenCloseBracket)

	case isSemicolon(r):
		return lexEmit(TokenSemicolon)
	case isNewLine(r):
		return lexEmit(TokenNewLine)

	case isName(r):
		return lexCollectStream(TokenName)
	case isBackslash(r):
		return lexEscape
	case isSpace(r):
		lx.emitText(TokenSpace, " ")
		return lexDefaultState

	default:
		return lexStateError(fmt.Errorf("%d:%d: %w %q", lx.startLine, lx.startCol, ErrUnexpectedCharacter, r))

	}
}

func lexEscape(lx *Lexer) lexState {
	r, err := lx.next()
	if err == io.EOF {
		return lexStateError(fmt.Errorf("%d:%d: %w", lx.startLine, lx.startCol, ErrUnterminatedEscape))
	}
	if err != nil {
		return lexStateError(err)
	}

	lx.emitText(TokenEscape, string(r))
	return lexDefaultState
}

func lexEmit(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		lx.emit(tt)
		return lexDefaultState
	}
}

func lexCollectStream(tt TokenType) lexState {
	return func(lx *Lexer) lexState {
		for (isTokenType(tt))(lx.peek()) {
			if _, err := lx.next(); err != nil {
				return lexStateError(err)
			}
		}
		return lexEmit(tt)
	}
}

func lexStateError(err error) lexState {
	if err == io.EOF {
		return lexStateEOF
	}
	return func(lx *Lexer) lexState {
		lx.lastErr = err
		return nil
	}
}

func lexStateEOF(lx *Lexer) lexState {
	lx.buf = lx.buf[0:0]
	lx.emit(TokenEOF)
	return nil
}

// Tokenize takes an array of bytes and returns all the tokens within it,
// or an error if a token can't be identified.
func Tokenize(in []byte) ([]Token, error) {
	tokens := []Token{}

	lx := New(bytes.NewReader(in))
	for lx.Next() {
		tokens = append(tokens, lx.Token())
	}

	if err := lx.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}
