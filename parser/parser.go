package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/xiam/sgf/ast"
	"github.com/xiam/sgf/lexer"
)

var tokenEOF = lexer.NewToken(lexer.TokenEOF, "", 0, 0)

var tokenInvalid = lexer.NewToken(lexer.TokenInvalid, "", 0, 0)

// Parser builds a game tree out of the tokens produced by a lexer.
//
// Grammar:
//
//	tree      = "(" node { node | tree } ")"
//	node      = ";" { property }
//	property  = value propvalue { propvalue }
//	propvalue = "[" [ value ] "]"
//	value     = { name | escape | space | newline }
//
// Every node or tree that follows the first node of a tree is appended to
// the children of that first node, so ";A;B;C" yields A with the children B
// and C. When a node repeats a property identifier the last list of values
// wins.
type Parser struct {
	lx *lexer.Lexer

	nextTok *lexer.Token

	lexErr error
}

// New creates a parser that reads its input from r.
func New(r io.Reader) *Parser {
	return &Parser{
		lx: lexer.New(r),
	}
}

// Parse reads the whole input and returns the root node of the tree.
func (p *Parser) Parse() (*ast.Node, error) {
	root, err := expectTree(p)
	if err != nil {
		return nil, err
	}

	if tok := p.next(); !tok.Is(lexer.TokenEOF) {
		return nil, p.unexpected(tok)
	}

	return root, nil
}

func (p *Parser) read() *lexer.Token {
	if p.lx.Next() {
		tok := p.lx.Token()
		return &tok
	}
	if err := p.lx.Err(); err != nil {
		if p.lexErr == nil {
			p.lexErr = err
		}
		return tokenInvalid
	}
	return tokenEOF
}

func (p *Parser) peek() *lexer.Token {
	if p.nextTok != nil {
		return p.nextTok
	}

	p.nextTok = p.read()
	return p.nextTok
}

func (p *Parser) next() *lexer.Token {
	if p.nextTok != nil {
		tok := p.nextTok
		p.nextTok = nil
		return tok
	}

	return p.read()
}

func (p *Parser) unexpected(tok *lexer.Token) error {
	if p.lexErr != nil {
		return fmt.Errorf("%w: %w", ErrSyntax, p.lexErr)
	}

	line, col := tok.Pos()
	if tok.Is(lexer.TokenEOF) {
		return &Error{Err: ErrSyntax, Cause: ErrUnexpectedEOF, Line: line, Col: col}
	}
	return &Error{Err: ErrSyntax, Cause: ErrUnexpectedToken, Line: line, Col: col, Text: tok.Text()}
}

func expectTokens(p *Parser, tt ...lexer.TokenType) ([]*lexer.Token, error) {
	tokens := []*lexer.Token{}
	for i := range tt {
		tok := p.next()
		if tok.Type() != tt[i] {
			return nil, p.unexpected(tok)
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

func collectValueTokens(p *Parser) []*lexer.Token {
	tokens := []*lexer.Token{}
	for p.peek().IsValue() {
		tokens = append(tokens, p.next())
	}
	return tokens
}

func expectTree(p *Parser) (*ast.Node, error) {
	if _, err := expectTokens(p, lexer.TokenOpenParen); err != nil {
		return nil, err
	}

	// first node of the tree, everything after it at this level is attached
	// to it
	root, err := expectNode(p)
	if err != nil {
		return nil, err
	}

	for {
		tok := p.peek()

		switch tok.Type() {
		case lexer.TokenSemicolon:
			node, err := expectNode(p)
			if err != nil {
				return nil, err
			}
			root.AppendChild(node)

		case lexer.TokenOpenParen:
			tree, err := expectTree(p)
			if err != nil {
				return nil, err
			}
			root.AppendChild(tree)

		case lexer.TokenCloseParen:
			p.next()
			return root, nil

		default:
			return nil, p.unexpected(p.next())
		}
	}
}

func expectNode(p *Parser) (*ast.Node, error) {
	if _, err := expectTokens(p, lexer.TokenSemicolon); err != nil {
		return nil, err
	}

	props := map[string][]string{}
	for {
		tok := p.peek()
		if !tok.Is(lexer.TokenName) && !tok.Is(lexer.TokenEscape) {
			break
		}

		id, values, err := expectProperty(p)
		if err != nil {
			return nil, err
		}
		props[id] = values
	}

	return ast.NewNode(props), nil
}

func expectProperty(p *Parser) (string, []string, error) {
	idTokens := collectValueTokens(p)

	values := []string{}
	for p.peek().Is(lexer.TokenOpenBracket) {
		value, err := expectPropValue(p)
		if err != nil {
			return "", nil, err
		}
		values = append(values, value)
	}

	if len(values) == 0 {
		return "", nil, p.unexpected(p.next())
	}

	id := assembleValue(idTokens)
	if !isUpperIdentifier(id) {
		line, col := idTokens[0].Pos()
		return "", nil, &Error{Err: ErrPropertyCasing, Line: line, Col: col, Text: id}
	}

	return id, values, nil
}

func expectPropValue(p *Parser) (string, error) {
	if _, err := expectTokens(p, lexer.TokenOpenBracket); err != nil {
		return "", err
	}

	tokens := collectValueTokens(p)

	if _, err := expectTokens(p, lexer.TokenCloseBracket); err != nil {
		return "", err
	}

	return assembleValue(tokens), nil
}

// Parse builds a game tree out of the given input.
func Parse(in []byte) (*ast.Node, error) {
	return New(bytes.NewReader(in)).Parse()
}

// ParseString builds a game tree out of the given string.
func ParseString(in string) (*ast.Node, error) {
	return New(strings.NewReader(in)).Parse()
}
