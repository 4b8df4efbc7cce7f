// Package sgf parses SGF-like game trees into a tree of nodes with named,
// multi-valued properties.
package sgf

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xiam/sgf/ast"
	"github.com/xiam/sgf/parser"
)

// Errors returned by Parse, test for them with errors.Is.
var (
	ErrInputType      = parser.ErrInputType
	ErrSyntax         = parser.ErrSyntax
	ErrPropertyCasing = parser.ErrPropertyCasing
)

type Reader struct {
	r io.Reader
}

// Parse builds a game tree out of a string or a []byte. Any other kind of
// input is rejected with ErrInputType before tokenizing.
func Parse(in interface{}) (*ast.Node, error) {
	switch v := in.(type) {
	case string:
		return parser.ParseString(v)
	case []byte:
		return NewReader(bytes.NewReader(v)).Parse()
	}
	return nil, fmt.Errorf("%w: got %T", ErrInputType, in)
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

func (r *Reader) Parse() (*ast.Node, error) {
	return parser.New(r.r).Parse()
}
