package parser

import (
	"strings"
	"unicode"

	"github.com/xiam/sgf/lexer"
)

// assembleValue folds the tokens found between brackets, or the tokens of a
// property identifier, into a single string.
func assembleValue(tokens []*lexer.Token) string {
	var sb strings.Builder

	for _, tok := range tokens {
		switch tok.Type() {
		case lexer.TokenSpace:
			sb.WriteByte(' ')
		case lexer.TokenNewLine:
			sb.WriteByte('\n')
		default:
			// names and escapes, escapes already hold the escaped character
			sb.WriteString(tok.Text())
		}
	}

	return sb.String()
}

func isUpperIdentifier(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}
