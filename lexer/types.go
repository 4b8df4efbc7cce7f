package lexer

// TokenType represents all the possible types of a lexical unit
type TokenType uint8

// List of types of lexical units
const (
	TokenInvalid      TokenType = iota
	TokenOpenParen              // Open parenthesis: "("
	TokenCloseParen             // Close parenthesis: ")"
	TokenOpenBracket            // Open square bracket: "["
	TokenCloseBracket           // Close square bracket: "]"
	TokenSemicolon              // Semicolon: ";"
	TokenNewLine                // Newline: "\n"
	TokenSpace                  // Space or tab, always normalized to " "
	TokenName                   // Letters, digits and underscore
	TokenEscape                 // Backslash followed by any character
	TokenEOF                    // End of file
)

var tokenValues = map[TokenType][]rune{
	TokenOpenParen:    {'('},
	TokenCloseParen:   {')'},
	TokenOpenBracket:  {'['},
	TokenCloseBracket: {']'},
	TokenSemicolon:    {';'},
	TokenNewLine:      {'\n'},
	TokenSpace:        []rune(" \t"),
	TokenName:         []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_"),
	TokenEscape:       {'\\'},
}

var tokenNames = map[TokenType]string{
	TokenInvalid:      "invalid",
	TokenOpenParen:    "open_paren",
	TokenCloseParen:   "close_paren",
	TokenOpenBracket:  "open_bracket",
	TokenCloseBracket: "close_bracket",
	TokenSemicolon:    "semicolon",
	TokenNewLine:      "newline",
	TokenSpace:        "space",
	TokenName:         "name",
	TokenEscape:       "escape",
	TokenEOF:          "EOF",
}

func (tt TokenType) String() string {
	return tokenName(tt)
}

func tokenName(tt TokenType) string {
	if v, ok := tokenNames[tt]; ok {
		return v
	}
	return tokenNames[TokenInvalid]
}

func isTokenType(tt TokenType) func(r rune) bool {
	return func(r rune) bool {
		for _, v := range tokenValues[tt] {
			if v == r {
				return true
			}
		}
		return false
	}
}
