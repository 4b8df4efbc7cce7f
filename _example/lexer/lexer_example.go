package main

import (
	"fmt"
	"log"

	"github.com/xiam/sgf/lexer"
)

func main() {
	input := `(;FF[4]SZ[19]
C[a comment with an escaped \] bracket]
(;B[pd];W[dp])(;B[dd]))`

	tokens, err := lexer.Tokenize([]byte(input))
	if err != nil {
		log.Fatal("lexer.Tokenize:", err)
	}

	for i, tok := range tokens {
		line, col := tok.Pos()
		lexeme := tok.Text()
		tt := tok.Type().String()

		fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tt, line, col, lexeme)
	}
}
