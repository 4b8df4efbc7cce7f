package main

import (
	"log"

	"github.com/xiam/sgf/ast"
	"github.com/xiam/sgf/parser"
)

func main() {
	input := `(;FF[4]SZ[19](;B[pd];W[dp])(;B[dd];W[pp]))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	ast.Print(root)
}
