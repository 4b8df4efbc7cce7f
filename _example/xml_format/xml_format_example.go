package main

import (
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/xiam/sgf/ast"
	"github.com/xiam/sgf/parser"
)

func printTree(node *ast.Node) {
	printIndentedTree(node, 0)
}

func printIndentedTree(node *ast.Node, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	fmt.Printf("%s<node>\n", indent)

	props := node.Properties()
	ids := make([]string, 0, len(props))
	for id := range props {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		for _, v := range props[id] {
			fmt.Printf("%s  <%s>%s</%s>\n", indent, id, v, id)
		}
	}

	children := node.Children()
	for i := range children {
		printIndentedTree(children[i], indentationLevel+1)
	}
	fmt.Printf("%s</node>\n", indent)
}

func main() {
	input := `(;FF[4]SZ[19](;B[pd];W[dp])(;B[dd];W[pp]))`

	root, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	printTree(root)
}
