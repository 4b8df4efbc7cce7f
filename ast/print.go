package ast

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	Fprint(os.Stdout, n)
}

// Fprint writes a human-readable representation of a node to w, one node
// per line with its properties sorted by identifier.
func Fprint(w io.Writer, n *Node) {
	printLevel(w, n, 0)
}

func printLevel(w io.Writer, n *Node, level int) {
	indent := strings.Repeat("    ", level)
	if n == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}

	ids := make([]string, 0, len(n.props))
	for id := range n.props {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	props := make([]string, 0, len(ids))
	for _, id := range ids {
		values := make([]string, 0, len(n.props[id]))
		for _, v := range n.props[id] {
			values = append(values, fmt.Sprintf("%q", v))
		}
		props = append(props, fmt.Sprintf("%s[%s]", id, strings.Join(values, " ")))
	}

	if len(props) == 0 {
		fmt.Fprintf(w, "%s(node)\n", indent)
	} else {
		fmt.Fprintf(w, "%s(node): %s\n", indent, strings.Join(props, " "))
	}
	for i := range n.children {
		printLevel(w, n.children[i], level+1)
	}
}
