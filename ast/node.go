package ast

import (
	"encoding/json"
	"fmt"
)

// Node represents a game tree node: a set of properties and the nodes that
// follow it.
type Node struct {
	props    map[string][]string
	children []*Node
}

// NewNode creates a node holding a copy of the given properties and the
// given children.
func NewNode(props map[string][]string, children ...*Node) *Node {
	n := &Node{
		props:    make(map[string][]string, len(props)),
		children: []*Node{},
	}
	for k, v := range props {
		n.props[k] = append([]string{}, v...)
	}
	n.children = append(n.children, children...)
	return n
}

// AppendChild adds a child after any existing ones.
func (n *Node) AppendChild(child *Node) {
	n.children = append(n.children, child)
}

// Property returns the values of the given property identifier.
func (n *Node) Property(id string) ([]string, bool) {
	v, ok := n.props[id]
	if !ok {
		return nil, false
	}
	return append([]string{}, v...), true
}

// Properties returns a copy of all the properties of the node
func (n *Node) Properties() map[string][]string {
	props := make(map[string][]string, len(n.props))
	for k, v := range n.props {
		props[k] = append([]string{}, v...)
	}
	return props
}

// Children returns the child nodes in source order
func (n *Node) Children() []*Node {
	return append([]*Node{}, n.children...)
}

// Equal reports whether n and other have the same properties, with values in
// the same order, and pairwise equal children.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}

	if len(n.props) != len(other.props) {
		return false
	}
	for k, v := range n.props {
		w, ok := other.props[k]
		if !ok || !equalValues(v, w) {
			return false
		}
	}
	for k := range other.props {
		if _, ok := n.props[k]; !ok {
			return false
		}
	}

	if len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(other.children[i]) {
			return false
		}
	}

	return true
}

func equalValues(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (n Node) String() string {
	return fmt.Sprintf("(node)[props=%d children=%d]", len(n.props), len(n.children))
}

type jsonNode struct {
	Properties map[string][]string `json:"properties"`
	Children   []*Node             `json:"children"`
}

// MarshalJSON encodes the node and its subtree as JSON.
func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonNode{
		Properties: n.props,
		Children:   n.children,
	})
}

// UnmarshalJSON decodes a node previously encoded with MarshalJSON.
func (n *Node) UnmarshalJSON(data []byte) error {
	var v jsonNode
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = *NewNode(v.Properties, v.Children...)
	return nil
}
