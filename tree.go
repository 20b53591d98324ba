package npchunk

import (
	"fmt"
	"iter"
	"strings"
)

// NodeKind tells a leaf from an internal node
type NodeKind int

const (
	// Internal is a node labeled with a nonterminal
	Internal NodeKind = iota

	// Leaf is a node holding a word of the input
	Leaf
)

// Node represents a single node in parsing tree
type Node struct {
	Kind NodeKind

	// Nonterminal label for an internal node, the word for a leaf
	Symbol string

	// Children nodes, nil for a leaf
	Children []*Node
}

// NewLeaf creates a leaf node holding word
func NewLeaf(word string) *Node {
	return &Node{Kind: Leaf, Symbol: word}
}

// NewInternal creates an internal node labeled with label
func NewInternal(label string, children ...*Node) *Node {
	return &Node{Kind: Internal, Symbol: label, Children: children}
}

// IsLeaf returns true if n holds a word
func (n *Node) IsLeaf() bool {
	return n.Kind == Leaf
}

// Label returns the nonterminal label of an internal node, or "" for a leaf
func (n *Node) Label() string {
	if n.IsLeaf() {
		return ""
	}
	return n.Symbol
}

// Leaves returns the words under n from left to right
func (n *Node) Leaves() []string {
	words := []string{}
	var walk func(*Node)
	walk = func(node *Node) {
		if node.IsLeaf() {
			words = append(words, node.Symbol)
			return
		}
		for _, child := range node.Children {
			walk(child)
		}
	}
	walk(n)
	return words
}

// Subtrees yields the internal nodes under n, n included, that satisfy pred.
// Nodes are visited depth-first from left to right, a parent before its
// children. A nil pred matches every internal node
func (n *Node) Subtrees(pred func(*Node) bool) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.visit(pred, yield)
	}
}

func (n *Node) visit(pred func(*Node) bool, yield func(*Node) bool) bool {
	if n.IsLeaf() {
		return true
	}
	if pred == nil || pred(n) {
		if !yield(n) {
			return false
		}
	}
	for _, child := range n.Children {
		if !child.visit(pred, yield) {
			return false
		}
	}
	return true
}

// Equal reports whether n and other have the same structure, labels and
// words
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.Kind != other.Kind || n.Symbol != other.Symbol ||
		len(n.Children) != len(other.Children) {
		return false
	}
	for i := range n.Children {
		if !n.Children[i].Equal(other.Children[i]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of n
func (n *Node) Clone() *Node {
	clone := &Node{Kind: n.Kind, Symbol: n.Symbol}
	if n.Children != nil {
		clone.Children = make([]*Node, len(n.Children))
		for i, child := range n.Children {
			clone.Children[i] = child.Clone()
		}
	}
	return clone
}

// String converts the node to a bracketed string on one line, like
//
//	(S (NP (N holmes)) (VP (V sat)))
func (n *Node) String() string {
	if n.IsLeaf() {
		return n.Symbol
	}
	childrenReprs := make([]string, 0, len(n.Children))
	for _, child := range n.Children {
		childrenReprs = append(childrenReprs, child.String())
	}
	return fmt.Sprintf("(%s %s)", n.Symbol, strings.Join(childrenReprs, " "))
}

// Pretty converts the node to an indented string, one node per line
func (n *Node) Pretty() string {
	return n.repr(0)
}

// repr gets the indented representation of the node recursively
func (n *Node) repr(level int) string {
	// Don't wrap with parentheses when it's a leaf node
	prefix := strings.Repeat(" ", level*2)
	if level != 0 {
		prefix = "\n" + prefix
	}

	if n.IsLeaf() {
		return prefix + n.Symbol
	}
	childrenReprs := []string{}
	for _, child := range n.Children {
		childrenReprs = append(childrenReprs, child.repr(level+1))
	}
	return fmt.Sprintf(
		"%s(%s%s)",
		prefix,
		n.Symbol,
		strings.Join(childrenReprs, ""))
}
