package npchunk

import (
	"strings"
)

// NounPhrase is the label of noun phrase chunks
const NounPhrase = "NP"

// Chunks returns the minimal subtrees of tree labeled with label: subtrees
// with that label that do not contain another one. They are returned in the
// order of their first word. The returned nodes belong to tree
func Chunks(tree *Node, label string) []*Node {
	chunks := []*Node{}
	for subtree := range tree.Subtrees(func(n *Node) bool {
		return isChunk(n, label)
	}) {
		chunks = append(chunks, subtree)
	}
	return chunks
}

// NPChunks returns the noun phrase chunks of tree
func NPChunks(tree *Node) []*Node {
	return Chunks(tree, NounPhrase)
}

// isChunk returns true if n is labeled with label and no node below n is
func isChunk(n *Node, label string) bool {
	if n.Label() != label {
		return false
	}
	for _, child := range n.Children {
		for range child.Subtrees(func(c *Node) bool { return c.Label() == label }) {
			return false
		}
	}
	return true
}

// ChunkWords returns the words of chunk joined by spaces
func ChunkWords(chunk *Node) string {
	return strings.Join(chunk.Leaves(), " ")
}
