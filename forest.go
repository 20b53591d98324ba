package npchunk

import (
	"iter"
)

// Forest is the set of parse trees of a sentence. Trees are enumerated lazily
// from the chart, so a caller that only needs the first few trees never pays
// for the rest
type Forest struct {
	root   *chartCell
	tokens []string
	limit  int
}

// Empty returns true if the sentence has no parse
func (f *Forest) Empty() bool {
	return f.root == nil
}

// Tokens returns the parsed tokens
func (f *Forest) Tokens() []string {
	return append([]string(nil), f.tokens...)
}

// Trees yields every parse tree in a reproducible order: derivations of a
// node in the order they were found, and for one derivation the combinations
// of its children with the leftmost child varying slowest. Ranging over the
// result again restarts from the first tree. Each yielded tree is a fresh
// copy owned by the caller
func (f *Forest) Trees() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if f.root == nil {
			return
		}
		count := 0
		for tree := range f.root.trees(f.tokens) {
			if !yield(tree.Clone()) {
				return
			}
			count++
			if f.limit > 0 && count >= f.limit {
				return
			}
		}
	}
}

// Collect returns at most limit trees. limit <= 0 means all of them
func (f *Forest) Collect(limit int) []*Node {
	trees := []*Node{}
	for tree := range f.Trees() {
		trees = append(trees, tree)
		if limit > 0 && len(trees) >= limit {
			break
		}
	}
	return trees
}

// trees enumerates the trees rooted at cell. Nodes of a yielded tree may be
// shared with trees yielded later
func (cell *chartCell) trees(tokens []string) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, d := range cell.derivations {
			children := make([]*Node, len(d.children))
			emit := func() bool {
				return yield(NewInternal(cell.symbol, append([]*Node(nil), children...)...))
			}
			if !d.combine(tokens, children, 0, emit) {
				return
			}
		}
	}
}

// combine fills children[i:] with every combination of subtrees and calls
// emit for each complete combination. It returns false once emit does
func (d *derivation) combine(tokens []string, children []*Node, i int, emit func() bool) bool {
	if i == len(d.children) {
		return emit()
	}
	child := d.children[i]
	if child.cell == nil {
		children[i] = NewLeaf(tokens[child.position])
		return d.combine(tokens, children, i+1, emit)
	}
	for tree := range child.cell.trees(tokens) {
		children[i] = tree
		if !d.combine(tokens, children, i+1, emit) {
			return false
		}
	}
	return true
}
