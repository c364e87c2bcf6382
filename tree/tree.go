// Package tree implements the minimal rooted, unordered, labeled tree that
// the nts codec reads from and writes to.
//
// A Node carries a short printable-ASCII word and a bag of children keyed
// by word, so that a node has at most one child for any given word; adding
// a child whose word already exists replaces the existing child. This
// mirrors the word-keyed child map of a compressed trie (see
// github.com/chriskillpack/compressedtrie), except that nts trees are not
// path-compressed: every word occupies its own node regardless of fan-out.
package tree

import "sort"

// Node is a single node of a Tree. The zero value is not meaningful; use
// NewNode to construct one.
type Node struct {
	word     string
	children map[string]*Node
}

// NewNode creates a node carrying the given word and no children.
func NewNode(word string) *Node {
	return &Node{word: word, children: make(map[string]*Node)}
}

// Word reports the node's word.
func (n *Node) Word() string { return n.word }

// NumChildren reports the number of direct children.
func (n *Node) NumChildren() int { return len(n.children) }

// Children returns the node's direct children. The slice order is
// unspecified and may differ between calls; callers that need a stable
// order must sort it themselves (see Snapshot below for how the codec's own
// tests do this).
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	return out
}

// Child looks up the direct child with the given word.
func (n *Node) Child(word string) (*Node, bool) {
	c, ok := n.children[word]
	return c, ok
}

// Attach adds child as a direct child of n. If n already has a child with
// the same word, it is replaced; callers relying on "attach grows the
// tree" must check Child first.
func (n *Node) Attach(child *Node) {
	n.children[child.word] = child
}

// Tree is a rooted tree with exactly one Root.
type Tree struct {
	Root *Node
}

// New creates a Tree whose root carries the given word.
func New(rootWord string) *Tree {
	return &Tree{Root: NewNode(rootWord)}
}

// Equal reports whether a and b have the same structure and labels,
// ignoring the order in which children were attached. Both trees are
// borrowed read-only.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.word != b.word || len(a.children) != len(b.children) {
		return false
	}
	for word, ac := range a.children {
		bc, ok := b.children[word]
		if !ok || !Equal(ac, bc) {
			return false
		}
	}
	return true
}

// Count returns the total number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.children {
		total += c.Count()
	}
	return total
}

// Snapshot is a comparable, order-independent view of a Node's subtree,
// suitable for use with cmp.Diff in tests where map iteration order would
// otherwise make two structurally identical trees compare unequal.
type Snapshot struct {
	Word     string
	Children []Snapshot
}

// Snapshot captures n's subtree, with Children recursively sorted by word.
func (n *Node) Snapshot() Snapshot {
	cs := make([]Snapshot, 0, len(n.children))
	for _, c := range n.Children() {
		cs = append(cs, c.Snapshot())
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].Word < cs[j].Word })
	return Snapshot{Word: n.word, Children: cs}
}
