// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import "github.com/dsnet/nts/tree"

// RandTree grows a pseudo-random n-gram tree from r, bounded by maxDepth,
// maxBranch (children per node) and maxNodes (total node count, including
// the root). It drives the round-trip property tests and the ntsbench
// command's random samples.
func RandTree(r *Rand, maxDepth, maxBranch, maxNodes int) *tree.Tree {
	if maxNodes < 1 {
		maxNodes = 1
	}
	root := tree.NewNode(r.Word(8))
	remaining := maxNodes - 1
	growChildren(r, root, 1, maxDepth, maxBranch, &remaining)
	return &tree.Tree{Root: root}
}

func growChildren(r *Rand, n *tree.Node, depth, maxDepth, maxBranch int, remaining *int) {
	if depth >= maxDepth || *remaining <= 0 {
		return
	}
	branch := r.Intn(maxBranch + 1)
	for i := 0; i < branch && *remaining > 0; i++ {
		word := r.Word(8)
		if _, ok := n.Child(word); ok {
			continue // word collision: keep the tree's distinct-word invariant
		}
		child := tree.NewNode(word)
		n.Attach(child)
		*remaining--
		growChildren(r, child, depth+1, maxDepth, maxBranch, remaining)
	}
}
