// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package reconstruct implements the stack-based depth-first tree
// reconstructor shared by the binary and textual nts decoders. Both
// decoders parse blocks in their own format-specific way and hand the
// resulting (word, childCount) pairs to Build, so the one delicate piece
// of logic — attaching each node to the right parent frame and deflating
// the stack — is written and tested exactly once.
package reconstruct

import (
	"github.com/dsnet/golib/errs"

	"github.com/dsnet/nts/internal/nterr"
	"github.com/dsnet/nts/tree"
)

// parentFrame pairs a node with the number of children it still awaits.
type parentFrame struct {
	node      *tree.Node
	remaining uint32
}

// Next produces the next block's (word, childCount) pair. atBoundary is
// true only when the underlying stream ended cleanly before any byte of
// a new block was consumed; Next should panic with a *nterr.Error for
// any other failure.
type Next func() (word string, childCount uint32, atBoundary bool)

// Build drives next to completion and reconstructs a tree.Tree, applying
// the "push only when remaining > 0, then deflate" rule for stack frames.
func Build(next Next) (t *tree.Tree, err error) {
	defer errs.Recover(&err)

	var root *tree.Node
	var stack []*parentFrame
	for {
		word, childCount, atBoundary := next()
		if atBoundary {
			break
		}
		node := tree.NewNode(word)

		if len(stack) == 0 {
			if root != nil {
				errs.Panic(nterr.New(nterr.IllegalByte, "block found after the root's subtree was complete"))
			}
			root = node
			if childCount > 0 {
				stack = append(stack, &parentFrame{node: node, remaining: childCount})
			}
		} else {
			top := stack[len(stack)-1]
			top.node.Attach(node)
			top.remaining--
			if top.remaining == 0 {
				stack = stack[:len(stack)-1]
			}
			if childCount > 0 {
				stack = append(stack, &parentFrame{node: node, remaining: childCount})
			}
		}

		for len(stack) > 0 && stack[len(stack)-1].remaining == 0 {
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		errs.Panic(nterr.New(nterr.EmptyStream, "no root node was produced"))
	}
	if len(stack) != 0 {
		errs.Panic(nterr.New(nterr.TruncatedStream, "stream ended with unattached children outstanding"))
	}
	return &tree.Tree{Root: root}, nil
}
