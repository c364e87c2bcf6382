// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAttachReplaces(t *testing.T) {
	root := NewNode("root")
	first := NewNode("a")
	second := NewNode("a")
	second.Attach(NewNode("child"))

	root.Attach(first)
	root.Attach(second)

	if root.NumChildren() != 1 {
		t.Fatalf("NumChildren() = %d, want 1", root.NumChildren())
	}
	got, ok := root.Child("a")
	if !ok || got.NumChildren() != 1 {
		t.Fatalf("expected the replacing node (with 1 child) to win")
	}
}

func TestEqualIgnoresChildOrder(t *testing.T) {
	a := NewNode("root")
	a.Attach(NewNode("x"))
	a.Attach(NewNode("y"))

	b := NewNode("root")
	b.Attach(NewNode("y"))
	b.Attach(NewNode("x"))

	if !Equal(a, b) {
		t.Error("Equal should ignore child attachment order")
	}
}

func TestEqualDetectsDifference(t *testing.T) {
	a := NewNode("root")
	a.Attach(NewNode("x"))

	b := NewNode("root")
	b.Attach(NewNode("z"))

	if Equal(a, b) {
		t.Error("Equal should distinguish different child words")
	}
}

func TestCount(t *testing.T) {
	root := NewNode("root")
	child := NewNode("a")
	child.Attach(NewNode("b"))
	root.Attach(child)
	root.Attach(NewNode("c"))

	if got := root.Count(); got != 4 {
		t.Errorf("Count() = %d, want 4", got)
	}
}

func TestSnapshotIgnoresChildOrder(t *testing.T) {
	a := NewNode("root")
	a.Attach(NewNode("x"))
	a.Attach(NewNode("y"))

	b := NewNode("root")
	b.Attach(NewNode("y"))
	b.Attach(NewNode("x"))

	if diff := cmp.Diff(a.Snapshot(), b.Snapshot()); diff != "" {
		t.Errorf("Snapshot() mismatch despite equal structure (-a +b):\n%s", diff)
	}
}

func TestSnapshotDetectsDifference(t *testing.T) {
	a := NewNode("root")
	a.Attach(NewNode("x"))

	b := NewNode("root")
	b.Attach(NewNode("z"))

	if cmp.Diff(a.Snapshot(), b.Snapshot()) == "" {
		t.Error("expected a diff between differently labeled trees")
	}
}
