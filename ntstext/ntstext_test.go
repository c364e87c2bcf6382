// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ntstext

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dsnet/nts/internal/nterr"
	"github.com/dsnet/nts/internal/testutil"
	"github.com/dsnet/nts/tree"
)

func TestEncodeParentChild(t *testing.T) {
	root := tree.NewNode("x")
	root.Attach(tree.NewNode("y"))
	tr := &tree.Tree{Root: root}

	var buf bytes.Buffer
	if _, err := NewEncoder(&buf, nil).Encode(tr); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := "x|1]y|0]"
	if buf.String() != want {
		t.Errorf("Encode(x->y) = %q, want %q", buf.String(), want)
	}
}

func TestDecodeParentChild(t *testing.T) {
	got, err := NewDecoder(strings.NewReader("x|1]y|0]"), nil).Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := tree.NewNode("x")
	want.Attach(tree.NewNode("y"))
	if diff := cmp.Diff(want.Snapshot(), got.Root.Snapshot()); diff != "" {
		t.Errorf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestBackrefRoundTrip(t *testing.T) {
	root := tree.NewNode("a")
	root.Attach(tree.NewNode("a"))
	root.Attach(tree.NewNode("b"))
	tr := &tree.Tree{Root: root}

	var buf bytes.Buffer
	if _, err := NewEncoder(&buf, nil).Encode(tr); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(buf.String(), "}") {
		t.Error("expected a back-reference block in the encoded stream")
	}

	got, err := NewDecoder(strings.NewReader(buf.String()), nil).Decode()
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff(tr.Root.Snapshot(), got.Root.Snapshot()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeRejectsReservedByte(t *testing.T) {
	for _, word := range []string{"a|b", "a]b", "a}b"} {
		root := tree.NewNode(word)
		_, err := NewEncoder(&bytes.Buffer{}, nil).Encode(&tree.Tree{Root: root})
		if !nterr.Is(err, nterr.IllegalByte) {
			t.Errorf("Encode(%q) error = %v, want IllegalByte", word, err)
		}
	}
}

func TestEncodeRejectsEmptyWord(t *testing.T) {
	_, err := NewEncoder(&bytes.Buffer{}, nil).Encode(&tree.Tree{Root: tree.NewNode("")})
	if !nterr.Is(err, nterr.IllegalByte) {
		t.Errorf("Encode(empty word) error = %v, want IllegalByte", err)
	}
}

func TestDecodeEmptyInput(t *testing.T) {
	_, err := NewDecoder(strings.NewReader(""), nil).Decode()
	if !nterr.Is(err, nterr.EmptyStream) {
		t.Errorf("Decode(empty) error = %v, want EmptyStream", err)
	}
}

func TestDecodeTruncatedMidBlock(t *testing.T) {
	_, err := NewDecoder(strings.NewReader("x|1"), nil).Decode()
	if !nterr.Is(err, nterr.TruncatedStream) {
		t.Errorf("Decode(truncated) error = %v, want TruncatedStream", err)
	}
}

func TestDecodeUnknownBackrefIndex(t *testing.T) {
	_, err := NewDecoder(strings.NewReader("}5|0]"), nil).Decode()
	if !nterr.Is(err, nterr.IndexOutOfRange) {
		t.Errorf("Decode(unseeded backref) error = %v, want IndexOutOfRange", err)
	}
}

func TestDecodeMisplacedFraming(t *testing.T) {
	vectors := []string{
		"x]1|",  // ']' before '|'
		"x||0]", // doubled '|'
	}
	for _, v := range vectors {
		_, err := NewDecoder(strings.NewReader(v), nil).Decode()
		if !nterr.Is(err, nterr.IllegalByte) {
			t.Errorf("Decode(%q) error = %v, want IllegalByte", v, err)
		}
	}
}

func TestRoundTripRandomTrees(t *testing.T) {
	r := testutil.NewRand(2)
	for i := 0; i < 50; i++ {
		tr := testutil.RandTree(r, 5, 4, 40)

		var buf bytes.Buffer
		if _, err := NewEncoder(&buf, nil).Encode(tr); err != nil {
			t.Fatalf("iteration %d: Encode: %v", i, err)
		}
		got, err := NewDecoder(strings.NewReader(buf.String()), nil).Decode()
		if err != nil {
			t.Fatalf("iteration %d: Decode: %v", i, err)
		}
		if diff := cmp.Diff(tr.Root.Snapshot(), got.Root.Snapshot()); diff != "" {
			t.Fatalf("iteration %d: round trip mismatch (-want +got):\n%s", i, diff)
		}
	}
}
