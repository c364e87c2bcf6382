// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package nts

import (
	"io"

	"github.com/dsnet/golib/errs"

	"github.com/dsnet/nts/internal/dict"
	"github.com/dsnet/nts/internal/nterr"
	"github.com/dsnet/nts/internal/vlen"
	"github.com/dsnet/nts/tree"
)

// Encoder flattens a tree.Tree into the binary nts wire format. One
// Encoder encodes exactly one tree per Reset cycle.
type Encoder struct {
	w    io.Writer
	conf Config
	dict *dict.Dictionary
	n    int64
}

// NewEncoder creates an Encoder writing to w. A nil conf selects the
// documented defaults.
func NewEncoder(w io.Writer, conf *Config) *Encoder {
	e := new(Encoder)
	e.Reset(w, conf)
	return e
}

// Reset reinitializes e to write a new stream to w, discarding any
// dictionary state from a prior session.
func (e *Encoder) Reset(w io.Writer, conf *Config) {
	var c Config
	if conf != nil {
		c = *conf
	}
	*e = Encoder{w: w, conf: c}
}

// Encode writes t as a complete binary nts stream: the header followed by
// the pre-order sequence of blocks. It returns the number of bytes
// written. The encoder borrows t read-only.
func (e *Encoder) Encode(t *tree.Tree) (n int64, err error) {
	defer errs.Recover(&err)

	if t == nil || t.Root == nil {
		errs.Panic(nterr.New(nterr.EmptyStream, "cannot encode a nil tree"))
	}

	conf, cerr := e.conf.resolve()
	errs.Panic(cerr)
	e.conf = conf
	e.dict = dict.New(conf.DictSize)
	e.n = 0

	e.writeHeader()

	// Iterative pre-order DFS: push the root, then
	// repeatedly pop a node, emit its block, and push its children. The
	// order children are pushed in is implementation-defined; the decoder
	// does not depend on it.
	stack := []*tree.Node{t.Root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e.writeBlock(node)
		stack = append(stack, node.Children()...)
	}
	return e.n, nil
}

func (e *Encoder) write(buf []byte) {
	n, err := e.w.Write(buf)
	e.n += int64(n)
	errs.Panic(err)
}

func (e *Encoder) writeHeader() {
	var hdr [HeaderLen]byte
	copy(hdr[:4], Magic[:])
	hdr[4] = e.conf.BackrefByte
	hdr[5] = byte(e.conf.DictSize)
	e.write(hdr[:])
}

// writeBlock emits one standard or back-reference block for node. A node
// qualifies for a back-reference block exactly when its hash slot
// currently holds an equal word; otherwise the slot is overwritten and a
// standard block is emitted.
func (e *Encoder) writeBlock(node *tree.Node) {
	word := node.Word()
	validateWord(word, e.conf.BackrefByte)

	h := e.dict.Hash(word)
	if e.dict.Match(h, word) {
		e.write([]byte{e.conf.BackrefByte, byte(h)})
	} else {
		e.dict.Put(h, word)
		e.write([]byte(word))
	}

	childCount := uint32(node.NumChildren())
	l := vlen.Len(childCount)
	e.write([]byte{e.conf.BackrefByte + 1 + byte(l)})
	if l > 0 {
		var buf [vlen.MaxLen]byte
		e.write(vlen.Put(buf[:], childCount))
	}
}

// validateWord rejects, rather than silently truncating, any word that is
// empty or contains a byte that would be indistinguishable from a tag byte.
func validateWord(word string, backrefByte byte) {
	if len(word) == 0 {
		errs.Panic(nterr.New(nterr.IllegalByte, "word must not be empty"))
	}
	for i := 0; i < len(word); i++ {
		if word[i] >= backrefByte {
			errs.Panic(nterr.Newf(nterr.IllegalByte, "word byte %#x at offset %d is not strictly less than B=%#x", word[i], i, backrefByte))
		}
	}
}
