// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ntstext

import (
	"io"
	"strconv"

	"github.com/dsnet/golib/errs"

	"github.com/dsnet/nts/internal/dict"
	"github.com/dsnet/nts/internal/nterr"
	"github.com/dsnet/nts/tree"
)

// Encoder flattens a tree.Tree into the textual nts wire format. One
// Encoder encodes exactly one tree per Reset cycle, mirroring nts.Encoder.
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

// Reset reinitializes e to write a new stream to w.
func (e *Encoder) Reset(w io.Writer, conf *Config) {
	var c Config
	if conf != nil {
		c = *conf
	}
	*e = Encoder{w: w, conf: c}
}

// Encode writes t as a complete textual nts stream: the pre-order
// sequence of "word|count]" and "}index|count]" blocks, with no header.
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

	stack := []*tree.Node{t.Root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e.writeBlock(node)
		stack = append(stack, node.Children()...)
	}
	return e.n, nil
}

func (e *Encoder) write(s string) {
	n, err := io.WriteString(e.w, s)
	e.n += int64(n)
	errs.Panic(err)
}

func (e *Encoder) writeBlock(node *tree.Node) {
	word := node.Word()
	validateWord(word)

	h := e.dict.Hash(word)
	if e.dict.Match(h, word) {
		e.write(string(backrefTag) + strconv.Itoa(h))
	} else {
		e.dict.Put(h, word)
		e.write(word)
	}

	e.write(string(fieldSep))
	e.write(strconv.Itoa(node.NumChildren()))
	e.write(string(blockEnd))
}

// validateWord rejects empty words and words containing a reserved
// framing character.
func validateWord(word string) {
	if len(word) == 0 {
		errs.Panic(nterr.New(nterr.IllegalByte, "word must not be empty"))
	}
	for i := 0; i < len(word); i++ {
		if isReserved(word[i]) {
			errs.Panic(nterr.Newf(nterr.IllegalByte, "word contains reserved framing character %q at offset %d", word[i], i))
		}
	}
}
