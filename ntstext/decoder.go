// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package ntstext

import (
	"bufio"
	"io"
	"strconv"

	"github.com/dsnet/golib/errs"

	"github.com/dsnet/nts/internal/dict"
	"github.com/dsnet/nts/internal/nterr"
	"github.com/dsnet/nts/internal/reconstruct"
	"github.com/dsnet/nts/tree"
)

// Decoder reconstructs a tree.Tree from the textual nts wire format,
// scanning character-by-character with a small bit of state: an
// accumulation buffer, a pending resolved word, and a flag set by '}'
// that marks the next field as a dictionary index rather than a word.
type Decoder struct {
	r    *bufio.Reader
	conf Config
	dict *dict.Dictionary
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader, conf *Config) *Decoder {
	d := new(Decoder)
	d.Reset(r, conf)
	return d
}

// Reset reinitializes d to read a new stream from r.
func (d *Decoder) Reset(r io.Reader, conf *Config) {
	var c Config
	if conf != nil {
		c = *conf
	}
	*d = Decoder{r: bufio.NewReader(r), conf: c}
}

// Decode reads one complete textual nts stream and returns the tree it
// encodes.
func (d *Decoder) Decode() (t *tree.Tree, err error) {
	defer errs.Recover(&err)

	conf, cerr := d.conf.resolve()
	errs.Panic(cerr)
	d.conf = conf
	d.dict = dict.New(conf.DictSize)

	return reconstruct.Build(d.readBlock)
}

// readBlock implements reconstruct.Next by scanning bytes until a
// complete "word|count]" or "}index|count]" block has been read.
func (d *Decoder) readBlock() (word string, childCount uint32, atBoundary bool) {
	var buf []byte
	var backrefMode bool
	sawFieldSep := false

	for {
		b, err := d.r.ReadByte()
		if err == io.EOF {
			if !sawFieldSep && len(buf) == 0 && !backrefMode {
				return "", 0, true // clean end of stream
			}
			errs.Panic(nterr.New(nterr.TruncatedStream, "stream ended mid-block"))
		}
		errs.Panic(err)

		switch b {
		case backrefTag:
			if sawFieldSep || backrefMode || len(buf) != 0 {
				errs.Panic(nterr.New(nterr.IllegalByte, "unexpected '}' inside a block"))
			}
			backrefMode = true

		case fieldSep:
			if sawFieldSep {
				errs.Panic(nterr.New(nterr.IllegalByte, "unexpected second '|' inside a block"))
			}
			sawFieldSep = true
			if backrefMode {
				idx, aerr := strconv.Atoi(string(buf))
				if aerr != nil {
					errs.Panic(nterr.Newf(nterr.IllegalByte, "invalid dictionary index %q", buf))
				}
				w, full := d.dict.Lookup(idx)
				if !full {
					errs.Panic(nterr.Newf(nterr.IndexOutOfRange, "dictionary slot %d is empty", idx))
				}
				word = w
				d.dict.Put(idx, w) // idempotent write-back
			} else {
				word = string(buf)
				validateWord(word)
			}
			buf = buf[:0]

		case blockEnd:
			if !sawFieldSep {
				errs.Panic(nterr.New(nterr.IllegalByte, "unexpected ']' before '|'"))
			}
			n, aerr := strconv.Atoi(string(buf))
			if aerr != nil || n < 0 {
				errs.Panic(nterr.Newf(nterr.IllegalByte, "invalid child count %q", buf))
			}
			if !backrefMode {
				h := d.dict.Hash(word)
				d.dict.Put(h, word)
			}
			return word, uint32(n), false

		default:
			buf = append(buf, b)
		}
	}
}
