// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package nts

import (
	"bufio"
	"bytes"
	"io"

	"github.com/dsnet/golib/errs"

	"github.com/dsnet/nts/internal/dict"
	"github.com/dsnet/nts/internal/nterr"
	"github.com/dsnet/nts/internal/reconstruct"
	"github.com/dsnet/nts/internal/vlen"
	"github.com/dsnet/nts/tree"
)

// Decoder reconstructs a tree.Tree from the binary nts wire format using
// a stack-based depth-first reconstructor.
type Decoder struct {
	InputOffset int64 // total bytes of the stream consumed by the decoder

	r    *bufio.Reader
	conf Config
	dict *dict.Dictionary
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	d := new(Decoder)
	d.Reset(r)
	return d
}

// Reset reinitializes d to read a new stream from r.
func (d *Decoder) Reset(r io.Reader) {
	*d = Decoder{r: bufio.NewReader(r)}
}

// Decode reads one complete nts stream and returns the tree it encodes. On
// success the stack is fully drained and exactly one root was produced;
// otherwise a *nterr.Error describing the malformed stream is returned.
func (d *Decoder) Decode() (t *tree.Tree, err error) {
	defer errs.Recover(&err)

	d.readHeader()
	d.dict = dict.New(d.conf.DictSize)

	return reconstruct.Build(d.readBlock)
}

func (d *Decoder) readHeader() {
	var hdr [HeaderLen]byte
	n, err := io.ReadFull(d.r, hdr[:])
	d.InputOffset += int64(n)
	switch err {
	case nil:
		// ok
	case io.EOF:
		errs.Panic(nterr.New(nterr.EmptyStream, "empty input"))
	case io.ErrUnexpectedEOF:
		errs.Panic(nterr.New(nterr.MalformedHeader, "stream ended before the 6-byte header was complete"))
	default:
		errs.Panic(err)
	}
	if !bytes.Equal(hdr[:4], Magic[:]) {
		errs.Panic(nterr.Newf(nterr.MalformedHeader, "magic mismatch: got %x, want %x", hdr[:4], Magic))
	}

	conf, cerr := Config{BackrefByte: hdr[4], DictSize: int(hdr[5])}.resolve()
	if cerr != nil {
		errs.Panic(nterr.Newf(nterr.MalformedHeader, "%v", cerr))
	}
	d.conf = conf
}

// readBlock decodes the next (word, childCount) pair. atBoundary is true
// only when EOF is hit before any byte of a new block has been consumed
// — i.e. the stream ended cleanly after the previous block. It implements
// reconstruct.Next.
func (d *Decoder) readBlock() (word string, childCount uint32, atBoundary bool) {
	b, err := d.r.ReadByte()
	if err == io.EOF {
		return "", 0, true
	}
	errs.Panic(err)
	d.InputOffset++

	B := d.conf.BackrefByte
	var tag byte
	var isBackref bool
	switch {
	case b == B:
		isBackref = true
		idx := d.mustReadByte()
		w, full := d.dict.Lookup(int(idx))
		if !full {
			errs.Panic(nterr.Newf(nterr.IndexOutOfRange, "dictionary slot %d is empty", idx))
		}
		word = w
		d.dict.Put(int(idx), w) // idempotent write-back
		tag = d.mustReadByte()

	case b < B:
		buf := []byte{b}
		for {
			nb := d.mustReadByte()
			if nb < B {
				buf = append(buf, nb)
				continue
			}
			if nb == B {
				errs.Panic(nterr.New(nterr.IllegalByte, "back-reference byte encountered mid-word"))
			}
			tag = nb
			break
		}
		word = string(buf)

	default: // b > B: a word of length zero immediately followed by its tag
		tag = b
	}

	// Standard blocks update the dictionary slot exactly as the encoder
	// does, so both sides stay in lockstep.
	if !isBackref {
		d.dict.Put(d.dict.Hash(word), word)
	}

	if tag <= B {
		errs.Panic(nterr.Newf(nterr.IllegalByte, "expected an end-word tag > %#x, got %#x", B, tag))
	}
	l := int(tag) - int(B) - 1
	var countBuf [vlen.MaxLen]byte
	for i := 0; i < l; i++ {
		countBuf[i] = d.mustReadByte()
	}
	childCount = vlen.Get(countBuf[:l])
	return word, childCount, false
}

func (d *Decoder) mustReadByte() byte {
	b, err := d.r.ReadByte()
	if err == io.EOF {
		errs.Panic(nterr.New(nterr.TruncatedStream, "stream ended mid-block"))
	}
	errs.Panic(err)
	d.InputOffset++
	return b
}
