// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package nts implements the binary N-Gram Tree Serialization codec: a
// compact, self-describing encoding for rooted, unordered, labeled trees
// whose nodes carry a short printable-ASCII word.
//
// The format is a 6-byte header (magic "ntsf", the back-reference byte B,
// and the dictionary size N) followed by a pre-order sequence of blocks,
// each either a standard block (word bytes, an end-word tag, a big-endian
// child count) or a back-reference block (the byte B, a dictionary index,
// an end-word tag, a big-endian child count). See Encoder and Decoder.
package nts

import "fmt"

// Magic is the 4-byte file signature every binary nts stream begins with.
var Magic = [4]byte{'n', 't', 's', 'f'}

const (
	// HeaderLen is the fixed size of the binary header in bytes.
	HeaderLen = 4 + 1 + 1

	// DefaultBackrefByte is B's default value.
	DefaultBackrefByte byte = 0xF0
	// MinBackrefByte and MaxBackrefByte bound the legal range for B.
	MinBackrefByte byte = 0xF0
	MaxBackrefByte byte = 0xFD

	// DefaultDictSize is N's default value.
	DefaultDictSize = 255
	// MaxDictSize is the hard cap on N so an index fits in one byte.
	MaxDictSize = 255
)

// Config configures an Encoder or Decoder. The zero value selects the
// documented defaults (B = 0xF0, N = 255). The blank field prevents
// unkeyed struct literals, matching bzip2.ReaderConfig/WriterConfig.
type Config struct {
	BackrefByte byte // B: in [0xF0, 0xFD]; 0 selects DefaultBackrefByte
	DictSize    int  // N: in [1, 255]; 0 selects DefaultDictSize

	_ struct{}
}

func (c Config) resolve() (Config, error) {
	if c.BackrefByte == 0 {
		c.BackrefByte = DefaultBackrefByte
	}
	if c.DictSize == 0 {
		c.DictSize = DefaultDictSize
	}
	if c.BackrefByte < MinBackrefByte || c.BackrefByte > MaxBackrefByte {
		return c, fmt.Errorf("nts: back-reference byte %#x out of range [%#x, %#x]", c.BackrefByte, MinBackrefByte, MaxBackrefByte)
	}
	if c.DictSize < 1 || c.DictSize > MaxDictSize {
		return c, fmt.Errorf("nts: dictionary size %d out of range [1, %d]", c.DictSize, MaxDictSize)
	}
	return c, nil
}
