// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command nts converts N-Gram Tree Serialization streams between the
// binary (.nts) and textual (.ngrams) wire formats.
//
// Example usage:
//	$ nts -in tree.nts -out tree.ngrams
//	$ nts -in tree.ngrams -out tree.nts -dictsize 128
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	dsstrconv "github.com/dsnet/golib/strconv"

	"github.com/dsnet/nts/nts"
	"github.com/dsnet/nts/ntstext"
	"github.com/dsnet/nts/tree"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("nts: ")

	inPath := flag.String("in", "", "input file (.nts or .ngrams); \"-\" for stdin")
	outPath := flag.String("out", "", "output file (.nts or .ngrams); \"-\" for stdout")
	dictSize := flag.Int("dictsize", 0, "back-reference dictionary size N (0 selects the format default)")
	backrefByte := flag.Int("backrefbyte", 0, "binary back-reference byte B, in [0xF0, 0xFD] (0 selects the default)")
	flag.Parse()

	if *inPath == "" || *outPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	t, inSize, err := decodeFile(*inPath)
	if err != nil {
		log.Fatalf("decode %s: %v", *inPath, err)
	}

	outSize, err := encodeFile(*outPath, t, *dictSize, *backrefByte)
	if err != nil {
		log.Fatalf("encode %s: %v", *outPath, err)
	}

	fmt.Printf("%s (%s) -> %s (%s)\n", *inPath,
		dsstrconv.FormatPrefix(float64(inSize), dsstrconv.Base1024, 2),
		*outPath,
		dsstrconv.FormatPrefix(float64(outSize), dsstrconv.Base1024, 2))
}

// countingReader wraps an io.Reader and tallies the bytes it has yielded,
// so callers can report an accurate input size regardless of format.
type countingReader struct {
	r io.Reader
	n int64
}

func (cr *countingReader) Read(p []byte) (int, error) {
	n, err := cr.r.Read(p)
	cr.n += int64(n)
	return n, err
}

func isBinaryFormat(path string) bool {
	return strings.HasSuffix(path, ".nts")
}

func openInput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdin, nil
	}
	return os.Open(path)
}

func openOutput(path string) (*os.File, error) {
	if path == "-" {
		return os.Stdout, nil
	}
	return os.Create(path)
}

func decodeFile(path string) (*tree.Tree, int64, error) {
	f, err := openInput(path)
	if err != nil {
		return nil, 0, err
	}
	if f != os.Stdin {
		defer f.Close()
	}

	if isBinaryFormat(path) {
		d := nts.NewDecoder(bufio.NewReader(f))
		t, err := d.Decode()
		return t, d.InputOffset, err
	}
	cr := &countingReader{r: f}
	t, err := ntstext.NewDecoder(bufio.NewReader(cr), nil).Decode()
	if err != nil {
		return nil, 0, err
	}
	return t, cr.n, nil
}

func encodeFile(path string, t *tree.Tree, dictSize, backrefByte int) (int64, error) {
	f, err := openOutput(path)
	if err != nil {
		return 0, err
	}
	if f != os.Stdout {
		defer f.Close()
	}
	w := bufio.NewWriter(f)
	defer w.Flush()

	if isBinaryFormat(path) {
		conf := &nts.Config{DictSize: dictSize, BackrefByte: byte(backrefByte)}
		return nts.NewEncoder(w, conf).Encode(t)
	}
	conf := &ntstext.Config{DictSize: dictSize}
	return ntstext.NewEncoder(w, conf).Encode(t)
}
