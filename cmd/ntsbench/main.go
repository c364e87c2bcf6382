// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command ntsbench compares the size of nts-encoded trees against
// general-purpose compressors run over the same tree flattened as a
// newline-separated word list, the way internal/tool/bench in the teacher
// repository compares codecs against each other.
//
// Example usage:
//	$ ntsbench -trees 20 -nodes 500 -seed 1
//	BENCHMARK: random trees (n=20, nodes<=500)
//		format      avg size   delta
//		nts-bin       612 B  1.00x
//		nts-text      781 B  1.28x
//		flate         943 B  1.54x
//		xz            902 B  1.47x
package main

import (
	"bytes"
	"flag"
	"fmt"

	"github.com/klauspost/compress/flate"
	"github.com/ulikunitz/xz"

	dsstrconv "github.com/dsnet/golib/strconv"

	"github.com/dsnet/nts/internal/testutil"
	"github.com/dsnet/nts/nts"
	"github.com/dsnet/nts/ntstext"
	"github.com/dsnet/nts/tree"
)

func main() {
	numTrees := flag.Int("trees", 20, "number of random trees to sample")
	maxNodes := flag.Int("nodes", 500, "maximum node count per tree")
	maxDepth := flag.Int("depth", 8, "maximum tree depth")
	maxBranch := flag.Int("branch", 6, "maximum children per node")
	seed := flag.Int("seed", 1, "deterministic PRNG seed")
	flag.Parse()

	r := testutil.NewRand(*seed)
	var totals [4]int64
	for i := 0; i < *numTrees; i++ {
		t := testutil.RandTree(r, *maxDepth, *maxBranch, *maxNodes)
		sizes, err := measure(t)
		if err != nil {
			fmt.Printf("tree %d: %v\n", i, err)
			continue
		}
		for j, s := range sizes {
			totals[j] += s
		}
	}

	names := [...]string{"nts-bin", "nts-text", "flate", "xz"}
	fmt.Printf("BENCHMARK: random trees (n=%d, nodes<=%d)\n", *numTrees, *maxNodes)
	fmt.Printf("\t%-10s%10s%8s\n", "format", "avg size", "delta")
	base := float64(totals[0]) / float64(*numTrees)
	for i, name := range names {
		avg := float64(totals[i]) / float64(*numTrees)
		delta := avg / base
		fmt.Printf("\t%-10s%9s  %.2fx\n", name, dsstrconv.FormatPrefix(avg, dsstrconv.Base1024, 2), delta)
	}
}

// measure returns the encoded size of t under four formats: binary nts,
// textual nts, flate-compressed word dump, and xz-compressed word dump.
func measure(t *tree.Tree) ([4]int64, error) {
	var sizes [4]int64

	var binBuf bytes.Buffer
	n, err := nts.NewEncoder(&binBuf, nil).Encode(t)
	if err != nil {
		return sizes, err
	}
	sizes[0] = n

	var textBuf bytes.Buffer
	n, err = ntstext.NewEncoder(&textBuf, nil).Encode(t)
	if err != nil {
		return sizes, err
	}
	sizes[1] = n

	words := flattenWords(t)

	var flateBuf bytes.Buffer
	fw, err := flate.NewWriter(&flateBuf, flate.DefaultCompression)
	if err != nil {
		return sizes, err
	}
	if _, err := fw.Write(words); err != nil {
		return sizes, err
	}
	if err := fw.Close(); err != nil {
		return sizes, err
	}
	sizes[2] = int64(flateBuf.Len())

	var xzBuf bytes.Buffer
	xw, err := xz.NewWriter(&xzBuf)
	if err != nil {
		return sizes, err
	}
	if _, err := xw.Write(words); err != nil {
		return sizes, err
	}
	if err := xw.Close(); err != nil {
		return sizes, err
	}
	sizes[3] = int64(xzBuf.Len())

	return sizes, nil
}

// flattenWords serializes t's words in pre-order, one per line, as the
// plain-text baseline input the general-purpose compressors operate on.
func flattenWords(t *tree.Tree) []byte {
	var buf bytes.Buffer
	stack := []*tree.Node{t.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		buf.WriteString(n.Word())
		buf.WriteByte('\n')
		stack = append(stack, n.Children()...)
	}
	return buf.Bytes()
}
