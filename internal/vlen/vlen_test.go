// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package vlen

import "testing"

func TestLen(t *testing.T) {
	vectors := []struct {
		v uint32
		l int
	}{
		{0, 0},
		{1, 1},
		{0xff, 1},
		{0x100, 2},
		{0xffff, 2},
		{0x10000, 3},
		{0xffffff, 3},
		{0x1000000, 4},
		{0xffffffff, 4},
	}
	for _, v := range vectors {
		if got := Len(v.v); got != v.l {
			t.Errorf("Len(%#x) = %d, want %d", v.v, got, v.l)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	vectors := []uint32{0, 1, 255, 256, 300, 65535, 65536, 1 << 24, 0xffffffff}
	for _, v := range vectors {
		l := Len(v)
		var buf [MaxLen]byte
		enc := Put(buf[:], v)
		if len(enc) != l {
			t.Fatalf("Put(%d) produced %d bytes, want %d", v, len(enc), l)
		}
		if got := Get(enc); got != v {
			t.Errorf("Get(Put(%d)) = %d, want %d", v, got, v)
		}
	}
}

func TestZeroLength(t *testing.T) {
	if got := Get(nil); got != 0 {
		t.Errorf("Get(nil) = %d, want 0", got)
	}
}
