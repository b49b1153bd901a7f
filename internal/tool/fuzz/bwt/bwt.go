// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build gofuzz

package bwt

import (
	"bytes"
	"fmt"

	gbwt "github.com/dsnet/bwt"
	"github.com/dsnet/bwt/internal/testutil"
)

// maxSize bounds the input since the reference suffix sort is slow.
const maxSize = 1 << 12

func Fuzz(data []byte) int {
	if len(data) > maxSize {
		return -1
	}
	seq, err := gbwt.EnsureSentinel(data)
	if err != nil {
		if !gbwt.IsInvalidSequence(err) {
			panic(err)
		}
		return 0
	}
	testSuffixArray(seq)
	testRoundTrip(data, seq)
	return 1 // Favor valid inputs
}

// testSuffixArray checks that the bucket refinement algorithm agrees with
// a plain comparison sort of all suffixes.
func testSuffixArray(seq []byte) {
	sa, err := gbwt.SuffixArray(seq)
	if err != nil {
		panic(err)
	}
	want := testutil.NaiveSA(seq, gbwt.DefaultSentinel)
	if len(sa) != len(want) {
		panic("mismatching suffix array length")
	}
	for i := range sa {
		if sa[i] != want[i] {
			panic(fmt.Sprintf("mismatching suffix array at rank %d: got %d, want %d", i, sa[i], want[i]))
		}
	}
}

// testRoundTrip checks that decoding the forward transform yields the input
// terminated by the sentinel.
func testRoundTrip(data, seq []byte) {
	output, sa, err := gbwt.Encode(data)
	if err != nil {
		panic(err)
	}
	got, err := gbwt.Decode(output, sa)
	if err != nil {
		panic(err)
	}
	if !bytes.Equal(got, seq) {
		panic("mismatching round trip")
	}
}
