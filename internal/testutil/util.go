// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"io/ioutil"
	"sort"
)

// ResizeData resizes the input. If n < 0, then the original input will be
// returned as is. If n <= len(input), then the input slice will be truncated.
// However, if n > len(input), then the input will be replicated to fill in
// the missing bytes, but each replicated string will be XORed by some byte
// mask so that the result is not a trivial repetition.
//
// If n > len(input), then len(input) must be > 0.
func ResizeData(input []byte, n int) []byte {
	if n < 0 {
		return input
	}
	if len(input) >= n {
		return input[:n]
	}
	if len(input) == 0 {
		panic("unable to replicate an empty string")
	}

	var mask byte
	output := make([]byte, n)
	for i := range output {
		idx := i % len(input)
		output[i] = input[idx] ^ mask
		if idx == len(input)-1 {
			mask++
		}
	}
	return output
}

// LoadFile loads the first n bytes of the input file. If n < 0, then it will
// return the entire file as it is.
func LoadFile(file string, n int) ([]byte, error) {
	b, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return ResizeData(b, n), nil
}

// MustLoadFile must load a file or else panics.
func MustLoadFile(file string, n int) []byte {
	b, err := LoadFile(file, n)
	if err != nil {
		panic(err)
	}
	return b
}

// NaiveSA computes the suffix array of T by comparison sorting every suffix,
// where the sentinel ranks below all other symbols. It runs in O(n^2 log n)
// and serves as the reference the faster algorithms are checked against.
func NaiveSA(T []byte, sentinel byte) []int {
	rank := func(c byte) int {
		if c == sentinel {
			return -1
		}
		return int(c)
	}
	less := func(i, j int) bool {
		for i < len(T) && j < len(T) {
			if T[i] != T[j] {
				return rank(T[i]) < rank(T[j])
			}
			i, j = i+1, j+1
		}
		return i == len(T) && j < len(T)
	}

	sa := make([]int, len(T))
	for i := range sa {
		sa[i] = i
	}
	sort.Slice(sa, func(i, j int) bool { return less(sa[i], sa[j]) })
	return sa
}
