// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package mm implements a suffix array algorithm based on recursive bucket
// refinement in the style of Manber and Myers.
package mm

import "github.com/dsnet/bwt/internal"

// Suffixes are grouped into buckets keyed by their first few symbols. Every
// bucket holding more than one suffix is split again using a longer prefix.
// The prefix length (the stage) is shared by the entire construction: it
// starts at 1 and doubles every time a bucket needs splitting, and it is never
// restored when the recursion returns. Since buckets are visited in key order
// and fully resolved before their successors, the order in which singleton
// buckets are emitted is the suffix array.
//
// The sentinel is the only symbol that may terminate a key early and it ranks
// below every other symbol, regardless of its byte value.
//
// References:
//	http://webglimpse.net/pubs/suffix.pdf
//	https://en.wikipedia.org/wiki/Suffix_array

// ComputeSA computes the suffix array of T and places the result in SA.
// Both T and SA must be the same length. The sentinel ranks below every
// other symbol; T is expected to end with it and not contain it elsewhere.
func ComputeSA(T []byte, SA []int, sentinel byte) {
	if len(SA) != len(T) {
		panic("mismatching sizes")
	}
	if len(T) == 0 {
		return
	}

	pos := make([]int, len(T))
	for i := range pos {
		pos[i] = i
	}
	b := builder{t: T, sa: SA[:0], stage: 1, sentinel: sentinel}
	b.refine(pos)

	if internal.Debug {
		verifySA(T, SA, sentinel)
	}
}
