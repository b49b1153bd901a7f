// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package mm

import (
	"fmt"
	"os"
	"sort"

	"github.com/dsnet/bwt/internal"
)

// builder holds the state of a single construction pass.
type builder struct {
	t        []byte
	sa       []int // Positions in their final order; shares storage with SA
	stage    int   // Prefix length used to form keys
	sentinel byte
}

// refine resolves the order of all suffixes starting in pos and appends
// them to b.sa.
func (b *builder) refine(pos []int) {
	keys, buckets := b.bucketize(pos)
	for _, k := range keys {
		v := buckets[k]
		if len(v) > 1 {
			b.grow()
			b.refine(v)
			continue
		}
		b.sa = append(b.sa, v[0])
	}
}

// grow doubles the stage. It saturates at len(b.t) since every larger stage
// already produces keys spanning the entire suffix.
func (b *builder) grow() {
	if b.stage < len(b.t) {
		b.stage *= 2
	}
}

// bucketize groups pos by the prefix of length b.stage starting at each
// position. Positions keep their input order within a bucket.
// The returned keys are sorted in ascending order.
func (b *builder) bucketize(pos []int) (keys []string, buckets map[string][]int) {
	buckets = make(map[string][]int)
	for _, p := range pos {
		end := p + b.stage
		if end > len(b.t) {
			end = len(b.t)
		}
		k := string(b.t[p:end])
		if _, ok := buckets[k]; !ok {
			keys = append(keys, k)
		}
		buckets[k] = append(buckets[k], p)
	}
	sort.Slice(keys, func(i, j int) bool {
		return compare(keys[i], keys[j], b.sentinel) < 0
	})

	if internal.Debug {
		fmt.Fprintf(os.Stderr, "mm: stage: %d, buckets:", b.stage)
		for _, k := range keys {
			fmt.Fprintf(os.Stderr, " %q:%v", internal.Truncate(k, 16), buckets[k])
		}
		fmt.Fprintln(os.Stderr)
	}
	return keys, buckets
}

// rank maps c to its position in the alphabet, where the sentinel sorts
// before all 256 byte values.
func rank(c, sentinel byte) int {
	if c == sentinel {
		return -1
	}
	return int(c)
}

// compare lexicographically compares a and b using rank and returns
// -1, 0, or +1. A proper prefix sorts before the longer string.
func compare(a, b string, sentinel byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] == b[i] {
			continue
		}
		if rank(a[i], sentinel) < rank(b[i], sentinel) {
			return -1
		}
		return +1
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return +1
	}
	return 0
}

// verifySA panics unless SA is a permutation of [0, len(T)) whose suffixes
// are in strictly ascending order.
func verifySA(T []byte, SA []int, sentinel byte) {
	seen := make([]bool, len(T))
	for i, p := range SA {
		if p < 0 || p >= len(T) || seen[p] {
			panic(fmt.Sprintf("mm: position %d at rank %d is not part of a permutation", p, i))
		}
		seen[p] = true
		if i > 0 && compare(string(T[SA[i-1]:]), string(T[p:]), sentinel) >= 0 {
			panic(fmt.Sprintf("mm: suffixes at rank %d and %d are out of order", i-1, i))
		}
	}
}
