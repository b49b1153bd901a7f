// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"fmt"
	stdstrconv "strconv"
)

// FormatSuffixArray encodes sa as comma separated decimal integers followed
// by a newline.
func FormatSuffixArray(sa []int) []byte {
	var b bytes.Buffer
	for i, p := range sa {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(stdstrconv.Itoa(p))
	}
	b.WriteByte('\n')
	return b.Bytes()
}

// ParseSuffixArray decodes the output of FormatSuffixArray. Surrounding
// whitespace and spaces after commas are ignored. Whether the entries form a
// permutation is left to the decoder.
func ParseSuffixArray(b []byte) ([]int, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return []int{}, nil
	}
	fields := bytes.Split(b, []byte(","))
	sa := make([]int, len(fields))
	for i, f := range fields {
		p, err := stdstrconv.Atoi(string(bytes.TrimSpace(f)))
		if err != nil {
			return nil, fmt.Errorf("suffix array entry %d: %v", i, err)
		}
		sa[i] = p
	}
	return sa, nil
}
