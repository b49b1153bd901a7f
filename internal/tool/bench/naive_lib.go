// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build !no_naive_lib

package bench

import (
	"github.com/dsnet/bwt"
	"github.com/dsnet/bwt/internal/testutil"
)

// The naive encoder sorts suffixes by direct comparison and serves as the
// baseline that the bucket refinement encoder is measured against.
func init() {
	RegisterEncoder("naive",
		func(input []byte) ([]byte, []int, error) {
			t, err := bwt.EnsureSentinel(input)
			if err != nil {
				return nil, nil, err
			}
			sa := testutil.NaiveSA(t, bwt.DefaultSentinel)
			output := make([]byte, len(t))
			for i, p := range sa {
				output[i] = t[(p+len(t)-1)%len(t)]
			}
			return output, sa, nil
		})
}
