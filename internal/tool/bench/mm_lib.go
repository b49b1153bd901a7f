// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build !no_mm_lib

package bench

import "github.com/dsnet/bwt"

func init() {
	RegisterEncoder("mm", bwt.Encode)
	RegisterDecoder("mm", bwt.Decode)
}
