// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package internal is a collection of helpers shared by the transform
// packages and tools.
//
// For performance reasons, the internal packages lack strong error checking
// and require that the caller ensure that strict invariants are kept.
package internal

// Truncate formats s for diagnostic output, eliding everything past limit
// bytes so that large inputs do not flood the terminal.
func Truncate(s string, limit int) string {
	if limit >= 0 && len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
