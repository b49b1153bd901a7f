// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bwt implements the Burrows-Wheeler Transform (BWT) and its inverse
// on top of an explicit suffix array.
//
// Every sequence is terminated by a sentinel: a reserved byte that occurs
// exactly once, at the final position, and ranks below every other byte.
// The sentinel makes all suffixes distinct so that they are totally ordered.
// The forward transform returns the suffix array alongside the transformed
// sequence, since the inverse transform requires both.
//
// References:
//	http://www.hpl.hp.com/techreports/Compaq-DEC/SRC-RR-124.pdf
//	http://webglimpse.net/pubs/suffix.pdf
package bwt

import (
	"fmt"

	"github.com/dsnet/bwt/internal/errors"
)

// DefaultSentinel is the sentinel used when no Config is provided.
const DefaultSentinel = '$'

// Config configures a Codec.
type Config struct {
	// Sentinel is the reserved end-of-sequence byte and must be within
	// [0, 256). It ranks below every other byte regardless of its value.
	Sentinel int

	_ struct{} // Blank field to prevent unkeyed struct literals
}

func errorf(c int, f string, a ...interface{}) error {
	return errors.Error{Code: c, Pkg: "bwt", Msg: fmt.Sprintf(f, a...)}
}

// IsInvalidSequence reports whether err was caused by an input whose sentinel
// occurs more than once or at a position other than the last.
func IsInvalidSequence(err error) bool { return errors.IsInvalidSequence(err) }

// IsPreconditionViolation reports whether err was caused by arguments that
// cannot belong together, such as a suffix array that is not a permutation
// or whose length differs from the transformed sequence.
func IsPreconditionViolation(err error) bool { return errors.IsPreconditionViolation(err) }
