// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package errors implements the error type shared by the public packages.
//
// The internal packages of this repository report failures by panicking
// with an Error (see github.com/dsnet/golib/errs). The public packages
// recover from those panics so that only error values cross the API.
package errors

import "strings"

const (
	// Unknown indicates that there is no classification for this error.
	Unknown = iota

	// Internal indicates that this error is due to an internal bug.
	// Users should file a issue report if this type of error is encountered.
	Internal

	// InvalidSequence indicates that the input sequence violates the
	// sentinel invariant: the sentinel occurs more than once, or somewhere
	// other than the final position.
	InvalidSequence

	// PreconditionViolation indicates that the caller passed arguments that
	// cannot belong together, such as a suffix array that is not a
	// permutation or does not match the length of the transformed sequence.
	PreconditionViolation
)

var codeMap = map[int]string{
	Unknown:               "unknown error",
	Internal:              "internal error",
	InvalidSequence:       "invalid sequence",
	PreconditionViolation: "precondition violation",
}

type Error struct {
	Code int    // The error type
	Pkg  string // Name of the package where the error originated
	Msg  string // Descriptive message about the error (optional)
}

func (e Error) Error() string {
	var ss []string
	for _, s := range []string{e.Pkg, codeMap[e.Code], e.Msg} {
		if s != "" {
			ss = append(ss, s)
		}
	}
	return strings.Join(ss, ": ")
}

func (e Error) IsInternal() bool              { return e.Code == Internal }
func (e Error) IsInvalidSequence() bool       { return e.Code == InvalidSequence }
func (e Error) IsPreconditionViolation() bool { return e.Code == PreconditionViolation }

func IsInternal(err error) bool              { return isCode(err, Internal) }
func IsInvalidSequence(err error) bool       { return isCode(err, InvalidSequence) }
func IsPreconditionViolation(err error) bool { return isCode(err, PreconditionViolation) }

func isCode(err error, code int) bool {
	if cerr, ok := err.(Error); ok && cerr.Code == code {
		return true
	}
	return false
}
