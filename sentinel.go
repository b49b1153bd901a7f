// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"bytes"

	"github.com/dsnet/bwt/internal/errors"
	"github.com/dsnet/golib/errs"
)

// EnsureSentinel returns seq terminated by the sentinel.
//
// If seq does not contain the sentinel, a copy with the sentinel appended is
// returned. If the sentinel occurs exactly once as the last byte, seq itself
// is returned. Otherwise, the sequence is invalid and an error is returned.
func (c *Codec) EnsureSentinel(seq []byte) (out []byte, err error) {
	defer errs.Recover(&err)
	return c.ensureSentinel(seq), nil
}

func (c *Codec) ensureSentinel(seq []byte) []byte {
	if c.hasSentinel(seq) {
		return seq
	}
	out := make([]byte, len(seq)+1)
	copy(out, seq)
	out[len(seq)] = c.sentinel
	return out
}

// hasSentinel reports whether seq is already terminated by the sentinel.
// It panics if the sentinel appears anywhere but the final position.
func (c *Codec) hasSentinel(seq []byte) bool {
	i := bytes.IndexByte(seq, c.sentinel)
	switch {
	case i < 0:
		return false
	case i == len(seq)-1:
		return true
	case seq[len(seq)-1] == c.sentinel:
		errs.Panic(errorf(errors.InvalidSequence, "sentinel %q occurs more than once (first at position %d)", c.sentinel, i))
	default:
		errs.Panic(errorf(errors.InvalidSequence, "sentinel %q at position %d is not the final symbol", c.sentinel, i))
	}
	panic("unreachable")
}
