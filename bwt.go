// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"fmt"
	"os"

	"github.com/dsnet/bwt/internal"
	"github.com/dsnet/bwt/internal/errors"
	"github.com/dsnet/bwt/internal/mm"
	"github.com/dsnet/golib/errs"
)

// A Codec performs the forward and inverse transforms for one choice of
// sentinel. A Codec holds no mutable state and is safe for concurrent use;
// every call builds its suffix array from scratch.
type Codec struct {
	sentinel byte
}

var defaultCodec = Codec{sentinel: DefaultSentinel}

// NewCodec creates a new Codec. If conf is nil, DefaultSentinel is used.
func NewCodec(conf *Config) (*Codec, error) {
	if conf == nil {
		return &Codec{sentinel: DefaultSentinel}, nil
	}
	if conf.Sentinel < 0 || conf.Sentinel > 0xff {
		return nil, errorf(errors.PreconditionViolation, "sentinel %d is not a byte", conf.Sentinel)
	}
	return &Codec{sentinel: byte(conf.Sentinel)}, nil
}

// Sentinel reports the sentinel byte used by c.
func (c *Codec) Sentinel() byte { return c.sentinel }

// SuffixArray computes the suffix array of seq, which must already be
// terminated by the sentinel. The i-th entry is the starting position of the
// i-th smallest suffix.
func (c *Codec) SuffixArray(seq []byte) (sa []int, err error) {
	defer errs.Recover(&err)
	errs.Assert(c.hasSentinel(seq), errorf(errors.InvalidSequence, "missing sentinel %q", c.sentinel))
	sa = make([]int, len(seq))
	mm.ComputeSA(seq, sa, c.sentinel)
	return sa, nil
}

// Encode computes the Burrows-Wheeler Transform of seq. The sentinel is
// appended to seq if it is missing. The returned suffix array is required by
// Decode; it is not retained by the Codec.
//
// The i-th output symbol is the one preceding the i-th smallest suffix,
// where the sentinel precedes the suffix starting at position 0.
func (c *Codec) Encode(seq []byte) (out []byte, sa []int, err error) {
	defer errs.Recover(&err)
	t := c.ensureSentinel(seq)
	sa = make([]int, len(t))
	mm.ComputeSA(t, sa, c.sentinel)

	out = make([]byte, len(t))
	for i, p := range sa {
		if p == 0 {
			out[i] = c.sentinel
			continue
		}
		out[i] = t[p-1]
	}

	if internal.Debug {
		fmt.Fprintf(os.Stderr, "bwt: encode: %q -> %q, sa: %v\n",
			internal.Truncate(string(t), 64), internal.Truncate(string(out), 64), sa)
	}
	return out, sa, nil
}

// Decode inverts Encode given the transformed sequence and its suffix array.
// The returned sequence includes the trailing sentinel.
//
// The suffix array must be a permutation of [0, len(out)); otherwise an error
// reporting the precondition violation is returned. A permutation that does
// not belong to out is not detected and decodes to an unspecified sequence.
func (c *Codec) Decode(out []byte, sa []int) (seq []byte, err error) {
	defer errs.Recover(&err)
	checkPermutation(out, sa)

	n := len(out)
	seq = make([]byte, n)
	for i, p := range sa {
		if p == 0 {
			p = n
		}
		seq[p-1] = out[i]
	}

	if internal.Debug {
		fmt.Fprintf(os.Stderr, "bwt: decode: %q -> %q\n",
			internal.Truncate(string(out), 64), internal.Truncate(string(seq), 64))
	}
	return seq, nil
}

// checkPermutation panics unless sa is a permutation of [0, len(out)).
func checkPermutation(out []byte, sa []int) {
	errs.Assert(len(out) == len(sa), errorf(errors.PreconditionViolation,
		"length mismatch: transformed sequence has %d symbols, suffix array has %d entries", len(out), len(sa)))
	seen := make([]bool, len(sa))
	for i, p := range sa {
		if p < 0 || p >= len(sa) {
			errs.Panic(errorf(errors.PreconditionViolation, "suffix array entry %d is out of range: %d", i, p))
		}
		if seen[p] {
			errs.Panic(errorf(errors.PreconditionViolation, "suffix array entry %d duplicates position %d", i, p))
		}
		seen[p] = true
	}
}

// EnsureSentinel calls EnsureSentinel on a Codec using DefaultSentinel.
func EnsureSentinel(seq []byte) ([]byte, error) { return defaultCodec.EnsureSentinel(seq) }

// SuffixArray calls SuffixArray on a Codec using DefaultSentinel.
func SuffixArray(seq []byte) ([]int, error) { return defaultCodec.SuffixArray(seq) }

// Encode calls Encode on a Codec using DefaultSentinel.
func Encode(seq []byte) ([]byte, []int, error) { return defaultCodec.Encode(seq) }

// Decode calls Decode on a Codec using DefaultSentinel.
func Decode(out []byte, sa []int) ([]byte, error) { return defaultCodec.Decode(out, sa) }
