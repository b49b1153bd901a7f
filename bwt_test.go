// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bwt

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/dsnet/bwt/internal/testutil"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

const (
	dna  = "testdata/dna.txt"
	text = "testdata/text.txt"
)

// ss formats s for test failure messages.
func ss(s string) string {
	const limit = 256
	if len(s) > limit {
		return fmt.Sprintf("%q...", s[:limit])
	}
	return fmt.Sprintf("%q", s)
}

func TestBurrowsWheelerTransform(t *testing.T) {
	var vectors = []struct {
		input  string // The input test string
		output string // Expected output string after BWT
		sa     []int  // Expected suffix array
	}{{
		input:  "",
		output: "$",
		sa:     []int{0},
	}, {
		input:  "$",
		output: "$",
		sa:     []int{0},
	}, {
		input:  "banana",
		output: "annb$aa",
		sa:     []int{6, 5, 3, 1, 0, 4, 2},
	}, {
		input:  "banana$",
		output: "annb$aa",
		sa:     []int{6, 5, 3, 1, 0, 4, 2},
	}, {
		input:  "abracadabra",
		output: "ard$rcaaaabb",
		sa:     []int{11, 10, 7, 0, 3, 5, 8, 1, 4, 6, 9, 2},
	}, {
		input:  "STETSTESTE$",
		output: "ETTTET$SSSE",
		sa:     []int{10, 9, 6, 2, 7, 4, 0, 8, 5, 1, 3},
	}, {
		input:  "mississippi",
		output: "ipssm$pissii",
		sa:     []int{11, 10, 7, 4, 1, 0, 9, 8, 6, 3, 5, 2},
	}, {
		input:  "aaaa",
		output: "aaaa$",
		sa:     []int{4, 3, 2, 1, 0},
	}}

	for i, v := range vectors {
		output, sa, err := Encode([]byte(v.input))
		if err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
			continue
		}
		if string(output) != v.output {
			t.Errorf("test %d, output mismatch:\ngot  %v\nwant %v", i, ss(string(output)), ss(v.output))
		}
		if diff := cmp.Diff(v.sa, sa); diff != "" {
			t.Errorf("test %d, suffix array mismatch (-want +got):\n%s", i, diff)
		}

		input, err := Decode(output, sa)
		if err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
			continue
		}
		want, _ := EnsureSentinel([]byte(v.input))
		if !bytes.Equal(input, want) {
			t.Errorf("test %d, input mismatch:\ngot  %v\nwant %v", i, ss(string(input)), ss(string(want)))
		}
	}
}

func TestDecode(t *testing.T) {
	var vectors = []struct {
		output string
		sa     []int
		input  string
		errf   func(error) bool
	}{{
		output: "",
		sa:     []int{},
		input:  "",
	}, {
		output: "annb$aa",
		sa:     []int{6, 5, 3, 1, 0, 4, 2},
		input:  "banana$",
	}, {
		output: "ard$rcaaaabb",
		sa:     []int{11, 10, 7, 0, 3, 5, 8, 1, 4, 6, 9, 2},
		input:  "abracadabra$",
	}, {
		output: "annb$aa",
		sa:     []int{6, 5, 3, 1, 0, 4},
		errf:   IsPreconditionViolation,
	}, {
		output: "annb$aa",
		sa:     []int{6, 5, 3, 1, 0, 4, 7},
		errf:   IsPreconditionViolation,
	}, {
		output: "annb$aa",
		sa:     []int{6, 5, 3, 1, 0, 4, -1},
		errf:   IsPreconditionViolation,
	}, {
		output: "annb$aa",
		sa:     []int{6, 5, 3, 1, 0, 4, 4},
		errf:   IsPreconditionViolation,
	}}

	for i, v := range vectors {
		input, err := Decode([]byte(v.output), v.sa)
		if v.errf != nil {
			if !v.errf(err) {
				t.Errorf("test %d, mismatching error: got %v", i, err)
			}
			if input != nil {
				t.Errorf("test %d, unexpected output on error: %v", i, ss(string(input)))
			}
			continue
		}
		if err != nil {
			t.Errorf("test %d, unexpected error: %v", i, err)
			continue
		}
		if string(input) != v.input {
			t.Errorf("test %d, input mismatch:\ngot  %v\nwant %v", i, ss(string(input)), ss(v.input))
		}
	}
}

func TestSuffixArray(t *testing.T) {
	sa, err := SuffixArray([]byte("banana$"))
	assert.Nil(t, err)
	assert.Equal(t, []int{6, 5, 3, 1, 0, 4, 2}, sa)

	sa, err = SuffixArray([]byte("banana"))
	assert.True(t, IsInvalidSequence(err), "missing sentinel: got %v", err)
	assert.Nil(t, sa)

	sa, err = SuffixArray([]byte("ban$ana$"))
	assert.True(t, IsInvalidSequence(err), "duplicate sentinel: got %v", err)
	assert.Nil(t, sa)
}

func TestNewCodec(t *testing.T) {
	c, err := NewCodec(nil)
	assert.Nil(t, err)
	assert.Equal(t, byte(DefaultSentinel), c.Sentinel())

	c, err = NewCodec(&Config{Sentinel: 0})
	assert.Nil(t, err)
	assert.Equal(t, byte(0x00), c.Sentinel())

	for _, s := range []int{-1, 256, 1 << 20} {
		c, err = NewCodec(&Config{Sentinel: s})
		assert.True(t, IsPreconditionViolation(err), "sentinel %d: got %v", s, err)
		assert.Nil(t, c)
	}
}

// TestCustomSentinel checks that the sentinel sorts first even when input
// symbols have smaller byte values than it.
func TestCustomSentinel(t *testing.T) {
	c, err := NewCodec(&Config{Sentinel: '~'})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	output, sa, err := c.Encode([]byte("b a!"))
	assert.Nil(t, err)
	assert.Equal(t, []int{4, 1, 3, 2, 0}, sa)
	assert.Equal(t, "!ba ~", string(output))

	input, err := c.Decode(output, sa)
	assert.Nil(t, err)
	assert.Equal(t, "b a!~", string(input))

	_, _, err = c.Encode([]byte("b$a"))
	assert.Nil(t, err, "'$' is an ordinary symbol for this codec")
	_, _, err = c.Encode([]byte("b~a"))
	assert.True(t, IsInvalidSequence(err), "got %v", err)
}

func TestRoundTrip(t *testing.T) {
	var vectors = []struct {
		name  string
		input []byte
	}{
		{"dna", testutil.MustLoadFile(dna, -1)},
		{"text", testutil.MustLoadFile(text, -1)},
		{"text:4Ki", testutil.MustLoadFile(text, 4096)},
		{"random", testutil.NewRand(0).Bytes(2000)},
		{"runs", bytes.Repeat([]byte("ab"), 500)},
		{"zeros", make([]byte, 1000)},
	}

	c, err := NewCodec(&Config{Sentinel: 0x00})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, v := range vectors {
		t.Run(v.name, func(t *testing.T) {
			input := bytes.Replace(v.input, []byte{0x00}, []byte{0x01}, -1)
			output, sa, err := c.Encode(input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(output) != len(input)+1 {
				t.Errorf("length mismatch: got %d, want %d", len(output), len(input)+1)
			}
			if diff := cmp.Diff(testutil.NaiveSA(append(input, 0x00), 0x00), sa); diff != "" {
				t.Errorf("suffix array mismatch (-want +got):\n%s", diff)
			}
			got, err := c.Decode(output, sa)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got[:len(got)-1], input) || got[len(got)-1] != 0x00 {
				t.Errorf("round trip mismatch:\ngot  %v\nwant %v", ss(string(got)), ss(string(input)))
			}
		})
	}
}

// TestSuffixOrder checks that every returned suffix array is a permutation
// whose suffixes are strictly increasing.
func TestSuffixOrder(t *testing.T) {
	r := testutil.NewRand(1)
	for i := 0; i < 50; i++ {
		input := r.Sequence(1+r.Intn(300), "abc")
		_, sa, err := Encode(input)
		if err != nil {
			t.Fatalf("test %d, unexpected error: %v", i, err)
		}
		seq := append(input, DefaultSentinel)
		seen := make(map[int]bool)
		for j, p := range sa {
			if p < 0 || p >= len(seq) || seen[p] {
				t.Fatalf("test %d, invalid suffix array entry %d: %d", i, j, p)
			}
			seen[p] = true
			if j > 0 && !suffixLess(seq, sa[j-1], p) {
				t.Errorf("test %d, suffixes out of order at rank %d", i, j)
			}
		}
		if len(seen) != len(seq) {
			t.Errorf("test %d, suffix array is not a permutation", i)
		}
	}
}

// suffixLess reports whether the suffix at i is strictly less than the suffix
// at j, where seq uses DefaultSentinel and contains no smaller symbols.
func suffixLess(seq []byte, i, j int) bool {
	return bytes.Compare(seq[i:], seq[j:]) < 0
}

func TestConcurrentEncode(t *testing.T) {
	inputs := []string{"banana", "abracadabra", "STETSTESTE", "mississippi"}
	var wg sync.WaitGroup
	results := make([][]byte, 4*len(inputs))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			output, sa, err := Encode([]byte(inputs[i%len(inputs)]))
			if err != nil {
				return
			}
			results[i], _ = Decode(output, sa)
		}(i)
	}
	wg.Wait()
	for i, got := range results {
		want := inputs[i%len(inputs)] + "$"
		if string(got) != want {
			t.Errorf("test %d, round trip mismatch: got %v, want %v", i, ss(string(got)), ss(want))
		}
	}
}

func FuzzRoundTrip(f *testing.F) {
	for _, s := range []string{"", "banana", "abracadabra", "STETSTESTE$", "aaaa"} {
		f.Add([]byte(s))
	}
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > 512 {
			input = input[:512]
		}
		output, sa, err := Encode(input)
		if err != nil {
			if !IsInvalidSequence(err) {
				t.Fatalf("unexpected error: %v", err)
			}
			return
		}
		got, err := Decode(output, sa)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want, _ := EnsureSentinel(input)
		if !bytes.Equal(got, want) {
			t.Fatalf("round trip mismatch:\ngot  %v\nwant %v", ss(string(got)), ss(string(want)))
		}
	})
}

func BenchmarkEncode(b *testing.B) {
	input := testutil.MustLoadFile(text, 4096)
	b.SetBytes(int64(len(input)))
	for i := 0; i < b.N; i++ {
		if _, _, err := Encode(input); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	output, sa, err := Encode(testutil.MustLoadFile(text, 4096))
	if err != nil {
		b.Fatalf("unexpected error: %v", err)
	}
	b.SetBytes(int64(len(output)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Decode(output, sa); err != nil {
			b.Fatalf("unexpected error: %v", err)
		}
	}
}
