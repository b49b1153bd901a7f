// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package bench compares the performance of various suffix array based
// transform implementations with respect to encode speed, decode speed, and
// how much the transform helps a general purpose compressor.
package bench

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"runtime"
	"strings"
	"testing"

	"github.com/dsnet/bwt/internal/testutil"
	strconv "github.com/dsnet/golib/unitconv"
)

const (
	TestEncodeRate = iota
	TestDecodeRate
	TestCompressRatio
)

// Encoder computes the transform of the input along with its suffix array.
type Encoder func([]byte) ([]byte, []int, error)

// Decoder inverts an Encoder given both of its outputs.
type Decoder func([]byte, []int) ([]byte, error)

// Compressor wraps a Writer with a general purpose compressor.
type Compressor func(io.Writer) io.WriteCloser

var (
	Encoders    map[string]Encoder
	Decoders    map[string]Decoder
	Compressors map[string]Compressor

	// List of search paths for test files.
	Paths []string
)

func RegisterEncoder(name string, enc Encoder) {
	if Encoders == nil {
		Encoders = make(map[string]Encoder)
	}
	Encoders[name] = enc
}

func RegisterDecoder(name string, dec Decoder) {
	if Decoders == nil {
		Decoders = make(map[string]Decoder)
	}
	Decoders[name] = dec
}

func RegisterCompressor(name string, comp Compressor) {
	if Compressors == nil {
		Compressors = make(map[string]Compressor)
	}
	Compressors[name] = comp
}

// BenchmarkEncoder benchmarks a single encoder on the given input data and
// reports the result.
func BenchmarkEncoder(input []byte, enc Encoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if enc == nil {
			b.Fatalf("unexpected error: nil Encoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			if _, _, err := enc(input); err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(input)))
		}
	})
}

type Result struct {
	R float64 // Rate (MB/s) or ratio (rawSize/transformedSize)
	D float64 // Delta ratio relative to primary benchmark
}

// BenchmarkEncoderSuite runs multiple benchmarks across all encoder
// implementations, files, and sizes.
//
// The values returned have the following structure:
//	results: [len(files)*len(sizes)][len(encs)]Result
//	names:   [len(files)*len(sizes)]string
func BenchmarkEncoderSuite(encs, files []string, sizes []int, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(encs, files, sizes, tick,
		func(input []byte, enc string) Result {
			result := BenchmarkEncoder(input, Encoders[enc])
			return rateOf(result)
		})
}

// BenchmarkDecoder benchmarks a single decoder on the given pre-transformed
// input data and reports the result.
func BenchmarkDecoder(input []byte, sa []int, dec Decoder) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		b.StopTimer()
		if dec == nil {
			b.Fatalf("unexpected error: nil Decoder")
		}
		runtime.GC()
		b.StartTimer()
		for i := 0; i < b.N; i++ {
			output, err := dec(input, sa)
			if err != nil {
				b.Fatalf("unexpected error: %v", err)
			}
			b.SetBytes(int64(len(output)))
		}
	})
}

// BenchmarkDecoderSuite runs multiple benchmarks across all decoder
// implementations, files, and sizes. The inputs are transformed by ref.
//
// The values returned have the following structure:
//	results: [len(files)*len(sizes)][len(decs)]Result
//	names:   [len(files)*len(sizes)]string
func BenchmarkDecoderSuite(decs, files []string, sizes []int, ref Encoder, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(decs, files, sizes, tick,
		func(input []byte, dec string) Result {
			output, sa, err := ref(input)
			if err != nil {
				return Result{}
			}
			result := BenchmarkDecoder(output, sa, Decoders[dec])
			return rateOf(result)
		})
}

// BenchmarkRatioSuite compresses every input both as is and after being
// transformed by ref, using all of the listed compressors. The reported
// ratio is the raw compressed size divided by the transformed compressed size;
// values above 1 mean that the transform helped.
//
// The values returned have the following structure:
//	results: [len(files)*len(sizes)][len(comps)]Result
//	names:   [len(files)*len(sizes)]string
func BenchmarkRatioSuite(comps, files []string, sizes []int, ref Encoder, tick func()) (results [][]Result, names []string) {
	return benchmarkSuite(comps, files, sizes, tick,
		func(input []byte, comp string) Result {
			output, _, err := ref(input)
			if err != nil {
				return Result{}
			}
			rawSize, err := CompressedSize(input, Compressors[comp])
			if err != nil {
				return Result{}
			}
			bwtSize, err := CompressedSize(output, Compressors[comp])
			if err != nil || bwtSize == 0 {
				return Result{}
			}
			return Result{R: float64(rawSize) / float64(bwtSize)}
		})
}

// CompressedSize reports the number of bytes that comp produces for input.
func CompressedSize(input []byte, comp Compressor) (int, error) {
	if comp == nil {
		return 0, fmt.Errorf("nil Compressor")
	}
	buf := new(bytes.Buffer)
	wr := comp(buf)
	if _, err := io.Copy(wr, bytes.NewReader(input)); err != nil {
		return 0, err
	}
	if err := wr.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func rateOf(result testing.BenchmarkResult) Result {
	if result.N == 0 {
		return Result{}
	}
	us := (float64(result.T.Nanoseconds()) / 1e3) / float64(result.N)
	rate := float64(result.Bytes) / us
	return Result{R: rate}
}

type benchFunc func(input []byte, codec string) Result

func benchmarkSuite(codecs, files []string, sizes []int, tick func(), run benchFunc) ([][]Result, []string) {
	// Allocate buffers for the result.
	d0 := len(files) * len(sizes)
	d1 := len(codecs)
	results := make([][]Result, d0)
	for i := range results {
		results[i] = make([]Result, d1)
	}
	names := make([]string, d0)

	// Run the benchmark for every codec, file, and size.
	var i int
	for _, f := range files {
		for _, n := range sizes {
			b, err := testutil.LoadFile(getPath(f), n)
			name := getName(f, len(b))
			for j, c := range codecs {
				if tick != nil {
					tick()
				}
				names[i] = name
				if err == nil {
					results[i][j] = run(b, c)
				}
				results[i][j].D = results[i][j].R / results[i][0].R
			}
			i++
		}
	}
	return results, names
}

func getPath(file string) string {
	if path.IsAbs(file) {
		return file
	}
	for _, p := range Paths {
		p = path.Join(p, file)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return file
}

func getName(f string, n int) string {
	var sn string
	switch n {
	case 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12:
		s := fmt.Sprintf("%e", float64(n))
		re := regexp.MustCompile("\\.0*e\\+0*")
		sn = re.ReplaceAllString(s, "e")
	default:
		s := strconv.FormatPrefix(float64(n), strconv.Base1024, 2)
		sn = strings.Replace(s, ".00", "", -1)
	}
	return fmt.Sprintf("%s:%s", path.Base(f), sn)
}
