// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// +build ignore

// Benchmark tool to compare performance between multiple suffix array
// transform implementations. Individual implementations are referred to as
// codecs. The ratio test instead compares general purpose compressors on the
// raw input against the same compressors on the transformed input.
//
// Example usage:
//	$ go build -o benchmark main.go
//	$ ./benchmark \
//		-tests       encRate,ratio \
//		-codecs      mm,naive      \
//		-compressors fl,xz         \
//		-files       text.txt      \
//		-sizes       1e3,1e4
//
// Each test prints a table with one row per file and size, and one column
// per codec (or compressor) along with its delta relative to the first column.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"math"
	"path/filepath"
	"regexp"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/dsnet/bwt/internal/tool/bench"
	strconv "github.com/dsnet/golib/unitconv"
)

// The bucket refinement algorithm is at worst quadratic, so the default sizes
// are kept small.
const defaultSizes = "1e3,1e4"

// The decoding and ratio benchmarks work by transforming the input first.
// In order for the benchmarks to be consistent, the same encoder should be
// used to generate the transformed data for all the trials.
//
// encRefs defines the priority order for which encoders to choose first as the
// reference encoder. If no encoder is found for any of the listed codecs,
// then a random encoder will be chosen.
var encRefs = []string{"mm", "naive"}

var (
	testToEnum = map[string]int{
		"encRate": bench.TestEncodeRate,
		"decRate": bench.TestDecodeRate,
		"ratio":   bench.TestCompressRatio,
	}
	enumToTest = map[int]string{
		bench.TestEncodeRate:    "encRate",
		bench.TestDecodeRate:    "decRate",
		bench.TestCompressRatio: "ratio",
	}
)

func defaultTests() string {
	var d []int
	for k := range enumToTest {
		d = append(d, k)
	}
	sort.Ints(d)
	var s []string
	for _, v := range d {
		s = append(s, enumToTest[v])
	}
	return strings.Join(s, ",")
}

func defaultFiles() string {
	p := strings.Split(defaultPaths(), ",")[0]
	fis, err := ioutil.ReadDir(p)
	if err != nil {
		return ""
	}
	var s []string
	for _, fi := range fis {
		if !fi.IsDir() && !strings.HasSuffix(fi.Name(), ".go") {
			s = append(s, fi.Name())
		}
	}
	return strings.Join(s, ",")
}

func defaultCodecs() string {
	m := make(map[string]bool)
	for k := range bench.Encoders {
		m[k] = true
	}
	for k := range bench.Decoders {
		m[k] = true
	}
	hasMM := m["mm"]
	delete(m, "mm")
	var s []string
	for k := range m {
		s = append(s, k)
	}
	sort.Strings(s)
	if hasMM {
		s = append([]string{"mm"}, s...) // Ensure "mm" always appears first
	}
	return strings.Join(s, ",")
}

func defaultCompressors() string {
	var s []string
	for k := range bench.Compressors {
		s = append(s, k)
	}
	sort.Strings(s)
	return strings.Join(s, ",")
}

// defaultPaths locates the testdata directory relative to this source file.
func defaultPaths() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return "testdata"
	}
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "testdata")
}

func main() {
	// Setup flag arguments.
	f0 := flag.String("tests", defaultTests(), "List of different benchmark tests")
	f1 := flag.String("codecs", defaultCodecs(), "List of codecs to benchmark")
	f2 := flag.String("compressors", defaultCompressors(), "List of compressors for the ratio test")
	f3 := flag.String("paths", defaultPaths(), "List of paths to search for test files")
	f4 := flag.String("files", defaultFiles(), "List of input files to benchmark")
	f5 := flag.String("sizes", defaultSizes, "List of input sizes to benchmark")
	flag.Parse()

	// Parse the flag arguments.
	var sep = regexp.MustCompile("[,:]")
	var codecs, comps, paths, files []string
	var tests, sizes []int
	codecs = sep.Split(*f1, -1)
	comps = sep.Split(*f2, -1)
	paths = sep.Split(*f3, -1)
	files = sep.Split(*f4, -1)
	for _, s := range sep.Split(*f0, -1) {
		if _, ok := testToEnum[s]; !ok {
			panic("invalid test")
		}
		tests = append(tests, testToEnum[s])
	}
	for _, s := range sep.Split(*f5, -1) {
		var size int
		if nf, err := strconv.ParsePrefix(s, strconv.AutoParse); err == nil {
			size = int(nf)
		}
		sizes = append(sizes, size)
	}

	ts := time.Now()
	bench.Paths = paths
	runBenchmarks(files, codecs, comps, tests, sizes)
	te := time.Now()
	fmt.Printf("RUNTIME: %v\n", te.Sub(ts))
}

func runBenchmarks(files, codecs, comps []string, tests, sizes []int) {
	// Get lists of encoders, decoders, and compressors that exist.
	var encs, decs, cmps []string
	for _, c := range codecs {
		if _, ok := bench.Encoders[c]; ok {
			encs = append(encs, c)
		}
	}
	for _, c := range codecs {
		if _, ok := bench.Decoders[c]; ok {
			decs = append(decs, c)
		}
	}
	for _, c := range comps {
		if _, ok := bench.Compressors[c]; ok {
			cmps = append(cmps, c)
		}
	}

	for _, t := range tests {
		var results [][]bench.Result
		var names, columns []string
		var title, suffix string

		// Check that we can actually do this bench.
		fmt.Printf("BENCHMARK: %s\n", enumToTest[t])
		if len(encs) == 0 {
			fmt.Print("\tSKIP: There are no encoders available.\n\n")
			continue
		}
		if len(decs) == 0 && t == bench.TestDecodeRate {
			fmt.Print("\tSKIP: There are no decoders available.\n\n")
			continue
		}
		if len(cmps) == 0 && t == bench.TestCompressRatio {
			fmt.Print("\tSKIP: There are no compressors available.\n\n")
			continue
		}

		// Progress ticker.
		var cnt int
		tick := func() {
			total := len(columns) * len(files) * len(sizes)
			pct := 100.0 * float64(cnt) / float64(total)
			fmt.Printf("\t[%6.2f%%] %d of %d\r", pct, cnt, total)
			cnt++
		}

		// Perform the bench. This may take some time.
		switch t {
		case bench.TestEncodeRate:
			columns, title, suffix = encs, "MB/s", ""
			results, names = bench.BenchmarkEncoderSuite(encs, files, sizes, tick)
		case bench.TestDecodeRate:
			columns, title, suffix = decs, "MB/s", ""
			results, names = bench.BenchmarkDecoderSuite(decs, files, sizes, getReferenceEncoder(), tick)
		case bench.TestCompressRatio:
			columns, title, suffix = cmps, "ratio", "x"
			results, names = bench.BenchmarkRatioSuite(cmps, files, sizes, getReferenceEncoder(), tick)
		default:
			panic("unknown test")
		}

		// Print all of the results.
		printResults(results, names, columns, title, suffix)
		fmt.Println()
	}
	fmt.Println()
}

func getReferenceEncoder() bench.Encoder {
	for _, c := range encRefs {
		if enc, ok := bench.Encoders[c]; ok {
			return enc // Choose by priority
		}
	}
	for _, enc := range bench.Encoders {
		return enc // Choose any random encoder
	}
	return nil // There are no encoders
}

func printResults(results [][]bench.Result, names, columns []string, title, suffix string) {
	// Allocate result table.
	cells := make([][]string, 1+len(names))
	for i := range cells {
		cells[i] = make([]string, 1+2*len(columns))
	}

	// Label the first row.
	cells[0][0] = "benchmark"
	for i, c := range columns {
		cells[0][1+2*i] = c + " " + title
		cells[0][2+2*i] = "delta"
	}

	// Insert all rows.
	for j, row := range results {
		cells[1+j][0] = names[j]
		for i, r := range row {
			if r.R != 0 && !math.IsNaN(r.R) && !math.IsInf(r.R, 0) {
				cells[1+j][1+2*i] = fmt.Sprintf("%.2f", r.R) + suffix
			}
			if r.D != 0 && !math.IsNaN(r.D) && !math.IsInf(r.D, 0) {
				cells[1+j][2+2*i] = fmt.Sprintf("%.2f", r.D) + "x"
			}
		}
	}

	// Compute the maximum lengths.
	maxLens := make([]int, 1+2*len(columns))
	for _, row := range cells {
		for i, s := range row {
			if maxLens[i] < len(s) {
				maxLens[i] = len(s)
			}
		}
	}

	// Print padded versions of all cells.
	for _, row := range cells {
		fmt.Print("\t")
		for i, s := range row {
			switch {
			case i == 0: // Column 0
				row[i] = s + strings.Repeat(" ", maxLens[i]-len(s))
			case i%2 == 1: // Column 1, 3, 5, 7, ...
				row[i] = strings.Repeat(" ", 6+maxLens[i]-len(s)) + s
			case i%2 == 0: // Column 2, 4, 6, 8, ...
				row[i] = strings.Repeat(" ", 2+maxLens[i]-len(s)) + s
			}
			fmt.Print(row[i])
		}
		fmt.Println()
	}
}
