// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command mmbwt applies the Burrows-Wheeler Transform to a sequence or
// inverts it.
//
// Example usage:
//	$ mmbwt -text STETSTESTE$ -sa stete.sa -v
//	ETTTET$SSSE
//	$ mmbwt -d -text 'ETTTET$SSSE' -sa stete.sa
//	STETSTESTE$
//
// The forward transform writes the transformed sequence to -out and the
// suffix array, as comma separated decimal integers, to -sa. The inverse
// transform reads both back. Inputs larger than -max bytes are rejected
// since suffix array construction is super-linear.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/dsnet/bwt"
	strconv "github.com/dsnet/golib/unitconv"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(os.Stderr, "mmbwt: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("mmbwt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	decode := fs.Bool("d", false, "Invert the transform instead of applying it")
	text := fs.String("text", "", "Literal input sequence; takes precedence over -in")
	in := fs.String("in", "-", "Input file, or - for stdin")
	out := fs.String("out", "-", "Output file, or - for stdout")
	saPath := fs.String("sa", "", "Suffix array file; written when encoding, read when decoding")
	sentinel := fs.String("sentinel", string(rune(bwt.DefaultSentinel)), "Single byte reserved as the sentinel")
	maxFlag := fs.String("max", "1Mi", "Maximum input size in bytes")
	verbose := fs.Bool("v", false, "Print the sequences and the suffix array to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Parse the flag arguments.
	if len(*sentinel) != 1 {
		return fmt.Errorf("sentinel must be a single byte: %q", *sentinel)
	}
	maxSize, err := strconv.ParsePrefix(*maxFlag, strconv.AutoParse)
	if err != nil || maxSize < 0 {
		return fmt.Errorf("invalid maximum size: %q", *maxFlag)
	}
	codec, err := bwt.NewCodec(&bwt.Config{Sentinel: int((*sentinel)[0])})
	if err != nil {
		return err
	}

	input, err := readInput(*text, *in, stdin, int64(maxSize))
	if err != nil {
		return err
	}

	var output []byte
	if *decode {
		if *saPath == "" {
			return errors.New("decoding requires a suffix array file (-sa)")
		}
		b, err := ioutil.ReadFile(*saPath)
		if err != nil {
			return err
		}
		sa, err := ParseSuffixArray(b)
		if err != nil {
			return err
		}
		if output, err = codec.Decode(input, sa); err != nil {
			return err
		}
		if *verbose {
			fmt.Fprintf(stderr, "Transformed sequence: %s\n", input)
			fmt.Fprintf(stderr, "Original sequence: %s\n", output)
		}
	} else {
		var sa []int
		if output, sa, err = codec.Encode(input); err != nil {
			return err
		}
		if *saPath != "" {
			if err := ioutil.WriteFile(*saPath, FormatSuffixArray(sa), 0644); err != nil {
				return err
			}
		}
		if *verbose {
			fmt.Fprintf(stderr, "Transformed sequence: %s\n", output)
			fmt.Fprintf(stderr, "Corresponding suffix array: %s\n", FormatSuffixArray(sa))
		}
	}
	return writeOutput(*out, stdout, output)
}

// readInput returns the literal text if set, or otherwise reads the named
// file. At most max bytes are accepted.
func readInput(text, file string, stdin io.Reader, max int64) ([]byte, error) {
	if text != "" {
		if int64(len(text)) > max {
			return nil, fmt.Errorf("input exceeds %d bytes", max)
		}
		return []byte(text), nil
	}

	r := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	b, err := ioutil.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("input exceeds %d bytes", max)
	}
	return b, nil
}

func writeOutput(file string, stdout io.Writer, b []byte) error {
	if file == "-" {
		if _, err := stdout.Write(append(b, '\n')); err != nil {
			return err
		}
		return nil
	}
	return ioutil.WriteFile(file, b, 0644)
}
