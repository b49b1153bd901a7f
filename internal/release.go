// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !debug && !gofuzz
// +build !debug,!gofuzz

package internal

// Debug indicates whether the debug build tag was set.
//
// If set, the transform packages trace their intermediate state to stderr
// and check the invariants of every suffix array they produce.
const Debug = false

// GoFuzz indicates whether the gofuzz build tag was set.
//
// If set, the transform packages check invariants more aggressively so that
// a fuzzer crashes on the first violation.
const GoFuzz = false
