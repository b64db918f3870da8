// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package blob is the secondary library of the smoke fixtures. Its
// two entry points take no arguments and return nothing: they exist
// so a fixture calling them proves the library was linked. Each call
// prints one trace line and flips a linkage marker the probe suite
// can inspect.
package blob

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"
)

// output is where the trace lines go. Swappable for tests.
var output io.Writer = os.Stdout

var (
	blob1Called atomic.Bool
	blob2Called atomic.Bool
)

// Blob1 prints its trace line and records that it was invoked.
func Blob1() {
	blob1Called.Store(true)
	fmt.Fprintln(output, "blob: DoBlob1")
}

// Blob2 prints its trace line and records that it was invoked.
func Blob2() {
	blob2Called.Store(true)
	fmt.Fprintln(output, "blob: DoBlob2")
}

// Invoked reports whether both entry points have been called in this
// process. The blob probe uses this to verify the linkage edge.
func Invoked() bool {
	return blob1Called.Load() && blob2Called.Load()
}

// Reset clears the linkage markers. Test helper.
func Reset() {
	blob1Called.Store(false)
	blob2Called.Store(false)
}
