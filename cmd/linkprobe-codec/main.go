// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/linkprobe/linkprobe/lib/arith"
	"github.com/linkprobe/linkprobe/lib/compress"
	"github.com/linkprobe/linkprobe/lib/version"
)

const bufferSize = 100

func main() {
	os.Exit(run(os.Stdout))
}

func run(w io.Writer) int {
	fmt.Fprintln(w, version.BuildTag)

	argc := len(os.Args)
	sum := arith.Add(argc, argc)
	fmt.Fprintf(w, "add(argc, argc) = %d\n\n", sum)

	// Bytes 1..9, rest zero.
	fbuf := make([]byte, bufferSize)
	for i := 0; i < 9; i++ {
		fbuf[i] = byte(i + 1)
	}
	cbuf := make([]byte, bufferSize)

	csize, err := compress.CompressInto(cbuf, fbuf, 1)
	fmt.Fprintf(w, "compress size: %d\n", csize)
	if err != nil {
		fmt.Fprintf(w, "compress error: %s\n", compress.ErrorName(err))
		return 1
	}

	printBytes(w, fbuf)
	printBytes(w, cbuf[:csize])

	return 0
}

func printBytes(w io.Writer, buffer []byte) {
	for _, value := range buffer {
		fmt.Fprintf(w, "%d ", value)
	}
	fmt.Fprint(w, "\n\n")
}
