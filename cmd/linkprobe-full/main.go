// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/linkprobe/linkprobe/lib/arith"
	"github.com/linkprobe/linkprobe/lib/blob"
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

	blob.Blob1()
	blob.Blob2()

	asmResult := arith.AsmAdd(argc, argc)
	fmt.Fprintf(w, "      argc: %d\n", argc)
	fmt.Fprintf(w, "asm_result: %d\n", asmResult)

	// Zero exactly when the assembly addition computed an exact sum.
	return asmResult - (argc + argc)
}

// printBytes writes the buffer as space-separated decimal values
// followed by a blank line. Bytes past a compressed size are never
// passed in, so nothing undefined is printed.
func printBytes(w io.Writer, buffer []byte) {
	for _, value := range buffer {
		fmt.Fprintf(w, "%d ", value)
	}
	fmt.Fprint(w, "\n\n")
}
