// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"testing"
)

// TestRunExitCode asserts the fixture's own exit-code identity: the
// final code is asmResult - 2*argc, which must be zero whenever the
// assembly addition is exact — for any argc, including the argc=1
// no-argument case.
func TestRunExitCode(t *testing.T) {
	var buffer bytes.Buffer
	if got := run(&buffer); got != 0 {
		t.Fatalf("run() = %d, want 0\noutput:\n%s", got, buffer.String())
	}
}

func TestRunTraceLines(t *testing.T) {
	var buffer bytes.Buffer
	if got := run(&buffer); got != 0 {
		t.Fatalf("run() = %d, want 0", got)
	}
	output := buffer.String()

	argc := len(os.Args)
	wantLines := []string{
		fmt.Sprintf("add(argc, argc) = %d", 2*argc),
		"compress size: ",
		fmt.Sprintf("      argc: %d", argc),
		fmt.Sprintf("asm_result: %d", 2*argc),
	}
	for _, want := range wantLines {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}

	// The raw buffer prefix must appear before the compressed bytes.
	if !strings.Contains(output, "1 2 3 4 5 6 7 8 9 0 ") {
		t.Errorf("output missing raw buffer echo:\n%s", output)
	}
}
