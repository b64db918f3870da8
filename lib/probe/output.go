// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"fmt"
	"io"
	"strings"
)

// PrintChecklist writes probe results as a human-readable checklist:
//
//	[PASS ]  codec-zstd           100 bytes -> 24 bytes at level 1
//	[FAIL ]  arith                Add(2, 3) = 6, want 5
//
// followed by a one-line verdict.
func PrintChecklist(w io.Writer, results []Result) {
	for _, result := range results {
		prefix := strings.ToUpper(string(result.Status))
		fmt.Fprintf(w, "[%-5s]  %-22s  %s\n", prefix, result.Name, result.Message)
	}

	fmt.Fprintln(w)
	if AnyFailed(results) {
		fmt.Fprintln(w, "Some probes failed.")
	} else {
		fmt.Fprintln(w, "All probes passed.")
	}
}
