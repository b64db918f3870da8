// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package main

import "testing"

func TestRunExitCode(t *testing.T) {
	if got := run(); got != 0 {
		t.Fatalf("run() = %d, want 0", got)
	}
}
