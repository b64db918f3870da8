// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Linkprobe-depend is the submodule dependency fixture: it calls the
// arithmetic library twice with fixed inputs and checks the literal
// expected sums. The first mismatch prints "fail" and exits without
// evaluating further checks.
//
// Exit codes:
//
//	0  both checks passed
//	1  a check failed
package main
