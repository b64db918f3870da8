// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package arith

// Add returns the exact sum of a and b.
func Add(a, b int) int {
	return a + b
}

// AsmAdd returns the exact sum of a and b, computed by the
// assembly-implemented addition on architectures that provide one.
func AsmAdd(a, b int) int {
	return int(addAsm(int64(a), int64(b)))
}
