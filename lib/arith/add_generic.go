// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !amd64 && !arm64

package arith

// addAsm is the pure-Go fallback for architectures without an
// assembly implementation.
func addAsm(x, y int64) int64 {
	return x + y
}
