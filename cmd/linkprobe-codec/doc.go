// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Linkprobe-codec is the narrower smoke fixture: linkprobe-full
// minus the blob and assembly edges. It prints the compiled-in build
// constant and the addition-helper sum, then verifies the compression
// dependency.
//
// Exit codes:
//
//	0  compression succeeded
//	1  the compression call reported an error (its name is printed)
package main
