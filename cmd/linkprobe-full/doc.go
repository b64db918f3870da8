// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Linkprobe-full is the widest smoke fixture: it exercises every
// external edge of the build graph in one linear pass — the
// compiled-in build constant, the compiled addition helper, the zstd
// codec, the secondary blob library, and the assembly-implemented
// addition.
//
// Exit codes:
//
//	0  all edges behaved (the final code is asmResult - 2*argc,
//	   which is zero exactly when the assembly addition is exact)
//	1  the compression call reported an error (its name is printed)
//
// The trace lines on stdout are the contract: build systems diff them
// against a golden run.
package main
