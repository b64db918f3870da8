// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package arith provides the addition helpers the smoke fixtures link
// against: one compiled from Go, one implemented in hand-written
// assembly behind a declared foreign-function boundary (two machine
// words in, one machine word out). Callers stay agnostic to how the
// sum is computed; on architectures without an assembly file the
// fallback is pure Go.
//
// Overflow behavior is unspecified. Both helpers promise an exact sum
// only for inputs whose sum is representable.
package arith
