// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package compress provides the size-or-error compression calls the
// smoke fixtures exercise.
//
// The contract mirrors the classic C codec ABI the fixtures were
// written against: the caller owns a capacity-bounded destination
// buffer, a successful call returns the number of bytes written, and
// bytes past the returned size are undefined and must not be read.
// Failures are sentinel errors with stable names retrievable via
// [ErrorName], so a fixture can print the name and exit without
// string-matching error text.
//
// Two codec edges are covered: zstd (github.com/klauspost/compress)
// with the reference codec's level numbering, and LZ4 block mode
// (github.com/pierrec/lz4). Both paths are deterministic: identical
// input at an identical level produces byte-identical output.
package compress
