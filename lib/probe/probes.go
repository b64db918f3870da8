// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"bytes"
	"context"
	"fmt"

	"github.com/linkprobe/linkprobe/lib/arith"
	"github.com/linkprobe/linkprobe/lib/blob"
	"github.com/linkprobe/linkprobe/lib/compress"
	"github.com/linkprobe/linkprobe/lib/version"
)

// Registry returns the built-in probes in execution order. Each probe
// verifies one build-graph edge; together they cover everything the
// fixture binaries exercise.
func Registry() []*Probe {
	return []*Probe{
		{Name: "codec-zstd", Summary: "zstd codec linkage and roundtrip", Run: runCodecZstd},
		{Name: "codec-lz4", Summary: "lz4 codec linkage and roundtrip", Run: runCodecLZ4},
		{Name: "codec-all-zero", Summary: "degenerate all-zero input compresses", Run: runCodecAllZero},
		{Name: "codec-deterministic", Summary: "identical input yields identical output", Run: runCodecDeterministic},
		{Name: "arith", Summary: "compiled addition against expected sums", Run: runArith},
		{Name: "asm", Summary: "assembly addition against compiled addition", Run: runAsm},
		{Name: "blob", Summary: "secondary-library entry points", Run: runBlob},
		{Name: "version", Summary: "compiled-in build constants", Run: runVersion},
	}
}

func runCodecZstd(_ context.Context, params Params) Result {
	const name = "codec-zstd"

	source := FixtureBuffer(params.BufferSize)
	destination := make([]byte, params.BufferSize)

	size, err := compress.CompressInto(destination, source, params.Level)
	if err != nil {
		return Fail(name, fmt.Sprintf("compress: %s (%v)", compress.ErrorName(err), err))
	}
	if size > params.BufferSize {
		return Fail(name, fmt.Sprintf("compressed size %d exceeds buffer size %d", size, params.BufferSize))
	}

	decompressed, err := compress.Decompress(destination[:size], params.BufferSize)
	if err != nil {
		return Fail(name, fmt.Sprintf("decompress: %v", err))
	}
	if !bytes.Equal(decompressed, source) {
		return Fail(name, "roundtrip did not reproduce the source buffer")
	}

	result := Pass(name, fmt.Sprintf("%d bytes -> %d bytes at level %d", len(source), size, params.Level))
	result.Digest = OutputDigest(destination[:size])
	return result
}

func runCodecLZ4(_ context.Context, params Params) Result {
	const name = "codec-lz4"

	source := FixtureBuffer(params.BufferSize)
	destination := make([]byte, params.BufferSize)

	size, err := compress.LZ4CompressInto(destination, source)
	if err != nil {
		return Fail(name, fmt.Sprintf("compress: %s (%v)", compress.ErrorName(err), err))
	}

	decompressed, err := compress.LZ4Decompress(destination[:size], len(source))
	if err != nil {
		return Fail(name, fmt.Sprintf("decompress: %v", err))
	}
	if !bytes.Equal(decompressed, source) {
		return Fail(name, "roundtrip did not reproduce the source buffer")
	}

	result := Pass(name, fmt.Sprintf("%d bytes -> %d bytes", len(source), size))
	result.Digest = OutputDigest(destination[:size])
	return result
}

func runCodecAllZero(_ context.Context, params Params) Result {
	const name = "codec-all-zero"

	source := make([]byte, params.BufferSize)
	destination := make([]byte, params.BufferSize)

	size, err := compress.CompressInto(destination, source, params.Level)
	if err != nil {
		return Fail(name, fmt.Sprintf("compress: %s (%v)", compress.ErrorName(err), err))
	}

	return Pass(name, fmt.Sprintf("all-zero %d bytes -> %d bytes", len(source), size))
}

func runCodecDeterministic(_ context.Context, params Params) Result {
	const name = "codec-deterministic"

	source := FixtureBuffer(params.BufferSize)

	first := make([]byte, params.BufferSize)
	firstSize, err := compress.CompressInto(first, source, params.Level)
	if err != nil {
		return Fail(name, fmt.Sprintf("first run: %v", err))
	}

	second := make([]byte, params.BufferSize)
	secondSize, err := compress.CompressInto(second, source, params.Level)
	if err != nil {
		return Fail(name, fmt.Sprintf("second run: %v", err))
	}

	firstDigest := OutputDigest(first[:firstSize])
	secondDigest := OutputDigest(second[:secondSize])
	if firstDigest != secondDigest {
		return Fail(name, fmt.Sprintf("output differs across runs: %s vs %s", firstDigest, secondDigest))
	}

	result := Pass(name, "two runs produced byte-identical output")
	result.Digest = firstDigest
	return result
}

func runArith(_ context.Context, params Params) Result {
	const name = "arith"

	// Fail-fast: the first violated check ends the probe, matching
	// the dependency fixture's behavior.
	for _, check := range params.Checks {
		if got := arith.Add(check.A, check.B); got != check.Want {
			return Fail(name, fmt.Sprintf("Add(%d, %d) = %d, want %d", check.A, check.B, got, check.Want))
		}
	}

	return Pass(name, fmt.Sprintf("%d sum checks", len(params.Checks)))
}

func runAsm(_ context.Context, params Params) Result {
	const name = "asm"

	// The fixture's exit-code identity: AsmAdd(n, n) - 2n == 0.
	for n := 0; n <= 8; n++ {
		if got := arith.AsmAdd(n, n) - 2*n; got != 0 {
			return Fail(name, fmt.Sprintf("AsmAdd(%d, %d) - %d = %d, want 0", n, n, 2*n, got))
		}
	}

	for _, check := range params.Checks {
		if got, want := arith.AsmAdd(check.A, check.B), arith.Add(check.A, check.B); got != want {
			return Fail(name, fmt.Sprintf("AsmAdd(%d, %d) = %d, compiled Add = %d", check.A, check.B, got, want))
		}
	}

	return Pass(name, "assembly addition matches compiled addition")
}

func runBlob(_ context.Context, _ Params) Result {
	const name = "blob"

	blob.Blob1()
	blob.Blob2()

	if !blob.Invoked() {
		return Fail(name, "linkage markers not set after calling both entry points")
	}
	return Pass(name, "both entry points invoked")
}

func runVersion(_ context.Context, _ Params) Result {
	const name = "version"

	if version.BuildTag == "unset" {
		return Warn(name, "BuildTag not injected; build ran without -ldflags")
	}
	return Pass(name, fmt.Sprintf("%s, tag %s", version.Info(), version.BuildTag))
}
