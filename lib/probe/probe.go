// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package probe

import "context"

// Status is the outcome of a single probe.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusWarn Status = "warn"
	StatusSkip Status = "skip"
)

// Result holds the outcome of a single probe. Digest carries a hex
// BLAKE3 digest of the probe's observed output when the probe has one
// (codec probes record the compressed bytes), so two report files
// from identical builds are comparable edge by edge.
type Result struct {
	Name    string `json:"name"             desc:"probe name"`
	Status  Status `json:"status"           desc:"probe outcome: pass, fail, warn, skip"`
	Message string `json:"message"          desc:"human-readable probe result"`
	Digest  string `json:"digest,omitempty" desc:"hex BLAKE3 digest of the probe's observed output"`
}

// Pass creates a passing probe result.
func Pass(name, message string) Result {
	return Result{Name: name, Status: StatusPass, Message: message}
}

// Fail creates a failing probe result.
func Fail(name, message string) Result {
	return Result{Name: name, Status: StatusFail, Message: message}
}

// Warn creates a warning probe result. Warnings do not fail the run.
func Warn(name, message string) Result {
	return Result{Name: name, Status: StatusWarn, Message: message}
}

// Skip creates a skipped probe result. Probes are skipped when they
// are not selected by the suite definition.
func Skip(name, message string) Result {
	return Result{Name: name, Status: StatusSkip, Message: message}
}

// Probe is a named smoke check.
type Probe struct {
	// Name identifies the probe in suite definitions and reports.
	Name string

	// Summary is a one-line description for listings.
	Summary string

	// Run executes the probe. The context carries cancellation for
	// callers that run probes under a deadline.
	Run func(ctx context.Context, params Params) Result
}

// SumCheck is one expected-sum assertion for the arithmetic probe.
type SumCheck struct {
	A, B, Want int
}

// Params carries the tunable inputs probes read. The zero value is
// not useful; call DefaultParams or derive Params from a loaded
// configuration.
type Params struct {
	// Level is the zstd compression level for the codec probes.
	Level int

	// BufferSize is the fixture buffer length in bytes.
	BufferSize int

	// Checks are the expected-sum assertions for the arithmetic
	// probe, evaluated in order with fail-fast semantics.
	Checks []SumCheck
}

// DefaultParams returns the fixture defaults: a 100-byte buffer,
// level 1, and the two historical dependency checks.
func DefaultParams() Params {
	return Params{
		Level:      1,
		BufferSize: 100,
		Checks: []SumCheck{
			{A: 2, B: 3, Want: 5},
			{A: 4, B: 5, Want: 9},
		},
	}
}

// FixtureBuffer returns the buffer the codec probes compress: bytes
// 1..9 followed by zeros, size bytes long. For size below 9 the
// prefix is truncated.
func FixtureBuffer(size int) []byte {
	buffer := make([]byte, size)
	for i := 0; i < 9 && i < size; i++ {
		buffer[i] = byte(i + 1)
	}
	return buffer
}

// AnyFailed reports whether any result in the slice failed.
func AnyFailed(results []Result) bool {
	for _, result := range results {
		if result.Status == StatusFail {
			return true
		}
	}
	return false
}

// RunAll executes probes in order against params, collecting results.
// Probes whose name is absent from selected (when selected is
// non-nil) are recorded as skipped rather than silently dropped, so
// every report lists the full registry.
func RunAll(ctx context.Context, probes []*Probe, params Params, selected map[string]bool) []Result {
	results := make([]Result, 0, len(probes))
	for _, p := range probes {
		if selected != nil && !selected[p.Name] {
			results = append(results, Skip(p.Name, "not selected by suite"))
			continue
		}
		results = append(results, p.Run(ctx, params))
	}
	return results
}
