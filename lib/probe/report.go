// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package probe

import (
	"fmt"
	"os"
	"runtime"

	"github.com/linkprobe/linkprobe/lib/codec"
	"github.com/linkprobe/linkprobe/lib/version"
)

// Report is the machine-readable record of one suite run. It carries
// no timestamps: two runs of the same build over the same suite
// produce byte-identical CBOR, so report files can be diffed like the
// compressed buffers they describe.
type Report struct {
	// Version is the linkprobe build that produced the report.
	Version string `json:"version"`

	// Platform is the GOOS/GOARCH pair of the run.
	Platform string `json:"platform"`

	// GoVersion is the Go toolchain version the binary was built with.
	GoVersion string `json:"go_version"`

	// Results are the probe outcomes in registry order.
	Results []Result `json:"results"`

	// OK is true when no probe failed.
	OK bool `json:"ok"`
}

// NewReport assembles a report from probe results.
func NewReport(results []Result) *Report {
	return &Report{
		Version:   version.Short(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion: runtime.Version(),
		Results:   results,
		OK:        !AnyFailed(results),
	}
}

// Encode serializes the report as deterministic CBOR and returns the
// bytes with their report-domain digest.
func (r *Report) Encode() (data []byte, digest string, err error) {
	data, err = codec.Marshal(r)
	if err != nil {
		return nil, "", fmt.Errorf("probe: encoding report: %w", err)
	}
	return data, ReportDigest(data), nil
}

// WriteFile writes the CBOR-encoded report to path and returns the
// report-domain digest of the written bytes.
func (r *Report) WriteFile(path string) (string, error) {
	data, digest, err := r.Encode()
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("probe: writing report %s: %w", path, err)
	}
	return digest, nil
}

// ReadReport loads a CBOR report file and verifies nothing about it
// beyond well-formedness; integrity checks compare the file's
// report-domain digest out of band.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("probe: reading report %s: %w", path, err)
	}

	var report Report
	if err := codec.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("probe: decoding report %s: %w", path, err)
	}
	return &report, nil
}
