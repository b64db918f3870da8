// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/linkprobe/linkprobe/lib/probe"
)

// Suite is a parsed suite definition: which probes to run and the
// expected-sum table for the arithmetic probes. Level and BufferSize,
// when non-zero, override the tool config for this suite.
type Suite struct {
	Name       string     `json:"name"`
	Probes     []string   `json:"probes"`
	Checks     []SumCheck `json:"checks"`
	Level      int        `json:"level"`
	BufferSize int        `json:"buffer_size"`
}

// SumCheck is one expected-sum assertion in a suite file.
type SumCheck struct {
	A    int `json:"a"`
	B    int `json:"b"`
	Want int `json:"want"`
}

// ParseSuite strips JSONC comments and trailing commas from data,
// then unmarshals the result into a Suite.
func ParseSuite(data []byte) (*Suite, error) {
	stripped := jsonc.ToJSON(data)

	var suite Suite
	if err := json.Unmarshal(stripped, &suite); err != nil {
		return nil, fmt.Errorf("parsing suite: %w", err)
	}

	return &suite, nil
}

// ReadSuiteFile reads a JSONC suite file from disk and parses it. If
// the suite has no name, one is derived from the file path.
func ReadSuiteFile(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading suite %s: %w", path, err)
	}

	suite, err := ParseSuite(data)
	if err != nil {
		return nil, fmt.Errorf("suite %s: %w", path, err)
	}
	if suite.Name == "" {
		suite.Name = nameFromPath(path)
	}
	return suite, nil
}

// nameFromPath extracts a suite name from a file path by stripping
// the directory prefix and the file extension. For example,
// "suites/default-wiring.jsonc" returns "default-wiring".
func nameFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Params merges the tool config with the suite's overrides into the
// parameters the probes consume. A suite with no checks inherits the
// fixture defaults.
func (s *Suite) Params(cfg *Config) probe.Params {
	params := probe.Params{
		Level:      cfg.Level,
		BufferSize: cfg.BufferSize,
		Checks:     probe.DefaultParams().Checks,
	}

	if s.Level != 0 {
		params.Level = s.Level
	}
	if s.BufferSize != 0 {
		params.BufferSize = s.BufferSize
	}
	if len(s.Checks) > 0 {
		params.Checks = make([]probe.SumCheck, 0, len(s.Checks))
		for _, check := range s.Checks {
			params.Checks = append(params.Checks, probe.SumCheck{A: check.A, B: check.B, Want: check.Want})
		}
	}

	return params
}

// Selected returns the probe-selection set, or nil when the suite
// names no probes (meaning: run everything).
func (s *Suite) Selected() map[string]bool {
	if len(s.Probes) == 0 {
		return nil
	}
	selected := make(map[string]bool, len(s.Probes))
	for _, name := range s.Probes {
		selected[name] = true
	}
	return selected
}
