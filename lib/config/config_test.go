// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Level != 1 {
		t.Errorf("default level = %d, want 1", cfg.Level)
	}
	if cfg.BufferSize != 100 {
		t.Errorf("default buffer_size = %d, want 100", cfg.BufferSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "linkprobe.yaml", `
level: 3
buffer_size: 256
report_path: /tmp/report.cbor
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Level != 3 || cfg.BufferSize != 256 || cfg.ReportPath != "/tmp/report.cbor" {
		t.Errorf("loaded config = %+v", cfg)
	}
}

func TestLoadFilePartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, "linkprobe.yaml", "level: 5\n")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Level != 5 {
		t.Errorf("level = %d, want 5", cfg.Level)
	}
	if cfg.BufferSize != 100 {
		t.Errorf("buffer_size = %d, want default 100", cfg.BufferSize)
	}
}

func TestLoadFileValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"level_too_high", "level: 23\n"},
		{"level_zero", "level: 0\n"},
		{"negative_buffer", "buffer_size: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "linkprobe.yaml", tt.content)
			if _, err := LoadFile(path); err == nil {
				t.Error("LoadFile should reject invalid config")
			}
		})
	}
}

func TestLoadRequiresEnvVar(t *testing.T) {
	t.Setenv("LINKPROBE_CONFIG", "")
	if _, err := Load(); err == nil {
		t.Error("Load should fail when LINKPROBE_CONFIG is unset")
	}
}

func TestLoadFromEnvVar(t *testing.T) {
	path := writeFile(t, "linkprobe.yaml", "level: 2\n")
	t.Setenv("LINKPROBE_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Level != 2 {
		t.Errorf("level = %d, want 2", cfg.Level)
	}
}
