// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/linkprobe/linkprobe/lib/compress"
)

// Config is the tool configuration for linkprobe.
type Config struct {
	// Level is the zstd compression level the codec probes use.
	Level int `yaml:"level"`

	// BufferSize is the fixture buffer length in bytes.
	BufferSize int `yaml:"buffer_size"`

	// ReportPath, when set, is where `linkprobe run` writes its CBOR
	// report unless overridden by --report.
	ReportPath string `yaml:"report_path"`
}

// Default returns the fixture defaults: level 1, 100-byte buffer, no
// report file.
func Default() *Config {
	return &Config{
		Level:      1,
		BufferSize: 100,
	}
}

// Load loads configuration from the LINKPROBE_CONFIG environment
// variable.
//
// This is the only way to load configuration without an explicit
// path. There are no fallbacks or defaults — if LINKPROBE_CONFIG is
// not set, this fails.
func Load() (*Config, error) {
	configPath := os.Getenv("LINKPROBE_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("LINKPROBE_CONFIG environment variable not set; " +
			"set it to the path of your linkprobe.yaml config file, or use --config flag")
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path. The config
// file is the single source of truth; environment variables do not
// override config values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that configured values are usable before any probe
// runs, so a bad config fails the run up front rather than mid-suite.
func (c *Config) Validate() error {
	if c.Level < compress.MinLevel || c.Level > compress.MaxLevel {
		return fmt.Errorf("level %d outside [%d, %d]", c.Level, compress.MinLevel, compress.MaxLevel)
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("buffer_size %d must be positive", c.BufferSize)
	}
	return nil
}
