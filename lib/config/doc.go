// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for linkprobe.
//
// Tool configuration is loaded from a single YAML file specified by:
//   - LINKPROBE_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. This ensures
// deterministic, auditable configuration with no hidden overrides —
// the same property the probes assert about the codecs they exercise.
//
// Suite definitions (which probes to run, expected sums) are separate
// JSONC files: JSON extended with // line comments, /* block comments */,
// and trailing commas.
package config
