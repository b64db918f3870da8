// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the linkprobe CLI: a
// command tree dispatched by positional arguments, pflag flag sets,
// structured help output, typo suggestions, and exit-code plumbing.
package cli
