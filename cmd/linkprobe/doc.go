// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Linkprobe is the unified CLI for the smoke-probe toolkit. It runs
// the probe registry against a suite definition (run), renders
// previously written CBOR reports (report), and prints build version
// information (version).
package main
