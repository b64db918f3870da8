// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package probe implements the smoke-probe framework: a probe is a
// named check that exercises one build-graph edge (codec linkage,
// assembly translation unit, secondary library, submodule arithmetic)
// and yields a pass/fail result. The built-in registry covers every
// edge the fixture binaries exercise; `linkprobe run` executes the
// registry and renders a checklist or a report file.
package probe
