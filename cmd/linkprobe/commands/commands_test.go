// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"testing"

	"github.com/linkprobe/linkprobe/cmd/linkprobe/cli"
)

// TestCommandTreeShape walks the command tree and validates that
// every leaf has a Run function and every command has a Summary or
// Description, so help output never shows a blank row.
func TestCommandTreeShape(t *testing.T) {
	root := Root()
	walkCommands(root, nil, func(command *cli.Command, path []string) {
		if command == root {
			return
		}
		if command.Run == nil && len(command.Subcommands) == 0 {
			t.Errorf("%v: command has neither Run nor subcommands", path)
		}
		if command.Summary == "" && command.Description == "" {
			t.Errorf("%v: command has no summary or description", path)
		}
	})
}

func walkCommands(command *cli.Command, path []string, visit func(*cli.Command, []string)) {
	current := append(append([]string{}, path...), command.Name)
	visit(command, current)
	for _, sub := range command.Subcommands {
		walkCommands(sub, current, visit)
	}
}

func TestVersionCommandRuns(t *testing.T) {
	if err := Root().Execute([]string{"version"}); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
}

func TestRunRejectsPositionalArgs(t *testing.T) {
	if err := Root().Execute([]string{"run", "extra"}); err == nil {
		t.Error("run should reject positional arguments")
	}
}
