// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestExecuteDispatch(t *testing.T) {
	ran := ""
	root := &Command{
		Name: "linkprobe",
		Subcommands: []*Command{
			{Name: "run", Run: func(args []string) error { ran = "run"; return nil }},
			{Name: "version", Run: func(args []string) error { ran = "version"; return nil }},
		},
	}

	if err := root.Execute([]string{"version"}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if ran != "version" {
		t.Errorf("dispatched to %q, want %q", ran, "version")
	}
}

func TestExecuteUnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "linkprobe",
		Subcommands: []*Command{
			{Name: "run", Run: func(args []string) error { return nil }},
		},
	}

	err := root.Execute([]string{"rnu"})
	if err == nil {
		t.Fatal("Execute should fail for an unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "run"`) {
		t.Errorf("error %q lacks suggestion", err.Error())
	}
}

func TestExecuteNoArgsRequiresSubcommand(t *testing.T) {
	root := &Command{
		Name:        "linkprobe",
		Subcommands: []*Command{{Name: "run", Run: func(args []string) error { return nil }}},
	}

	if err := root.Execute(nil); err == nil {
		t.Error("Execute with no args should report a missing subcommand")
	}
}

func TestExecuteParsesFlags(t *testing.T) {
	var level int
	command := &Command{
		Name: "run",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("run", pflag.ContinueOnError)
			flagSet.IntVar(&level, "level", 1, "compression level")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	if err := command.Execute([]string{"--level", "3"}); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if level != 3 {
		t.Errorf("level = %d, want 3", level)
	}
}

func TestExecuteUnknownFlagSuggests(t *testing.T) {
	command := &Command{
		Name: "run",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("run", pflag.ContinueOnError)
			flagSet.Int("level", 1, "compression level")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--levle", "3"})
	if err == nil {
		t.Fatal("Execute should fail for an unknown flag")
	}
	if !strings.Contains(err.Error(), "--level") {
		t.Errorf("error %q lacks flag suggestion", err.Error())
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"run", "run", 0},
		{"rnu", "run", 2},
		{"versoin", "version", 2},
		{"abc", "", 3},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 2}
	var coder interface{ ExitCode() int } = err
	if coder.ExitCode() != 2 {
		t.Errorf("ExitCode = %d, want 2", coder.ExitCode())
	}
}
