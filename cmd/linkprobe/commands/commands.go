// Copyright 2026 The Linkprobe Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the linkprobe CLI command tree.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/linkprobe/linkprobe/cmd/linkprobe/cli"
	"github.com/linkprobe/linkprobe/lib/codec"
	"github.com/linkprobe/linkprobe/lib/config"
	"github.com/linkprobe/linkprobe/lib/probe"
	"github.com/linkprobe/linkprobe/lib/version"
)

// Root builds and returns the complete linkprobe CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "linkprobe",
		Description: `Linkprobe: build-wiring smoke probes.

Verify that a build graph's external edges — compression codecs,
hand-written assembly, secondary libraries, submodule dependencies —
are linked and behave as compiled.`,
		Subcommands: []*cli.Command{
			runCommand(),
			reportCommand(),
			versionCommand(),
		},
	}
}

type runParams struct {
	configPath string
	suitePath  string
	reportPath string
	level      int
	outputJSON bool
}

func runCommand() *cli.Command {
	var params runParams

	return &cli.Command{
		Name:    "run",
		Summary: "run the probe suite and print a checklist",
		Usage:   "linkprobe run [flags]",
		Examples: []cli.Example{
			{Description: "run every probe with fixture defaults", Command: "linkprobe run"},
			{Description: "run a suite definition and keep a report", Command: "linkprobe run --suite suites/depend.jsonc --report depend.cbor"},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("run", pflag.ContinueOnError)
			flagSet.StringVar(&params.configPath, "config", "", "path to linkprobe.yaml (overrides LINKPROBE_CONFIG)")
			flagSet.StringVar(&params.suitePath, "suite", "", "path to a JSONC suite definition")
			flagSet.StringVar(&params.reportPath, "report", "", "write a CBOR report to this path")
			flagSet.IntVar(&params.level, "level", 0, "zstd compression level (overrides config)")
			flagSet.BoolVar(&params.outputJSON, "json", false, "output results as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("run takes no positional arguments, got %q", args)
			}
			return executeRun(params)
		},
	}
}

func executeRun(params runParams) error {
	cfg, err := loadConfig(params.configPath)
	if err != nil {
		return err
	}

	suite := &config.Suite{Name: "default"}
	if params.suitePath != "" {
		suite, err = config.ReadSuiteFile(params.suitePath)
		if err != nil {
			return err
		}
	}

	probeParams := suite.Params(cfg)
	if params.level != 0 {
		probeParams.Level = params.level
	}

	logger := cli.NewCommandLogger().With("command", "run", "suite", suite.Name)

	results := probe.RunAll(context.Background(), probe.Registry(), probeParams, suite.Selected())
	report := probe.NewReport(results)

	if params.outputJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(report); err != nil {
			return fmt.Errorf("encoding results: %w", err)
		}
	} else {
		probe.PrintChecklist(os.Stdout, results)
	}

	reportPath := params.reportPath
	if reportPath == "" {
		reportPath = cfg.ReportPath
	}
	if reportPath != "" {
		digest, err := report.WriteFile(reportPath)
		if err != nil {
			return err
		}
		logger.Info("report written", "path", reportPath, "digest", digest)
	}

	if probe.AnyFailed(results) {
		return &cli.ExitError{Code: 1}
	}
	return nil
}

// loadConfig resolves the tool config: explicit --config path first,
// then LINKPROBE_CONFIG, then fixture defaults. The smoke binaries
// run with no configuration at all, so the defaults path is the
// common one.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFile(path)
	}
	if os.Getenv("LINKPROBE_CONFIG") != "" {
		return config.Load()
	}
	return config.Default(), nil
}

func reportCommand() *cli.Command {
	var diagnostic bool

	return &cli.Command{
		Name:    "report",
		Summary: "show a previously written CBOR report",
		Usage:   "linkprobe report [flags] <file>",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("report", pflag.ContinueOnError)
			flagSet.BoolVar(&diagnostic, "diag", false, "print CBOR diagnostic notation instead of a checklist")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("report takes exactly one file argument")
			}

			if diagnostic {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("reading report %s: %w", args[0], err)
				}
				notation, err := codec.Diagnose(data)
				if err != nil {
					return fmt.Errorf("diagnosing report %s: %w", args[0], err)
				}
				fmt.Println(notation)
				return nil
			}

			report, err := probe.ReadReport(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("linkprobe %s on %s (%s)\n\n", report.Version, report.Platform, report.GoVersion)
			probe.PrintChecklist(os.Stdout, report.Results)
			if !report.OK {
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

func versionCommand() *cli.Command {
	var full bool

	return &cli.Command{
		Name:    "version",
		Summary: "print build version information",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("version", pflag.ContinueOnError)
			flagSet.BoolVar(&full, "full", false, "include Go version and platform")
			return flagSet
		},
		Run: func(args []string) error {
			if full {
				fmt.Println(version.Full())
			} else {
				fmt.Println(version.Info())
			}
			return nil
		},
	}
}
