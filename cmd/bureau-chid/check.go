// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/chid/cmd/bureau-chid/cli"
	"github.com/bureau-foundation/chid/lib/chid"
)

// checkResult is one line of check/title output.
type checkResult struct {
	Input string `json:"input"`
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func checkCommand(env *environment) *cli.Command {
	var jsonOutput bool
	return &cli.Command{
		Name:    "check",
		Summary: "Validate CHIDs",
		Description: `Parse each argument as a CHID and report whether it is valid.

Invalid arguments are reported with the reason ("CHID too long", or the
first forbidden character and its character position). The exit code is
1 when any argument is invalid.`,
		Usage: "bureau-chid check [--json] CHID...",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("check", pflag.ContinueOnError)
			flagSet.BoolVar(&jsonOutput, "json", false, "print results as a JSON array")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return cli.Validation("at least one CHID argument is required")
			}
			return reportResults(env.stdout, args, jsonOutput, func(raw string) error {
				_, err := chid.ParseChid(raw)
				return err
			})
		},
		Examples: []cli.Example{
			{Description: "Check two identifiers", Command: "bureau-chid check render-farm build.cluster"},
			{Description: "Machine-readable output", Command: "bureau-chid check --json render-farm"},
		},
	}
}

func titleCommand(env *environment) *cli.Command {
	var jsonOutput bool
	return &cli.Command{
		Name:    "title",
		Summary: "Validate titles",
		Description: `Parse each argument as a title and report whether it fits in 256
bytes. The exit code is 1 when any argument is too long.`,
		Usage: "bureau-chid title [--json] TEXT...",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("title", pflag.ContinueOnError)
			flagSet.BoolVar(&jsonOutput, "json", false, "print results as a JSON array")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) == 0 {
				return cli.Validation("at least one title argument is required")
			}
			return reportResults(env.stdout, args, jsonOutput, func(raw string) error {
				_, err := chid.ParseTitle(raw)
				return err
			})
		},
	}
}

// reportResults validates every input, prints one result per input,
// and returns an ExitError with code 1 if any input failed.
func reportResults(w io.Writer, inputs []string, jsonOutput bool, validate func(string) error) error {
	results := make([]checkResult, 0, len(inputs))
	failed := false
	for _, input := range inputs {
		result := checkResult{Input: input, Valid: true}
		if err := validate(input); err != nil {
			result.Valid = false
			result.Error = err.Error()
			failed = true
		}
		results = append(results, result)
	}

	if jsonOutput {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(results); err != nil {
			return cli.Internal("writing results: %w", err)
		}
	} else {
		for _, result := range results {
			if result.Valid {
				fmt.Fprintf(w, "ok\t%q\n", result.Input)
			} else {
				fmt.Fprintf(w, "invalid\t%q\t%s\n", result.Input, result.Error)
			}
		}
	}

	if failed {
		return &cli.ExitError{Code: 1}
	}
	return nil
}
