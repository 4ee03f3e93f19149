// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bureau-foundation/chid/cmd/bureau-chid/cli"
	"github.com/bureau-foundation/chid/lib/version"
)

const binaryName = "bureau-chid"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			if _, isExit := err.(*cli.ExitError); !isExit {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// environment carries the streams commands read and write, so tests
// can run the full command tree against buffers.
type environment struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *slog.Logger
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Handle --version before anything else.
	if len(args) > 0 && args[0] == "--version" {
		version.Fprint(stdout, binaryName)
		return nil
	}

	env := &environment{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
		logger: cli.NewCommandLogger(stderr),
	}
	return rootCommand(env).Execute(args)
}

func rootCommand(env *environment) *cli.Command {
	return &cli.Command{
		Name:    binaryName,
		Summary: "Validate identifiers and titles",
		Description: `Validate CHIDs (short identifiers) and titles, and inspect identifier
catalogs.

A CHID is at most 50 bytes and contains no '.' or space. A title is at
most 256 bytes with no character restriction. Nothing is trimmed or
normalized: what you pass is what is checked.`,
		HelpOutput: env.stderr,
		Subcommands: []*cli.Command{
			checkCommand(env),
			titleCommand(env),
			catalogCommand(env),
		},
	}
}
