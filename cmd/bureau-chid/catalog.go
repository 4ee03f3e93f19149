// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/chid/cmd/bureau-chid/cli"
	"github.com/bureau-foundation/chid/lib/catalog"
	"github.com/bureau-foundation/chid/lib/codec"
)

func catalogCommand(env *environment) *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Summary: "Validate, list, and convert identifier catalogs",
		Description: `Work with catalog files: lists of {id, title} entries stored as JSON,
JSONC, YAML, or CBOR.

The input format is taken from --format, or from the file extension
(.json, .jsonc, .yaml, .yml, .cbor). Use "-" as the file to read stdin;
--format is then required.`,
		Subcommands: []*cli.Command{
			catalogValidateCommand(env),
			catalogListCommand(env),
			catalogConvertCommand(env),
		},
	}
}

// catalogInput holds the flags shared by every catalog subcommand.
type catalogInput struct {
	format string
}

func (input *catalogInput) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&input.format, "format", "", "input format: json, jsonc, yaml, cbor (default: from file extension)")
}

// load reads and decodes the single catalog named by args.
func (input *catalogInput) load(env *environment, args []string) (*catalog.Catalog, string, error) {
	if len(args) != 1 {
		return nil, "", cli.Validation("expected exactly one catalog file argument, got %d", len(args))
	}
	path := args[0]

	var format catalog.Format
	var err error
	switch {
	case input.format != "":
		format, err = catalog.ParseFormat(input.format)
	case path == "-":
		return nil, "", cli.Validation("--format is required when reading a catalog from stdin")
	default:
		format, err = catalog.FormatFromPath(path)
	}
	if err != nil {
		return nil, "", cli.Validation("%w", err)
	}

	var data []byte
	if path == "-" {
		data, err = io.ReadAll(env.stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, "", cli.Validation("reading catalog: %w", err)
	}

	decoded, err := catalog.Decode(data, format)
	if err != nil {
		return nil, "", cli.Validation("%s: %w", path, err)
	}
	return decoded, path, nil
}

func catalogValidateCommand(env *environment) *cli.Command {
	var input catalogInput
	return &cli.Command{
		Name:    "validate",
		Summary: "Check that a catalog decodes and has no duplicate identifiers",
		Usage:   "bureau-chid catalog validate [--format F] FILE",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("validate", pflag.ContinueOnError)
			input.addFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			decoded, path, err := input.load(env, args)
			if err != nil {
				return err
			}
			fmt.Fprintf(env.stdout, "%s: %d entries, digest %016x\n", path, len(decoded.Entries), decoded.Digest())
			return nil
		},
	}
}

func catalogListCommand(env *environment) *cli.Command {
	var input catalogInput
	return &cli.Command{
		Name:    "list",
		Summary: "Print catalog entries sorted by identifier",
		Usage:   "bureau-chid catalog list [--format F] FILE",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			input.addFlags(flagSet)
			return flagSet
		},
		Run: func(args []string) error {
			decoded, _, err := input.load(env, args)
			if err != nil {
				return err
			}
			writer := tabwriter.NewWriter(env.stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintf(writer, "ID\tTITLE\n")
			for _, entry := range decoded.Sorted() {
				fmt.Fprintf(writer, "%s\t%s\n", entry.ID, entry.Title)
			}
			if err := writer.Flush(); err != nil {
				return cli.Internal("writing entries: %w", err)
			}
			return nil
		},
	}
}

func catalogConvertCommand(env *environment) *cli.Command {
	var input catalogInput
	var to string
	var sorted bool
	return &cli.Command{
		Name:    "convert",
		Summary: "Re-encode a catalog in another format",
		Description: `Decode a catalog, validate it, and write it to stdout in the format
given by --to. CBOR written to a terminal is shown in diagnostic
notation instead of raw bytes.`,
		Usage: "bureau-chid catalog convert --to F [--format F] [--sorted] FILE",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("convert", pflag.ContinueOnError)
			input.addFlags(flagSet)
			flagSet.StringVar(&to, "to", "", "output format: json, yaml, cbor (required)")
			flagSet.BoolVar(&sorted, "sorted", false, "write entries sorted by identifier")
			return flagSet
		},
		Run: func(args []string) error {
			if to == "" {
				return cli.Validation("--to is required")
			}
			outputFormat, err := catalog.ParseFormat(to)
			if err != nil {
				return cli.Validation("--to: %w", err)
			}

			decoded, path, err := input.load(env, args)
			if err != nil {
				return err
			}
			if sorted {
				decoded = &catalog.Catalog{Entries: decoded.Sorted()}
			}

			data, err := catalog.Encode(decoded, outputFormat)
			if err != nil {
				return cli.Internal("%w", err)
			}
			if outputFormat == catalog.FormatCBOR && cli.IsTerminal(env.stdout) {
				notation, err := codec.Diagnose(data)
				if err != nil {
					return cli.Internal("diagnosing CBOR output: %w", err)
				}
				data = []byte(notation + "\n")
			}
			if _, err := env.stdout.Write(data); err != nil {
				return cli.Internal("writing catalog: %w", err)
			}

			env.logger.With("command", "catalog/convert").Info("converted catalog",
				"path", path,
				"to", outputFormat.String(),
				"entries", len(decoded.Entries),
			)
			return nil
		},
	}
}
