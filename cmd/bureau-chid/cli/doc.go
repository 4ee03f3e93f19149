// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the small command framework behind bureau-chid: a
// tree of [Command] values dispatched by name, with per-command
// spf13/pflag flag sets, generated help, and typo suggestions for
// unknown commands and flags.
//
// Commands report failures with [ToolError] (categorized by
// [Validation] or [Internal]) or, when a non-zero exit is an expected
// outcome that the command has already reported, with [ExitError].
package cli
