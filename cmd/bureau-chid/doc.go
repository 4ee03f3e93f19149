// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Bureau-chid validates identifiers and titles and works with
// identifier catalogs from the command line.
//
//	bureau-chid check render-farm build.cluster
//	bureau-chid title "Render farm (GPU pool)"
//	bureau-chid catalog list labels.yaml
//	bureau-chid catalog convert --to cbor labels.yaml > labels.cbor
//
// Exit codes:
//
//	0  every input was valid
//	1  at least one input was invalid (reported on stdout), or an
//	   internal failure
//	2  bad arguments or an unreadable catalog
package main
