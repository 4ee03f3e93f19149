// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package catalog reads and writes catalogs: documents that pair each
// [chid.Chid] with the [chid.Title] shown to humans.
//
// A catalog can be stored as JSON, JSON with comments (JSONC), YAML,
// or CBOR. The identifier and title fields are decoded by the chid
// types' own hooks, so every format enforces the same validation:
// an entry whose id contains a dot, or whose id is a bare YAML
// integer, is rejected at decode time rather than coerced.
//
//	data, _ := os.ReadFile("labels.yaml")
//	c, err := catalog.Decode(data, catalog.FormatYAML)
//
// Decode also rejects duplicate identifiers. Use Sorted for a stable
// presentation order and Digest for an order-independent fingerprint.
package catalog
