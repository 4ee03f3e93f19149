// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package catalog

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a catalog encoding.
type Format int

const (
	// FormatJSON is plain JSON.
	FormatJSON Format = iota + 1

	// FormatJSONC is JSON with // and /* */ comments and trailing
	// commas. Encoding a JSONC catalog produces plain JSON.
	FormatJSONC

	// FormatYAML is YAML 1.2 as implemented by gopkg.in/yaml.v3.
	FormatYAML

	// FormatCBOR is CBOR with Core Deterministic Encoding.
	FormatCBOR
)

var formatNames = map[Format]string{
	FormatJSON:  "json",
	FormatJSONC: "jsonc",
	FormatYAML:  "yaml",
	FormatCBOR:  "cbor",
}

// String returns the format's flag name ("json", "jsonc", "yaml",
// "cbor").
func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat returns the format named by name. "yml" is accepted as
// an alias for "yaml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "jsonc":
		return FormatJSONC, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	}
	return 0, fmt.Errorf("unknown catalog format %q (supported: json, jsonc, yaml, cbor)", name)
}

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	extension := strings.TrimPrefix(filepath.Ext(path), ".")
	if extension == "" {
		return 0, fmt.Errorf("cannot infer catalog format from %q: no file extension", path)
	}
	format, err := ParseFormat(extension)
	if err != nil {
		return 0, fmt.Errorf("cannot infer catalog format from %q: %w", path, err)
	}
	return format, nil
}
