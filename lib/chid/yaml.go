// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !nocodec

package chid

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML encodes the identifier as a YAML string scalar. The YAML
// encoder quotes text that would otherwise resolve to another type
// ("123", "true", "null").
func (c Chid) MarshalYAML() (any, error) { return c.String(), nil }

// UnmarshalYAML accepts a scalar node resolving to !!str, quoted or
// plain, and validates it with ParseChid. Integers, floats, booleans,
// nulls, sequences, and mappings fail with ErrExpectedString.
func (c *Chid) UnmarshalYAML(node *yaml.Node) error {
	text, err := decodeYAMLString(node)
	if err != nil {
		return fmt.Errorf("CHID: %w", err)
	}
	return c.UnmarshalText([]byte(text))
}

// MarshalYAML encodes the title as a YAML string scalar.
func (t Title) MarshalYAML() (any, error) { return t.String(), nil }

// UnmarshalYAML accepts a !!str scalar node and validates it with
// ParseTitle.
func (t *Title) UnmarshalYAML(node *yaml.Node) error {
	text, err := decodeYAMLString(node)
	if err != nil {
		return fmt.Errorf("title: %w", err)
	}
	return t.UnmarshalText([]byte(text))
}

func decodeYAMLString(node *yaml.Node) (string, error) {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.ScalarNode:
	case yaml.SequenceNode:
		return "", fmt.Errorf("%w, got YAML sequence (line %d)", ErrExpectedString, node.Line)
	case yaml.MappingNode:
		return "", fmt.Errorf("%w, got YAML mapping (line %d)", ErrExpectedString, node.Line)
	default:
		return "", fmt.Errorf("%w, got YAML node kind %d (line %d)", ErrExpectedString, node.Kind, node.Line)
	}
	if tag := node.ShortTag(); tag != "!!str" {
		return "", fmt.Errorf("%w, got YAML %s scalar %q (line %d)", ErrExpectedString, tag, node.Value, node.Line)
	}
	return node.Value, nil
}
