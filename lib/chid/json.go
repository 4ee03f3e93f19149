// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !nocodec

package chid

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON encodes the identifier as a JSON string.
func (c Chid) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

// UnmarshalJSON decodes a JSON string and validates it with ParseChid.
// Any other JSON value, null included, fails with ErrExpectedString.
func (c *Chid) UnmarshalJSON(data []byte) error {
	text, err := decodeJSONString(data)
	if err != nil {
		return fmt.Errorf("CHID: %w", err)
	}
	return c.UnmarshalText([]byte(text))
}

// MarshalJSON encodes the title as a JSON string.
func (t Title) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

// UnmarshalJSON decodes a JSON string and validates it with ParseTitle.
func (t *Title) UnmarshalJSON(data []byte) error {
	text, err := decodeJSONString(data)
	if err != nil {
		return fmt.Errorf("title: %w", err)
	}
	return t.UnmarshalText([]byte(text))
}

// decodeJSONString unquotes a single JSON string token. encoding/json
// hands Unmarshalers the exact token with surrounding whitespace
// removed, so the first byte identifies the value kind.
func decodeJSONString(data []byte) (string, error) {
	if len(data) == 0 || data[0] != '"' {
		return "", fmt.Errorf("%w, got JSON %s", ErrExpectedString, jsonKind(data))
	}
	var text string
	if err := json.Unmarshal(data, &text); err != nil {
		return "", err
	}
	return text, nil
}

func jsonKind(data []byte) string {
	if len(data) == 0 {
		return "empty input"
	}
	switch data[0] {
	case '{':
		return "object"
	case '[':
		return "array"
	case 't', 'f':
		return "boolean"
	case 'n':
		return "null"
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return "number"
	default:
		return "invalid JSON"
	}
}
