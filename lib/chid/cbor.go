// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

//go:build !nocodec

package chid

import (
	"fmt"

	"github.com/bureau-foundation/chid/lib/codec"
)

// MarshalCBOR encodes the identifier as a CBOR text string.
func (c Chid) MarshalCBOR() ([]byte, error) { return codec.Marshal(c.String()) }

// UnmarshalCBOR decodes a CBOR text string and validates it with
// ParseChid. Any other major type, byte strings and tagged values
// included, fails with ErrExpectedString.
func (c *Chid) UnmarshalCBOR(data []byte) error {
	text, err := decodeCBORString(data)
	if err != nil {
		return fmt.Errorf("CHID: %w", err)
	}
	return c.UnmarshalText([]byte(text))
}

// MarshalCBOR encodes the title as a CBOR text string.
func (t Title) MarshalCBOR() ([]byte, error) { return codec.Marshal(t.String()) }

// UnmarshalCBOR decodes a CBOR text string and validates it with
// ParseTitle.
func (t *Title) UnmarshalCBOR(data []byte) error {
	text, err := decodeCBORString(data)
	if err != nil {
		return fmt.Errorf("title: %w", err)
	}
	return t.UnmarshalText([]byte(text))
}

func decodeCBORString(data []byte) (string, error) {
	major, ok := codec.Major(data)
	if !ok {
		return "", fmt.Errorf("%w, got empty CBOR input", ErrExpectedString)
	}
	if major != codec.MajorTextString {
		return "", fmt.Errorf("%w, got CBOR %s", ErrExpectedString, major)
	}
	var text string
	if err := codec.Unmarshal(data, &text); err != nil {
		return "", err
	}
	return text, nil
}
