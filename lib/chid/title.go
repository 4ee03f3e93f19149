// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chid

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// MaxTitleLength is the maximum length of a Title in bytes of UTF-8
// text.
const MaxTitleLength = 256

// Title is a free-form display label of at most MaxTitleLength bytes
// of UTF-8 text. Any character is allowed.
//
// Like Chid, Title is an immutable inline value whose zero value is the
// empty title.
type Title struct {
	contents [MaxTitleLength]byte
	length   uint16
}

// ParseTitle returns raw as a Title, or a ParseTitleError of kind
// TitleTooLong when raw exceeds MaxTitleLength bytes. Input within the
// limit that is not valid UTF-8 fails with TitleInvalidUTF8.
func ParseTitle(raw string) (Title, error) {
	if len(raw) > MaxTitleLength {
		return Title{}, &ParseTitleError{Kind: TitleTooLong}
	}
	if !utf8.ValidString(raw) {
		return Title{}, &ParseTitleError{Kind: TitleInvalidUTF8}
	}
	var t Title
	t.length = uint16(copy(t.contents[:], raw))
	return t, nil
}

// MustParseTitle is like ParseTitle but panics on error.
func MustParseTitle(raw string) Title {
	t, err := ParseTitle(raw)
	if err != nil {
		panic(fmt.Sprintf("chid.MustParseTitle(%q): %v", raw, err))
	}
	return t
}

// String returns the title text exactly as it was parsed.
func (t Title) String() string { return string(t.contents[:t.length]) }

// Len returns the title length in bytes.
func (t Title) Len() int { return int(t.length) }

// RuneCount returns the title length in characters.
func (t Title) RuneCount() int { return utf8.RuneCount(t.contents[:t.length]) }

// IsZero reports whether the Title is empty.
func (t Title) IsZero() bool { return t.length == 0 }

// Compare returns -1, 0, or +1 comparing the underlying bytes
// lexicographically.
func (t Title) Compare(other Title) int {
	return bytes.Compare(t.contents[:t.length], other.contents[:other.length])
}

// Less reports whether t sorts before other.
func (t Title) Less(other Title) bool { return t.Compare(other) < 0 }

// Hash returns a stable 64-bit hash of the title text.
func (t Title) Hash() uint64 { return keyedHash(titleDomainKey, t.contents[:t.length]) }

// AppendText implements encoding.TextAppender, appending the text to
// buffer without an intermediate string.
func (t Title) AppendText(buffer []byte) ([]byte, error) {
	return append(buffer, t.contents[:t.length]...), nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Title) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Title) UnmarshalText(data []byte) error {
	parsed, err := ParseTitle(string(data))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
