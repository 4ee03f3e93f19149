// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chid

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// MaxChidLength is the maximum length of a Chid in bytes of UTF-8
// text.
const MaxChidLength = 50

// Chid is a validated short identifier: at most MaxChidLength bytes,
// containing no '.' and no space.
//
// Chid is an immutable value type stored inline. Bytes past the
// length are always zero, so == and map keys agree with textual
// equality. The zero value is the empty identifier, which is also what
// ParseChid("") returns.
type Chid struct {
	contents [MaxChidLength]byte
	length   uint8
}

// ParseChid validates raw and returns it as a Chid. The byte length is
// checked first, so input over MaxChidLength bytes fails with
// ChidTooLong even when it also contains a forbidden character.
// Otherwise the first '.' or space is reported as ChidInvalidChar with
// its character position. A byte that is not valid UTF-8 is reported
// the same way, with Character set to utf8.RuneError.
func ParseChid(raw string) (Chid, error) {
	if len(raw) > MaxChidLength {
		return Chid{}, &ParseChidError{Kind: ChidTooLong}
	}
	for position, offset := 0, 0; offset < len(raw); position++ {
		character, width := utf8.DecodeRuneInString(raw[offset:])
		if character == '.' || character == ' ' || (character == utf8.RuneError && width == 1) {
			return Chid{}, &ParseChidError{
				Kind:      ChidInvalidChar,
				Position:  position,
				Character: character,
			}
		}
		offset += width
	}
	var c Chid
	c.length = uint8(copy(c.contents[:], raw))
	return c, nil
}

// MustParseChid is like ParseChid but panics on error. Use in tests
// and static initialization where the input is known-valid.
func MustParseChid(raw string) Chid {
	c, err := ParseChid(raw)
	if err != nil {
		panic(fmt.Sprintf("chid.MustParseChid(%q): %v", raw, err))
	}
	return c
}

// String returns the identifier text exactly as it was parsed.
func (c Chid) String() string { return string(c.contents[:c.length]) }

// Len returns the identifier length in bytes.
func (c Chid) Len() int { return int(c.length) }

// RuneCount returns the identifier length in characters.
func (c Chid) RuneCount() int { return utf8.RuneCount(c.contents[:c.length]) }

// IsZero reports whether the Chid is empty.
func (c Chid) IsZero() bool { return c.length == 0 }

// Compare returns -1, 0, or +1 as c sorts before, equal to, or after
// other, comparing the underlying bytes lexicographically.
func (c Chid) Compare(other Chid) int {
	return bytes.Compare(c.contents[:c.length], other.contents[:other.length])
}

// Less reports whether c sorts before other.
func (c Chid) Less(other Chid) bool { return c.Compare(other) < 0 }

// Hash returns a 64-bit hash of the identifier text that is stable
// across processes and releases. Equal identifiers hash equally.
func (c Chid) Hash() uint64 { return keyedHash(chidDomainKey, c.contents[:c.length]) }

// AppendText implements encoding.TextAppender, appending the text to
// buffer without an intermediate string.
func (c Chid) AppendText(buffer []byte) ([]byte, error) {
	return append(buffer, c.contents[:c.length]...), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Chid) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is
// validated with ParseChid; on error the receiver is left unchanged.
func (c *Chid) UnmarshalText(data []byte) error {
	parsed, err := ParseChid(string(data))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
