// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package chid

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrChidTooLong matches a ParseChidError of kind ChidTooLong.
	ErrChidTooLong = errors.New("CHID too long")

	// ErrInvalidChar matches a ParseChidError of kind ChidInvalidChar,
	// regardless of the position or character reported.
	ErrInvalidChar = errors.New("invalid character")

	// ErrTitleTooLong matches a ParseTitleError of kind TitleTooLong.
	ErrTitleTooLong = errors.New("Title too long")

	// ErrInvalidUTF8 matches a ParseTitleError of kind TitleInvalidUTF8
	// and a ParseChidError whose Character is utf8.RuneError.
	ErrInvalidUTF8 = errors.New("not valid UTF-8")

	// ErrExpectedString is returned by the serialization hooks when
	// the encoded value is not a string scalar (a number, boolean,
	// null, list, or map).
	ErrExpectedString = errors.New("expected a string")
)

// ChidErrorKind classifies a Chid parse failure.
type ChidErrorKind int

const (
	// ChidInvalidChar means the input contained '.', a space, or a byte
	// that is not valid UTF-8.
	ChidInvalidChar ChidErrorKind = iota + 1

	// ChidTooLong means the input exceeded MaxChidLength bytes.
	ChidTooLong
)

// ParseChidError is returned by ParseChid. For ChidInvalidChar,
// Position is the zero-based character (rune) index of the first
// forbidden character and Character is that character, or
// utf8.RuneError for a byte that does not decode. Both are zero for
// ChidTooLong.
type ParseChidError struct {
	Kind      ChidErrorKind
	Position  int
	Character rune
}

func (e *ParseChidError) Error() string {
	switch e.Kind {
	case ChidInvalidChar:
		return fmt.Sprintf("Invalid character %c at position %d", e.Character, e.Position)
	case ChidTooLong:
		return ErrChidTooLong.Error()
	default:
		return fmt.Sprintf("invalid CHID (error kind %d)", int(e.Kind))
	}
}

// Is lets errors.Is match a ParseChidError against ErrChidTooLong,
// ErrInvalidChar, or ErrInvalidUTF8. U+FFFD itself is never a
// forbidden character, so a RuneError here always means a bad byte.
func (e *ParseChidError) Is(target error) bool {
	switch target {
	case ErrChidTooLong:
		return e.Kind == ChidTooLong
	case ErrInvalidChar:
		return e.Kind == ChidInvalidChar
	case ErrInvalidUTF8:
		return e.Kind == ChidInvalidChar && e.Character == utf8.RuneError
	}
	return false
}

// TitleErrorKind classifies a Title parse failure.
type TitleErrorKind int

const (
	// TitleTooLong means the input exceeded MaxTitleLength bytes.
	TitleTooLong TitleErrorKind = iota + 1

	// TitleInvalidUTF8 means the input was within the length limit but
	// was not valid UTF-8 text.
	TitleInvalidUTF8
)

// ParseTitleError is returned by ParseTitle.
type ParseTitleError struct {
	Kind TitleErrorKind
}

func (e *ParseTitleError) Error() string {
	switch e.Kind {
	case TitleTooLong:
		return ErrTitleTooLong.Error()
	case TitleInvalidUTF8:
		return "Title is not valid UTF-8"
	default:
		return fmt.Sprintf("invalid title (error kind %d)", int(e.Kind))
	}
}

// Is lets errors.Is match a ParseTitleError against ErrTitleTooLong or
// ErrInvalidUTF8.
func (e *ParseTitleError) Is(target error) bool {
	switch target {
	case ErrTitleTooLong:
		return e.Kind == TitleTooLong
	case ErrInvalidUTF8:
		return e.Kind == TitleInvalidUTF8
	}
	return false
}
