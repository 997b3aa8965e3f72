// File: errors.go
// Title: textx Error Values
// Description: Sentinel errors for the failure kinds of the text operations.
//              Returned errors carry operation and details; errors.Is matches
//              them against these sentinels by code.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package textx

import (
	tkerror "github.com/msto63/textkit/foundation/core/error"
	tkerrors "github.com/msto63/textkit/foundation/core/errors"
)

var (
	// ErrEmptyInput is returned by operations that need at least one grapheme
	ErrEmptyInput = sentinel(tkerrors.CodeTextxEmptyInput, "empty input")

	// ErrNotFound is returned by SplitOnce when the separator is absent
	ErrNotFound = sentinel(tkerrors.CodeTextxNotFound, "separator not found")

	// ErrInvalidCodepoint is returned for integers that are not valid codepoints
	ErrInvalidCodepoint = sentinel(tkerrors.CodeTextxInvalidCodepoint, "invalid codepoint")

	// ErrInvalidPadding is returned when padding is required but the pad text is empty
	ErrInvalidPadding = sentinel(tkerrors.CodeTextxInvalidPadding, "cannot pad with empty text")

	// ErrInvalidEncoding is returned by FromBytes for input that is not UTF-8
	ErrInvalidEncoding = sentinel(tkerrors.CodeTextxInvalidEncoding, "invalid UTF-8")
)

func sentinel(code, message string) *tkerror.Error {
	return tkerror.New(message).WithCode(tkerror.Code(code))
}
