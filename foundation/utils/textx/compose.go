// File: compose.go
// Title: Composition Layer
// Description: Splitting, joining, replacing and repeating text. Separators
//              and patterns match as exact byte sequences; only an empty
//              separator falls back to grapheme boundaries.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package textx

import (
	"strings"
	"unicode"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/slicex"
)

// Split splits s around every occurrence of on, keeping empty fields:
//
//	Split("home/a/b/", "/") // ["home" "a" "b" ""]
//
// An empty separator splits s into its graphemes.
func (p *Processor) Split(s, on string) []string {
	if on == "" {
		return p.ToGraphemes(s)
	}
	return strings.Split(s, on)
}

// Split splits s around every occurrence of on
func Split(s, on string) []string {
	return defaultProcessor.Split(s, on)
}

// SplitOnce splits s around the first occurrence of on. It fails with
// ErrNotFound when on does not occur; an empty separator never occurs.
func SplitOnce(s, on string) (before, after string, err error) {
	if on != "" {
		if i := strings.Index(s, on); i >= 0 {
			return s[:i], s[i+len(on):], nil
		}
	}
	return "", "", tkerrors.TextxNotFound("split_once", on)
}

// Crop returns the part of s starting at the first occurrence of before.
// Unlike SplitOnce an absent substring is not an error: s is returned as is.
func Crop(s, before string) string {
	if i := strings.Index(s, before); i >= 0 {
		return s[i:]
	}
	return s
}

// Join concatenates parts with with between each pair
func Join(parts []string, with string) string {
	b := NewBuilder()
	for i, part := range parts {
		if i > 0 {
			b.Append(with)
		}
		b.Append(part)
	}
	return b.String()
}

// Concat concatenates parts
func Concat(parts []string) string {
	return NewBuilder().AppendAll(parts).String()
}

// Append returns s followed by suffix
func Append(s, suffix string) string {
	return s + suffix
}

// Repeat returns times copies of s. times <= 0 yields "".
func Repeat(s string, times int) string {
	if times <= 0 || s == "" {
		return ""
	}
	return Concat(slicex.Repeat(s, times))
}

// Replace replaces every non-overlapping occurrence of each with with.
// An empty pattern matches nowhere.
func Replace(s, each, with string) string {
	if each == "" {
		return s
	}
	return strings.ReplaceAll(s, each, with)
}

// Contains reports whether sub occurs in s
func Contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

// StartsWith reports whether s begins with prefix
func StartsWith(s, prefix string) bool {
	return strings.HasPrefix(s, prefix)
}

// EndsWith reports whether s ends with suffix
func EndsWith(s, suffix string) bool {
	return strings.HasSuffix(s, suffix)
}

// Trim removes leading and trailing whitespace
func Trim(s string) string {
	return strings.TrimFunc(s, unicode.IsSpace)
}

// TrimStart removes leading whitespace
func TrimStart(s string) string {
	return strings.TrimLeftFunc(s, unicode.IsSpace)
}

// TrimEnd removes trailing whitespace
func TrimEnd(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// IsEmpty reports whether s has no bytes
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank reports whether s is empty or only whitespace
func IsBlank(s string) bool {
	return Trim(s) == ""
}

// ByteSize returns the number of bytes of s
func ByteSize(s string) int {
	return len(s)
}
