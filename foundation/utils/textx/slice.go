// File: slice.go
// Title: Index and Slice Engine
// Description: Resolves grapheme indices into byte ranges. Negative indices
//              count from the end; out of range windows are clamped instead
//              of failing, so every slicing operation is total.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package textx

import (
	"math"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
)

// window resolves the grapheme window [index, index+length) of s to byte
// offsets. All slicing operations go through here:
//   - length < 0 yields an empty window
//   - index < 0 counts from the end; still negative yields an empty window
//   - the window is clipped to the graphemes available
func (p *Processor) window(s string, index, length int) (start, end int) {
	if length < 0 {
		return 0, 0
	}
	if index < 0 {
		index += p.Length(s)
		if index < 0 {
			return 0, 0
		}
	}

	rest := s
	for ; index > 0 && rest != ""; index-- {
		_, rest = p.next(rest)
	}
	start = len(s) - len(rest)

	for ; length > 0 && rest != ""; length-- {
		_, rest = p.next(rest)
	}
	end = len(s) - len(rest)

	return start, end
}

// Slice returns length graphemes of s starting at index.
// A negative index counts from the end. Out of range values never fail:
//
//	Slice("gleam", 1, 2)   // "le"
//	Slice("gleam", 1, 10)  // "leam"
//	Slice("gleam", -2, 2)  // "am"
//	Slice("gleam", -12, 2) // ""
func (p *Processor) Slice(s string, index, length int) string {
	start, end := p.window(s, index, length)
	return s[start:end]
}

// DropStart removes the first n graphemes. A negative n leaves s unchanged.
func (p *Processor) DropStart(s string, n int) string {
	if n < 0 {
		return s
	}
	start, _ := p.window(s, n, math.MaxInt)
	return s[start:]
}

// DropEnd removes the last n graphemes. A negative n leaves s unchanged.
func (p *Processor) DropEnd(s string, n int) string {
	if n < 0 {
		return s
	}
	return p.Slice(s, 0, p.Length(s)-n)
}

// First returns the first grapheme of s, or ErrEmptyInput when s is empty
func (p *Processor) First(s string) (string, error) {
	if s == "" {
		return "", tkerrors.TextxEmptyInput("first")
	}
	g, _ := p.next(s)
	return g, nil
}

// Last returns the last grapheme of s, or ErrEmptyInput when s is empty
func (p *Processor) Last(s string) (string, error) {
	if s == "" {
		return "", tkerrors.TextxEmptyInput("last")
	}
	return p.Slice(s, -1, 1), nil
}

// Truncate shortens s to at most maxLen graphemes, ending in ellipsis when
// something was cut. If the ellipsis does not fit it is left out.
func (p *Processor) Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if p.Length(s) <= maxLen {
		return s
	}

	ellipsisLen := p.Length(ellipsis)
	if ellipsisLen >= maxLen {
		return p.Slice(s, 0, maxLen)
	}
	return p.Slice(s, 0, maxLen-ellipsisLen) + ellipsis
}

// Slice returns length graphemes of s starting at index
func Slice(s string, index, length int) string {
	return defaultProcessor.Slice(s, index, length)
}

// DropStart removes the first n graphemes of s
func DropStart(s string, n int) string {
	return defaultProcessor.DropStart(s, n)
}

// DropEnd removes the last n graphemes of s
func DropEnd(s string, n int) string {
	return defaultProcessor.DropEnd(s, n)
}

// First returns the first grapheme of s
func First(s string) (string, error) {
	return defaultProcessor.First(s)
}

// Last returns the last grapheme of s
func Last(s string) (string, error) {
	return defaultProcessor.Last(s)
}

// Truncate shortens s to at most maxLen graphemes including the ellipsis
func Truncate(s string, maxLen int, ellipsis string) string {
	return defaultProcessor.Truncate(s, maxLen, ellipsis)
}
