// File: grapheme.go
// Title: Grapheme Segmentation
// Description: Splits text into grapheme clusters, the unit every index
//              based operation counts in. Counting is linear in the byte
//              length of the text; nothing is cached.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package textx

import (
	"github.com/rivo/uniseg"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
)

// PopGrapheme splits s into its first grapheme and the remaining text.
// It fails with ErrEmptyInput when s is empty.
func (p *Processor) PopGrapheme(s string) (grapheme, rest string, err error) {
	if s == "" {
		return "", "", tkerrors.TextxEmptyInput("pop_grapheme")
	}
	grapheme, rest = p.next(s)
	return grapheme, rest, nil
}

// ToGraphemes returns the graphemes of s in order. Joining them gives s back.
func (p *Processor) ToGraphemes(s string) []string {
	graphemes := make([]string, 0, len(s))
	for rest := s; rest != ""; {
		var g string
		g, rest = p.next(rest)
		graphemes = append(graphemes, g)
	}
	return graphemes
}

// Length returns the number of graphemes in s. It runs in O(n).
func (p *Processor) Length(s string) int {
	n := 0
	for rest := s; rest != ""; n++ {
		_, rest = p.next(rest)
	}
	return n
}

// PopGrapheme splits s into its first grapheme and the remaining text
func PopGrapheme(s string) (grapheme, rest string, err error) {
	return defaultProcessor.PopGrapheme(s)
}

// ToGraphemes returns the graphemes of s in order
func ToGraphemes(s string) []string {
	return defaultProcessor.ToGraphemes(s)
}

// Length returns the number of graphemes in s. It runs in O(n).
func Length(s string) int {
	return defaultProcessor.Length(s)
}

// Width returns the monospace display width of s: wide East Asian
// characters and most emoji count two columns, combining marks none.
func Width(s string) int {
	return uniseg.StringWidth(s)
}
