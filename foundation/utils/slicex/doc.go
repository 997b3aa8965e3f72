// Package slicex implements generic slice helpers for the textkit foundation.
//
// Package: slicex
// Title: Extended Slice Utilities for Go
// Description: Small functional helpers over slices. textx uses them for
//              grapheme and codepoint sequences, the CLI for formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice operations
// - 2026-10-17 v0.2.0: Reduced to the helpers the toolkit needs
//
// All functions are pure: input slices are never modified, and nil input
// yields nil output where a slice is returned.
//
//	graphemes := textx.ToGraphemes("éa")
//	reversed := slicex.Reverse(graphemes)         // ["a", "é"]
//	widths := slicex.Map(graphemes, textx.Width)  // [1, 1]
//	total := slicex.Reduce(widths, 0, func(acc, w int) int { return acc + w })
//	fmt.Println(slicex.Join(widths, ","))         // 1,1
package slicex
