// File: doc.go
// Title: Package Documentation for textx
// Description: Package textx provides grapheme aware text operations for
//              textkit. Every position in a text is a grapheme cluster, so
//              slicing, padding and reversal never split a user perceived
//              character.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

// Package textx provides grapheme aware text operations for textkit.
//
// Package: textx
// Title: Unicode Text Core for textkit Foundation
// Description: Operations over UTF-8 text that index by grapheme cluster
//              instead of byte or rune offsets. Codepoint conversion,
//              segmentation, slicing, composition, padding, case mapping
//              and ordering all share one boundary model.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Overview
//
// A Go string indexes bytes and ranges over runes. Neither matches what a
// reader calls a character: "e\u0301" is two runes, a family emoji is five,
// and a flag is two regional indicators. textx counts extended grapheme
// clusters (Unicode Standard Annex #29) instead:
//
//	len("e\u0301")          // 3 bytes
//	textx.Length("e\u0301") // 1 grapheme
//
// Architecture
//
// The package is organized into functional groups:
//
//   - Primitives: Segmenter, CaseMapper and Comparator plus the Processor
//     bundling them (primitives.go)
//   - Codepoint Model: validated scalar values and UTF-8 conversion (codepoint.go)
//   - Grapheme Segmenter: PopGrapheme, ToGraphemes, Length (grapheme.go)
//   - Index/Slice Engine: Slice, DropStart, DropEnd, First, Last, Truncate (slice.go)
//   - Composition: Split, SplitOnce, Crop, Join, Repeat, Replace (compose.go)
//   - Padding: PadStart, PadEnd, Center (pad.go)
//   - Case and Ordering: Uppercase, Capitalise, Compare, Reverse, Normalize
//     (case.go, order.go)
//   - Builder: linear time assembly of output pieces (builder.go)
//
// Package level functions use the default Processor. Build your own with
// New when a different language or segmenter is needed:
//
//	tr := textx.New(textx.WithLanguage(language.Turkish))
//	tr.Uppercase("istanbul") // "İSTANBUL"
//
// Index Policy
//
// Slicing never fails. All slicing functions resolve their window through
// one routine:
//
//	textx.Slice("gleam", 1, 2)   // "le"
//	textx.Slice("gleam", 1, 10)  // "leam"  clipped
//	textx.Slice("gleam", 10, 3)  // ""      past the end
//	textx.Slice("gleam", -2, 2)  // "am"    from the end
//	textx.Slice("gleam", -12, 2) // ""      before the start
//	textx.Slice("gleam", 0, -1)  // ""      negative length
//
// Only a few operations return errors:
//
//   - PopGrapheme, First and Last on empty text: ErrEmptyInput
//   - SplitOnce without a match: ErrNotFound
//   - CodepointOf outside the scalar values: ErrInvalidCodepoint
//   - padding with empty text while a deficit exists: ErrInvalidPadding
//   - FromBytes on invalid UTF-8: ErrInvalidEncoding
//
// The returned errors are *error.Error values carrying module, operation
// and details. Match them with errors.Is:
//
//	if _, _, err := textx.SplitOnce(s, "="); errors.Is(err, textx.ErrNotFound) {
//	    // no assignment
//	}
//
// Matching
//
// Separators and patterns match as byte sequences. Split, SplitOnce, Crop,
// Replace and Contains do not check grapheme boundaries, so splitting
// "e\u0301" on "e" yields ["" "\u0301"]. Compare orders by bytes as well;
// it is not collation.
//
// Performance Considerations
//
// Length, Slice and the padding functions walk the text from the start and
// run in O(n). Hold on to the result of ToGraphemes when indexing the same
// text many times. Join, Concat, Repeat and Reverse collect their pieces in
// a Builder and allocate the output once.
//
// Thread Safety
//
// Texts are immutable Go strings and a Processor is never modified after
// New returns, so every function may be called concurrently.
package textx
