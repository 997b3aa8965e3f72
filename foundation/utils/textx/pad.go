// File: pad.go
// Title: Grapheme Aware Padding
// Description: Pads text to a target length in graphemes. The pad text is
//              tiled as often as it fits completely, then cut to fill the
//              remaining graphemes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package textx

import (
	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/slicex"
)

// PadStart prefixes s with copies of with until it is to graphemes long.
// Text that is already long enough is returned unchanged:
//
//	PadStart("121", 5, ".") // "..121"
//	PadStart("121", 3, ".") // "121"
//
// Padding with an empty text fails with ErrInvalidPadding.
func (p *Processor) PadStart(s string, to int, with string) (string, error) {
	deficit := to - p.Length(s)
	if deficit <= 0 {
		return s, nil
	}
	fill, err := p.fill(deficit, with, "pad_start")
	if err != nil {
		return "", err
	}
	return fill + s, nil
}

// PadEnd appends copies of with to s until it is to graphemes long
func (p *Processor) PadEnd(s string, to int, with string) (string, error) {
	deficit := to - p.Length(s)
	if deficit <= 0 {
		return s, nil
	}
	fill, err := p.fill(deficit, with, "pad_end")
	if err != nil {
		return "", err
	}
	return s + fill, nil
}

// Center pads both sides of s to reach to graphemes. An odd deficit puts
// the extra grapheme on the right.
func (p *Processor) Center(s string, to int, with string) (string, error) {
	deficit := to - p.Length(s)
	if deficit <= 0 {
		return s, nil
	}
	left, err := p.fill(deficit/2, with, "center")
	if err != nil {
		return "", err
	}
	right, err := p.fill(deficit-deficit/2, with, "center")
	if err != nil {
		return "", err
	}
	return Concat([]string{left, s, right}), nil
}

// fill returns exactly n graphemes of repeated with
func (p *Processor) fill(n int, with, operation string) (string, error) {
	if n <= 0 {
		return "", nil
	}
	unit := p.Length(with)
	if unit == 0 {
		return "", tkerrors.TextxInvalidPadding(operation, n)
	}
	return NewBuilder().
		AppendAll(slicex.Repeat(with, n/unit)).
		Append(p.Slice(with, 0, n%unit)).
		String(), nil
}

// PadStart prefixes s with copies of with until it is to graphemes long
func PadStart(s string, to int, with string) (string, error) {
	return defaultProcessor.PadStart(s, to, with)
}

// PadEnd appends copies of with to s until it is to graphemes long
func PadEnd(s string, to int, with string) (string, error) {
	return defaultProcessor.PadEnd(s, to, with)
}

// Center pads both sides of s to reach to graphemes
func Center(s string, to int, with string) (string, error) {
	return defaultProcessor.Center(s, to, with)
}
