// File: codepoint.go
// Title: Codepoint Model
// Description: Conversion between integers, codepoints and text. A Codepoint
//              can only be constructed from a Unicode scalar value that is
//              not one of the noncharacters U+FFFE and U+FFFF.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package textx

import (
	"fmt"
	"unicode/utf8"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/slicex"
)

// MaxCodepoint is the largest Unicode codepoint
const MaxCodepoint = 0x10FFFF

// Codepoint is a Unicode scalar value. The zero value is U+0000.
type Codepoint struct {
	value rune
}

// CodepointOf returns the codepoint for value. It fails with
// ErrInvalidCodepoint for negative values, values above U+10FFFF,
// surrogates and the noncharacters U+FFFE and U+FFFF.
func CodepointOf(value int) (Codepoint, error) {
	if !isValidCodepoint(value) {
		return Codepoint{}, tkerrors.TextxInvalidCodepoint("codepoint_of", value)
	}
	return Codepoint{value: rune(value)}, nil
}

func isValidCodepoint(value int) bool {
	switch {
	case value < 0 || value > MaxCodepoint:
		return false
	case value >= 0xD800 && value <= 0xDFFF:
		return false
	case value == 0xFFFE || value == 0xFFFF:
		return false
	}
	return true
}

// Int returns the integer value of the codepoint
func (c Codepoint) Int() int {
	return int(c.value)
}

// Rune returns the codepoint as a rune
func (c Codepoint) Rune() rune {
	return c.value
}

// String returns the U+XXXX notation
func (c Codepoint) String() string {
	return fmt.Sprintf("%U", c.value)
}

// ToCodepoints decodes s into its codepoints from left to right.
// Bytes that are not valid UTF-8 decode to U+FFFD.
func ToCodepoints(s string) []Codepoint {
	cps := make([]Codepoint, 0, len(s))
	for _, r := range s {
		cps = append(cps, Codepoint{value: r})
	}
	return cps
}

// FromCodepoints encodes the codepoints as UTF-8 text
func FromCodepoints(cps []Codepoint) string {
	buf := make([]byte, 0, len(cps))
	for _, cp := range cps {
		buf = utf8.AppendRune(buf, cp.value)
	}
	return string(buf)
}

// CodepointInts returns the integer values of the codepoints of s
func CodepointInts(s string) []int {
	return slicex.Map(ToCodepoints(s), Codepoint.Int)
}

// FromBytes converts raw bytes into text. It fails with
// ErrInvalidEncoding at the offset of the first invalid byte.
func FromBytes(b []byte) (string, error) {
	if utf8.Valid(b) {
		return string(b), nil
	}

	offset := 0
	for offset < len(b) {
		r, size := utf8.DecodeRune(b[offset:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		offset += size
	}
	return "", tkerrors.TextxInvalidEncoding("from_bytes", offset)
}
