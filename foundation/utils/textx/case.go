// File: case.go
// Title: Case Conversion
// Description: Upper, lower and capitalised forms of text, delegated to the
//              case mapping primitive of the Processor, and Unicode
//              normalization forms.
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

	"golang.org/x/text/unicode/norm"

	tkerrors "github.com/msto63/textkit/foundation/core/errors"
)

// Uppercase returns s in upper case
func (p *Processor) Uppercase(s string) string {
	return p.caser.ToUpper(s)
}

// Lowercase returns s in lower case
func (p *Processor) Lowercase(s string) string {
	return p.caser.ToLower(s)
}

// Capitalise upper-cases the first grapheme of s and lower-cases the rest
func (p *Processor) Capitalise(s string) string {
	if s == "" {
		return ""
	}
	first, rest := p.next(s)
	return p.caser.ToUpper(first) + p.caser.ToLower(rest)
}

// Uppercase returns s in upper case
func Uppercase(s string) string {
	return defaultProcessor.Uppercase(s)
}

// Lowercase returns s in lower case
func Lowercase(s string) string {
	return defaultProcessor.Lowercase(s)
}

// Capitalise upper-cases the first grapheme of s and lower-cases the rest
func Capitalise(s string) string {
	return defaultProcessor.Capitalise(s)
}

// Normalize returns s in the given Unicode normalization form
func Normalize(s string, form norm.Form) string {
	return form.String(s)
}

// ParseForm parses a normalization form name (NFC, NFD, NFKC, NFKD),
// ignoring case
func ParseForm(name string) (norm.Form, error) {
	switch strings.ToUpper(Trim(name)) {
	case "NFC":
		return norm.NFC, nil
	case "NFD":
		return norm.NFD, nil
	case "NFKC":
		return norm.NFKC, nil
	case "NFKD":
		return norm.NFKD, nil
	default:
		return norm.NFC, tkerrors.InvalidInput(tkerrors.ModuleTextx, "parse_form", name, "NFC, NFD, NFKC or NFKD")
	}
}
