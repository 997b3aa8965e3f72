// File: primitives.go
// Title: Pluggable Text Primitives
// Description: Defines the primitives every textx operation builds on:
//              grapheme segmentation, case mapping and byte ordering. A
//              Processor bundles one implementation of each; the package
//              level functions use the default bundle.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package textx

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Segmenter splits off the first grapheme cluster of a text.
// Next is only called with non-empty input; cluster+rest must equal s.
type Segmenter interface {
	Next(s string) (cluster, rest string)
}

// CaseMapper maps whole strings to upper and lower case.
type CaseMapper interface {
	ToUpper(s string) string
	ToLower(s string) string
}

// Comparator orders texts by their encoded bytes.
type Comparator interface {
	Less(a, b string) bool
}

// UnisegSegmenter segments by extended grapheme clusters (UAX #29).
type UnisegSegmenter struct{}

// Next returns the first extended grapheme cluster of s
func (UnisegSegmenter) Next(s string) (string, string) {
	cluster, rest, _, _ := uniseg.FirstGraphemeClusterInString(s, -1)
	return cluster, rest
}

// CasesMapper applies the full Unicode case mappings of golang.org/x/text
// for a language. The zero value uses language.Und.
type CasesMapper struct {
	Tag language.Tag
}

// ToUpper returns s in upper case
func (m CasesMapper) ToUpper(s string) string {
	// A Caser keeps state between calls, so each call gets its own
	return cases.Upper(m.Tag).String(s)
}

// ToLower returns s in lower case
func (m CasesMapper) ToLower(s string) string {
	return cases.Lower(m.Tag).String(s)
}

// ByteComparator orders strings by lexicographic byte comparison.
type ByteComparator struct{}

// Less reports whether a sorts before b byte by byte
func (ByteComparator) Less(a, b string) bool {
	return a < b
}

// Processor bundles the primitives used by the text operations.
// It is immutable after construction and safe for concurrent use.
type Processor struct {
	segmenter  Segmenter
	caser      CaseMapper
	comparator Comparator
}

// Option configures a Processor
type Option func(*Processor)

// WithSegmenter replaces the grapheme segmenter. nil is ignored.
func WithSegmenter(s Segmenter) Option {
	return func(p *Processor) {
		if s != nil {
			p.segmenter = s
		}
	}
}

// WithCaseMapper replaces the case mapping primitive. nil is ignored.
func WithCaseMapper(m CaseMapper) Option {
	return func(p *Processor) {
		if m != nil {
			p.caser = m
		}
	}
}

// WithComparator replaces the ordering primitive. nil is ignored.
func WithComparator(c Comparator) Option {
	return func(p *Processor) {
		if c != nil {
			p.comparator = c
		}
	}
}

// WithLanguage uses the case mappings of the given language,
// e.g. language.Turkish maps "i" to "İ".
func WithLanguage(tag language.Tag) Option {
	return WithCaseMapper(CasesMapper{Tag: tag})
}

// New creates a Processor with the default primitives, modified by opts
func New(opts ...Option) *Processor {
	p := &Processor{
		segmenter:  UnisegSegmenter{},
		caser:      CasesMapper{Tag: language.Und},
		comparator: ByteComparator{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultProcessor = New()

// Default returns the Processor used by the package level functions
func Default() *Processor {
	return defaultProcessor
}

// next splits off one grapheme of a non-empty s. A segmenter that makes no
// progress or loses bytes is overruled by a single rune step.
func (p *Processor) next(s string) (string, string) {
	cluster, rest := p.segmenter.Next(s)
	if cluster == "" || len(cluster)+len(rest) != len(s) {
		_, size := utf8.DecodeRuneInString(s)
		return s[:size], s[size:]
	}
	return cluster, rest
}
