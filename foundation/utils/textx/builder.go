// File: builder.go
// Title: Growable Text Builder
// Description: Collects text pieces with amortized constant time appends and
//              assembles them in one allocation. Pieces can be reversed in
//              place before assembly, which is how grapheme reversal works.
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

	"github.com/msto63/textkit/foundation/utils/slicex"
)

// Builder accumulates text pieces. The zero value is ready to use.
// A Builder must not be copied after first use.
type Builder struct {
	pieces []string
	size   int
}

// NewBuilder returns an empty Builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds one piece
func (b *Builder) Append(s string) *Builder {
	b.pieces = append(b.pieces, s)
	b.size += len(s)
	return b
}

// AppendAll adds all pieces in order
func (b *Builder) AppendAll(parts []string) *Builder {
	for _, s := range parts {
		b.Append(s)
	}
	return b
}

// Reverse reverses the order of the collected pieces
func (b *Builder) Reverse() *Builder {
	b.pieces = slicex.Reverse(b.pieces)
	return b
}

// Len returns the byte length of the assembled text
func (b *Builder) Len() int {
	return b.size
}

// Pieces returns a copy of the collected pieces
func (b *Builder) Pieces() []string {
	return slicex.Clone(b.pieces)
}

// String assembles the pieces
func (b *Builder) String() string {
	switch len(b.pieces) {
	case 0:
		return ""
	case 1:
		return b.pieces[0]
	}

	var sb strings.Builder
	sb.Grow(b.size)
	for _, s := range b.pieces {
		sb.WriteString(s)
	}
	return sb.String()
}
