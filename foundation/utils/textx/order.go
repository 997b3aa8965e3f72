// File: order.go
// Title: Ordering and Reversal
// Description: Byte order comparison of texts and reversal by grapheme.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package textx

// Order is the result of comparing two texts
type Order int

const (
	Less    Order = -1
	Equal   Order = 0
	Greater Order = 1
)

// String returns "lt", "eq" or "gt"
func (o Order) String() string {
	switch o {
	case Less:
		return "lt"
	case Equal:
		return "eq"
	case Greater:
		return "gt"
	default:
		return "unknown"
	}
}

// Compare orders a and b. Texts are Equal only when byte identical;
// otherwise the comparator decides on the encoded bytes. This is not
// collation: "\u00e9" and "e\u0301" are different and sort by their bytes.
func (p *Processor) Compare(a, b string) Order {
	switch {
	case a == b:
		return Equal
	case p.comparator.Less(a, b):
		return Less
	default:
		return Greater
	}
}

// Reverse reverses the order of the graphemes of s. Clusters themselves
// stay intact, so combining marks and emoji sequences survive.
func (p *Processor) Reverse(s string) string {
	return NewBuilder().AppendAll(p.ToGraphemes(s)).Reverse().String()
}

// Compare orders a and b by their bytes
func Compare(a, b string) Order {
	return defaultProcessor.Compare(a, b)
}

// Reverse reverses the order of the graphemes of s
func Reverse(s string) string {
	return defaultProcessor.Reverse(s)
}
