// Package match implements exact single-pattern string matching over UTF-16
// code units. Four algorithms are provided (Naive, Knuth-Morris-Pratt,
// Boyer-Moore, Rabin-Karp). All four report the same match set for the same
// input; they differ in the number of character comparisons performed and in
// the auxiliary table each one exposes for display.
//
// Every search is a pure function of (pattern, text). Tables and counters are
// local to one call; nothing is cached across calls.
package match

import (
	"unicode/utf16"
)

// CharUnit is the comparable unit all algorithms operate on: one UTF-16 code
// unit. Runes outside the BMP occupy two units (a surrogate pair).
type CharUnit uint16

// Units encodes s as UTF-16 code units. Invalid UTF-8 decodes to U+FFFD.
func Units(s string) []CharUnit {
	encoded := utf16.Encode([]rune(s))
	units := make([]CharUnit, len(encoded))
	for i, u := range encoded {
		units[i] = CharUnit(u)
	}
	return units
}

// String renders a single unit. Lone surrogate halves render as U+FFFD.
func (c CharUnit) String() string {
	if utf16.IsSurrogate(rune(c)) {
		return string(rune(0xFFFD))
	}
	return string(rune(c))
}
