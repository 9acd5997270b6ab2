// Package ahocorasick provides an independent reference matcher built on an
// Aho-Corasick automaton. It wraps the petar-dambovaliev/aho-corasick library
// and is used to cross-check the engine's four algorithms.
package ahocorasick

import (
	"unicode/utf8"

	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Matcher implements ports.ReferenceMatcher. The automaton works on UTF-8
// bytes; byte offsets are translated to UTF-16 code-unit offsets so results
// are comparable with the engine's.
type Matcher struct {
	opts aho.Opts
}

// NewMatcher creates a reference matcher. The automaton is compiled per call
// since every call brings a new pattern.
func NewMatcher() *Matcher {
	return &Matcher{
		opts: aho.Opts{
			DFA: true,
		},
	}
}

// FindAll returns every, possibly overlapping, occurrence of pattern in text
// as ascending code-unit offsets.
func (m *Matcher) FindAll(pattern, text string) []int {
	// Decode invalid bytes to U+FFFD one byte at a time, the same way the
	// engine encodes its input.
	pattern = string([]rune(pattern))
	text = string([]rune(text))
	if pattern == "" || len(pattern) > len(text) {
		return []int{}
	}

	builder := aho.NewAhoCorasickBuilder(m.opts)
	automaton := builder.Build([]string{pattern})
	unitAt := unitOffsets(text)

	out := []int{}
	iter := automaton.IterOverlappingByte([]byte(text))
	for next := iter.Next(); next != nil; next = iter.Next() {
		out = append(out, unitAt[next.Start()])
	}
	return out
}

// unitOffsets maps each rune-start byte offset of s to its UTF-16 offset.
// A valid UTF-8 pattern can only match at a rune start.
func unitOffsets(s string) map[int]int {
	offsets := make(map[int]int, utf8.RuneCountInString(s))
	units := 0
	for i, r := range s {
		offsets[i] = units
		if r >= 0x10000 {
			units += 2
		} else {
			units++
		}
	}
	return offsets
}
