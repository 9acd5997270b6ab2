package match

import "sort"

// FailureTable is the KMP prefix function of a pattern: entry j is the length
// of the longest proper prefix of pattern[0..j] that is also a suffix of it.
type FailureTable []int

// BuildFailureTable computes the failure table in one left-to-right pass.
// Each entry is derived only from entries at smaller indices.
func BuildFailureTable(pattern []CharUnit) FailureTable {
	table := make(FailureTable, len(pattern))
	i, j := 0, 1
	for j < len(pattern) {
		switch {
		case pattern[i] == pattern[j]:
			table[j] = i + 1
			i++
			j++
		case i == 0:
			table[j] = 0
			j++
		default:
			// retry the same j against a shorter border
			i = table[i-1]
		}
	}
	return table
}

// LastOccurrenceTable maps each unit of a pattern to the rightmost index at
// which it occurs. Units absent from the pattern are not stored.
type LastOccurrenceTable map[CharUnit]int

// BuildLastOccurrenceTable records every position in order so later
// occurrences overwrite earlier ones.
func BuildLastOccurrenceTable(pattern []CharUnit) LastOccurrenceTable {
	last := make(LastOccurrenceTable, len(pattern))
	for i, c := range pattern {
		last[c] = i
	}
	return last
}

// Lookup returns the rightmost index of c in the pattern, or -1.
func (t LastOccurrenceTable) Lookup(c CharUnit) int {
	if idx, ok := t[c]; ok {
		return idx
	}
	return -1
}

// LastOccurrence is one row of a LastOccurrenceTable.
type LastOccurrence struct {
	Unit  CharUnit
	Index int
}

// Entries returns the table rows ordered by code unit.
func (t LastOccurrenceTable) Entries() []LastOccurrence {
	rows := make([]LastOccurrence, 0, len(t))
	for c, idx := range t {
		rows = append(rows, LastOccurrence{Unit: c, Index: idx})
	}
	sort.Slice(rows, func(a, b int) bool { return rows[a].Unit < rows[b].Unit })
	return rows
}
