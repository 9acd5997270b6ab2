package match

// The four matchers below assume Validate has passed:
// 0 < len(pattern) <= len(text). None of them re-checks it.

// NaiveMatch tries every alignment left to right. Every comparison is counted,
// including the one that fails.
func NaiveMatch(pattern, text []CharUnit) *MatchResult {
	r := &MatchResult{Algorithm: Naive}
	m, n := len(pattern), len(text)
	for i := 0; i <= n-m; i++ {
		for j := 0; j < m; j++ {
			r.Comparisons++
			if pattern[j] != text[i+j] {
				break
			}
			if j == m-1 {
				r.record(i)
			}
		}
	}
	return r
}

// KMPMatch scans the text once, falling back through the failure table on a
// mismatch instead of moving the text cursor backwards. Overlapping matches
// are reported.
func KMPMatch(pattern, text []CharUnit) *MatchResult {
	failure := BuildFailureTable(pattern)
	r := &MatchResult{Algorithm: KMP, FailureTable: failure}
	m, n := len(pattern), len(text)

	j, k := 0, 0
	for k < n {
		r.Comparisons++
		switch {
		case pattern[j] == text[k]:
			j++
			k++
			if j == m {
				r.record(k - j)
				j = failure[j-1]
			}
		case j == 0:
			k++
			if n-k < m {
				return r
			}
		default:
			j = failure[j-1]
		}
	}
	return r
}

// BoyerMooreMatch compares each alignment right to left and uses the
// last-occurrence table to skip ahead on a mismatch. Only comparisons that
// match are counted.
func BoyerMooreMatch(pattern, text []CharUnit) *MatchResult {
	last := BuildLastOccurrenceTable(pattern)
	r := &MatchResult{Algorithm: BoyerMoore, LastOccurrence: last}
	m, n := len(pattern), len(text)

	i := 0
	for i <= n-m {
		j := m - 1
		for j >= 0 && text[i+j] == pattern[j] {
			r.Comparisons++
			j--
		}
		if j == -1 {
			r.record(i)
			i++
			continue
		}
		shift := last.Lookup(text[i+j])
		if shift < j {
			i += j - shift
		} else {
			// bad character sits right of j in the pattern
			i++
		}
	}
	return r
}

// RabinKarpMatch compares window hashes and verifies every hash hit unit by
// unit, so a collision never yields a match.
func RabinKarpMatch(pattern, text []CharUnit) *MatchResult {
	m, n := len(pattern), len(text)
	patternHash := HashOf(pattern)
	r := &MatchResult{Algorithm: RabinKarp, PatternHash: patternHash}

	window := NewRollingHash(text[:m])
	if window.Value() == patternHash {
		r.verify(pattern, text, 0)
	}
	for i := 1; i <= n-m; i++ {
		window.Roll(text[i-1], text[i+m-1])
		if window.Value() == patternHash {
			r.verify(pattern, text, i)
		}
	}
	return r
}

// verify compares pattern against text[at:] counting each comparison and
// records at when every unit matches.
func (r *MatchResult) verify(pattern, text []CharUnit, at int) {
	for j := range pattern {
		r.Comparisons++
		if text[at+j] != pattern[j] {
			return
		}
	}
	r.record(at)
}
