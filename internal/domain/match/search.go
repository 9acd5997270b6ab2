package match

import "fmt"

// MatchResult is the output of one search call. Indices are ascending,
// 0-based code-unit offsets of each match's left edge. Exactly one of the
// auxiliary fields is meaningful, selected by Algorithm:
//
//	KMP        -> FailureTable
//	BoyerMoore -> LastOccurrence
//	RabinKarp  -> PatternHash
type MatchResult struct {
	Algorithm   Algorithm
	Matches     int
	Comparisons int
	Indices     []int

	FailureTable   FailureTable
	LastOccurrence LastOccurrenceTable
	PatternHash    int32
}

func (r *MatchResult) record(i int) {
	r.Indices = append(r.Indices, i)
	r.Matches++
}

// Found reports whether at least one match was recorded.
func (r *MatchResult) Found() bool {
	return r.Matches > 0
}

// matcherFunc is the shared signature of the four search procedures.
type matcherFunc func(pattern, text []CharUnit) *MatchResult

var matchers = map[Algorithm]matcherFunc{
	Naive:      NaiveMatch,
	KMP:        KMPMatch,
	BoyerMoore: BoyerMooreMatch,
	RabinKarp:  RabinKarpMatch,
}

// Search encodes pattern and text as code units, validates them and runs alg.
func Search(alg Algorithm, pattern, text string) (*MatchResult, error) {
	return SearchUnits(alg, Units(pattern), Units(text))
}

// SearchUnits is Search for callers that already hold code units.
func SearchUnits(alg Algorithm, pattern, text []CharUnit) (*MatchResult, error) {
	fn, ok := matchers[alg]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if err := Validate(pattern, text); err != nil {
		return nil, err
	}
	r := fn(pattern, text)
	if r.Indices == nil {
		r.Indices = []int{}
	}
	return r, nil
}
