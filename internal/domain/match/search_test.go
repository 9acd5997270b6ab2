package match

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Search: four algorithms, one match set
// Expectation: every algorithm reports the same ascending indices as the naive
// scan for every valid input; invalid input is rejected before any matcher runs.
// =============================================================================

func searchAll(t *testing.T, pattern, text string) map[Algorithm]*MatchResult {
	t.Helper()
	out := make(map[Algorithm]*MatchResult, 4)
	for _, alg := range Algorithms() {
		r, err := Search(alg, pattern, text)
		require.NoError(t, err, alg.String())
		out[alg] = r
	}
	return out
}

func TestSearch_OverlappingMatches(t *testing.T) {
	for alg, r := range searchAll(t, "aa", "aaaa") {
		assert.Equal(t, []int{0, 1, 2}, r.Indices, alg.String())
		assert.Equal(t, 3, r.Matches, alg.String())
		assert.Equal(t, alg, r.Algorithm)
	}
}

func TestSearch_NoMatch(t *testing.T) {
	for alg, r := range searchAll(t, "xyz", "abcabc") {
		assert.Equal(t, 0, r.Matches, alg.String())
		assert.Equal(t, []int{}, r.Indices, alg.String())
		assert.False(t, r.Found())
	}
}

func TestSearch_FullTextMatch(t *testing.T) {
	for alg, r := range searchAll(t, "abc", "abc") {
		assert.Equal(t, []int{0}, r.Indices, alg.String())
	}
}

func TestSearch_SurrogatePairsCountAsTwoUnits(t *testing.T) {
	// "a😀b😀" is a, hi, lo, b, hi, lo in UTF-16.
	for alg, r := range searchAll(t, "😀", "a😀b😀") {
		assert.Equal(t, []int{1, 4}, r.Indices, alg.String())
	}
}

func TestSearch_ComparisonCounts(t *testing.T) {
	cases := []struct {
		pattern, text string
		want          map[Algorithm]int
	}{
		{"aa", "aaaa", map[Algorithm]int{Naive: 6, KMP: 4, BoyerMoore: 6, RabinKarp: 6}},
		{"xyz", "abcabc", map[Algorithm]int{Naive: 4, KMP: 4, BoyerMoore: 0, RabinKarp: 0}},
		{"abc", "abc", map[Algorithm]int{Naive: 3, KMP: 3, BoyerMoore: 3, RabinKarp: 3}},
	}
	for _, tc := range cases {
		got := searchAll(t, tc.pattern, tc.text)
		for alg, want := range tc.want {
			assert.Equal(t, want, got[alg].Comparisons, "%s %q in %q", alg, tc.pattern, tc.text)
		}
	}
}

func TestSearch_AuxiliaryTables(t *testing.T) {
	got := searchAll(t, "ababaca", "bacbababacabcbab")

	assert.Equal(t, FailureTable{0, 0, 1, 2, 3, 0, 1}, got[KMP].FailureTable)
	assert.Nil(t, got[KMP].LastOccurrence)

	assert.Equal(t, LastOccurrenceTable{'a': 6, 'b': 3, 'c': 5}, got[BoyerMoore].LastOccurrence)
	assert.Nil(t, got[BoyerMoore].FailureTable)

	assert.Equal(t, HashOf(Units("ababaca")), got[RabinKarp].PatternHash)

	for alg, r := range got {
		assert.Equal(t, []int{4}, r.Indices, alg.String())
	}
}

func TestSearch_Idempotent(t *testing.T) {
	for _, alg := range Algorithms() {
		a, err := Search(alg, "abra", "abracadabra abracadabra")
		require.NoError(t, err)
		b, err := Search(alg, "abra", "abracadabra abracadabra")
		require.NoError(t, err)
		assert.Equal(t, a, b, alg.String())
	}
}

func TestSearch_InvalidInput(t *testing.T) {
	for _, alg := range Algorithms() {
		_, err := Search(alg, "", "text")
		assert.ErrorIs(t, err, ErrEmpty, alg.String())

		_, err = Search(alg, "p", "")
		assert.ErrorIs(t, err, ErrEmpty, alg.String())

		_, err = Search(alg, "longer", "short")
		assert.ErrorIs(t, err, ErrPatternTooLong, alg.String())
		assert.NotErrorIs(t, err, ErrEmpty)

		var invalid *InvalidInputError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, PatternTooLong, invalid.Kind)
		assert.Equal(t, 6, invalid.PatternLen)
		assert.Equal(t, 5, invalid.TextLen)
	}
}

func TestSearch_PatternLengthCountsUnitsNotBytes(t *testing.T) {
	// "é" is two UTF-8 bytes but one code unit.
	r, err := Search(Naive, "é", "é")
	require.NoError(t, err)
	assert.Equal(t, []int{0}, r.Indices)
}

func TestSearch_UnknownAlgorithm(t *testing.T) {
	_, err := Search(Algorithm(42), "a", "a")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestRabinKarp_CollisionIsNotAMatch(t *testing.T) {
	// 1·113 + 113 == 2·113 + 0, so window 0 collides with the pattern.
	pattern := []CharUnit{2, 0}
	text := []CharUnit{1, 113, 2, 0}
	require.Equal(t, HashOf(pattern), HashOf(text[:2]))

	r, err := SearchUnits(RabinKarp, pattern, text)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, r.Indices)
	// one failed verification at 0, two successful comparisons at 2
	assert.Equal(t, 3, r.Comparisons)
}

func TestRabinKarp_CollisionInsideStrings(t *testing.T) {
	r, err := Search(RabinKarp, "\u0002\u0000", "\u0001q\u0001q")
	require.NoError(t, err)
	assert.Empty(t, r.Indices)
	assert.Equal(t, 2, r.Comparisons)
}

func TestBoyerMoore_ShiftWhenBadCharacterIsRightOfMismatch(t *testing.T) {
	// Mismatch at j=0 on 'b' whose last occurrence (2) is right of j:
	// the window must still advance by one.
	r, err := Search(BoyerMoore, "abb", "bbbabb")
	require.NoError(t, err)
	assert.Equal(t, []int{3}, r.Indices)
}

func TestKMP_StopsWhenRemainingTextTooShort(t *testing.T) {
	r, err := Search(KMP, "zz", "abcdefg")
	require.NoError(t, err)
	// k advances 0..5; once 7-k < 2 the scan returns
	assert.Equal(t, 6, r.Comparisons)
	assert.Empty(t, r.Indices)
}

// randomUnits draws n units from alphabet.
func randomUnits(rng *rand.Rand, alphabet []CharUnit, n int) []CharUnit {
	out := make([]CharUnit, n)
	for i := range out {
		out[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return out
}

func TestSearch_AllAlgorithmsAgreeWithNaive(t *testing.T) {
	rng := rand.New(rand.NewSource(113))
	alphabets := [][]CharUnit{
		{'a'},
		{'a', 'b'},
		{'a', 'b', 'c', 'd'},
		// units chosen so base-113 windows collide often
		{0, 1, 2, 113, 226},
		{0xFFFF, 0x8000, 0x7FFF, 1},
	}

	for _, alphabet := range alphabets {
		for iter := 0; iter < 300; iter++ {
			text := randomUnits(rng, alphabet, 1+rng.Intn(60))
			pattern := randomUnits(rng, alphabet, 1+rng.Intn(min(len(text), 8)))
			if rng.Intn(4) == 0 {
				// force at least one hit
				at := rng.Intn(len(text) - len(pattern) + 1)
				copy(text[at:], pattern)
			}

			oracle, err := SearchUnits(Naive, pattern, text)
			require.NoError(t, err)
			for _, alg := range []Algorithm{KMP, BoyerMoore, RabinKarp} {
				got, err := SearchUnits(alg, pattern, text)
				require.NoError(t, err)
				if !assert.Equal(t, oracle.Indices, got.Indices, "%s pattern=%v text=%v", alg, pattern, text) {
					return
				}
				assert.Equal(t, oracle.Matches, got.Matches)
			}
		}
	}
}

func TestSearch_LongPatternsWrapHash(t *testing.T) {
	// Patterns longer than five units overflow the leading power.
	text := "mississippi-mississippi-mississippi"
	for alg, r := range searchAll(t, "mississippi", text) {
		assert.Equal(t, []int{0, 12, 24}, r.Indices, alg.String())
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]Algorithm{
		"naive": Naive, "BF": Naive, "brute-force": Naive,
		"kmp": KMP, "Knuth-Morris-Pratt": KMP,
		"bm": BoyerMoore, "boyer-moore": BoyerMoore,
		"rk": RabinKarp, " rabin-karp ": RabinKarp,
	}
	for in, want := range cases {
		got, err := ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseAlgorithm("z-algorithm")
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)

	for _, alg := range Algorithms() {
		back, err := ParseAlgorithm(alg.Slug())
		require.NoError(t, err)
		assert.Equal(t, alg, back)
	}
}

func TestUnits(t *testing.T) {
	assert.Equal(t, []CharUnit{'h', 'i'}, Units("hi"))
	assert.Equal(t, []CharUnit{0xD83D, 0xDE00}, Units("😀"))
	assert.Equal(t, []CharUnit{0xFFFD}, Units("\xff"))
	assert.Empty(t, Units(""))
	assert.Equal(t, "�", CharUnit(0xD800).String())
	assert.Equal(t, "é", CharUnit('é').String())
}
