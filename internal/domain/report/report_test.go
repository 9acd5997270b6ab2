package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/corey/strsearch/internal/domain/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Results rendering: summary line and plain-text results file
// Expectation: file layout is header, pattern, text, table dump, one line per
// match, byte for byte.
// =============================================================================

func mustSearch(t *testing.T, alg match.Algorithm, pattern, text string) *match.MatchResult {
	t.Helper()
	r, err := match.Search(alg, pattern, text)
	require.NoError(t, err)
	return r
}

func render(t *testing.T, r *match.MatchResult, pattern, text string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, r, pattern, text))
	return buf.String()
}

func TestSummary(t *testing.T) {
	r := mustSearch(t, match.Naive, "aa", "aaaa")
	assert.Equal(t, "Found 3 matches in 6 comparisons.", Summary(r))
}

func TestWriteResults_Naive(t *testing.T) {
	r := mustSearch(t, match.Naive, "aa", "aaaa")
	want := "Found 3 matches in 6 comparisons using Naive (brute-force) searching. \n" +
		"Pattern: aa\n" +
		"Text: aaaa\n" +
		"\n" +
		"Match at index 0!\n" +
		"Match at index 1!\n" +
		"Match at index 2!\n"
	assert.Equal(t, want, render(t, r, "aa", "aaaa"))
}

func TestWriteResults_KMPDumpsFailureTablePerPosition(t *testing.T) {
	r := mustSearch(t, match.KMP, "aa", "aaaa")
	want := "Found 3 matches in 4 comparisons using Knuth-Morris-Pratt searching. \n" +
		"Pattern: aa\n" +
		"Text: aaaa\n" +
		"\n" +
		"Knuth-Morris-Pratt Failure Table:\n" +
		"a: 0\n" +
		"a: 1\n" +
		"\n" +
		"Match at index 0!\n" +
		"Match at index 1!\n" +
		"Match at index 2!\n"
	assert.Equal(t, want, render(t, r, "aa", "aaaa"))
}

func TestWriteResults_BoyerMooreDumpsLastOccurrence(t *testing.T) {
	r := mustSearch(t, match.BoyerMoore, "abca", "xabcax")
	want := "Found 1 matches in 4 comparisons using Boyer-Moore searching. \n" +
		"Pattern: abca\n" +
		"Text: xabcax\n" +
		"\n" +
		"Boyer-Moore Last Occurrence Table:\n" +
		"a: 3\n" +
		"b: 1\n" +
		"c: 2\n" +
		"\n" +
		"Match at index 1!\n"
	assert.Equal(t, want, render(t, r, "abca", "xabcax"))
}

func TestWriteResults_RabinKarpPrintsPatternHash(t *testing.T) {
	r := mustSearch(t, match.RabinKarp, "abc", "zabc")
	want := "Found 1 matches in 3 comparisons using Rabin-Karp searching. \n" +
		"Pattern: abc\n" +
		"Text: zabc\n" +
		"\n" +
		"Rabin-Karp Pattern Hash: 1249766\n" +
		"\n" +
		"Match at index 1!\n"
	assert.Equal(t, want, render(t, r, "abc", "zabc"))
}

func TestSaveResults_WritesAbsolutePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "matches.txt")
	r := mustSearch(t, match.Naive, "b", "abab")

	abs, err := SaveResults(path, r, "b", "abab")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))

	data, err := os.ReadFile(abs)
	require.NoError(t, err)
	assert.Equal(t, render(t, r, "b", "abab"), string(data))
}

func TestSaveResults_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matches.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content that is much longer than the new file\n"), 0644))

	r := mustSearch(t, match.Naive, "a", "a")
	_, err := SaveResults(path, r, "a", "a")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale")
}

func TestSaveResults_UnwritableLocation(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	r := mustSearch(t, match.Naive, "a", "a")
	_, err := SaveResults(filepath.Join(blocker, "matches.txt"), r, "a", "a")
	assert.Error(t, err)
}
