// Package report renders MatchResults as text: a one-line summary for
// display and the plain-text results file.
//
// Results file layout:
//
//	Found 3 matches in 4 comparisons using Knuth-Morris-Pratt searching.
//	Pattern: aa
//	Text: aaaa
//
//	Knuth-Morris-Pratt Failure Table:
//	a: 0
//	a: 1
//
//	Match at index 0!
//	Match at index 1!
//	Match at index 2!
//
// The header line keeps its trailing space. Naive results have no table
// section; Rabin-Karp prints a single "Rabin-Karp Pattern Hash: h" line.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/corey/strsearch/internal/domain/match"
)

// DefaultFile is the results file name used when none is configured.
const DefaultFile = "matches.txt"

// Summary is the short line shown after every search.
func Summary(r *match.MatchResult) string {
	return fmt.Sprintf("Found %d matches in %d comparisons.", r.Matches, r.Comparisons)
}

// Header is the first line of the results file, without the newline.
func Header(r *match.MatchResult) string {
	return fmt.Sprintf("Found %d matches in %d comparisons using %s searching. ",
		r.Matches, r.Comparisons, r.Algorithm)
}

// WriteResults writes the full results file body to w.
func WriteResults(w io.Writer, r *match.MatchResult, pattern, text string) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%s\n", Header(r))
	fmt.Fprintf(bw, "Pattern: %s\n", pattern)
	fmt.Fprintf(bw, "Text: %s\n\n", text)

	switch r.Algorithm {
	case match.KMP:
		fmt.Fprintf(bw, "%s Failure Table:\n", r.Algorithm)
		units := match.Units(pattern)
		for i, v := range r.FailureTable {
			fmt.Fprintf(bw, "%s: %d\n", units[i], v)
		}
		bw.WriteString("\n")
	case match.BoyerMoore:
		fmt.Fprintf(bw, "%s Last Occurrence Table:\n", r.Algorithm)
		for _, row := range r.LastOccurrence.Entries() {
			fmt.Fprintf(bw, "%s: %d\n", row.Unit, row.Index)
		}
		bw.WriteString("\n")
	case match.RabinKarp:
		fmt.Fprintf(bw, "%s Pattern Hash: %d\n\n", r.Algorithm, r.PatternHash)
	}

	for _, idx := range r.Indices {
		fmt.Fprintf(bw, "Match at index %d!\n", idx)
	}
	return bw.Flush()
}

// SaveResults writes the results file at path, replacing any previous one,
// and returns its absolute path.
func SaveResults(path string, r *match.MatchResult, pattern, text string) (string, error) {
	if path == "" {
		path = DefaultFile
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve results path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	f, err := os.Create(abs)
	if err != nil {
		return "", fmt.Errorf("create results file: %w", err)
	}
	if err := WriteResults(f, r, pattern, text); err != nil {
		f.Close()
		return "", fmt.Errorf("write results file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close results file: %w", err)
	}
	return abs, nil
}
