package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/corey/strsearch/internal/app"
	"github.com/corey/strsearch/internal/domain/match"
	"github.com/corey/strsearch/internal/domain/report"
	"github.com/corey/strsearch/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorRed    = "\033[31m"
	colorGray   = "\033[90m"
)

// paint wraps s in an ANSI color when color output is on.
func paint(on bool, color, s string) string {
	if !on {
		return s
	}
	return color + s + colorReset
}

// formatOutcome formats one search for terminal display.
//
//	Found 3 matches in 4 comparisons.
//	  Knuth-Morris-Pratt │ pattern 2 units │ text 4 units
//	  Match at index 0!
//	Results saved to /work/matches.txt
func formatOutcome(o *app.Outcome, useColor, showTable bool) string {
	r := o.Result
	var sb strings.Builder

	sb.WriteString(paint(useColor, colorBold, report.Summary(r)))
	sb.WriteString("\n")
	sb.WriteString(paint(useColor, colorGray, fmt.Sprintf("  %s │ pattern %d units │ text %d units",
		r.Algorithm, len(match.Units(o.Pattern)), len(match.Units(o.Text)))))
	sb.WriteString("\n")

	if showTable {
		sb.WriteString(formatTable(r, o.Pattern, useColor))
	}

	for _, idx := range r.Indices {
		sb.WriteString(fmt.Sprintf("  Match at index %s!\n", paint(useColor, colorCyan, fmt.Sprint(idx))))
	}

	switch {
	case o.ResultsPath != "":
		sb.WriteString(fmt.Sprintf("Results saved to %s\n", o.ResultsPath))
	case !r.Found():
		sb.WriteString(":(\n")
	}
	return sb.String()
}

// formatTable renders the algorithm's auxiliary table, if it has one.
func formatTable(r *match.MatchResult, pattern string, useColor bool) string {
	var sb strings.Builder
	switch r.Algorithm {
	case match.KMP:
		sb.WriteString(paint(useColor, colorYellow, "  Failure table:"))
		sb.WriteString("\n")
		units := match.Units(pattern)
		for i, v := range r.FailureTable {
			sb.WriteString(fmt.Sprintf("    %s: %d\n", units[i], v))
		}
	case match.BoyerMoore:
		sb.WriteString(paint(useColor, colorYellow, "  Last occurrence table:"))
		sb.WriteString("\n")
		for _, row := range r.LastOccurrence.Entries() {
			sb.WriteString(fmt.Sprintf("    %s: %d\n", row.Unit, row.Index))
		}
	case match.RabinKarp:
		sb.WriteString(paint(useColor, colorYellow, "  Pattern hash:"))
		sb.WriteString(fmt.Sprintf(" %d\n", r.PatternHash))
	}
	return sb.String()
}

// formatComparison lays out every algorithm side by side.
//
//	⚡ compare │ pattern 4 units │ text 16 units
//	  Naive (brute-force)        3 matches   17 comparisons
//	  ...
//	  ✓ all agree: [0 7 12]
func formatComparison(c *app.Comparison, useColor bool) string {
	var sb strings.Builder
	sb.WriteString(paint(useColor, colorBold, fmt.Sprintf("⚡ compare │ pattern %d units │ text %d units",
		len(match.Units(c.Pattern)), len(match.Units(c.Text)))))
	sb.WriteString("\n")

	for _, r := range c.Results {
		sb.WriteString(fmt.Sprintf("  %-24s %4d matches %8d comparisons\n",
			r.Algorithm, r.Matches, r.Comparisons))
	}
	sb.WriteString(fmt.Sprintf("  %-24s %4d matches\n", "Aho-Corasick (reference)", len(c.Reference)))

	if c.Agree() {
		sb.WriteString(paint(useColor, colorGreen, fmt.Sprintf("  ✓ all agree: %v", c.Reference)))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(paint(useColor, colorRed, "  ✗ match sets differ"))
	sb.WriteString("\n")
	for _, r := range c.Results {
		sb.WriteString(fmt.Sprintf("    %-22s %v\n", r.Algorithm.Slug(), r.Indices))
	}
	sb.WriteString(fmt.Sprintf("    %-22s %v\n", "reference", c.Reference))
	return sb.String()
}

// formatHistory lists history records one per line, newest first.
//
//	#3  kmp          3 matches      4 cmp  ×2  2026-01-02 15:04  "aa" in "aaaa"
func formatHistory(recs []*ports.SearchRecord, useColor bool) string {
	if len(recs) == 0 {
		return "no searches recorded\n"
	}
	var sb strings.Builder
	for _, rec := range recs {
		sb.WriteString(fmt.Sprintf("%s  %-12s %4d matches %6d cmp  ×%-3d %s  %q in %q\n",
			paint(useColor, colorCyan, fmt.Sprintf("#%d", rec.ID)),
			rec.Algorithm.Slug(),
			rec.Result.Matches,
			rec.Result.Comparisons,
			rec.Runs,
			formatTime(rec.LastRun),
			truncate(rec.Pattern, 24),
			truncate(rec.Text, 40)))
	}
	return sb.String()
}

// formatRecord shows one history record in full, in results-file layout.
func formatRecord(rec *ports.SearchRecord, useColor bool) (string, error) {
	var sb strings.Builder
	sb.WriteString(paint(useColor, colorBold, fmt.Sprintf("#%d %s", rec.ID, rec.Algorithm)))
	sb.WriteString("\n")
	sb.WriteString(paint(useColor, colorGray, fmt.Sprintf("  runs %d │ first %s │ last %s",
		rec.Runs, formatTime(rec.FirstRun), formatTime(rec.LastRun))))
	sb.WriteString("\n\n")
	if err := report.WriteResults(&sb, rec.Result, rec.Pattern, rec.Text); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func formatTime(unixNano int64) string {
	return time.Unix(0, unixNano).Format("2006-01-02 15:04")
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}
