package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/corey/strsearch/internal/app"
	"github.com/corey/strsearch/internal/domain/match"
	"github.com/spf13/cobra"
)

type searchOpts struct {
	algo   string
	file   string
	watch  bool
	noSave bool
	output string
	table  bool
	quiet  bool
}

func newSearchCmd(g *globalOpts) *cobra.Command {
	o := &searchOpts{}
	c := &cobra.Command{
		Use:   "search [flags] <pattern> [text | -]",
		Short: "Find every occurrence of a pattern",
		Long: "Searches text given as an argument, read from --file, or piped on stdin (\"-\").\n" +
			"Exit status: 0 if a match was found, 1 if none, 2 on invalid input or error.\n" +
			"Algorithms: naive (bf), kmp, boyer-moore (bm), rabin-karp (rk).",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, g, o, args)
		},
	}

	f := c.Flags()
	f.StringVarP(&o.algo, "algo", "a", "kmp", "Algorithm: naive, kmp, boyer-moore, rabin-karp")
	f.StringVarP(&o.file, "file", "f", "", "Read the text from a file")
	f.BoolVarP(&o.watch, "watch", "w", false, "Re-run the search whenever --file changes")
	f.BoolVar(&o.noSave, "no-save", false, "Do not write the results file")
	f.StringVarP(&o.output, "output", "o", "", "Results file path (default: matches.txt)")
	f.BoolVarP(&o.table, "table", "t", false, "Show the algorithm's auxiliary table")
	f.BoolVarP(&o.quiet, "quiet", "q", false, "Quiet mode (exit code only)")
	return c
}

func runSearch(cmd *cobra.Command, g *globalOpts, o *searchOpts, args []string) error {
	stderr := cmd.ErrOrStderr()

	alg, err := match.ParseAlgorithm(o.algo)
	if err != nil {
		fmt.Fprintf(stderr, "search: %v\n", err)
		return searchExit{2}
	}
	if o.watch && o.file == "" {
		fmt.Fprintln(stderr, "search: --watch requires --file")
		return searchExit{2}
	}

	pattern := args[0]

	a, err := g.openApp(func(c *app.Config) {
		if o.noSave {
			c.SaveResults = false
		}
		if o.output != "" {
			c.ResultsFile = o.output
		}
	})
	if err != nil {
		fmt.Fprintf(stderr, "search: %v\n", err)
		return searchExit{2}
	}
	defer a.Close()

	useColor := g.useColor()

	if o.watch {
		if len(args) > 1 {
			fmt.Fprintln(stderr, "search: --watch takes its text from --file only")
			return searchExit{2}
		}
		return watchSearch(cmd, a, alg, pattern, o, useColor)
	}

	text, err := readText(cmd, o.file, args[1:])
	if err != nil {
		fmt.Fprintf(stderr, "search: %v\n", err)
		return searchExit{2}
	}

	out, err := a.Search(alg, pattern, text)
	if err != nil {
		fmt.Fprintf(stderr, "search: %v\n", err)
		return searchExit{2}
	}
	printOutcome(cmd, out, o, useColor)

	if !out.Result.Found() {
		return searchExit{1}
	}
	return nil
}

func watchSearch(cmd *cobra.Command, a *app.App, alg match.Algorithm, pattern string,
	o *searchOpts, useColor bool) error {

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stderr := cmd.ErrOrStderr()
	fmt.Fprintf(stderr, "watching %s (Ctrl-C to stop)\n", o.file)

	err := a.Watch(ctx, alg, pattern, o.file, func(out *app.Outcome, err error) {
		if err != nil {
			fmt.Fprintf(stderr, "search: %v\n", err)
			return
		}
		printOutcome(cmd, out, o, useColor)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "search: %v\n", err)
		return searchExit{2}
	}
	return nil
}

func printOutcome(cmd *cobra.Command, out *app.Outcome, o *searchOpts, useColor bool) {
	stderr := cmd.ErrOrStderr()
	if out.SaveErr != nil {
		fmt.Fprintf(stderr, "warning: results file not written: %v\n", out.SaveErr)
	}
	if out.StoreErr != nil {
		fmt.Fprintf(stderr, "warning: search not recorded in history: %v\n", out.StoreErr)
	}
	if o.quiet {
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), formatOutcome(out, useColor, o.table))
}

// readText picks the text source: --file, a positional argument, "-" for
// stdin, or stdin when it is piped and nothing else was given.
func readText(cmd *cobra.Command, file string, rest []string) (string, error) {
	if file != "" {
		if len(rest) > 0 {
			return "", fmt.Errorf("give the text either as an argument or with --file, not both")
		}
		data, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if len(rest) == 1 && rest[0] != "-" {
		return rest[0], nil
	}
	if len(rest) == 0 && !isStdinPipe() {
		return "", fmt.Errorf("no text given (pass it as an argument, with --file, or on stdin)")
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	// A piped line ends with a newline that is not part of the text.
	s := string(data)
	if t, ok := strings.CutSuffix(s, "\n"); ok {
		s = strings.TrimSuffix(t, "\r")
	}
	return s, nil
}
