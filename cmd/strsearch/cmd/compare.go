package cmd

import (
	"errors"
	"fmt"

	"github.com/corey/strsearch/internal/app"
	"github.com/spf13/cobra"
)

func newCompareCmd(g *globalOpts) *cobra.Command {
	var file string
	c := &cobra.Command{
		Use:   "compare [flags] <pattern> [text | -]",
		Short: "Run all four algorithms and check they agree",
		Long: "Runs every algorithm plus an independent Aho-Corasick matcher on the same input\n" +
			"and prints their match and comparison counts side by side. Nothing is saved.\n" +
			"Exit status: 0 if the pattern was found, 1 if not, 2 on error or disagreement.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, g, file, args)
		},
	}
	c.Flags().StringVarP(&file, "file", "f", "", "Read the text from a file")
	return c
}

func runCompare(cmd *cobra.Command, g *globalOpts, file string, args []string) error {
	stderr := cmd.ErrOrStderr()

	text, err := readText(cmd, file, args[1:])
	if err != nil {
		fmt.Fprintf(stderr, "compare: %v\n", err)
		return searchExit{2}
	}

	// compare records nothing, so it must not take the history lock
	a, err := g.openApp(func(c *app.Config) { c.History = false })
	if err != nil {
		fmt.Fprintf(stderr, "compare: %v\n", err)
		return searchExit{2}
	}
	defer a.Close()

	c, err := a.Compare(args[0], text)
	if c != nil {
		fmt.Fprint(cmd.OutOrStdout(), formatComparison(c, g.useColor()))
	}
	if err != nil {
		if !errors.Is(err, app.ErrMatchSetMismatch) {
			fmt.Fprintf(stderr, "compare: %v\n", err)
		}
		return searchExit{2}
	}

	if len(c.Reference) == 0 {
		return searchExit{1}
	}
	return nil
}
