package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newHistoryCmd(g *globalOpts) *cobra.Command {
	var limit int
	c := &cobra.Command{
		Use:   "history",
		Short: "List recent searches",
		Long:  "Lists recorded searches, most recently run first. Repeated searches are merged.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			recs, err := a.History(limit)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatHistory(recs, g.useColor()))
			return nil
		},
	}
	c.Flags().IntVarP(&limit, "limit", "n", 0, "Number of entries (default: history_limit from config)")

	c.AddCommand(newHistoryShowCmd(g))
	c.AddCommand(newHistoryClearCmd(g))
	return c
}

func newHistoryShowCmd(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded search in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(strings.TrimPrefix(args[0], "#"), 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			a, err := g.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			rec, err := a.Record(id)
			if err != nil {
				return err
			}
			if rec == nil {
				return fmt.Errorf("no search #%d in history", id)
			}
			out, err := formatRecord(rec, g.useColor())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func newHistoryClearCmd(g *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := g.openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.ClearHistory(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return nil
		},
	}
}
