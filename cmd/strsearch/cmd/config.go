package cmd

import (
	"fmt"
	"os"

	"github.com/corey/strsearch/internal/app"
	"github.com/spf13/cobra"
)

func newConfigCmd(g *globalOpts) *cobra.Command {
	c := &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long:  "Shows the .strsearch/ paths and the effective settings after flag overrides.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.loadConfig()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatConfig(cfg, g.useColor()))
			return nil
		},
	}
	c.AddCommand(newConfigInitCmd(g))
	return c
}

func newConfigInitCmd(g *globalOpts) *cobra.Command {
	var force bool
	c := &cobra.Command{
		Use:   "init",
		Short: "Write a config.yaml with the default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := g.workDir()
			if err != nil {
				return err
			}
			path := app.NewPaths(dir).Config
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := app.WriteConfig(path, app.DefaultConfig(dir)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
	}
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return c
}

func formatConfig(cfg app.Config, useColor bool) string {
	p := app.NewPaths(cfg.WorkDir)
	configState := paint(useColor, colorYellow, "(defaults, no file)")
	if _, err := os.Stat(p.Config); err == nil {
		configState = paint(useColor, colorGreen, "✓")
	}
	return fmt.Sprintf("%s\n"+
		"  Dir:          %s\n"+
		"  Config:       %s %s\n"+
		"  History:      %s (enabled: %v, list limit: %d)\n"+
		"  Log:          %s (level: %s)\n"+
		"  Results file: %s (save: %v)\n",
		paint(useColor, colorBold, "⚡ strsearch config"),
		cfg.WorkDir,
		p.Config, configState,
		p.HistoryDB, cfg.History, cfg.HistoryLimit,
		p.Log, cfg.LogLevel,
		cfg.ResultsPath(), cfg.SaveResults)
}
