package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/corey/strsearch/internal/app"
	"github.com/spf13/cobra"
)

// globalOpts are the persistent flags shared by every subcommand.
type globalOpts struct {
	dir       string
	logLevel  string
	noHistory bool
	color     string
	noColor   bool
}

func newRootCmd() *cobra.Command {
	g := &globalOpts{}
	root := &cobra.Command{
		Use:   "strsearch",
		Short: "strsearch: exact string matching with four algorithms",
		Long: "Finds every occurrence of a pattern in a text using Naive, Knuth-Morris-Pratt,\n" +
			"Boyer-Moore or Rabin-Karp search, and reports the comparisons each one made.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	f := root.PersistentFlags()
	f.StringVar(&g.dir, "dir", "", "Working directory holding .strsearch/ (default: cwd)")
	f.StringVar(&g.logLevel, "log-level", "", "Log level: debug, info, warn, error, none")
	f.BoolVar(&g.noHistory, "no-history", false, "Do not record searches in history")
	f.StringVar(&g.color, "color", "auto", "Color output: auto, always, never")
	f.BoolVar(&g.noColor, "no-color", false, "Suppress color output")

	root.AddCommand(newSearchCmd(g))
	root.AddCommand(newCompareCmd(g))
	root.AddCommand(newHistoryCmd(g))
	root.AddCommand(newConfigCmd(g))
	return root
}

// Execute runs the root command.
func Execute() error {
	err := newRootCmd().Execute()
	var se searchExit
	if err != nil && !errors.As(err, &se) {
		fmt.Fprintf(os.Stderr, "strsearch: %v\n", err)
	}
	return err
}

// workDir returns --dir, or the cwd.
func (g *globalOpts) workDir() (string, error) {
	if g.dir != "" {
		return g.dir, nil
	}
	return os.Getwd()
}

// loadConfig reads the config file and applies flag overrides.
func (g *globalOpts) loadConfig() (app.Config, error) {
	dir, err := g.workDir()
	if err != nil {
		return app.Config{}, err
	}
	cfg, err := app.LoadConfig(dir)
	if err != nil {
		return cfg, err
	}
	if g.logLevel != "" {
		cfg.LogLevel = g.logLevel
	}
	if g.noHistory {
		cfg.History = false
	}
	return cfg, nil
}

// openApp loads the config, applies per-command overrides and wires an App.
// The caller closes it.
func (g *globalOpts) openApp(overrides ...func(*app.Config)) (*app.App, error) {
	cfg, err := g.loadConfig()
	if err != nil {
		return nil, err
	}
	for _, o := range overrides {
		o(&cfg)
	}
	a, err := app.New(cfg)
	if err != nil {
		if isDBLockError(err) {
			return nil, fmt.Errorf("%w\n  → another strsearch process holds %s\n  → retry, or pass --no-history",
				err, app.NewPaths(cfg.WorkDir).HistoryDB)
		}
		return nil, err
	}
	return a, nil
}

func (g *globalOpts) useColor() bool {
	return resolveColor(g.color, g.noColor)
}
