package app

import (
	"os"
	"path/filepath"
)

// Paths holds all resolved filesystem paths for the .strsearch/ directory.
type Paths struct {
	Root      string // .strsearch/
	HistoryDB string // .strsearch/history.db
	Config    string // .strsearch/config.yaml

	LogDir string // .strsearch/log/
	Log    string // .strsearch/log/strsearch.log
}

// NewPaths constructs all resolved paths from a working directory.
func NewPaths(workDir string) *Paths {
	root := filepath.Join(workDir, ".strsearch")
	return &Paths{
		Root:      root,
		HistoryDB: filepath.Join(root, "history.db"),
		Config:    filepath.Join(root, "config.yaml"),

		LogDir: filepath.Join(root, "log"),
		Log:    filepath.Join(root, "log", "strsearch.log"),
	}
}

// EnsureDirs creates all subdirectories under .strsearch/. Idempotent.
func (p *Paths) EnsureDirs() error {
	for _, d := range []string{p.Root, p.LogDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return err
		}
	}
	return nil
}
