package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/corey/strsearch/internal/domain/report"
	"github.com/corey/strsearch/internal/logger"
	"gopkg.in/yaml.v3"
)

// Config holds initialization parameters for the App. The yaml fields are
// read from .strsearch/config.yaml; WorkDir is always set by the caller.
type Config struct {
	WorkDir string `yaml:"-"`

	LogLevel     string `yaml:"log_level"`
	ResultsFile  string `yaml:"results_file"`  // relative paths resolve against WorkDir
	SaveResults  bool   `yaml:"save_results"`  // write the results file when a search matches
	History      bool   `yaml:"history"`       // record searches in history.db
	HistoryLimit int    `yaml:"history_limit"` // default length of `history` listings
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig(workDir string) Config {
	return Config{
		WorkDir:      workDir,
		LogLevel:     "info",
		ResultsFile:  report.DefaultFile,
		SaveResults:  true,
		History:      true,
		HistoryLimit: 20,
	}
}

// LoadConfig reads .strsearch/config.yaml under workDir over the defaults.
// A missing file is not an error. Fields absent from the file keep their
// default values.
func LoadConfig(workDir string) (Config, error) {
	cfg := DefaultConfig(workDir)
	path := NewPaths(workDir).Config

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.WorkDir = workDir
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if c.ResultsFile == "" {
		return fmt.Errorf("results_file must not be empty")
	}
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must be >= 0, got %d", c.HistoryLimit)
	}
	return nil
}

// ResultsPath is the absolute location of the results file.
func (c Config) ResultsPath() string {
	if filepath.IsAbs(c.ResultsFile) {
		return c.ResultsFile
	}
	return filepath.Join(c.WorkDir, c.ResultsFile)
}

// WriteConfig saves cfg as yaml at path, creating the directory if needed.
func WriteConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
