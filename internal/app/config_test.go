package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, dir, body string) {
	t.Helper()
	p := NewPaths(dir)
	require.NoError(t, p.EnsureDirs())
	require.NoError(t, os.WriteFile(p.Config, []byte(body), 0644))
}

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(dir), cfg)
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "log_level: debug\nsave_results: false\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.SaveResults)
	// untouched fields keep defaults
	assert.True(t, cfg.History)
	assert.Equal(t, "matches.txt", cfg.ResultsFile)
	assert.Equal(t, 20, cfg.HistoryLimit)
	assert.Equal(t, dir, cfg.WorkDir)
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":       "log_level: [unclosed\n",
		"unknown level":  "log_level: loud\n",
		"empty results":  "results_file: \"\"\n",
		"negative limit": "history_limit: -1\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfigFile(t, dir, body)
			_, err := LoadConfig(dir)
			assert.Error(t, err)
		})
	}
}

func TestWriteConfig_Roundtrip(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultConfig(dir)
	cfg.LogLevel = "warn"
	cfg.ResultsFile = "out/found.txt"
	cfg.HistoryLimit = 5

	require.NoError(t, WriteConfig(NewPaths(dir).Config, cfg))

	loaded, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	data, err := os.ReadFile(NewPaths(dir).Config)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "workdir", "WorkDir is not persisted")
}

func TestConfig_ResultsPath(t *testing.T) {
	cfg := DefaultConfig("/work")
	assert.Equal(t, filepath.Join("/work", "matches.txt"), cfg.ResultsPath())

	cfg.ResultsFile = "/tmp/abs.txt"
	assert.Equal(t, "/tmp/abs.txt", cfg.ResultsPath())
}
