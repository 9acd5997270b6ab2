// Package app wires together all adapters and domain logic.
// It runs searches through the engine, persists history and results files,
// cross-checks the algorithms and drives watch mode.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"sync"

	"github.com/corey/strsearch/internal/adapters/ahocorasick"
	"github.com/corey/strsearch/internal/adapters/bbolt"
	fsw "github.com/corey/strsearch/internal/adapters/fsnotify"
	"github.com/corey/strsearch/internal/domain/match"
	"github.com/corey/strsearch/internal/domain/report"
	"github.com/corey/strsearch/internal/logger"
	"github.com/corey/strsearch/internal/ports"
)

var (
	// ErrMatchSetMismatch means two algorithms (or the reference matcher)
	// disagreed on the match set for the same input.
	ErrMatchSetMismatch = errors.New("algorithms disagree on match set")

	// ErrHistoryDisabled is returned by history operations when the
	// history store is turned off in the config.
	ErrHistoryDisabled = errors.New("search history is disabled")
)

// App is the top-level container wiring all components together.
type App struct {
	Config Config
	Paths  *Paths

	Store     ports.Storage // nil when history is disabled
	Reference ports.ReferenceMatcher

	log  *logger.Logger
	slog *slog.Logger

	mu         sync.Mutex // serializes history and results-file writes
	closers    []func() error
	newWatcher func() (ports.Watcher, error)
}

// Outcome is one search plus what happened to its side effects. Persistence
// failures never fail the search; they are reported here instead.
type Outcome struct {
	Pattern string
	Text    string
	Result  *match.MatchResult

	ResultsPath string // absolute path of the results file, "" if not written
	RecordID    uint64 // history record, 0 if not stored
	Runs        uint32 // how many times this exact search has run

	SaveErr  error
	StoreErr error
}

// Comparison is the result of running every algorithm on one input.
type Comparison struct {
	Pattern   string
	Text      string
	Results   []*match.MatchResult // in match.Algorithms() order
	Reference []int                // offsets found by the reference matcher
}

// Agree reports whether every algorithm and the reference found the same
// match set.
func (c *Comparison) Agree() bool {
	for _, r := range c.Results {
		if !slices.Equal(r.Indices, c.Reference) {
			return false
		}
	}
	return true
}

// New creates an App with all dependencies wired.
func New(cfg Config) (*App, error) {
	if cfg.WorkDir == "" {
		return nil, fmt.Errorf("work dir required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	paths := NewPaths(cfg.WorkDir)
	if err := paths.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("create %s: %w", paths.Root, err)
	}

	level, _ := logger.ParseLevel(cfg.LogLevel)
	lg, err := logger.New(level, paths.Log, "app")
	if err != nil {
		return nil, err
	}

	a := &App{
		Config:    cfg,
		Paths:     paths,
		Reference: ahocorasick.NewMatcher(),
		log:       lg,
		slog:      lg.Slog(),
		closers:   []func() error{lg.Close},
		newWatcher: func() (ports.Watcher, error) {
			return fsw.NewWatcher()
		},
	}

	if cfg.History {
		store, err := bbolt.NewStore(paths.HistoryDB)
		if err != nil {
			lg.Close()
			return nil, fmt.Errorf("open history: %w", err)
		}
		a.Store = store
		a.closers = append([]func() error{store.Close}, a.closers...)
	}

	a.log.Debug("started in %s (history=%v save_results=%v)", cfg.WorkDir, cfg.History, cfg.SaveResults)
	return a, nil
}

// Close releases the history store and the log file.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Search runs alg over pattern and text. Invalid input is returned as an
// error and leaves no trace in history or on disk. On success the search is
// recorded in history and, if it matched, the results file is rewritten.
func (a *App) Search(alg match.Algorithm, pattern, text string) (*Outcome, error) {
	r, err := match.Search(alg, pattern, text)
	if err != nil {
		a.slog.Debug("search rejected", "algo", alg.Slug(), "err", err)
		return nil, err
	}
	a.slog.Debug("search", "algo", alg.Slug(), "pattern_len", len(pattern), "text_len", len(text),
		"matches", r.Matches, "comparisons", r.Comparisons)

	out := &Outcome{Pattern: pattern, Text: text, Result: r}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.Store != nil {
		rec := &ports.SearchRecord{Algorithm: alg, Pattern: pattern, Text: text, Result: r}
		if _, err := a.Store.SaveRecord(rec); err != nil {
			out.StoreErr = err
			a.log.Warn("history save failed: %v", err)
		} else {
			out.RecordID = rec.ID
			out.Runs = rec.Runs
		}
	}

	if a.Config.SaveResults && r.Found() {
		path, err := report.SaveResults(a.Config.ResultsPath(), r, pattern, text)
		if err != nil {
			out.SaveErr = err
			a.log.Warn("results file not written: %v", err)
		} else {
			out.ResultsPath = path
		}
	}
	return out, nil
}

// Compare runs all four algorithms and the reference matcher on the same
// input. The Comparison is returned even when they disagree; the error is
// then ErrMatchSetMismatch.
func (a *App) Compare(pattern, text string) (*Comparison, error) {
	c := &Comparison{Pattern: pattern, Text: text}
	for _, alg := range match.Algorithms() {
		r, err := match.Search(alg, pattern, text)
		if err != nil {
			return nil, err
		}
		c.Results = append(c.Results, r)
	}
	c.Reference = a.Reference.FindAll(pattern, text)

	if !c.Agree() {
		a.log.Error("match set mismatch: pattern=%q text_len=%d", pattern, len(text))
		return c, fmt.Errorf("%w: pattern %q", ErrMatchSetMismatch, pattern)
	}
	return c, nil
}

// Watch searches textFile once and then again after every change to it,
// until ctx is done. onOutcome receives each search; calls never overlap.
// A read or validation failure is passed to onOutcome and watching goes on,
// since the next save may fix it.
func (a *App) Watch(ctx context.Context, alg match.Algorithm, pattern, textFile string,
	onOutcome func(*Outcome, error)) error {

	w, err := a.newWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	wlog := a.log.WithPrefix("watch")
	w.OnError(func(err error) {
		wlog.Warn("watcher error on %s: %v", textFile, err)
	})

	var cbMu sync.Mutex
	run := func() {
		cbMu.Lock()
		defer cbMu.Unlock()
		onOutcome(a.searchFile(alg, pattern, textFile))
	}

	if err := w.Watch(textFile, func(string) { run() }); err != nil {
		return fmt.Errorf("watch %s: %w", textFile, err)
	}
	wlog.Info("watching %s (algo=%s)", textFile, alg.Slug())

	run()
	<-ctx.Done()
	wlog.Info("stopped watching %s", textFile)
	return nil
}

func (a *App) searchFile(alg match.Algorithm, pattern, path string) (*Outcome, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}
	return a.Search(alg, pattern, string(data))
}

// History lists recorded searches, most recent first. limit <= 0 uses the
// configured default.
func (a *App) History(limit int) ([]*ports.SearchRecord, error) {
	if a.Store == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = a.Config.HistoryLimit
	}
	return a.Store.ListRecords(limit)
}

// Record loads one history record. Returns nil, nil if id is unknown.
func (a *App) Record(id uint64) (*ports.SearchRecord, error) {
	if a.Store == nil {
		return nil, ErrHistoryDisabled
	}
	return a.Store.LoadRecord(id)
}

// ClearHistory deletes every history record.
func (a *App) ClearHistory() error {
	if a.Store == nil {
		return ErrHistoryDisabled
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.Store.DeleteAll(); err != nil {
		return err
	}
	a.log.Info("history cleared")
	return nil
}
