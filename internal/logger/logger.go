// Package logger is a small levelled logger that appends to a file under
// .strsearch/log/. Output is one line per entry:
//
//	2026-01-02 15:04:05.000 [INFO] [app] search algo=kmp matches=3
//
// A disabled logger (level none or empty path) discards everything.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level is a logging threshold.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone // disables all output
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelNone:
		return "NONE"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name, case-insensitively. Unknown names yield
// LevelInfo and ok=false.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	case "none", "off":
		return LevelNone, true
	default:
		return LevelInfo, false
	}
}

// Logger writes levelled lines to a file. Loggers derived with WithPrefix
// share the parent's file and level.
type Logger struct {
	core   *core
	prefix string
}

// core is the state shared between a logger and its prefixed children.
type core struct {
	mu     sync.Mutex
	level  Level
	out    *log.Logger
	file   *os.File
	closed bool
	now    func() time.Time
}

// New opens (or creates) the log file at path in append mode.
func New(level Level, path string, prefix string) (*Logger, error) {
	c := &core{level: level, now: time.Now}

	if level == LevelNone || path == "" {
		c.out = log.New(io.Discard, "", 0)
		c.level = LevelNone
		return &Logger{core: c, prefix: prefix}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	c.file = f
	c.out = log.New(f, "", 0)
	return &Logger{core: c, prefix: prefix}, nil
}

// NewWriter logs to w instead of a file.
func NewWriter(level Level, w io.Writer, prefix string) *Logger {
	return &Logger{
		core:   &core{level: level, out: log.New(w, "", 0), now: time.Now},
		prefix: prefix,
	}
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return NewWriter(LevelNone, io.Discard, "")
}

// WithPrefix returns a child logger; prefixes nest as "parent:child".
func (l *Logger) WithPrefix(prefix string) *Logger {
	if l.prefix != "" {
		prefix = l.prefix + ":" + prefix
	}
	return &Logger{core: l.core, prefix: prefix}
}

// SetLevel changes the threshold for this logger and all its children.
func (l *Logger) SetLevel(level Level) {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	l.core.level = level
}

// Level returns the current threshold.
func (l *Logger) Level() Level {
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	return l.core.level
}

func (l *Logger) logf(level Level, format string, args ...any) {
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed || c.level == LevelNone || level < c.level {
		return
	}

	var b strings.Builder
	b.WriteString(c.now().Format("2006-01-02 15:04:05.000"))
	b.WriteString(" [")
	b.WriteString(level.String())
	b.WriteString("] ")
	if l.prefix != "" {
		b.WriteString("[" + l.prefix + "] ")
	}
	fmt.Fprintf(&b, format, args...)
	c.out.Println(b.String())
}

func (l *Logger) Debug(format string, args ...any) { l.logf(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)  { l.logf(LevelInfo, format, args...) }
func (l *Logger) Warn(format string, args ...any)  { l.logf(LevelWarn, format, args...) }
func (l *Logger) Error(format string, args ...any) { l.logf(LevelError, format, args...) }

// Close closes the log file. Children share the file, so closing any of
// them silences all. Safe to call multiple times.
func (l *Logger) Close() error {
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	if c.file != nil {
		return c.file.Close()
	}
	return nil
}
