package logger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// NewSlogHandler returns a slog.Handler that forwards records to l.
// Attributes are appended to the message as key=value pairs; groups become
// dotted key prefixes.
func NewSlogHandler(l *Logger) slog.Handler {
	if l == nil {
		l = Discard()
	}
	return &slogAdapter{log: l}
}

// Slog wraps l in a *slog.Logger.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(NewSlogHandler(l))
}

type slogAdapter struct {
	log    *Logger
	groups []string
	attrs  []slog.Attr
}

func (h *slogAdapter) Enabled(_ context.Context, level slog.Level) bool {
	current := h.log.Level()
	return current != LevelNone && fromSlogLevel(level) >= current
}

func (h *slogAdapter) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)

	for _, a := range h.attrs {
		writeAttr(&b, a, nil)
	}
	record.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, a, h.groups)
		return true
	})

	h.log.logf(fromSlogLevel(record.Level), "%s", strings.TrimLeft(b.String(), " "))
	return nil
}

func (h *slogAdapter) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		// Bind the group prefix now so later WithGroup calls don't re-nest it.
		merged = append(merged, prefixed(a, h.groups))
	}
	return &slogAdapter{log: h.log, attrs: merged, groups: h.groups}
}

func (h *slogAdapter) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	groups := append(append([]string(nil), h.groups...), name)
	return &slogAdapter{log: h.log, attrs: h.attrs, groups: groups}
}

func fromSlogLevel(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	default:
		return LevelDebug
	}
}

// prefixed folds groups into the attribute key.
func prefixed(a slog.Attr, groups []string) slog.Attr {
	if len(groups) == 0 {
		return a
	}
	return slog.Attr{Key: strings.Join(append(append([]string(nil), groups...), a.Key), "."), Value: a.Value}
}

func writeAttr(b *strings.Builder, a slog.Attr, groups []string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		inner := groups
		if a.Key != "" {
			inner = append(append([]string(nil), groups...), a.Key)
		}
		for _, nested := range a.Value.Group() {
			writeAttr(b, nested, inner)
		}
		return
	}
	key := a.Key
	if len(groups) > 0 {
		key = strings.Join(groups, ".") + "." + key
	}
	fmt.Fprintf(b, " %s=%v", key, a.Value)
}
