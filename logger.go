package chart

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so RenderChart never
// builds attributes nobody reads.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(discard{}))
}

// SetLogger routes chart diagnostics to l. Charts are silent until a
// logger is set; SetLogger(nil) silences them again. It may be called
// while other goroutines are rendering.
//
// RenderChart logs at Debug once per chart (type, point and primitive
// counts) and at Warn when a non-empty dataset has nothing to scale.
// Playback and the bundled backends use the same logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	current.Store(l)
}

// Logger returns the logger chart and its backends write to.
func Logger() *slog.Logger {
	return current.Load()
}
