package logging

import (
	"context"
	"io"
	"log/slog"
)

// SlogLogger adapts *slog.Logger to Logger.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps l. A nil l yields a logger that drops everything.
func NewSlogLogger(l *slog.Logger) *SlogLogger {
	if l == nil {
		return Discard()
	}
	return &SlogLogger{l: l}
}

// Discard returns a logger that drops every record. The client uses it when
// no log file is configured.
func Discard() *SlogLogger {
	return &SlogLogger{l: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))}
}

// Debug skips building the record when debug output is off; the directory
// logs every dialog transition at this level.
func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	if !s.l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	s.l.DebugContext(ctx, msg, args...)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.l.InfoContext(ctx, msg, args...)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.l.WarnContext(ctx, msg, args...)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.l.ErrorContext(ctx, msg, args...)
}

// With returns a child logger carrying args on every record, e.g.
// With("component", "directory").
func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
