package logging

import (
	"context"
	"io"
	"log/slog"
)

// SlogLogger is the default backend. The console points it at its log file
// because the terminal belongs to the UI.
type SlogLogger struct {
	l *slog.Logger
}

// NewSlogLogger wraps any slog handler.
func NewSlogLogger(h slog.Handler) *SlogLogger {
	return &SlogLogger{l: slog.New(h)}
}

func newSlogText(w io.Writer, lvl slog.Level) *SlogLogger {
	return NewSlogLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func (s *SlogLogger) log(ctx context.Context, lvl slog.Level, msg string, args []any) {
	if !s.l.Enabled(ctx, lvl) {
		return
	}
	s.l.Log(ctx, lvl, msg, args...)
}

func (s *SlogLogger) Debug(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelDebug, msg, args)
}

func (s *SlogLogger) Info(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelInfo, msg, args)
}

func (s *SlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelWarn, msg, args)
}

func (s *SlogLogger) Error(ctx context.Context, msg string, args ...any) {
	s.log(ctx, slog.LevelError, msg, args)
}

// With scopes the logger, e.g. to a request id or a screen.
func (s *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{l: s.l.With(args...)}
}
