package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newSlogBuffer() (*SlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return newSlogText(&buf, slog.LevelDebug), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		level string
		log   func(l Logger)
		want  string
	}{
		{"DEBUG", func(l Logger) { l.Debug(ctx, "request done", "status", 200) }, "status=200"},
		{"INFO", func(l Logger) { l.Info(ctx, "users loaded", "total", 25) }, "total=25"},
		{"WARN", func(l Logger) { l.Warn(ctx, "session check failed", "route", "login") }, "route=login"},
		{"ERROR", func(l Logger) { l.Error(ctx, "persist cookies failed", "origin", "http://x") }, "origin=http://x"},
	}
	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			log, buf := newSlogBuffer()
			tc.log(log)
			out := buf.String()
			assert.Contains(t, out, "level="+tc.level)
			assert.Contains(t, out, tc.want)
		})
	}
}

func TestSlogLogger_WithKeepsParentClean(t *testing.T) {
	log, buf := newSlogBuffer()
	ctx := context.Background()

	child := log.With("request_id", "abc")
	child.Info(ctx, "request done")
	assert.Contains(t, buf.String(), "request_id=abc")

	buf.Reset()
	log.Info(ctx, "mounted")
	assert.NotContains(t, buf.String(), "request_id", "With must not leak into the parent")
}

func TestSlogLogger_BelowLevelIsDropped(t *testing.T) {
	var buf bytes.Buffer
	log := newSlogText(&buf, slog.LevelWarn)
	ctx := context.Background()

	log.Debug(ctx, "request done")
	log.Info(ctx, "users loaded")
	assert.Empty(t, buf.String())

	log.Warn(ctx, "session check failed")
	assert.Contains(t, buf.String(), "level=WARN")
}
