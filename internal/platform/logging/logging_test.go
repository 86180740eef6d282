package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/logging"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "DEBUG", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: " warn ", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "verbose", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, logging.ParseLevel(tt.in))
		})
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		level   string
		log     func(*slog.Logger)
		wantOut bool
	}{
		{name: "debug passes at debug", level: "debug", log: func(l *slog.Logger) { l.Debug("xp recomputed") }, wantOut: true},
		{name: "debug filtered at info", level: "info", log: func(l *slog.Logger) { l.Debug("xp recomputed") }, wantOut: false},
		{name: "warn filtered at error", level: "error", log: func(l *slog.Logger) { l.Warn("slow downstream") }, wantOut: false},
		{name: "info passes at unknown level", level: "chatty", log: func(l *slog.Logger) { l.Info("task created") }, wantOut: true},
		{name: "debug filtered at unknown level", level: "chatty", log: func(l *slog.Logger) { l.Debug("task created") }, wantOut: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			tt.log(logging.New(tt.level, "json", &buf))

			assert.Equal(t, tt.wantOut, buf.Len() > 0, "output: %q", buf.String())
		})
	}
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format string
		want   []string
	}{
		{format: "json", want: []string{`"level":"INFO"`, `"msg":"level up"`, `"level_reached":3`}},
		{format: "TEXT", want: []string{"level=INFO", `msg="level up"`, "level_reached=3"}},
		{format: "xml", want: []string{`"level":"INFO"`}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logging.New("info", tt.format, &buf).Info("level up", slog.Int("level_reached", 3))

			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestNew_SourceOnlyAtDebug(t *testing.T) {
	t.Parallel()

	var debugBuf, infoBuf bytes.Buffer
	logging.New("debug", "json", &debugBuf).Info("board refreshed")
	logging.New("info", "json", &infoBuf).Info("board refreshed")

	assert.Contains(t, debugBuf.String(), `"source"`)
	assert.NotContains(t, infoBuf.String(), `"source"`)
}

func TestFromContext(t *testing.T) {
	t.Parallel()

	logger := logging.New("info", "json", &bytes.Buffer{})

	assert.Same(t, logger, logging.FromContext(logging.WithLogger(context.Background(), logger)))
	assert.Same(t, slog.Default(), logging.FromContext(context.Background()))
}

func TestWithLogger_LastWins(t *testing.T) {
	t.Parallel()

	first := logging.New("info", "json", &bytes.Buffer{})
	second := logging.New("debug", "json", &bytes.Buffer{})

	ctx := logging.WithLogger(context.Background(), first)
	ctx = logging.WithLogger(ctx, second)

	assert.Same(t, second, logging.FromContext(ctx))
}

func TestWith_EnrichesContextLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	ctx := logging.WithLogger(context.Background(), logging.New("info", "json", &buf))
	ctx = logging.With(ctx, slog.String("user_id", "naruto"))

	logging.FromContext(ctx).InfoContext(ctx, "task toggled")

	assert.Contains(t, buf.String(), `"user_id":"naruto"`)
}
