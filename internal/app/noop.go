package app

import (
	"context"
	"log/slog"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/progression"
)

type noopMetrics struct{}

func (noopMetrics) RecordMutation(context.Context, string, string) {}
func (noopMetrics) RecordLevelUp(context.Context, int64)           {}

type noopPublisher struct{}

func (noopPublisher) PublishProgress(context.Context, string, progression.State) {}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
