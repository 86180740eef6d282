package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/blog"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

// Compile-time check that ViewService implements ports.ViewService.
var _ ports.ViewService = (*ViewService)(nil)

// ViewService implements ports.ViewService over a ViewStore.
type ViewService struct {
	store   ports.ViewStore
	metrics ports.DashboardMetrics
	logger  *slog.Logger
}

// NewViewService creates a ViewService. metrics may be nil.
func NewViewService(store ports.ViewStore, metrics ports.DashboardMetrics, logger *slog.Logger) *ViewService {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &ViewService{store: store, metrics: metrics, logger: loggerOrDiscard(logger)}
}

// RecordView counts one view of slug.
func (s *ViewService) RecordView(ctx context.Context, slug string) (*blog.ViewCount, error) {
	if err := blog.ValidateSlug(slug); err != nil {
		return nil, err
	}

	n, err := s.store.Increment(ctx, slug)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to record view",
			slog.String("operation", "RecordView"),
			slog.String("slug", slug),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("incrementing views: %w", err)
	}
	s.metrics.RecordMutation(ctx, "view", "record")

	return &blog.ViewCount{Slug: slug, Count: n}, nil
}

// Views returns every counter and the site-wide total.
func (s *ViewService) Views(ctx context.Context) (*ports.ViewReport, error) {
	counts, err := s.store.Counts(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list views",
			slog.String("operation", "Views"),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("listing views: %w", err)
	}
	if counts == nil {
		counts = []blog.ViewCount{}
	}
	return &ports.ViewReport{Counts: counts, Total: blog.TotalViews(counts)}, nil
}
