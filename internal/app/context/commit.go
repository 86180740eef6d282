package appctx

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/logging"
)

// Commit runs the staged actions in the order they were staged. If one
// fails, the actions before it are undone newest first and the failure is
// returned; undo errors are only logged.
//
// A RequestContext can be committed once, whatever the outcome.
func (rc *RequestContext) Commit(ctx context.Context) error {
	queue, err := rc.drain()
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx).With(slog.Int("staged", len(queue)))

	for step, action := range queue {
		logger.DebugContext(ctx, "applying staged action",
			slog.Int("step", step+1),
			slog.String("action", action.Description()),
		)
		if err := action.Execute(ctx); err != nil {
			logger.ErrorContext(ctx, "staged action failed; undoing earlier steps",
				slog.Int("step", step+1),
				slog.String("action", action.Description()),
				slog.Any("error", err),
			)
			undo(ctx, logger, queue[:step])
			return fmt.Errorf("executing %s: %w", action.Description(), err)
		}
	}
	return nil
}

// drain marks rc committed and hands over its queue.
func (rc *RequestContext) drain() ([]domain.Action, error) {
	rc.queueMu.Lock()
	defer rc.queueMu.Unlock()

	if rc.committed {
		return nil, ErrAlreadyCommitted
	}
	rc.committed = true
	queue := rc.queue
	rc.queue = nil
	return queue, nil
}

func undo(ctx context.Context, logger *slog.Logger, applied []domain.Action) {
	for step := len(applied) - 1; step >= 0; step-- {
		if err := applied[step].Rollback(ctx); err != nil {
			logger.ErrorContext(ctx, "undoing staged action failed",
				slog.Int("step", step+1),
				slog.String("action", applied[step].Description()),
				slog.Any("error", err),
			)
		}
	}
}
