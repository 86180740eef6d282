package app

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"strings"
	"sync"
	"time"

	appctx "github.com/Yukimura-Hanzo/konoha-project/internal/app/context"
	"github.com/Yukimura-Hanzo/konoha-project/internal/app/fanout"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/progression"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/task"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

const (
	defaultBulkWorkers = 4
	maxBulkTasks       = 100

	// refreshStripes bounds the locks that order one owner's refreshes.
	refreshStripes = 64
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService on top of the downstream task
// store. Progression is never stored: every mutation re-fetches the owner's
// tasks and recomputes it, then pushes the fresh state to subscribers.
type TaskService struct {
	client    ports.TaskClient
	publisher ports.ProgressPublisher
	metrics   ports.DashboardMetrics
	logger    *slog.Logger

	workers int
	now     func() time.Time
	rollXP  func() int64

	refreshing [refreshStripes]sync.Mutex
}

// NewTaskService creates a TaskService. publisher and metrics may be nil.
func NewTaskService(
	client ports.TaskClient,
	publisher ports.ProgressPublisher,
	metrics ports.DashboardMetrics,
	logger *slog.Logger,
) *TaskService {
	if publisher == nil {
		publisher = noopPublisher{}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &TaskService{
		client:    client,
		publisher: publisher,
		metrics:   metrics,
		logger:    loggerOrDiscard(logger),
		workers:   defaultBulkWorkers,
		now:       time.Now,
		rollXP:    func() int64 { return progression.RollXP(nil) },
	}
}

func tasksKey(owner string) string { return "tasks:" + owner }

func taskKey(owner string, id int64) string { return fmt.Sprintf("task:%s:%d", owner, id) }

// Board returns the owner's tasks matching filter. Progress and Stats always
// cover every task, not just the filtered ones.
func (s *TaskService) Board(ctx context.Context, id *domain.Identity, filter task.Filter) (*ports.Board, error) {
	if !id.Valid() {
		return emptyBoard(), nil
	}

	s.logger.InfoContext(ctx, "loading board", slog.String("user_id", id.UserID))

	b, err := s.board(appctx.From(ctx), id.UserID, filter)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to load board",
			slog.String("operation", "Board"),
			slog.String("user_id", id.UserID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return b, nil
}

// Progress returns the owner's current progression.
func (s *TaskService) Progress(ctx context.Context, id *domain.Identity) (progression.State, error) {
	b, err := s.Board(ctx, id, task.Filter{})
	if err != nil {
		return progression.State{}, err
	}
	return b.Progress, nil
}

// CreateTask adds an open task whose XP reward is rolled here, never taken
// from the caller.
func (s *TaskService) CreateTask(ctx context.Context, id *domain.Identity, draft ports.TaskDraft) (*ports.Board, error) {
	if !id.Valid() {
		return nil, domain.ErrUnauthorized
	}
	owner := id.UserID

	now := s.now()
	t := &task.Task{
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		XP:          s.rollXP(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	rc := appctx.From(ctx)
	before, err := s.progress(rc, owner)
	if err != nil {
		return nil, s.logFailure(ctx, "CreateTask", owner, 0, err)
	}

	created, err := s.client.CreateTask(ctx, owner, t)
	if err != nil {
		return nil, s.logFailure(ctx, "CreateTask", owner, 0, fmt.Errorf("creating task: %w", err))
	}

	s.logger.InfoContext(ctx, "task created",
		slog.String("user_id", owner),
		slog.Int64("task_id", created.ID),
		slog.Int64("xp", created.XP),
	)
	s.metrics.RecordMutation(ctx, "task", "create")

	return s.refresh(ctx, rc, owner, before)
}

// EditTask changes title and description. XP and completion are untouched.
func (s *TaskService) EditTask(ctx context.Context, id *domain.Identity, taskID int64, patch ports.TaskPatch) (*ports.Board, error) {
	if !id.Valid() {
		return nil, domain.ErrUnauthorized
	}
	if patch.Title == nil && patch.Description == nil {
		return nil, domain.Invalid("body", "at least one of title or description is required")
	}

	return s.stageUpdate(ctx, id.UserID, taskID, "EditTask", "edit", func(t *task.Task) {
		if patch.Title != nil {
			t.Title = strings.TrimSpace(*patch.Title)
		}
		if patch.Description != nil {
			t.Description = strings.TrimSpace(*patch.Description)
		}
		t.UpdatedAt = s.now()
	})
}

// ToggleTask flips completion and stamps or clears CompletedAt.
func (s *TaskService) ToggleTask(ctx context.Context, id *domain.Identity, taskID int64) (*ports.Board, error) {
	if !id.Valid() {
		return nil, domain.ErrUnauthorized
	}

	return s.stageUpdate(ctx, id.UserID, taskID, "ToggleTask", "toggle", func(t *task.Task) {
		t.Toggle(s.now())
	})
}

// DeleteTask removes a task. Deleting a completed task lowers the owner's XP.
func (s *TaskService) DeleteTask(ctx context.Context, id *domain.Identity, taskID int64) (*ports.Board, error) {
	if !id.Valid() {
		return nil, domain.ErrUnauthorized
	}
	owner := id.UserID

	rc := appctx.From(ctx)
	before, err := s.progress(rc, owner)
	if err != nil {
		return nil, s.logFailure(ctx, "DeleteTask", owner, taskID, err)
	}

	if err := s.client.DeleteTask(ctx, owner, taskID); err != nil {
		return nil, s.logFailure(ctx, "DeleteTask", owner, taskID, fmt.Errorf("deleting task: %w", err))
	}
	s.metrics.RecordMutation(ctx, "task", "delete")

	return s.refresh(ctx, rc, owner, before)
}

// CompleteTasks marks every listed task completed. Already completed tasks
// count as successes. Duplicate IDs are collapsed.
func (s *TaskService) CompleteTasks(ctx context.Context, id *domain.Identity, taskIDs []int64) (*ports.BulkCompleteResult, error) {
	if !id.Valid() {
		return nil, domain.ErrUnauthorized
	}
	owner := id.UserID

	ids, err := normalizeTaskIDs(taskIDs)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "completing tasks",
		slog.String("user_id", owner),
		slog.Int("count", len(ids)),
	)

	rc := appctx.From(ctx)
	before, err := s.progress(rc, owner)
	if err != nil {
		return nil, s.logFailure(ctx, "CompleteTasks", owner, 0, err)
	}

	results := fanout.Run(ctx, s.workers, ids, func(ctx context.Context, taskID int64) (int64, error) {
		return taskID, s.completeOne(ctx, owner, taskID)
	})
	completed, failed := fanout.Split(ids, results)

	errs := make([]ports.BulkCompleteError, 0, len(failed))
	for _, f := range failed {
		s.logger.WarnContext(ctx, "task completion failed",
			slog.String("operation", "CompleteTasks"),
			slog.String("user_id", owner),
			slog.Int64("task_id", f.Item),
			slog.Any("error", f.Err),
		)
		errs = append(errs, ports.BulkCompleteError{TaskID: f.Item, Err: f.Err})
	}
	if len(completed) > 0 {
		s.metrics.RecordMutation(ctx, "task", "complete")
	}

	b, err := s.refresh(ctx, rc, owner, before)
	if err != nil {
		return nil, err
	}

	return &ports.BulkCompleteResult{Completed: completed, Errors: errs, Board: b}, nil
}

func (s *TaskService) completeOne(ctx context.Context, owner string, taskID int64) error {
	t, err := s.client.GetTask(ctx, owner, taskID)
	if err != nil {
		return fmt.Errorf("fetching task: %w", err)
	}
	if t.Completed {
		return nil
	}
	t.ClampXP()
	t.MarkCompleted(s.now())
	if _, err := s.client.UpdateTask(ctx, owner, taskID, t); err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

// stageUpdate loads a task, applies mutate to a copy and commits the change
// as a rollback-capable action before refreshing the board.
func (s *TaskService) stageUpdate(
	ctx context.Context,
	owner string,
	taskID int64,
	operation, verb string,
	mutate func(*task.Task),
) (*ports.Board, error) {
	rc := appctx.From(ctx)

	before, err := s.progress(rc, owner)
	if err != nil {
		return nil, s.logFailure(ctx, operation, owner, taskID, err)
	}

	current, err := appctx.GetOrFetch(rc, taskKey(owner, taskID), func(ctx context.Context) (*task.Task, error) {
		return s.client.GetTask(ctx, owner, taskID)
	})
	if err != nil {
		return nil, s.logFailure(ctx, operation, owner, taskID, fmt.Errorf("fetching task: %w", err))
	}

	updated := *current
	updated.ClampXP()
	mutate(&updated)
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	action := &updateTaskAction{client: s.client, owner: owner, before: *current, after: updated, verb: verb}
	if err := rc.Stage(taskKey(owner, taskID), &updated, action); err != nil {
		return nil, s.logFailure(ctx, operation, owner, taskID, err)
	}
	if err := rc.Commit(ctx); err != nil {
		return nil, s.logFailure(ctx, operation, owner, taskID, err)
	}
	s.metrics.RecordMutation(ctx, "task", verb)

	return s.refresh(ctx, rc, owner, before)
}

func (s *TaskService) loadTasks(rc *appctx.RequestContext, owner string) ([]task.Task, error) {
	return appctx.GetOrFetch(rc, tasksKey(owner), func(ctx context.Context) ([]task.Task, error) {
		return s.client.ListTasks(ctx, owner, task.Filter{})
	})
}

func (s *TaskService) progress(rc *appctx.RequestContext, owner string) (progression.State, error) {
	all, err := s.loadTasks(rc, owner)
	if err != nil {
		return progression.State{}, fmt.Errorf("listing tasks: %w", err)
	}
	return progression.Compute(all), nil
}

func (s *TaskService) board(rc *appctx.RequestContext, owner string, filter task.Filter) (*ports.Board, error) {
	all, err := s.loadTasks(rc, owner)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return buildBoard(all, filter), nil
}

// refresh drops the cached task list, re-fetches it and recomputes the
// board. A level change is logged and counted; the new progression is pushed
// to subscribers.
//
// Refreshes of one owner hold a shared lock from the re-fetch through the
// publish, so a board read later is never published before one read earlier.
func (s *TaskService) refresh(ctx context.Context, rc *appctx.RequestContext, owner string, before progression.State) (*ports.Board, error) {
	mu := s.refreshLock(owner)
	mu.Lock()
	defer mu.Unlock()

	rc.Invalidate(tasksKey(owner))

	b, err := s.board(rc, owner, task.Filter{})
	if err != nil {
		return nil, s.logFailure(ctx, "refresh", owner, 0, fmt.Errorf("refreshing board: %w", err))
	}

	if progression.LeveledUp(before, b.Progress) {
		s.logger.InfoContext(ctx, "level up",
			slog.String("user_id", owner),
			slog.Int64("from_level", before.Level),
			slog.Int64("to_level", b.Progress.Level),
			slog.Int64("total_xp", b.Progress.TotalXP),
		)
		s.metrics.RecordLevelUp(ctx, b.Progress.Level)
	}
	s.publisher.PublishProgress(ctx, owner, b.Progress)

	return b, nil
}

func (s *TaskService) refreshLock(owner string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(owner))
	return &s.refreshing[h.Sum32()%refreshStripes]
}

func (s *TaskService) logFailure(ctx context.Context, operation, owner string, taskID int64, err error) error {
	attrs := []any{
		slog.String("operation", operation),
		slog.String("user_id", owner),
	}
	if taskID != 0 {
		attrs = append(attrs, slog.Int64("task_id", taskID))
	}
	attrs = append(attrs, slog.Any("error", err))
	s.logger.ErrorContext(ctx, "task operation failed", attrs...)
	return err
}

func buildBoard(all []task.Task, filter task.Filter) *ports.Board {
	tasks := make([]task.Task, 0, len(all))
	for i := range all {
		if filter.Matches(&all[i]) {
			tasks = append(tasks, all[i])
		}
	}
	return &ports.Board{
		Tasks:    tasks,
		Progress: progression.Compute(all),
		Stats:    task.CountStats(all),
	}
}

func emptyBoard() *ports.Board {
	return &ports.Board{Tasks: []task.Task{}, Progress: progression.Initial}
}

func normalizeTaskIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, domain.Invalid("task_ids", domain.MsgRequired)
	}

	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, domain.Invalid("task_ids", fmt.Sprintf("must be positive, got %d", id))
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	if len(out) > maxBulkTasks {
		return nil, domain.Invalid("task_ids", fmt.Sprintf("at most %d tasks per request, got %d", maxBulkTasks, len(out)))
	}
	return out, nil
}

// updateTaskAction writes after and restores before on rollback.
type updateTaskAction struct {
	client ports.TaskClient
	owner  string
	before task.Task
	after  task.Task
	verb   string
}

func (a *updateTaskAction) Execute(ctx context.Context) error {
	_, err := a.client.UpdateTask(ctx, a.owner, a.after.ID, &a.after)
	return err
}

func (a *updateTaskAction) Rollback(ctx context.Context) error {
	_, err := a.client.UpdateTask(ctx, a.owner, a.before.ID, &a.before)
	return err
}

func (a *updateTaskAction) Description() string {
	return fmt.Sprintf("%s task %d", a.verb, a.after.ID)
}
