package acl

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	acltask "github.com/Yukimura-Hanzo/konoha-project/internal/adapters/clients/acl/task"
	"github.com/Yukimura-Hanzo/konoha-project/internal/domain/task"
	"github.com/Yukimura-Hanzo/konoha-project/internal/platform/httpclient"
	"github.com/Yukimura-Hanzo/konoha-project/internal/ports"
)

// Compile-time interface check.
var _ ports.TaskClient = (*TaskClient)(nil)

// TaskClient is the outbound adapter for the downstream task resources. It
// implements [ports.TaskClient]. Every path is nested under the owner, so
// one user's calls can never address another user's tasks:
//
//	/api/v1/users/{owner}/tasks[/{id}]
type TaskClient struct {
	req *Requester
}

// NewTaskClient creates a TaskClient that sends requests through client.
func NewTaskClient(client *httpclient.Client, logger *slog.Logger) *TaskClient {
	return &TaskClient{req: NewRequester(client, logger)}
}

// ListTasks fetches GET /users/{owner}/tasks, forwarding the completion
// filter as ?completed=.
func (c *TaskClient) ListTasks(ctx context.Context, ownerID string, filter task.Filter) ([]task.Task, error) {
	path := tasksPath(ownerID) + taskFilterQuery(filter)

	var dto acltask.TaskListResponseDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return acltask.ToDomainTaskList(dto), nil
}

// GetTask fetches one task. Returns domain.ErrNotFound on 404.
func (c *TaskClient) GetTask(ctx context.Context, ownerID string, id int64) (*task.Task, error) {
	var dto acltask.TaskDTO
	if err := c.req.Do(ctx, http.MethodGet, taskPath(ownerID, id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	result := acltask.ToDomainTask(&dto)
	return &result, nil
}

// CreateTask posts a new task and returns it with server-assigned fields.
func (c *TaskClient) CreateTask(ctx context.Context, ownerID string, t *task.Task) (*task.Task, error) {
	var dto acltask.TaskDTO
	if err := c.req.Do(ctx, http.MethodPost, tasksPath(ownerID), http.StatusCreated, acltask.ToCreateTaskRequest(t), &dto); err != nil {
		return nil, err
	}
	result := acltask.ToDomainTask(&dto)
	return &result, nil
}

// UpdateTask replaces a task with PUT. Returns domain.ErrNotFound on 404.
func (c *TaskClient) UpdateTask(ctx context.Context, ownerID string, id int64, t *task.Task) (*task.Task, error) {
	var dto acltask.TaskDTO
	if err := c.req.Do(ctx, http.MethodPut, taskPath(ownerID, id), http.StatusOK, acltask.ToUpdateTaskRequest(t), &dto); err != nil {
		return nil, err
	}
	result := acltask.ToDomainTask(&dto)
	return &result, nil
}

// DeleteTask removes a task. Returns domain.ErrNotFound on 404.
func (c *TaskClient) DeleteTask(ctx context.Context, ownerID string, id int64) error {
	return c.req.Do(ctx, http.MethodDelete, taskPath(ownerID, id), http.StatusNoContent, nil, nil)
}

func ownerPath(ownerID string) string {
	return "/api/v1/users/" + url.PathEscape(ownerID)
}

func tasksPath(ownerID string) string {
	return ownerPath(ownerID) + "/tasks"
}

func taskPath(ownerID string, id int64) string {
	return fmt.Sprintf("%s/%d", tasksPath(ownerID), id)
}

// taskFilterQuery returns the query string including the leading "?", or ""
// for the zero filter.
func taskFilterQuery(f task.Filter) string {
	if f.Completed == nil {
		return ""
	}
	v := url.Values{}
	v.Set("completed", strconv.FormatBool(*f.Completed))
	return "?" + v.Encode()
}
