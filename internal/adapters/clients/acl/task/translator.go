package task

import (
	"time"

	domtask "github.com/Yukimura-Hanzo/konoha-project/internal/domain/task"
)

// ToDomainTask converts a downstream TaskDTO to a domain Task. Unparseable
// timestamps become the zero time, a completed_at on an open task is dropped
// and a negative xp reads as zero, so the entity stays valid.
func ToDomainTask(dto *TaskDTO) domtask.Task {
	createdAt, _ := time.Parse(time.RFC3339, dto.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339, dto.UpdatedAt)

	t := domtask.Task{
		ID:          dto.ID,
		Title:       dto.Title,
		Description: dto.Description,
		XP:          dto.XP,
		Completed:   dto.Completed,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
	t.ClampXP()
	if dto.Completed && dto.CompletedAt != nil {
		if completedAt, err := time.Parse(time.RFC3339, *dto.CompletedAt); err == nil {
			t.CompletedAt = &completedAt
		}
	}
	return t
}

// ToDomainTaskList converts a downstream list response to domain tasks.
func ToDomainTaskList(dto TaskListResponseDTO) []domtask.Task {
	tasks := make([]domtask.Task, len(dto.Tasks))
	for i := range dto.Tasks {
		tasks[i] = ToDomainTask(&dto.Tasks[i])
	}
	return tasks
}

// ToCreateTaskRequest converts a new domain Task to the create payload.
func ToCreateTaskRequest(t *domtask.Task) CreateTaskRequestDTO {
	return CreateTaskRequestDTO{
		Title:       t.Title,
		Description: t.Description,
		XP:          t.XP,
	}
}

// ToUpdateTaskRequest converts a domain Task to the full-replacement payload.
func ToUpdateTaskRequest(t *domtask.Task) UpdateTaskRequestDTO {
	req := UpdateTaskRequestDTO{
		Title:       t.Title,
		Description: t.Description,
		XP:          t.XP,
		Completed:   t.Completed,
	}
	if t.CompletedAt != nil {
		s := t.CompletedAt.UTC().Format(time.RFC3339)
		req.CompletedAt = &s
	}
	return req
}
