package task

import (
	"context"
	"time"

	domain "github.com/example/task-hub/domain/task"
)

// CreateTaskRequest is the request for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// CompleteTaskRequest is the request for completing a task.
type CompleteTaskRequest struct {
	TaskID string `json:"task_id"`
}

// CompleteTaskResponse is the response for completing a task.
// Found is false when no task has TaskID; Task is then nil.
type CompleteTaskResponse struct {
	Found  bool          `json:"found"`
	TaskID string        `json:"task_id"`
	Task   *TaskResponse `json:"task,omitempty"`
}

// ListTasksRequest is the request for listing tasks.
type ListTasksRequest struct{}

// ListTasksResponse is the response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// TaskResponse is the response for a single task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskPort defines the interface for task operations (hexagonal port).
// Driving adapters like the HTTP API use it to reach the core. CompleteTask
// returns *domain.NotFoundError when the task does not exist.
type TaskPort interface {
	CreateTask(ctx context.Context, req *CreateTaskRequest) (*TaskResponse, error)
	CompleteTask(ctx context.Context, taskID string) (*TaskResponse, error)
	ListTasks(ctx context.Context) (*ListTasksResponse, error)
}

// toTaskResponse converts a domain Task to a TaskResponse.
func toTaskResponse(t *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
