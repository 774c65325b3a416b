package task

import (
	"context"
	"errors"
	"fmt"

	domain "github.com/example/task-hub/domain/task"
	"github.com/go-monolith/mono"
)

// createTask handles the create-task service request.
func (m *TaskModule) createTask(ctx context.Context, req CreateTaskRequest, _ *mono.Msg) (TaskResponse, error) {
	created, err := m.create.Execute(ctx, req.Title, req.Description)
	if err != nil {
		return TaskResponse{}, fmt.Errorf("failed to create task: %w", err)
	}

	m.logger.Debug("Task created", "task_id", created.ID)
	return toTaskResponse(created), nil
}

// completeTask handles the complete-task service request.
// A missing task is a normal reply with Found=false so callers can tell it
// apart from a failure after the message crossed the bus.
func (m *TaskModule) completeTask(ctx context.Context, req CompleteTaskRequest, _ *mono.Msg) (CompleteTaskResponse, error) {
	completed, err := m.complete.Execute(ctx, req.TaskID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return CompleteTaskResponse{Found: false, TaskID: req.TaskID}, nil
		}
		return CompleteTaskResponse{}, fmt.Errorf("failed to complete task: %w", err)
	}

	m.logger.Debug("Task completed", "task_id", completed.ID)
	resp := toTaskResponse(completed)
	return CompleteTaskResponse{Found: true, TaskID: completed.ID, Task: &resp}, nil
}

// listTasks handles the list-tasks service request.
func (m *TaskModule) listTasks(ctx context.Context, _ ListTasksRequest, _ *mono.Msg) (ListTasksResponse, error) {
	tasks, err := m.list.Execute(ctx)
	if err != nil {
		return ListTasksResponse{}, fmt.Errorf("failed to list tasks: %w", err)
	}

	response := ListTasksResponse{
		Tasks: make([]TaskResponse, 0, len(tasks)),
		Total: len(tasks),
	}
	for _, t := range tasks {
		response.Tasks = append(response.Tasks, toTaskResponse(t))
	}
	return response, nil
}
