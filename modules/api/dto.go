package api

import "time"

// CreateTaskRequest is the HTTP request for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TaskResponse is the HTTP response for a single task.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskMessageResponse is a task plus a localized message.
type TaskMessageResponse struct {
	TaskResponse
	Message string `json:"message"`
}

// ListTasksResponse is the HTTP response for listing tasks.
type ListTasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Total int            `json:"total"`
}

// LastTaskResponse is the HTTP response for the last task created in this session.
type LastTaskResponse struct {
	TaskID string `json:"task_id"`
}

// HealthResponse is the HTTP response for health check.
type HealthResponse struct {
	Status        string `json:"status"`
	NetworkOnline bool   `json:"network_online"`
}

// ErrorResponse is the HTTP response for errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
