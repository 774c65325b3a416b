package task

import (
	"time"

	"github.com/google/uuid"
)

// Status represents the state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Task is the core domain entity representing one unit of work.
// Status only ever moves from pending to completed.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// New builds a pending task with a fresh id. Title and description are not validated.
func New(title, description string) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Complete marks the task as completed and refreshes UpdatedAt.
// Completing an already completed task is allowed; only UpdatedAt changes.
func (t *Task) Complete() {
	t.Status = StatusCompleted
	t.UpdatedAt = time.Now().UTC()
}

// IsCompleted reports whether the task has been completed.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}
