package task

import (
	"context"
	"errors"
	"fmt"
)

// Repository is the persistence contract for tasks.
type Repository interface {
	// Save inserts the task, or updates title, description, status and
	// updated_at when a task with the same id exists. The returned task is
	// the stored state and should be used instead of the argument.
	Save(ctx context.Context, task *Task) (*Task, error)

	// GetByID returns found=false with a nil error when no task has the id.
	GetByID(ctx context.Context, id string) (task *Task, found bool, err error)

	// GetAll returns every stored task. Order is defined by the store.
	GetAll(ctx context.Context) ([]*Task, error)

	// Delete removes the task. Deleting an unknown id is a no-op.
	Delete(ctx context.Context, id string) error
}

// EventPublisher is notified after a task has been completed and persisted.
// Implementations handle their own failures; nothing is returned to the caller.
type EventPublisher interface {
	PublishCompleted(ctx context.Context, task *Task)
}

// ErrNotFound is matched by every *NotFoundError through errors.Is.
var ErrNotFound = errors.New("task not found")

// NotFoundError is returned when no task matches ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("task with ID %s not found", e.ID)
}

// Is makes errors.Is(err, ErrNotFound) hold for any *NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
