package task

import (
	"context"

	domain "github.com/example/task-hub/domain/task"
)

// CreateTaskUseCase creates pending tasks.
type CreateTaskUseCase struct {
	repo domain.Repository
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase.
func NewCreateTaskUseCase(repo domain.Repository) *CreateTaskUseCase {
	return &CreateTaskUseCase{repo: repo}
}

// Execute builds a pending task and returns it as persisted by the repository.
// Input validation is left to the caller.
func (u *CreateTaskUseCase) Execute(ctx context.Context, title, description string) (*domain.Task, error) {
	return u.repo.Save(ctx, domain.New(title, description))
}

// CompleteTaskUseCase marks tasks as completed.
type CompleteTaskUseCase struct {
	repo      domain.Repository
	publisher domain.EventPublisher
}

// CompleteOption configures a CompleteTaskUseCase.
type CompleteOption func(*CompleteTaskUseCase)

// WithEventPublisher sets the publisher notified after each completion.
func WithEventPublisher(p domain.EventPublisher) CompleteOption {
	return func(u *CompleteTaskUseCase) {
		u.publisher = p
	}
}

// NewCompleteTaskUseCase creates a new CompleteTaskUseCase.
// Without WithEventPublisher no completion events are published.
func NewCompleteTaskUseCase(repo domain.Repository, opts ...CompleteOption) *CompleteTaskUseCase {
	u := &CompleteTaskUseCase{repo: repo}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Execute fetches the task, completes it, saves it and publishes the saved state.
// A missing task yields *domain.NotFoundError; repository errors are returned as is.
//
// Concurrent calls for the same id are not serialized: both may read the
// pending task and the last save wins.
func (u *CompleteTaskUseCase) Execute(ctx context.Context, id string) (*domain.Task, error) {
	t, found, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, &domain.NotFoundError{ID: id}
	}

	t.Complete()

	saved, err := u.repo.Save(ctx, t)
	if err != nil {
		return nil, err
	}

	if u.publisher != nil {
		u.publisher.PublishCompleted(ctx, saved)
	}

	return saved, nil
}

// GetTasksUseCase lists tasks.
type GetTasksUseCase struct {
	repo domain.Repository
}

// NewGetTasksUseCase creates a new GetTasksUseCase.
func NewGetTasksUseCase(repo domain.Repository) *GetTasksUseCase {
	return &GetTasksUseCase{repo: repo}
}

// Execute returns every stored task unmodified.
func (u *GetTasksUseCase) Execute(ctx context.Context) ([]*domain.Task, error) {
	return u.repo.GetAll(ctx)
}
