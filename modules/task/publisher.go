package task

import (
	"context"

	domain "github.com/example/task-hub/domain/task"
	"github.com/example/task-hub/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
)

// EventBusPublisher publishes TaskCompleted events on the mono event bus.
type EventBusPublisher struct {
	bus    mono.EventBus
	logger types.Logger
}

var _ domain.EventPublisher = (*EventBusPublisher)(nil)

// NewEventBusPublisher creates a publisher over bus.
func NewEventBusPublisher(bus mono.EventBus, logger types.Logger) *EventBusPublisher {
	return &EventBusPublisher{bus: bus, logger: logger}
}

// PublishCompleted emits TaskCompletedV1. Publishing is best-effort:
// failures are logged and never reach the caller.
func (p *EventBusPublisher) PublishCompleted(_ context.Context, t *domain.Task) {
	event := events.TaskCompletedEvent{
		TaskID:      t.ID,
		Title:       t.Title,
		CompletedAt: t.UpdatedAt,
	}
	if err := events.TaskCompletedV1.Publish(p.bus, event, nil); err != nil {
		p.logger.Warn("Failed to publish TaskCompleted event", "task_id", t.ID, "error", err)
	}
}
