package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/example/task-hub/events"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
)

// Notification is a delivered notification kept in memory.
type Notification struct {
	TaskID    string    `json:"task_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// NotificationModule reacts to task completion events.
// It subscribes to domain events using the EventConsumerModule interface.
type NotificationModule struct {
	logger        types.Logger
	notifications []Notification
	mu            sync.RWMutex
}

var _ mono.Module = (*NotificationModule)(nil)
var _ mono.EventConsumerModule = (*NotificationModule)(nil)
var _ mono.HealthCheckableModule = (*NotificationModule)(nil)

func NewModule(logger types.Logger) *NotificationModule {
	return &NotificationModule{
		logger:        logger.WithModule("notification"),
		notifications: make([]Notification, 0),
	}
}

func (m *NotificationModule) Name() string {
	return "notification"
}

func (m *NotificationModule) RegisterEventConsumers(registry mono.EventRegistry) error {
	if err := helper.RegisterTypedEventConsumer(registry, events.TaskCompletedV1, m.handleTaskCompleted, m); err != nil {
		return fmt.Errorf("failed to register TaskCompleted consumer: %w", err)
	}

	m.logger.Info("Registered event consumers", "events", "TaskCompleted")
	return nil
}

func (m *NotificationModule) handleTaskCompleted(_ context.Context, event events.TaskCompletedEvent, _ *mono.Msg) error {
	message := fmt.Sprintf("Task '%s' completed", event.Title)
	m.logger.Info(message, "task_id", event.TaskID, "completed_at", event.CompletedAt)
	m.record(Notification{
		TaskID:    event.TaskID,
		Type:      "task_completed",
		Message:   message,
		Timestamp: time.Now().UTC(),
	})
	return nil
}

func (m *NotificationModule) record(n Notification) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notifications = append(m.notifications, n)
}

// GetNotifications returns a copy of the notification history, oldest first.
func (m *NotificationModule) GetNotifications() []Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]Notification, len(m.notifications))
	copy(result, m.notifications)
	return result
}

func (m *NotificationModule) Start(_ context.Context) error {
	m.logger.Info("Module started - listening for task events")
	return nil
}

func (m *NotificationModule) Stop(_ context.Context) error {
	m.logger.Info("Module stopped")
	return nil
}

// Health reports how many notifications were delivered and the latest one.
func (m *NotificationModule) Health(_ context.Context) mono.HealthStatus {
	history := m.GetNotifications()
	details := map[string]any{
		"delivered": len(history),
	}
	if len(history) > 0 {
		details["last_message"] = history[len(history)-1].Message
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: details,
	}
}
