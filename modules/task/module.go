package task

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/example/task-hub/domain/task"
	"github.com/example/task-hub/events"
	"github.com/example/task-hub/storage"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"github.com/go-monolith/mono/pkg/types"
	"gorm.io/gorm"
)

// TaskModule provides task management services (core domain).
// The database handle is owned by the caller; Stop does not close it.
type TaskModule struct {
	db       *gorm.DB
	repo     domain.Repository
	eventBus mono.EventBus
	logger   types.Logger

	create   *CreateTaskUseCase
	complete *CompleteTaskUseCase
	list     *GetTasksUseCase
}

var _ mono.Module = (*TaskModule)(nil)
var _ mono.ServiceProviderModule = (*TaskModule)(nil)
var _ mono.EventEmitterModule = (*TaskModule)(nil)
var _ mono.HealthCheckableModule = (*TaskModule)(nil)

// NewModule creates a TaskModule backed by db.
func NewModule(db *gorm.DB, logger types.Logger) *TaskModule {
	m := &TaskModule{
		db:     db,
		repo:   NewGormRepository(db),
		logger: logger.WithModule("task"),
	}
	m.wireUseCases()
	return m
}

func (m *TaskModule) Name() string {
	return "task"
}

func (m *TaskModule) SetEventBus(bus mono.EventBus) {
	m.eventBus = bus
	m.wireUseCases()
}

func (m *TaskModule) EmitEvents() []mono.BaseEventDefinition {
	return []mono.BaseEventDefinition{
		events.TaskCompletedV1.ToBase(),
	}
}

// wireUseCases builds the use cases, adding the event bus publisher once a bus is known.
func (m *TaskModule) wireUseCases() {
	var opts []CompleteOption
	if m.eventBus != nil {
		opts = append(opts, WithEventPublisher(NewEventBusPublisher(m.eventBus, m.logger)))
	}
	m.create = NewCreateTaskUseCase(m.repo)
	m.complete = NewCompleteTaskUseCase(m.repo, opts...)
	m.list = NewGetTasksUseCase(m.repo)
}

func (m *TaskModule) RegisterServices(container mono.ServiceContainer) error {
	if err := helper.RegisterTypedRequestReplyService(
		container, "create-task", json.Unmarshal, json.Marshal, m.createTask,
	); err != nil {
		return fmt.Errorf("failed to register create-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "complete-task", json.Unmarshal, json.Marshal, m.completeTask,
	); err != nil {
		return fmt.Errorf("failed to register complete-task service: %w", err)
	}

	if err := helper.RegisterTypedRequestReplyService(
		container, "list-tasks", json.Unmarshal, json.Marshal, m.listTasks,
	); err != nil {
		return fmt.Errorf("failed to register list-tasks service: %w", err)
	}

	m.logger.Info("Registered services", "services", "create-task, complete-task, list-tasks")
	return nil
}

// Start runs migrations for the tasks table.
func (m *TaskModule) Start(_ context.Context) error {
	if m.db == nil {
		return fmt.Errorf("database handle not set")
	}
	if err := AutoMigrate(m.db); err != nil {
		return err
	}
	if m.eventBus == nil {
		m.logger.Warn("eventBus not set, completion events will not be published")
	}
	m.logger.Info("Module started", "driver", storage.Driver(m.db))
	return nil
}

func (m *TaskModule) Stop(_ context.Context) error {
	m.logger.Info("Module stopped")
	return nil
}

// Health pings the database.
func (m *TaskModule) Health(ctx context.Context) mono.HealthStatus {
	if err := storage.Ping(ctx, m.db); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: err.Error(),
		}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver": storage.Driver(m.db),
		},
	}
}
