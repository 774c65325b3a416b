package task

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/example/task-hub/domain/task"
	"gorm.io/gorm"
)

// taskRecord is the persisted form of a task.
// Timestamps are written from the entity, not generated by GORM.
type taskRecord struct {
	ID          string    `gorm:"primaryKey;type:text"`
	Title       string    `gorm:"index;not null;type:text"`
	Description string    `gorm:"type:text"`
	Status      string    `gorm:"not null;type:text"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName returns the table name for task records.
func (taskRecord) TableName() string {
	return "tasks"
}

func fromEntity(t *domain.Task) *taskRecord {
	return &taskRecord{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (r *taskRecord) toEntity() (*domain.Task, error) {
	status := domain.Status(r.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("task %s has unknown status %q", r.ID, r.Status)
	}
	return &domain.Task{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      status,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}, nil
}

// AutoMigrate creates or updates the tasks table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&taskRecord{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// GormRepository implements domain.Repository on top of GORM.
type GormRepository struct {
	db *gorm.DB
}

var _ domain.Repository = (*GormRepository)(nil)

// NewGormRepository creates a repository over an already opened database handle.
func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

// Save inserts the task or updates its mutable fields, then reads it back.
func (r *GormRepository) Save(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	var stored taskRecord
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing taskRecord
		err := tx.First(&existing, "id = ?", t.ID).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if err := tx.Create(fromEntity(t)).Error; err != nil {
				return fmt.Errorf("failed to create task: %w", err)
			}
		case err != nil:
			return fmt.Errorf("failed to find task: %w", err)
		default:
			if err := tx.Model(&existing).Updates(map[string]any{
				"title":       t.Title,
				"description": t.Description,
				"status":      string(t.Status),
				"updated_at":  t.UpdatedAt,
			}).Error; err != nil {
				return fmt.Errorf("failed to update task: %w", err)
			}
		}

		if err := tx.First(&stored, "id = ?", t.ID).Error; err != nil {
			return fmt.Errorf("failed to reload task: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stored.toEntity()
}

// GetByID retrieves a task by its ID.
func (r *GormRepository) GetByID(ctx context.Context, id string) (*domain.Task, bool, error) {
	var record taskRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to find task: %w", err)
	}
	t, err := record.toEntity()
	if err != nil {
		return nil, false, err
	}
	return t, true, nil
}

// GetAll retrieves all tasks.
func (r *GormRepository) GetAll(ctx context.Context) ([]*domain.Task, error) {
	var records []taskRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to find tasks: %w", err)
	}

	tasks := make([]*domain.Task, 0, len(records))
	for i := range records {
		t, err := records[i].toEntity()
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}

// Delete removes a task by ID.
func (r *GormRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&taskRecord{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	return nil
}
