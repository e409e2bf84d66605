// Package repository implements the data access layer for the application.
package repository

import (
	"context"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// TaskRepository defines persistence operations for tasks. No route exposes
// tasks yet; the repository exists for the seed tooling and future handlers.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	List(ctx context.Context) ([]*models.Task, error)
}

type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository returns a new TaskRepository implementation.
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *taskRepository) List(ctx context.Context) ([]*models.Task, error) {
	var tasks []*models.Task
	if err := r.db.WithContext(ctx).Order("id").Find(&tasks).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return tasks, nil
}
