package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/taskmgmt/task-management-api/internal/models"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create creates a new task
func (r *GormTaskRepository) Create(ctx context.Context, task *models.TaskItem) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// FindByID finds a task by ID with its comments
func (r *GormTaskRepository) FindByID(ctx context.Context, id uint64) (*models.TaskItem, error) {
	var task models.TaskItem
	if err := r.db.WithContext(ctx).Preload("Comments").First(&task, id).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FindAll lists all tasks with their comments
func (r *GormTaskRepository) FindAll(ctx context.Context) ([]models.TaskItem, error) {
	var tasks []models.TaskItem
	if err := r.db.WithContext(ctx).Preload("Comments").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindByProjectID lists all tasks of a project with their comments
func (r *GormTaskRepository) FindByProjectID(ctx context.Context, projectID uint64) ([]models.TaskItem, error) {
	var tasks []models.TaskItem
	if err := r.db.WithContext(ctx).
		Preload("Comments").
		Where("project_id = ?", projectID).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// Update persists changes to a task. Associations are omitted so a
// preloaded comment list is never written back.
func (r *GormTaskRepository) Update(ctx context.Context, task *models.TaskItem) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(task).Error
}

// Delete removes a task and its comments in a transaction
func (r *GormTaskRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_item_id = ?", id).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.TaskItem{}, id).Error
	})
}
