package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/taskmgmt/task-management-api/internal/models"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindAll lists all users
func (r *GormUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update persists changes to a user
func (r *GormUserRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// Delete removes a user and all owned data in a transaction. The explicit
// cascade keeps the hierarchy consistent even when the schema was created
// without foreign-key enforcement.
func (r *GormUserRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var projectIDs []uint64
		if err := tx.Model(&models.Project{}).
			Where("user_id = ?", id).
			Pluck("id", &projectIDs).Error; err != nil {
			return err
		}

		// Tasks assigned to the user or belonging to one of their projects.
		taskQuery := tx.Model(&models.TaskItem{}).Where("user_id = ?", id)
		if len(projectIDs) > 0 {
			taskQuery = tx.Model(&models.TaskItem{}).
				Where("user_id = ? OR project_id IN ?", id, projectIDs)
		}

		var taskIDs []uint64
		if err := taskQuery.Pluck("id", &taskIDs).Error; err != nil {
			return err
		}

		if len(taskIDs) > 0 {
			if err := tx.Where("task_item_id IN ?", taskIDs).
				Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}

		// Comments the user wrote on other people's tasks.
		if err := tx.Where("created_by_user_id = ?", id).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		if len(taskIDs) > 0 {
			if err := tx.Where("id IN ?", taskIDs).
				Delete(&models.TaskItem{}).Error; err != nil {
				return err
			}
		}

		if len(projectIDs) > 0 {
			if err := tx.Where("id IN ?", projectIDs).
				Delete(&models.Project{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.User{}, id).Error
	})
}
