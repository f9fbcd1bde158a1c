package repository

import (
	"context"

	"github.com/taskmgmt/task-management-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *models.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(ctx context.Context, username string) (*models.User, error)

	// FindAll lists all users
	FindAll(ctx context.Context) ([]models.User, error)

	// Update persists changes to a user
	Update(ctx context.Context, user *models.User) error

	// Delete removes a user together with their projects, tasks and comments
	Delete(ctx context.Context, id uint64) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	// Create creates a new project
	Create(ctx context.Context, project *models.Project) error

	// FindByID finds a project by ID with its tasks
	FindByID(ctx context.Context, id uint64) (*models.Project, error)

	// FindAll lists all projects with their tasks
	FindAll(ctx context.Context) ([]models.Project, error)

	// Update persists changes to a project
	Update(ctx context.Context, project *models.Project) error

	// Delete removes a project together with its tasks and their comments
	Delete(ctx context.Context, id uint64) error
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(ctx context.Context, task *models.TaskItem) error

	// FindByID finds a task by ID with its comments
	FindByID(ctx context.Context, id uint64) (*models.TaskItem, error)

	// FindAll lists all tasks with their comments
	FindAll(ctx context.Context) ([]models.TaskItem, error)

	// FindByProjectID lists all tasks of a project with their comments
	FindByProjectID(ctx context.Context, projectID uint64) ([]models.TaskItem, error)

	// Update persists changes to a task
	Update(ctx context.Context, task *models.TaskItem) error

	// Delete removes a task together with its comments
	Delete(ctx context.Context, id uint64) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	// Create creates a new comment
	Create(ctx context.Context, comment *models.Comment) error

	// FindByID finds a comment by ID
	FindByID(ctx context.Context, id uint64) (*models.Comment, error)

	// FindByTaskID lists all comments of a task
	FindByTaskID(ctx context.Context, taskID uint64) ([]models.Comment, error)

	// Update persists changes to a comment
	Update(ctx context.Context, comment *models.Comment) error

	// Delete removes a comment
	Delete(ctx context.Context, id uint64) error
}
