package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/taskmgmt/task-management-api/internal/models"
	"github.com/taskmgmt/task-management-api/internal/repository"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentService handles comment business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	taskRepo    repository.TaskRepository
	userRepo    repository.UserRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, taskRepo repository.TaskRepository, userRepo repository.UserRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		taskRepo:    taskRepo,
		userRepo:    userRepo,
	}
}

// CreateCommentInput represents parameters to create a new comment.
type CreateCommentInput struct {
	Content         string
	TaskItemID      uint64
	CreatedByUserID uint64
}

// ListCommentsByTask returns all comments of a task. The task must exist.
func (s *CommentService) ListCommentsByTask(ctx context.Context, taskID uint64) ([]models.Comment, error) {
	if _, err := s.taskRepo.FindByID(ctx, taskID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	comments, err := s.commentRepo.FindByTaskID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// GetCommentInTask retrieves a comment by ID, scoped to a task. A comment
// that exists but belongs to a different task is reported as not found so
// that objects outside the requested scope stay invisible.
func (s *CommentService) GetCommentInTask(ctx context.Context, taskID, id uint64) (*models.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}

	if comment.TaskItemID != taskID {
		return nil, ErrCommentNotFound
	}

	return comment, nil
}

// CreateComment persists a new comment after verifying that the task and the
// author exist. Both references are fixed for the lifetime of the comment.
func (s *CommentService) CreateComment(ctx context.Context, input CreateCommentInput) (*models.Comment, error) {
	if _, err := s.taskRepo.FindByID(ctx, input.TaskItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to verify task: %w", err)
	}

	if _, err := s.userRepo.FindByID(ctx, input.CreatedByUserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to verify author: %w", err)
	}

	comment := &models.Comment{
		Content:         input.Content,
		TaskItemID:      input.TaskItemID,
		CreatedByUserID: input.CreatedByUserID,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

// UpdateCommentInTask overwrites the content of a comment after checking it
// belongs to the given task.
func (s *CommentService) UpdateCommentInTask(ctx context.Context, taskID, id uint64, content string) (*models.Comment, error) {
	comment, err := s.GetCommentInTask(ctx, taskID, id)
	if err != nil {
		return nil, err
	}

	comment.Content = content

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}

	return comment, nil
}

// DeleteCommentInTask removes a comment after checking it belongs to the
// given task.
func (s *CommentService) DeleteCommentInTask(ctx context.Context, taskID, id uint64) error {
	if _, err := s.GetCommentInTask(ctx, taskID, id); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	return nil
}
