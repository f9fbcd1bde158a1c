package dto

import (
	"time"

	"github.com/taskmgmt/task-management-api/internal/models"
)

// TaskCreateRequest is the payload for creating a task. ProjectID is
// optional in the body because the project-scoped route supplies it from the
// path and overrides whatever the caller sent.
type TaskCreateRequest struct {
	Title       string            `json:"title" binding:"required,min=3"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status" binding:"omitempty,oneof=New InProgress Done OnHold Cancelled"`
	UserID      uint64            `json:"user_id" binding:"required,gte=1"`
	ProjectID   uint64            `json:"project_id" binding:"omitempty,gte=1"`
}

// TaskUpdateRequest carries the mutable task fields. Assignee and project
// are fixed at creation time.
type TaskUpdateRequest struct {
	Title       string            `json:"title" binding:"required,min=3"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status" binding:"omitempty,oneof=New InProgress Done OnHold Cancelled"`
}

// TaskItemResponse represents a task in API responses.
type TaskItemResponse struct {
	ID          uint64            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	UserID      uint64            `json:"user_id"`
	ProjectID   uint64            `json:"project_id"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
	Comments    []CommentResponse `json:"comments,omitempty"`
}

// ToTaskItemResponse converts a TaskItem model to TaskItemResponse,
// including its comments when they were eagerly loaded.
func ToTaskItemResponse(task models.TaskItem) TaskItemResponse {
	response := TaskItemResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		UserID:      task.UserID,
		ProjectID:   task.ProjectID,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}

	if len(task.Comments) > 0 {
		response.Comments = ToCommentResponses(task.Comments)
	}

	return response
}

// ToTaskItemResponses converts a slice of tasks.
func ToTaskItemResponses(tasks []models.TaskItem) []TaskItemResponse {
	responses := make([]TaskItemResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = ToTaskItemResponse(task)
	}
	return responses
}
