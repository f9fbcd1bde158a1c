package dto

import (
	"time"

	"github.com/taskmgmt/task-management-api/internal/models"
)

// CommentCreateRequest is the payload for creating a comment. TaskItemID is
// optional in the body because the task-scoped route supplies it from the
// path and overrides whatever the caller sent.
type CommentCreateRequest struct {
	Content    string `json:"content" binding:"required,min=1"`
	TaskItemID uint64 `json:"task_item_id" binding:"omitempty,gte=1"`
	UserID     uint64 `json:"user_id" binding:"required,gte=1"`
}

// CommentUpdateRequest carries the only mutable comment field.
type CommentUpdateRequest struct {
	Content string `json:"content" binding:"required,min=1"`
}

// CommentResponse represents a comment in API responses.
type CommentResponse struct {
	ID         uint64    `json:"id"`
	Content    string    `json:"content"`
	TaskItemID uint64    `json:"task_item_id"`
	UserID     uint64    `json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToCommentResponse converts a Comment model to CommentResponse.
func ToCommentResponse(comment models.Comment) CommentResponse {
	return CommentResponse{
		ID:         comment.ID,
		Content:    comment.Content,
		TaskItemID: comment.TaskItemID,
		UserID:     comment.CreatedByUserID,
		CreatedAt:  comment.CreatedAt,
		UpdatedAt:  comment.UpdatedAt,
	}
}

// ToCommentResponses converts a slice of comments.
func ToCommentResponses(comments []models.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = ToCommentResponse(comment)
	}
	return responses
}
