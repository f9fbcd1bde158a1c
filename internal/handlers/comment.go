package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/taskmgmt/task-management-api/internal/dto"
	"github.com/taskmgmt/task-management-api/internal/httputil"
	"github.com/taskmgmt/task-management-api/internal/services"
)

// CommentHandler coordinates the task-scoped comment CRUD HTTP handlers.
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// ListByTask returns all comments of the task named in the path.
func (h *CommentHandler) ListByTask(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	comments, err := h.commentService.ListCommentsByTask(c.Request.Context(), taskID)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	httputil.OK(c, "Comments fetched", dto.ToCommentResponses(comments))
}

// Get returns a single comment scoped to the task named in the path. A
// comment belonging to a different task is reported as not found.
func (h *CommentHandler) Get(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	comment, err := h.commentService.GetCommentInTask(c.Request.Context(), taskID, id)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	httputil.OK(c, "Comment fetched", dto.ToCommentResponse(*comment))
}

// Create persists a new comment beneath the task named in the path. The
// route value wins over whatever task the body names.
func (h *CommentHandler) Create(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	var req dto.CommentCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), services.CreateCommentInput{
		Content:         req.Content,
		TaskItemID:      taskID,
		CreatedByUserID: req.UserID,
	})
	if err != nil {
		respondCommentError(c, err)
		return
	}

	httputil.OK(c, "Comment created", dto.ToCommentResponse(*comment))
}

// Update overwrites the content of a comment scoped to the task named in
// the path.
func (h *CommentHandler) Update(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.CommentUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	comment, err := h.commentService.UpdateCommentInTask(c.Request.Context(), taskID, id, req.Content)
	if err != nil {
		respondCommentError(c, err)
		return
	}

	httputil.OK(c, "Comment updated", dto.ToCommentResponse(*comment))
}

// Delete removes a comment scoped to the task named in the path.
func (h *CommentHandler) Delete(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.commentService.DeleteCommentInTask(c.Request.Context(), taskID, id); err != nil {
		respondCommentError(c, err)
		return
	}

	httputil.NoContent(c)
}

func respondCommentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCommentNotFound):
		httputil.NotFound(c, "Comment not found")
	case errors.Is(err, services.ErrTaskNotFound):
		httputil.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrUserNotFound):
		httputil.NotFound(c, "User not found")
	default:
		httputil.InternalError(c)
	}
}
