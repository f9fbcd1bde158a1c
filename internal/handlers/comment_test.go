package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/taskmgmt/task-management-api/internal/dto"
	"github.com/taskmgmt/task-management-api/internal/models"
)

type commentFixture struct {
	env   *testEnv
	user  *models.User
	task  *models.TaskItem
	token string
}

func setupCommentFixture(t *testing.T) commentFixture {
	env := setupTestEnv(t)
	user := env.createUser(t, "alice", "password123")
	project := env.createProject(t, "Main project", user.ID)
	task := env.createTask(t, "Main task", user.ID, project.ID)
	token := env.login(t, "alice", "password123")
	return commentFixture{env: env, user: user, task: task, token: token}
}

func TestCreateCommentRouteTaskWins(t *testing.T) {
	f := setupCommentFixture(t)
	other := f.env.createTask(t, "Other task", f.user.ID, f.task.ProjectID)

	// The body names a different task; the path segment is authoritative.
	w := f.env.do(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/comments", f.task.ID), map[string]any{
		"content":      "looks good",
		"task_item_id": other.ID,
		"user_id":      f.user.ID,
	}, f.token)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	require.Equal(t, "Comment created", resp.Message)

	var created dto.CommentResponse
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	require.Equal(t, f.task.ID, created.TaskItemID)
	require.Equal(t, f.user.ID, created.UserID)

	var stored models.Comment
	require.NoError(t, f.env.db.First(&stored, created.ID).Error)
	require.Equal(t, f.task.ID, stored.TaskItemID)
}

func TestCreateCommentUnknownTask(t *testing.T) {
	f := setupCommentFixture(t)

	w := f.env.do(t, http.MethodPost, "/api/tasks/999/comments", map[string]any{
		"content": "into the void",
		"user_id": f.user.ID,
	}, f.token)

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	require.Equal(t, "Task not found", resp.Message)
}

func TestListCommentsByTask(t *testing.T) {
	f := setupCommentFixture(t)
	f.env.createComment(t, "first", f.task.ID, f.user.ID)
	f.env.createComment(t, "second", f.task.ID, f.user.ID)

	other := f.env.createTask(t, "Other task", f.user.ID, f.task.ProjectID)
	f.env.createComment(t, "elsewhere", other.ID, f.user.ID)

	w := f.env.do(t, http.MethodGet, fmt.Sprintf("/api/tasks/%d/comments", f.task.ID), nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)

	var comments []dto.CommentResponse
	require.NoError(t, json.Unmarshal(resp.Data, &comments))
	require.Len(t, comments, 2)
}

func TestGetCommentScopedToTask(t *testing.T) {
	f := setupCommentFixture(t)
	comment := f.env.createComment(t, "scoped", f.task.ID, f.user.ID)
	other := f.env.createTask(t, "Other task", f.user.ID, f.task.ProjectID)

	w := f.env.do(t, http.MethodGet, fmt.Sprintf("/api/tasks/%d/comments/%d", f.task.ID, comment.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	// The same comment through the wrong task reads as missing.
	w = f.env.do(t, http.MethodGet, fmt.Sprintf("/api/tasks/%d/comments/%d", other.ID, comment.ID), nil, "")
	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	require.Equal(t, "Comment not found", resp.Message)
}

func TestUpdateCommentWrongTaskLeavesItUntouched(t *testing.T) {
	f := setupCommentFixture(t)
	comment := f.env.createComment(t, "original", f.task.ID, f.user.ID)
	other := f.env.createTask(t, "Other task", f.user.ID, f.task.ProjectID)

	w := f.env.do(t, http.MethodPut, fmt.Sprintf("/api/tasks/%d/comments/%d", other.ID, comment.ID), map[string]any{
		"content": "hijacked",
	}, f.token)

	require.Equal(t, http.StatusNotFound, w.Code)

	var stored models.Comment
	require.NoError(t, f.env.db.First(&stored, comment.ID).Error)
	require.Equal(t, "original", stored.Content)
}

func TestUpdateComment(t *testing.T) {
	f := setupCommentFixture(t)
	comment := f.env.createComment(t, "original", f.task.ID, f.user.ID)

	w := f.env.do(t, http.MethodPut, fmt.Sprintf("/api/tasks/%d/comments/%d", f.task.ID, comment.ID), map[string]any{
		"content": "edited",
	}, f.token)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	require.Equal(t, "Comment updated", resp.Message)

	var stored models.Comment
	require.NoError(t, f.env.db.First(&stored, comment.ID).Error)
	require.Equal(t, "edited", stored.Content)
	require.Equal(t, f.task.ID, stored.TaskItemID)
	require.GreaterOrEqual(t, stored.UpdatedAt.UnixNano(), stored.CreatedAt.UnixNano())
}

func TestDeleteCommentScopedToTask(t *testing.T) {
	f := setupCommentFixture(t)
	comment := f.env.createComment(t, "doomed", f.task.ID, f.user.ID)
	other := f.env.createTask(t, "Other task", f.user.ID, f.task.ProjectID)

	w := f.env.do(t, http.MethodDelete, fmt.Sprintf("/api/tasks/%d/comments/%d", other.ID, comment.ID), nil, f.token)
	require.Equal(t, http.StatusNotFound, w.Code)

	var count int64
	require.NoError(t, f.env.db.Model(&models.Comment{}).Count(&count).Error)
	require.Equal(t, int64(1), count)

	w = f.env.do(t, http.MethodDelete, fmt.Sprintf("/api/tasks/%d/comments/%d", f.task.ID, comment.ID), nil, f.token)
	require.Equal(t, http.StatusNoContent, w.Code)

	require.NoError(t, f.env.db.Model(&models.Comment{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateCommentEmptyContent(t *testing.T) {
	f := setupCommentFixture(t)

	w := f.env.do(t, http.MethodPost, fmt.Sprintf("/api/tasks/%d/comments", f.task.ID), map[string]any{
		"content": "",
		"user_id": f.user.ID,
	}, f.token)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
