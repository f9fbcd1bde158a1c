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

func TestCreateUser(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/users", map[string]string{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "password123",
	}, "")

	require.Equal(t, http.StatusCreated, w.Code)
	resp := decodeEnvelope(t, w)
	require.True(t, resp.Success)
	require.Equal(t, "User created successfully", resp.Message)

	var created dto.UserResponse
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	require.NotZero(t, created.ID)
	require.Equal(t, "alice", created.Username)
	require.Equal(t, "alice@example.com", created.Email)
	require.False(t, created.CreatedAt.IsZero())
	require.Equal(t, created.CreatedAt, created.UpdatedAt)

	// The password hash stays out of the response body.
	require.NotContains(t, w.Body.String(), "password")

	var stored models.User
	require.NoError(t, env.db.First(&stored, created.ID).Error)
	require.NotEqual(t, "password123", stored.PasswordHash)
	require.Equal(t, models.DefaultUserRole, stored.Role)
}

func TestCreateUserInvalidEmail(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/users", map[string]string{
		"username": "alice",
		"email":    "not-an-email",
		"password": "password123",
	}, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	require.False(t, resp.Success)

	var details []string
	require.NoError(t, json.Unmarshal(resp.Data, &details))
	require.NotEmpty(t, details)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCreateUserDuplicateUsername(t *testing.T) {
	env := setupTestEnv(t)
	env.createUser(t, "alice", "password123")

	w := env.do(t, http.MethodPost, "/api/users", map[string]string{
		"username": "alice",
		"email":    "other@example.com",
		"password": "password123",
	}, "")

	require.Equal(t, http.StatusConflict, w.Code)
	resp := decodeEnvelope(t, w)
	require.False(t, resp.Success)
	require.Equal(t, "Username already exists", resp.Message)

	var count int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestGetUser(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "alice", "password123")

	w := env.do(t, http.MethodGet, fmt.Sprintf("/api/users/%d", user.ID), nil, "")

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	require.True(t, resp.Success)

	var fetched dto.UserResponse
	require.NoError(t, json.Unmarshal(resp.Data, &fetched))
	require.Equal(t, user.ID, fetched.ID)
	require.Equal(t, "alice", fetched.Username)
}

func TestGetUserNotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/users/999", nil, "")

	require.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	require.False(t, resp.Success)
	require.Equal(t, "User not found", resp.Message)
}

func TestUpdateUser(t *testing.T) {
	env := setupTestEnv(t)
	user := env.createUser(t, "alice", "password123")

	w := env.do(t, http.MethodPut, fmt.Sprintf("/api/users/%d", user.ID), map[string]string{
		"username": "alice2",
		"email":    "alice2@example.com",
	}, "")

	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, env.db.First(&stored, user.ID).Error)
	require.Equal(t, "alice2", stored.Username)
	require.Equal(t, "alice2@example.com", stored.Email)
	require.GreaterOrEqual(t, stored.UpdatedAt.UnixNano(), stored.CreatedAt.UnixNano())
}

func TestDeleteUserCascades(t *testing.T) {
	env := setupTestEnv(t)
	alice := env.createUser(t, "alice", "password123")
	bob := env.createUser(t, "bob", "password123")

	aliceProject := env.createProject(t, "Alice project", alice.ID)
	bobProject := env.createProject(t, "Bob project", bob.ID)
	aliceTask := env.createTask(t, "Alice task", alice.ID, aliceProject.ID)
	bobTask := env.createTask(t, "Bob task", bob.ID, bobProject.ID)
	env.createComment(t, "by alice on her task", aliceTask.ID, alice.ID)
	env.createComment(t, "by alice on bob's task", bobTask.ID, alice.ID)
	env.createComment(t, "by bob on bob's task", bobTask.ID, bob.ID)

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/users/%d", alice.ID), nil, "")
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Empty(t, w.Body.String())

	var users, projects, tasks, comments int64
	require.NoError(t, env.db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, env.db.Model(&models.Project{}).Count(&projects).Error)
	require.NoError(t, env.db.Model(&models.TaskItem{}).Count(&tasks).Error)
	require.NoError(t, env.db.Model(&models.Comment{}).Count(&comments).Error)

	require.Equal(t, int64(1), users)
	require.Equal(t, int64(1), projects)
	require.Equal(t, int64(1), tasks)
	require.Equal(t, int64(1), comments)

	var remaining models.Comment
	require.NoError(t, env.db.First(&remaining).Error)
	require.Equal(t, bob.ID, remaining.CreatedByUserID)
}

func TestDeleteUserNotFound(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, http.MethodDelete, "/api/users/999", nil, "")

	require.Equal(t, http.StatusNotFound, w.Code)
}
