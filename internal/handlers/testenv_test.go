package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/taskmgmt/task-management-api/internal/config"
	"github.com/taskmgmt/task-management-api/internal/middleware"
	"github.com/taskmgmt/task-management-api/internal/models"
	"github.com/taskmgmt/task-management-api/internal/repository"
	"github.com/taskmgmt/task-management-api/internal/services"
)

// envelope mirrors dto.APIResponse with raw data for per-test decoding.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.TaskItem{},
		&models.Comment{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	jwtCfg := config.JWTConfig{
		Secret:   "test-secret",
		Issuer:   "task-management-api",
		Audience: "task-management-client",
		TTL:      time.Hour,
	}

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	authHandler := NewAuthHandler(services.NewAuthService(userRepo, jwtCfg))
	userHandler := NewUserHandler(services.NewUserService(userRepo))
	projectHandler := NewProjectHandler(services.NewProjectService(projectRepo, userRepo))
	taskHandler := NewTaskHandler(services.NewTaskService(taskRepo, projectRepo, userRepo))
	commentHandler := NewCommentHandler(services.NewCommentService(commentRepo, taskRepo, userRepo))

	requireAuth := middleware.RequireAuth(jwtCfg)

	r := gin.New()
	api := r.Group("/api")

	api.POST("/auth/login", authHandler.Login)

	users := api.Group("/users")
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	projects := api.Group("/projects")
	projects.Use(requireAuth)
	projects.GET("", projectHandler.List)
	projects.POST("", projectHandler.Create)
	projects.GET("/:projectId", projectHandler.Get)
	projects.PUT("/:projectId", projectHandler.Update)
	projects.DELETE("/:projectId", projectHandler.Delete)
	projects.GET("/:projectId/tasks", taskHandler.ListByProject)
	projects.POST("/:projectId/tasks", taskHandler.CreateInProject)

	tasks := api.Group("/tasks")
	tasks.GET("", taskHandler.List)
	tasks.GET("/:taskId", taskHandler.Get)
	tasks.POST("", requireAuth, taskHandler.Create)
	tasks.PUT("/:taskId", requireAuth, taskHandler.Update)
	tasks.DELETE("/:taskId", requireAuth, taskHandler.Delete)
	tasks.GET("/:taskId/comments", commentHandler.ListByTask)
	tasks.GET("/:taskId/comments/:id", commentHandler.Get)
	tasks.POST("/:taskId/comments", requireAuth, commentHandler.Create)
	tasks.PUT("/:taskId/comments/:id", requireAuth, commentHandler.Update)
	tasks.DELETE("/:taskId/comments/:id", requireAuth, commentHandler.Delete)

	return &testEnv{
		db:     db,
		router: r,
	}
}

// do performs a request against the test router. An empty token leaves the
// Authorization header unset.
func (env *testEnv) do(t *testing.T, method, path string, payload any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (env *testEnv) createUser(t *testing.T, username, password string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		Role:         models.DefaultUserRole,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) createProject(t *testing.T, name string, userID uint64) *models.Project {
	t.Helper()

	project := &models.Project{
		Name:   name,
		UserID: userID,
	}
	require.NoError(t, env.db.Create(project).Error)
	return project
}

func (env *testEnv) createTask(t *testing.T, title string, userID, projectID uint64) *models.TaskItem {
	t.Helper()

	task := &models.TaskItem{
		Title:     title,
		Status:    models.TaskStatusNew,
		UserID:    userID,
		ProjectID: projectID,
	}
	require.NoError(t, env.db.Create(task).Error)
	return task
}

func (env *testEnv) createComment(t *testing.T, content string, taskID, userID uint64) *models.Comment {
	t.Helper()

	comment := &models.Comment{
		Content:         content,
		TaskItemID:      taskID,
		CreatedByUserID: userID,
	}
	require.NoError(t, env.db.Create(comment).Error)
	return comment
}

// login obtains a bearer token through the real login flow.
func (env *testEnv) login(t *testing.T, username, password string) string {
	t.Helper()

	w := env.do(t, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var token string
	resp := decodeEnvelope(t, w)
	require.NoError(t, json.Unmarshal(resp.Data, &token))
	require.NotEmpty(t, token)
	return token
}
