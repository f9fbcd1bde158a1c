package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/taskmgmt/task-management-api/internal/dto"
	"github.com/taskmgmt/task-management-api/internal/httputil"
	"github.com/taskmgmt/task-management-api/internal/services"
)

// TaskHandler coordinates task CRUD HTTP handlers, including the
// project-scoped routes.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// List returns all tasks with their comments.
func (h *TaskHandler) List(c *gin.Context) {
	tasks, err := h.taskService.ListTasks(c.Request.Context())
	if err != nil {
		respondTaskError(c, err)
		return
	}

	httputil.OK(c, "Tasks fetched", dto.ToTaskItemResponses(tasks))
}

// ListByProject returns the tasks of the project named in the path.
func (h *TaskHandler) ListByProject(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	tasks, err := h.taskService.ListTasksByProject(c.Request.Context(), projectID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	httputil.OK(c, "Tasks fetched", dto.ToTaskItemResponses(tasks))
}

// Get returns a single task with its comments.
func (h *TaskHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), id)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	httputil.OK(c, "Task fetched", dto.ToTaskItemResponse(*task))
}

// Create persists a new task. The project reference comes from the body.
func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.TaskCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.ProjectID == 0 {
		httputil.ValidationFailed(c, []string{"project_id is required"})
		return
	}

	h.createTask(c, req, req.ProjectID)
}

// CreateInProject persists a new task beneath the project named in the
// path. The route value wins over whatever project the body names.
func (h *TaskHandler) CreateInProject(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	var req dto.TaskCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	h.createTask(c, req, projectID)
}

func (h *TaskHandler) createTask(c *gin.Context, req dto.TaskCreateRequest, projectID uint64) {
	task, err := h.taskService.CreateTask(c.Request.Context(), services.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		UserID:      req.UserID,
		ProjectID:   projectID,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	httputil.OK(c, "Task created", dto.ToTaskItemResponse(*task))
}

// Update overwrites the mutable fields of a task.
func (h *TaskHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	var req dto.TaskUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	task, err := h.taskService.UpdateTask(c.Request.Context(), id, services.UpdateTaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	httputil.OK(c, "Task updated", dto.ToTaskItemResponse(*task))
}

// Delete removes a task and its comments.
func (h *TaskHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "taskId")
	if !ok {
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		respondTaskError(c, err)
		return
	}

	httputil.NoContent(c)
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTaskNotFound):
		httputil.NotFound(c, "Task not found")
	case errors.Is(err, services.ErrProjectNotFound):
		httputil.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrUserNotFound):
		httputil.NotFound(c, "User not found")
	default:
		httputil.InternalError(c)
	}
}
