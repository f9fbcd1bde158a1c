package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/taskmgmt/task-management-api/internal/dto"
	"github.com/taskmgmt/task-management-api/internal/httputil"
	"github.com/taskmgmt/task-management-api/internal/services"
)

// ProjectHandler coordinates project CRUD HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// List returns all projects with their tasks.
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		respondProjectError(c, err)
		return
	}

	httputil.OK(c, "Projects fetched successfully", dto.ToProjectResponses(projects))
}

// Get returns a single project with its tasks.
func (h *ProjectHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	httputil.OK(c, "Project fetched successfully", dto.ToProjectResponse(*project))
}

// Create persists a new project owned by the user named in the body.
func (h *ProjectHandler) Create(c *gin.Context) {
	var req dto.ProjectCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), services.CreateProjectInput{
		Name:        req.Name,
		Description: req.Description,
		UserID:      req.UserID,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	httputil.OK(c, "Project created", dto.ToProjectResponse(*project))
}

// Update overwrites the mutable fields of a project.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	var req dto.ProjectUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, services.UpdateProjectInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	httputil.OK(c, "Project updated", dto.ToProjectResponse(*project))
}

// Delete removes a project, its tasks and their comments.
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		respondProjectError(c, err)
		return
	}

	httputil.NoContent(c)
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		httputil.NotFound(c, "Project not found")
	case errors.Is(err, services.ErrUserNotFound):
		httputil.NotFound(c, "User not found")
	default:
		httputil.InternalError(c)
	}
}
