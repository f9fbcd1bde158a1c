package dto

import (
	"time"

	"github.com/taskmgmt/task-management-api/internal/models"
)

// ProjectCreateRequest is the payload for creating a project. The owning
// user is fixed at creation time.
type ProjectCreateRequest struct {
	Name        string `json:"name" binding:"required,min=3"`
	Description string `json:"description"`
	UserID      uint64 `json:"user_id" binding:"required,gte=1"`
}

// ProjectUpdateRequest carries the mutable project fields. The owner cannot
// be re-assigned.
type ProjectUpdateRequest struct {
	Name        string `json:"name" binding:"required,min=3"`
	Description string `json:"description"`
}

// ProjectResponse represents a project in API responses.
type ProjectResponse struct {
	ID          uint64             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	UserID      uint64             `json:"user_id"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
	Tasks       []TaskItemResponse `json:"tasks,omitempty"`
}

// ToProjectResponse converts a Project model to ProjectResponse, including
// its tasks when they were eagerly loaded.
func ToProjectResponse(project models.Project) ProjectResponse {
	response := ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		UserID:      project.UserID,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}

	if len(project.Tasks) > 0 {
		response.Tasks = ToTaskItemResponses(project.Tasks)
	}

	return response
}

// ToProjectResponses converts a slice of projects.
func ToProjectResponses(projects []models.Project) []ProjectResponse {
	responses := make([]ProjectResponse, len(projects))
	for i, project := range projects {
		responses[i] = ToProjectResponse(project)
	}
	return responses
}
