package httputil

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskmgmt/task-management-api/internal/dto"
)

// OK sends a 200 response with the standard envelope.
func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created sends a 201 response with the standard envelope.
func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, dto.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// NoContent sends a bare 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 response.
func BadRequest(c *gin.Context, message string) {
	fail(c, http.StatusBadRequest, message, nil)
}

// ValidationFailed sends a 400 response carrying the field-error list.
func ValidationFailed(c *gin.Context, fieldErrors []string) {
	fail(c, http.StatusBadRequest, "Validation failed", fieldErrors)
}

// Unauthorized sends a 401 response.
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	fail(c, http.StatusUnauthorized, message, nil)
}

// NotFound sends a 404 response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	fail(c, http.StatusNotFound, message, nil)
}

// Conflict sends a 409 response.
func Conflict(c *gin.Context, message string) {
	if message == "" {
		message = "Resource conflict"
	}
	fail(c, http.StatusConflict, message, nil)
}

// InternalError sends a 500 response. The underlying cause is never included.
func InternalError(c *gin.Context) {
	fail(c, http.StatusInternalServerError, "Internal server error", nil)
}

func fail(c *gin.Context, status int, message string, data any) {
	c.JSON(status, dto.APIResponse{
		Success: false,
		Message: message,
		Data:    data,
	})
}
