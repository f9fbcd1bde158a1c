package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/taskmgmt/task-management-api/internal/dto"
	"github.com/taskmgmt/task-management-api/internal/httputil"
	"github.com/taskmgmt/task-management-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Login authenticates a user and returns a bearer token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, _, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			httputil.Unauthorized(c, "Invalid username or password")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, "Login successful", token)
}
