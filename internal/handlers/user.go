package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/taskmgmt/task-management-api/internal/dto"
	"github.com/taskmgmt/task-management-api/internal/httputil"
	"github.com/taskmgmt/task-management-api/internal/services"
)

// UserHandler coordinates user CRUD HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// List returns all users.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondUserError(c, err)
		return
	}

	httputil.OK(c, "Users fetched successfully", dto.ToUserResponses(users))
}

// Get returns a single user by ID.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondUserError(c, err)
		return
	}

	httputil.OK(c, "User fetched successfully", dto.ToUserResponse(*user))
}

// Create registers a new user.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.UserCreateRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	httputil.Created(c, "User created successfully", dto.ToUserResponse(*user))
}

// Update overwrites the mutable fields of a user.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UserUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, services.UpdateUserInput{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		respondUserError(c, err)
		return
	}

	httputil.OK(c, "User updated successfully", dto.ToUserResponse(*user))
}

// Delete removes a user and everything they own.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondUserError(c, err)
		return
	}

	httputil.NoContent(c)
}

func respondUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		httputil.NotFound(c, "User not found")
	case errors.Is(err, services.ErrUsernameTaken):
		httputil.Conflict(c, "Username already exists")
	default:
		httputil.InternalError(c)
	}
}
