// Package handler provides the HTTP handlers for the users feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"adboard_backend/internal/feature/users/domain/entity"
	"adboard_backend/internal/feature/users/transport/http/dto"
	"adboard_backend/internal/feature/users/usecase"
	"adboard_backend/internal/platform/httpx"
)

// UserUsecase defines the user operations consumed by the HTTP layer.
// Following Go convention, the interface is defined by the consumer
// (handler) rather than the provider (usecase).
type UserUsecase interface {
	// Create stores a new user and returns it with the generated ID.
	Create(ctx context.Context, username, password string) (*entity.User, error)
	// Get returns the user with the given ID.
	Get(ctx context.Context, id uint) (*entity.User, error)
	// Patch applies a partial update to the user with the given ID.
	Patch(ctx context.Context, id uint, patch usecase.UserPatch) error
	// Delete removes the user with the given ID.
	Delete(ctx context.Context, id uint) error
}

// UserHandler handles HTTP requests for the user resource.
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler creates a new UserHandler instance.
// Constructor for dependency injection.
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// respondError maps user domain errors to the error envelope. NotFound
// and Conflict are both rendered as 400; everything else is an internal
// failure.
func (h *UserHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		httpx.Error(c, http.StatusBadRequest, "user_not_found")
	case errors.Is(err, usecase.ErrUsernameAlreadyExists):
		httpx.Error(c, http.StatusBadRequest, "user_already_exists")
	default:
		httpx.Internal(c, err)
	}
}

// Create handles POST /user.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		httpx.BindingError(c, err)
		return
	}
	user, err := h.users.Create(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		slog.Warn("create user failed", "error", err, "username", req.Username)
		h.respondError(c, err)
		return
	}
	slog.Info("user created", "id", user.ID, "username", user.Username)
	c.JSON(http.StatusOK, dto.CreateUserResp{Status: "success", ID: user.ID})
}

// Get handles GET /user/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, err := httpx.ParamID(c, "id")
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, []httpx.FieldError{{Field: "id", Reason: "must be an integer"}})
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UserResp{IDUser: user.ID, Username: user.Username})
}

// Patch handles PATCH /user/:id.
func (h *UserHandler) Patch(c *gin.Context) {
	id, err := httpx.ParamID(c, "id")
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, []httpx.FieldError{{Field: "id", Reason: "must be an integer"}})
		return
	}
	var req dto.PatchUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("patch user validation failed", "error", err, "remote_addr", c.ClientIP())
		httpx.BindingError(c, err)
		return
	}
	patch := usecase.UserPatch{Username: req.Username, Password: req.Password}
	if err := h.users.Patch(c.Request.Context(), id, patch); err != nil {
		slog.Warn("patch user failed", "error", err, "id", id)
		h.respondError(c, err)
		return
	}
	slog.Info("user patched", "id", id)
	httpx.Success(c)
}

// Delete handles DELETE /user/:id.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := httpx.ParamID(c, "id")
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, []httpx.FieldError{{Field: "id", Reason: "must be an integer"}})
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		slog.Warn("delete user failed", "error", err, "id", id)
		h.respondError(c, err)
		return
	}
	slog.Info("user deleted", "id", id)
	httpx.Success(c)
}
