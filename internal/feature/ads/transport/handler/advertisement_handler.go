// Package handler provides the HTTP handlers for the ads feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"adboard_backend/internal/feature/ads/domain/entity"
	"adboard_backend/internal/feature/ads/transport/http/dto"
	"adboard_backend/internal/feature/ads/usecase"
	"adboard_backend/internal/platform/httpx"
)

// AdvertisementUsecase defines the advertisement operations consumed by
// the HTTP layer. Defined by the consumer (handler), implemented by
// usecase.
type AdvertisementUsecase interface {
	// Create stores a new advertisement and returns it with the generated
	// ID and creation timestamp.
	Create(ctx context.Context, title, description string, userID uint) (*entity.Advertisement, error)
	// Get returns the advertisement with the given ID.
	Get(ctx context.Context, id uint) (*entity.Advertisement, error)
	// Patch applies a partial update to the advertisement with the given ID.
	Patch(ctx context.Context, id uint, patch usecase.AdvertisementPatch) error
	// Delete removes the advertisement with the given ID.
	Delete(ctx context.Context, id uint) error
}

// AdvertisementHandler handles HTTP requests for the advertisement
// resource.
type AdvertisementHandler struct {
	ads AdvertisementUsecase
}

// NewAdvertisementHandler creates a new AdvertisementHandler instance.
// Constructor for dependency injection.
func NewAdvertisementHandler(ads AdvertisementUsecase) *AdvertisementHandler {
	return &AdvertisementHandler{ads: ads}
}

// respondError maps advertisement domain errors to the error envelope.
// NotFound is rendered as 400 to match the user resource.
func (h *AdvertisementHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrAdvertisementNotFound) {
		httpx.Error(c, http.StatusBadRequest, "advertisement_not_found")
		return
	}
	httpx.Internal(c, err)
}

// Create handles POST /advertisement.
func (h *AdvertisementHandler) Create(c *gin.Context) {
	var req dto.CreateAdvertisementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create advertisement validation failed", "error", err, "remote_addr", c.ClientIP())
		httpx.BindingError(c, err)
		return
	}
	ad, err := h.ads.Create(c.Request.Context(), req.Title, req.Description, req.UserID)
	if err != nil {
		slog.Warn("create advertisement failed", "error", err)
		h.respondError(c, err)
		return
	}
	slog.Info("advertisement created", "id", ad.ID, "user_id", ad.UserID)
	c.JSON(http.StatusOK, dto.CreateAdvertisementResp{Status: "success", IDAdv: ad.ID, UserID: ad.UserID})
}

// Get handles GET /advertisement/:id.
func (h *AdvertisementHandler) Get(c *gin.Context) {
	id, err := httpx.ParamID(c, "id")
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, []httpx.FieldError{{Field: "id", Reason: "must be an integer"}})
		return
	}
	ad, err := h.ads.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AdvertisementResp{
		Title:       ad.Title,
		Description: ad.Description,
		Date:        ad.CreationTime.Format(time.RFC3339),
		UserID:      ad.UserID,
	})
}

// Patch handles PATCH /advertisement/:id.
func (h *AdvertisementHandler) Patch(c *gin.Context) {
	id, err := httpx.ParamID(c, "id")
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, []httpx.FieldError{{Field: "id", Reason: "must be an integer"}})
		return
	}
	var req dto.PatchAdvertisementReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("patch advertisement validation failed", "error", err, "remote_addr", c.ClientIP())
		httpx.BindingError(c, err)
		return
	}
	patch := usecase.AdvertisementPatch{Title: req.Title, Description: req.Description}
	if err := h.ads.Patch(c.Request.Context(), id, patch); err != nil {
		slog.Warn("patch advertisement failed", "error", err, "id", id)
		h.respondError(c, err)
		return
	}
	slog.Info("advertisement patched", "id", id)
	httpx.Success(c)
}

// Delete handles DELETE /advertisement/:id.
func (h *AdvertisementHandler) Delete(c *gin.Context) {
	id, err := httpx.ParamID(c, "id")
	if err != nil {
		httpx.Error(c, http.StatusBadRequest, []httpx.FieldError{{Field: "id", Reason: "must be an integer"}})
		return
	}
	if err := h.ads.Delete(c.Request.Context(), id); err != nil {
		slog.Warn("delete advertisement failed", "error", err, "id", id)
		h.respondError(c, err)
		return
	}
	slog.Info("advertisement deleted", "id", id)
	httpx.Success(c)
}
