package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agencydash/agency-backend/internal/auth"
	"github.com/agencydash/agency-backend/internal/storage"
)

// ProfileStore captures the persistence operations the profile endpoints need.
type ProfileStore interface {
	Profile(ctx context.Context, id uuid.UUID) (User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, fullName, avatarURL *string) (User, error)
}

type Handler struct {
	store ProfileStore
}

func Register(rg *gin.RouterGroup, store ProfileStore) {
	h := &Handler{store: store}

	rg.GET("/me", h.me)
	rg.PUT("/me", h.updateMe)
}

func (h *Handler) me(c *gin.Context) {
	u, err := h.store.Profile(c.Request.Context(), auth.UserID(c))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch profile"})
		return
	}
	c.JSON(http.StatusOK, u)
}

type updateProfileReq struct {
	FullName  *string `json:"full_name" binding:"omitempty,max=255"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url"`
}

func (h *Handler) updateMe(c *gin.Context) {
	var req updateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	u, err := h.store.UpdateProfile(c.Request.Context(), auth.UserID(c), req.FullName, req.AvatarURL)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, u)
}
