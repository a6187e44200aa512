package settings

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agencydash/agency-backend/internal/auth"
)

// Store captures the persistence operations the settings endpoints need.
type Store interface {
	Theme(ctx context.Context, userID uuid.UUID) (Theme, error)
	SetTheme(ctx context.Context, userID uuid.UUID, theme Theme) error
}

type Handler struct {
	store Store
}

func Register(rg *gin.RouterGroup, store Store) {
	h := &Handler{store: store}

	rg.GET("/theme", h.getTheme)
	rg.PUT("/theme", h.updateTheme)
}

type themeResp struct {
	Theme Theme `json:"theme"`
}

func (h *Handler) getTheme(c *gin.Context) {
	theme, err := h.store.Theme(c.Request.Context(), auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch theme"})
		return
	}
	c.JSON(http.StatusOK, themeResp{Theme: theme})
}

type themeUpdateReq struct {
	Theme Theme `json:"theme" binding:"required"`
}

func (h *Handler) updateTheme(c *gin.Context) {
	var req themeUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil || !req.Theme.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "theme must be 'light' or 'dark'"})
		return
	}

	if err := h.store.SetTheme(c.Request.Context(), auth.UserID(c), req.Theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save theme"})
		return
	}
	c.JSON(http.StatusOK, themeResp{Theme: req.Theme})
}
