package dashboard

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agencydash/agency-backend/internal/auth"
)

type Handler struct {
	store Store
}

func Register(rg *gin.RouterGroup, store Store) {
	h := &Handler{store: store}

	rg.GET("/stats", h.stats)
}

func (h *Handler) stats(c *gin.Context) {
	stats, err := Collect(c.Request.Context(), h.store, auth.UserID(c), time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load dashboard stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
