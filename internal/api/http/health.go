package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// DBPinger is the slice of the database pool the health check needs.
type DBPinger interface {
	Ping(ctx context.Context) error
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	DB        string    `json:"db"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthHandler struct {
	serviceName string
	version     string
	db          DBPinger
}

func NewHealthHandler(serviceName, version string, db DBPinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		db:          db,
	}
}

// HealthCheck reports the service as healthy while it can reach the database
// and degraded otherwise. The endpoint itself always answers 200 so load
// balancers can read the body instead of guessing from connection errors.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := "healthy"
	dbStatus := "up"

	pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
	defer cancel()

	if err := h.db.Ping(pingCtx); err != nil {
		status = "degraded"
		dbStatus = "down"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Service:   h.serviceName,
		Version:   h.version,
		DB:        dbStatus,
		Timestamp: time.Now().UTC(),
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
