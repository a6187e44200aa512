package projects

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	httpapi "github.com/agencydash/agency-backend/internal/api/http"
	"github.com/agencydash/agency-backend/internal/auth"
	"github.com/agencydash/agency-backend/internal/storage"
)

const dateLayout = "2006-01-02"

// Store captures the persistence operations the project endpoints need.
type Store interface {
	Create(ctx context.Context, ownerID uuid.UUID, in NewProject) (Project, error)
	List(ctx context.Context, ownerID uuid.UUID, f Filter, limit, offset int) ([]Project, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (Project, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, p Patch) (Project, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
	ExportRows(ctx context.Context, ownerID uuid.UUID) ([]ExportRow, error)
}

// ClientChecker verifies a client belongs to the caller before it is
// referenced by a project.
type ClientChecker interface {
	Exists(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
}

type Handler struct {
	store   Store
	clients ClientChecker
}

func Register(rg *gin.RouterGroup, store Store, clients ClientChecker) {
	h := &Handler{store: store, clients: clients}

	rg.GET("/export.csv", h.exportCSV)
	rg.POST("", h.create)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
}

// ensureClient resolves a client reference to the caller, replying 404 when
// the client is absent or owned by someone else. Returns false once a
// response has been written.
func (h *Handler) ensureClient(c *gin.Context, ownerID, clientID uuid.UUID) bool {
	ok, err := h.clients.Exists(c.Request.Context(), ownerID, clientID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to verify client"})
		return false
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "client not found"})
		return false
	}
	return true
}

func parseDate(raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}

type createReq struct {
	ClientID     *uuid.UUID `json:"client_id"`
	Name         string     `json:"name" binding:"required,max=255"`
	Description  *string    `json:"description"`
	Status       *Status    `json:"status"`
	StartDate    *string    `json:"start_date"`
	DueDate      *string    `json:"due_date"`
	BudgetCents  *int64     `json:"budget_cents" binding:"omitempty,gte=0"`
	RevenueCents *int64     `json:"revenue_cents" binding:"omitempty,gte=0"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	status := StatusActive
	if req.Status != nil {
		if !req.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		status = *req.Status
	}

	start, ok := parseDate(req.StartDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	due, ok := parseDate(req.DueDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date"})
		return
	}

	ownerID := auth.UserID(c)
	if req.ClientID != nil && !h.ensureClient(c, ownerID, *req.ClientID) {
		return
	}

	in := NewProject{
		ClientID:    req.ClientID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Status:      status,
		StartDate:   start,
		DueDate:     due,
	}
	if req.BudgetCents != nil {
		in.BudgetCents = *req.BudgetCents
	}
	if req.RevenueCents != nil {
		in.RevenueCents = *req.RevenueCents
	}

	p, err := h.store.Create(c.Request.Context(), ownerID, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, p)
}

func (h *Handler) list(c *gin.Context) {
	limit, offset, ok := httpapi.LimitOffset(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pagination params"})
		return
	}

	f := Filter{Q: c.Query("q")}

	if raw := c.Query("status"); raw != "" {
		status := Status(raw)
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
			return
		}
		f.Status = &status
	}

	ownerID := auth.UserID(c)

	if raw := c.Query("client_id"); raw != "" {
		clientID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid client id"})
			return
		}
		if !h.ensureClient(c, ownerID, clientID) {
			return
		}
		f.ClientID = &clientID
	}

	items, err := h.store.List(c.Request.Context(), ownerID, f, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list projects"})
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	p, err := h.store.Get(c.Request.Context(), auth.UserID(c), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch project"})
		return
	}
	c.JSON(http.StatusOK, p)
}

type updateReq struct {
	ClientID     *uuid.UUID `json:"client_id"`
	Name         *string    `json:"name" binding:"omitempty,min=1,max=255"`
	Description  *string    `json:"description"`
	Status       *Status    `json:"status"`
	StartDate    *string    `json:"start_date"`
	DueDate      *string    `json:"due_date"`
	BudgetCents  *int64     `json:"budget_cents" binding:"omitempty,gte=0"`
	RevenueCents *int64     `json:"revenue_cents" binding:"omitempty,gte=0"`
}

func (h *Handler) update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if req.Status != nil && !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	start, ok := parseDate(req.StartDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date"})
		return
	}
	due, ok := parseDate(req.DueDate)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid due_date"})
		return
	}

	ownerID := auth.UserID(c)
	if req.ClientID != nil && !h.ensureClient(c, ownerID, *req.ClientID) {
		return
	}

	p, err := h.store.Update(c.Request.Context(), ownerID, id, Patch{
		ClientID:     req.ClientID,
		Name:         req.Name,
		Description:  req.Description,
		Status:       req.Status,
		StartDate:    start,
		DueDate:      due,
		BudgetCents:  req.BudgetCents,
		RevenueCents: req.RevenueCents,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update project"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid project id"})
		return
	}

	if err := h.store.Delete(c.Request.Context(), auth.UserID(c), id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete project"})
		return
	}
	c.Status(http.StatusNoContent)
}
