package projects

import (
	"time"

	"github.com/google/uuid"
)

// Status is a project lifecycle status (matches the DB CHECK constraint).
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusPaused, StatusCancelled:
		return true
	}
	return false
}

// Project is the core aggregated entity, owned by exactly one user.
// Money fields are integer cents, never fractional currency.
type Project struct {
	ID           uuid.UUID  `json:"id"`
	OwnerUserID  uuid.UUID  `json:"owner_user_id"`
	ClientID     *uuid.UUID `json:"client_id"`
	Name         string     `json:"name"`
	Description  *string    `json:"description"`
	Status       Status     `json:"status"`
	StartDate    *time.Time `json:"start_date"`
	DueDate      *time.Time `json:"due_date"`
	BudgetCents  int64      `json:"budget_cents"`
	RevenueCents int64      `json:"revenue_cents"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at"`
}

// NewProject carries the fields accepted on creation.
type NewProject struct {
	ClientID     *uuid.UUID
	Name         string
	Description  *string
	Status       Status
	StartDate    *time.Time
	DueDate      *time.Time
	BudgetCents  int64
	RevenueCents int64
}

// Patch carries the fields of a partial update; nil keeps the current value.
// Because absent, null and empty-string dates all map to nil, a set
// start_date or due_date cannot be cleared through an update.
type Patch struct {
	ClientID     *uuid.UUID
	Name         *string
	Description  *string
	Status       *Status
	StartDate    *time.Time
	DueDate      *time.Time
	BudgetCents  *int64
	RevenueCents *int64
}

// Filter narrows a project listing.
type Filter struct {
	Q        string
	Status   *Status
	ClientID *uuid.UUID
}
