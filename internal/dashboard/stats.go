package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	monthWindow = 12
	recentLimit = 5
)

// MonthRevenue is a single month of revenue for charting.
type MonthRevenue struct {
	Month        string `json:"month"`
	RevenueCents int64  `json:"revenue_cents"`
}

// RecentProject is a dashboard summary row. UpdatedAt falls back to the
// creation timestamp for projects that were never updated.
type RecentProject struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	ClientName   *string   `json:"client_name"`
	Status       string    `json:"status"`
	RevenueCents int64     `json:"revenue_cents"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Stats is the full dashboard payload for one user.
type Stats struct {
	TotalActiveProjects int64           `json:"total_active_projects"`
	TotalRevenueCents   int64           `json:"total_revenue_cents"`
	RevenueByMonth      []MonthRevenue  `json:"revenue_by_month"`
	RecentProjects      []RecentProject `json:"recent_projects"`
}

// Store captures the aggregation queries the dashboard needs.
type Store interface {
	CountActiveProjects(ctx context.Context, ownerID uuid.UUID) (int64, error)
	TotalRevenueCents(ctx context.Context, ownerID uuid.UUID) (int64, error)
	RevenueByCreationMonth(ctx context.Context, ownerID uuid.UUID) (map[string]int64, error)
	RecentProjects(ctx context.Context, ownerID uuid.UUID, limit int) ([]RecentProject, error)
}

// Collect computes the dashboard statistics for one owner as of now.
// A user with no projects yields zeros, twelve zero-valued buckets and an
// empty recent list. Any query failure aborts the whole collection.
func Collect(ctx context.Context, store Store, ownerID uuid.UUID, now time.Time) (Stats, error) {
	active, err := store.CountActiveProjects(ctx, ownerID)
	if err != nil {
		return Stats{}, fmt.Errorf("count active projects: %w", err)
	}

	total, err := store.TotalRevenueCents(ctx, ownerID)
	if err != nil {
		return Stats{}, fmt.Errorf("total revenue: %w", err)
	}
	if total < 0 {
		total = 0
	}

	byMonth, err := store.RevenueByCreationMonth(ctx, ownerID)
	if err != nil {
		return Stats{}, fmt.Errorf("revenue by month: %w", err)
	}

	labels := MonthLabels(now, monthWindow)
	buckets := make([]MonthRevenue, 0, monthWindow)
	for _, label := range labels {
		rev := byMonth[label]
		if rev < 0 {
			rev = 0
		}
		buckets = append(buckets, MonthRevenue{Month: label, RevenueCents: rev})
	}

	recent, err := store.RecentProjects(ctx, ownerID, recentLimit)
	if err != nil {
		return Stats{}, fmt.Errorf("recent projects: %w", err)
	}
	if recent == nil {
		recent = []RecentProject{}
	}

	return Stats{
		TotalActiveProjects: active,
		TotalRevenueCents:   total,
		RevenueByMonth:      buckets,
		RecentProjects:      recent,
	}, nil
}
