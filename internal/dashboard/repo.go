package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

var _ Store = (*Repo)(nil)

func (r *Repo) CountActiveProjects(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	const q = `
select count(*)
from projects
where owner_user_id = $1 and status = 'active';
`
	var n int64
	if err := r.db.QueryRow(ctx, q, ownerID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repo) TotalRevenueCents(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	const q = `
select coalesce(sum(revenue_cents), 0)
from projects
where owner_user_id = $1;
`
	var total int64
	if err := r.db.QueryRow(ctx, q, ownerID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// RevenueByCreationMonth groups revenue by the UTC calendar month each
// project was created in. Creation month is deliberate: edits months later
// must not move revenue between buckets.
func (r *Repo) RevenueByCreationMonth(ctx context.Context, ownerID uuid.UUID) (map[string]int64, error) {
	const q = `
select to_char(created_at at time zone 'utc', 'YYYY-MM') as month,
       coalesce(sum(revenue_cents), 0)
from projects
where owner_user_id = $1
group by month;
`
	rows, err := r.db.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var month string
		var revenue int64
		if err := rows.Scan(&month, &revenue); err != nil {
			return nil, err
		}
		out[month] = revenue
	}
	return out, rows.Err()
}

// RecentProjects returns the owner's most recently touched projects, ranked
// by updated_at falling back to created_at, ties broken by id for a
// deterministic order.
func (r *Repo) RecentProjects(ctx context.Context, ownerID uuid.UUID, limit int) ([]RecentProject, error) {
	const q = `
select p.id, p.name, c.name, p.status, p.revenue_cents, coalesce(p.updated_at, p.created_at)
from projects p
left join clients c on c.id = p.client_id
where p.owner_user_id = $1
order by coalesce(p.updated_at, p.created_at) desc, p.id desc
limit $2;
`
	rows, err := r.db.Query(ctx, q, ownerID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RecentProject, 0, limit)
	for rows.Next() {
		var p RecentProject
		if err := rows.Scan(&p.ID, &p.Name, &p.ClientName, &p.Status, &p.RevenueCents, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
