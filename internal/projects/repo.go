package projects

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agencydash/agency-backend/internal/storage"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const projectCols = `id, owner_user_id, client_id, name, description, status, start_date, due_date, budget_cents, revenue_cents, created_at, updated_at`

func scanProject(row pgx.Row) (Project, error) {
	var p Project
	err := row.Scan(&p.ID, &p.OwnerUserID, &p.ClientID, &p.Name, &p.Description, &p.Status,
		&p.StartDate, &p.DueDate, &p.BudgetCents, &p.RevenueCents, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Project{}, storage.ErrNotFound
		}
		return Project{}, err
	}
	return p, nil
}

func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, in NewProject) (Project, error) {
	const q = `
insert into projects (id, owner_user_id, client_id, name, description, status, start_date, due_date, budget_cents, revenue_cents)
values ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
returning ` + projectCols + `;
`
	return scanProject(r.db.QueryRow(ctx, q, uuid.New(), ownerID, in.ClientID, in.Name, in.Description,
		in.Status, in.StartDate, in.DueDate, in.BudgetCents, in.RevenueCents))
}

// List returns the owner's projects newest first with optional text, status
// and client filters.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, f Filter, limit, offset int) ([]Project, error) {
	const query = `
select ` + projectCols + `
from projects
where owner_user_id = $1
  and ($2 = '' or lower(name) like $3 or lower(coalesce(description, '')) like $3)
  and ($4::text is null or status = $4)
  and ($5::uuid is null or client_id = $5)
order by created_at desc
limit $6 offset $7;
`
	needle := strings.ToLower(strings.TrimSpace(f.Q))
	rows, err := r.db.Query(ctx, query, ownerID, needle, "%"+needle+"%", f.Status, f.ClientID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Project, 0, 16)
	for rows.Next() {
		var p Project
		if err := rows.Scan(&p.ID, &p.OwnerUserID, &p.ClientID, &p.Name, &p.Description, &p.Status,
			&p.StartDate, &p.DueDate, &p.BudgetCents, &p.RevenueCents, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, ownerID, id uuid.UUID) (Project, error) {
	const q = `
select ` + projectCols + `
from projects
where owner_user_id = $1 and id = $2;
`
	return scanProject(r.db.QueryRow(ctx, q, ownerID, id))
}

// Update changes only the fields present in the patch as one atomic statement
// and stamps updated_at.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, p Patch) (Project, error) {
	const q = `
update projects
set client_id = coalesce($3, client_id),
    name = coalesce($4, name),
    description = coalesce($5, description),
    status = coalesce($6, status),
    start_date = coalesce($7, start_date),
    due_date = coalesce($8, due_date),
    budget_cents = coalesce($9, budget_cents),
    revenue_cents = coalesce($10, revenue_cents),
    updated_at = now()
where owner_user_id = $1 and id = $2
returning ` + projectCols + `;
`
	return scanProject(r.db.QueryRow(ctx, q, ownerID, id, p.ClientID, p.Name, p.Description, p.Status,
		p.StartDate, p.DueDate, p.BudgetCents, p.RevenueCents))
}

func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const q = `
delete from projects
where owner_user_id = $1 and id = $2;
`
	ct, err := r.db.Exec(ctx, q, ownerID, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// ExportRow is one line of the CSV export.
type ExportRow struct {
	ID           uuid.UUID
	Name         string
	ClientName   *string
	Status       Status
	StartDate    *time.Time
	DueDate      *time.Time
	RevenueCents int64
	UpdatedAt    *time.Time
}

// ExportRows returns every owned project with its client name (outer join),
// newest created first.
func (r *Repo) ExportRows(ctx context.Context, ownerID uuid.UUID) ([]ExportRow, error) {
	const q = `
select p.id, p.name, c.name, p.status, p.start_date, p.due_date, p.revenue_cents, p.updated_at
from projects p
left join clients c on c.id = p.client_id
where p.owner_user_id = $1
order by p.created_at desc;
`
	rows, err := r.db.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ExportRow, 0, 16)
	for rows.Next() {
		var row ExportRow
		if err := rows.Scan(&row.ID, &row.Name, &row.ClientName, &row.Status, &row.StartDate,
			&row.DueDate, &row.RevenueCents, &row.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
