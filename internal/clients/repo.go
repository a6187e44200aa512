package clients

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

// Client is an association target for projects, owned by exactly one user.
type Client struct {
	ID          uuid.UUID  `json:"id"`
	OwnerUserID uuid.UUID  `json:"owner_user_id"`
	Name        string     `json:"name"`
	Email       *string    `json:"email"`
	Phone       *string    `json:"phone"`
	Company     *string    `json:"company"`
	Notes       *string    `json:"notes"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// NewClient carries the fields accepted on creation.
type NewClient struct {
	Name    string
	Email   *string
	Phone   *string
	Company *string
	Notes   *string
}

// Patch carries the fields of a partial update; nil keeps the current value.
type Patch struct {
	Name    *string
	Email   *string
	Phone   *string
	Company *string
	Notes   *string
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const clientCols = `id, owner_user_id, name, email, phone, company, notes, created_at, updated_at`

func scanClient(row pgx.Row) (Client, error) {
	var cl Client
	err := row.Scan(&cl.ID, &cl.OwnerUserID, &cl.Name, &cl.Email, &cl.Phone, &cl.Company, &cl.Notes, &cl.CreatedAt, &cl.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Client{}, storage.ErrNotFound
		}
		return Client{}, err
	}
	return cl, nil
}

func (r *Repo) Create(ctx context.Context, ownerID uuid.UUID, in NewClient) (Client, error) {
	const q = `
insert into clients (id, owner_user_id, name, email, phone, company, notes)
values ($1, $2, $3, $4, $5, $6, $7)
returning ` + clientCols + `;
`
	return scanClient(r.db.QueryRow(ctx, q, uuid.New(), ownerID, in.Name, in.Email, in.Phone, in.Company, in.Notes))
}

// List returns the owner's clients newest first, optionally filtered by a
// case-insensitive search over name, company and email.
func (r *Repo) List(ctx context.Context, ownerID uuid.UUID, q string, limit, offset int) ([]Client, error) {
	const query = `
select ` + clientCols + `
from clients
where owner_user_id = $1
  and ($2 = '' or lower(name) like $3 or lower(coalesce(company, '')) like $3 or lower(coalesce(email, '')) like $3)
order by created_at desc
limit $4 offset $5;
`
	needle := strings.ToLower(strings.TrimSpace(q))
	rows, err := r.db.Query(ctx, query, ownerID, needle, "%"+needle+"%", limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Client, 0, 16)
	for rows.Next() {
		var cl Client
		if err := rows.Scan(&cl.ID, &cl.OwnerUserID, &cl.Name, &cl.Email, &cl.Phone, &cl.Company, &cl.Notes, &cl.CreatedAt, &cl.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, cl)
	}
	return out, rows.Err()
}

func (r *Repo) Get(ctx context.Context, ownerID, id uuid.UUID) (Client, error) {
	const q = `
select ` + clientCols + `
from clients
where owner_user_id = $1 and id = $2;
`
	return scanClient(r.db.QueryRow(ctx, q, ownerID, id))
}

// Update changes only the fields present in the patch as one atomic statement.
func (r *Repo) Update(ctx context.Context, ownerID, id uuid.UUID, p Patch) (Client, error) {
	const q = `
update clients
set name = coalesce($3, name),
    email = coalesce($4, email),
    phone = coalesce($5, phone),
    company = coalesce($6, company),
    notes = coalesce($7, notes),
    updated_at = now()
where owner_user_id = $1 and id = $2
returning ` + clientCols + `;
`
	return scanClient(r.db.QueryRow(ctx, q, ownerID, id, p.Name, p.Email, p.Phone, p.Company, p.Notes))
}

// Delete removes the client. Projects referencing it keep existing with
// client_id cleared by the foreign key's ON DELETE SET NULL.
func (r *Repo) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	const q = `
delete from clients
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

// Exists reports whether the client belongs to the owner.
func (r *Repo) Exists(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	const q = `select exists(select 1 from clients where owner_user_id = $1 and id = $2);`

	var exists bool
	if err := r.db.QueryRow(ctx, q, ownerID, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
