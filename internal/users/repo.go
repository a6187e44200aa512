package users

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/agencydash/agency-backend/internal/auth"
	"github.com/agencydash/agency-backend/internal/storage"
)

// User is the profile view of an account.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	FullName  *string   `json:"full_name"`
	AvatarURL *string   `json:"avatar_url"`
	IsActive  bool      `json:"is_active"`
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

var _ auth.UserStore = (*Repo)(nil)

// CreateUser inserts a new account. Email uniqueness is enforced
// case-insensitively by the database.
func (r *Repo) CreateUser(ctx context.Context, email, passwordHash string, fullName *string) (auth.Account, error) {
	const q = `
insert into users (id, email, password_hash, full_name)
values ($1, $2, $3, $4)
returning id, email, password_hash, is_active;
`
	var a auth.Account
	err := r.db.QueryRow(ctx, q, uuid.New(), email, passwordHash, fullName).
		Scan(&a.ID, &a.Email, &a.PasswordHash, &a.IsActive)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return auth.Account{}, storage.ErrAlreadyExists
		}
		return auth.Account{}, err
	}
	return a, nil
}

func (r *Repo) UserByEmail(ctx context.Context, email string) (auth.Account, error) {
	const q = `
select id, email, password_hash, is_active
from users
where lower(email) = lower($1);
`
	var a auth.Account
	err := r.db.QueryRow(ctx, q, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Account{}, storage.ErrNotFound
		}
		return auth.Account{}, err
	}
	return a, nil
}

func (r *Repo) UserByID(ctx context.Context, id uuid.UUID) (auth.Account, error) {
	const q = `
select id, email, password_hash, is_active
from users
where id = $1;
`
	var a auth.Account
	err := r.db.QueryRow(ctx, q, id).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Account{}, storage.ErrNotFound
		}
		return auth.Account{}, err
	}
	return a, nil
}

func (r *Repo) Profile(ctx context.Context, id uuid.UUID) (User, error) {
	const q = `
select id, email, full_name, avatar_url, is_active
from users
where id = $1;
`
	var u User
	err := r.db.QueryRow(ctx, q, id).Scan(&u.ID, &u.Email, &u.FullName, &u.AvatarURL, &u.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, storage.ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}

// UpdateProfile changes only the fields provided; nil means keep current value.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, fullName, avatarURL *string) (User, error) {
	const q = `
update users
set full_name = coalesce($2, full_name),
    avatar_url = coalesce($3, avatar_url),
    updated_at = now()
where id = $1
returning id, email, full_name, avatar_url, is_active;
`
	var u User
	err := r.db.QueryRow(ctx, q, id, fullName, avatarURL).
		Scan(&u.ID, &u.Email, &u.FullName, &u.AvatarURL, &u.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, storage.ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}
