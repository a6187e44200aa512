package auth

import (
	"context"

	"github.com/google/uuid"
)

// Account is the minimal user view the auth flows need.
type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	IsActive     bool
}

// UserStore captures the persistence operations needed by signup, login and
// the authentication middleware.
type UserStore interface {
	CreateUser(ctx context.Context, email, passwordHash string, fullName *string) (Account, error)
	UserByEmail(ctx context.Context, email string) (Account, error)
	UserByID(ctx context.Context, id uuid.UUID) (Account, error)
}
