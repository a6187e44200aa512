package settings

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Theme is a dashboard UI theme preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	// DefaultTheme is returned when a user has no saved setting.
	DefaultTheme = ThemeLight
)

func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// Theme returns the user's saved theme, falling back to the default when no
// row exists or the stored value is unexpected.
func (r *Repo) Theme(ctx context.Context, userID uuid.UUID) (Theme, error) {
	const q = `
select theme
from user_settings
where user_id = $1;
`
	var raw *string
	err := r.db.QueryRow(ctx, q, userID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DefaultTheme, nil
		}
		return "", err
	}
	if raw == nil {
		return DefaultTheme, nil
	}

	theme := Theme(strings.ToLower(*raw))
	if !theme.Valid() {
		return DefaultTheme, nil
	}
	return theme, nil
}

// SetTheme persists the preference as one atomic insert-or-update keyed by
// user_id.
func (r *Repo) SetTheme(ctx context.Context, userID uuid.UUID, theme Theme) error {
	const q = `
insert into user_settings (user_id, theme)
values ($1, $2)
on conflict (user_id) do update
set theme = excluded.theme,
    updated_at = now();
`
	_, err := r.db.Exec(ctx, q, userID, string(theme))
	return err
}
