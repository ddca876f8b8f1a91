package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErlanBelekov/shift-calendar/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT id, username, email, password_salt, password_hash, created_at
		FROM users
		WHERE username = $1`

	row := r.db.QueryRow(ctx, query, username)
	return scanUser(row)
}

// Create relies on the UNIQUE constraint on users.username: of two concurrent
// inserts with the same username exactly one succeeds.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, email, password_salt, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, password_salt, password_hash, created_at`

	row := r.db.QueryRow(ctx, query, u.Username, u.Email, u.PasswordSalt, u.PasswordHash)
	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}
	return created, nil
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordSalt, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
