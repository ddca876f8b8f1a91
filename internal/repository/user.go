package repository

import (
	"context"

	"github.com/ErlanBelekov/shift-calendar/internal/domain"
)

type UserRepository interface {
	// FindByUsername matches the username exactly (case-sensitive).
	// Returns domain.ErrUserNotFound when nobody has it.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// Create inserts the user and returns it with its generated ID.
	// Returns domain.ErrUsernameTaken when the unique constraint on username fires.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
