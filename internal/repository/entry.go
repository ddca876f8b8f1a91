package repository

import (
	"context"

	"github.com/ErlanBelekov/shift-calendar/internal/domain"
)

// EntryRepository scopes every lookup and mutation by the owning user ID.
// An entry owned by someone else behaves exactly like a missing one.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.Entry) (*domain.Entry, error)
	GetByID(ctx context.Context, id, userID string) (*domain.Entry, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Entry, error)

	// Update rewrites date, type and work hours of entry.ID owned by entry.UserID
	// and returns the number of rows touched.
	Update(ctx context.Context, entry *domain.Entry) (int64, error)
	Delete(ctx context.Context, id, userID string) (int64, error)
}
