package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ErlanBelekov/shift-calendar/internal/domain"
	"github.com/ErlanBelekov/shift-calendar/internal/metrics"
	"github.com/ErlanBelekov/shift-calendar/internal/repository"
)

type EntryUsecase struct {
	repo repository.EntryRepository
}

func NewEntryUsecase(repo repository.EntryRepository) *EntryUsecase {
	return &EntryUsecase{repo: repo}
}

// EntryInput carries wire values; parsing happens here so every caller gets
// the same errors.
type EntryInput struct {
	Date      string
	EntryType string
	WorkHours *float64
}

func (in EntryInput) toEntry() (*domain.Entry, error) {
	t, err := domain.ParseEntryType(in.EntryType)
	if err != nil {
		return nil, err
	}
	date, err := domain.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if !domain.ValidateWorkHours(t, in.WorkHours) {
		metrics.EntriesRejectedTotal.WithLabelValues("work_hours").Inc()
		return nil, domain.ErrInvalidWorkHours
	}
	return &domain.Entry{Date: date, Type: t, WorkHours: in.WorkHours}, nil
}

func (u *EntryUsecase) Create(ctx context.Context, userID string, input EntryInput) (*domain.Entry, error) {
	entry, err := input.toEntry()
	if err != nil {
		return nil, err
	}
	entry.UserID = userID

	created, err := u.repo.Create(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}
	metrics.EntriesWrittenTotal.WithLabelValues("create").Inc()
	return created, nil
}

func (u *EntryUsecase) Get(ctx context.Context, id, userID string) (*domain.Entry, error) {
	if !validID(id) {
		return nil, domain.ErrEntryNotFound
	}
	entry, err := u.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

func (u *EntryUsecase) List(ctx context.Context, userID string) ([]*domain.Entry, error) {
	entries, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// Update replaces date, type and work hours of an entry the user owns.
func (u *EntryUsecase) Update(ctx context.Context, id, userID string, input EntryInput) error {
	if !validID(id) {
		return domain.ErrEntryNotFound
	}
	entry, err := input.toEntry()
	if err != nil {
		return err
	}
	entry.ID = id
	entry.UserID = userID

	n, err := u.repo.Update(ctx, entry)
	if err != nil {
		return fmt.Errorf("update entry: %w", err)
	}
	if n == 0 {
		return domain.ErrEntryNotFound
	}
	metrics.EntriesWrittenTotal.WithLabelValues("update").Inc()
	return nil
}

func (u *EntryUsecase) Delete(ctx context.Context, id, userID string) error {
	if !validID(id) {
		return domain.ErrEntryNotFound
	}
	n, err := u.repo.Delete(ctx, id, userID)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if n == 0 {
		return domain.ErrEntryNotFound
	}
	metrics.EntriesWrittenTotal.WithLabelValues("delete").Inc()
	return nil
}

// Entry IDs are Postgres UUIDs; anything else cannot name an entry.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
