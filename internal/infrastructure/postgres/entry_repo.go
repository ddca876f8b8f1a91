package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ErlanBelekov/shift-calendar/internal/domain"
	"github.com/jackc/pgx/v5"
)

type EntryRepository struct {
	db DB
}

func NewEntryRepository(db DB) *EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) Create(ctx context.Context, e *domain.Entry) (*domain.Entry, error) {
	query := `
		INSERT INTO entries (user_id, entry_date, entry_type, work_hours)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, entry_date, entry_type, work_hours, created_at, updated_at`

	row := r.db.QueryRow(ctx, query, e.UserID, e.Date, string(e.Type), e.WorkHours)
	created, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}
	return created, nil
}

func (r *EntryRepository) GetByID(ctx context.Context, id, userID string) (*domain.Entry, error) {
	query := `
		SELECT id, user_id, entry_date, entry_type, work_hours, created_at, updated_at
		FROM entries
		WHERE id = $1 AND user_id = $2`

	row := r.db.QueryRow(ctx, query, id, userID)
	return scanEntry(row)
}

func (r *EntryRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Entry, error) {
	query := `
		SELECT id, user_id, entry_date, entry_type, work_hours, created_at, updated_at
		FROM entries
		WHERE user_id = $1
		ORDER BY entry_date ASC, id ASC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func (r *EntryRepository) Update(ctx context.Context, e *domain.Entry) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE entries
		SET entry_date = $3, entry_type = $4, work_hours = $5, updated_at = NOW()
		WHERE id = $1 AND user_id = $2`,
		e.ID, e.UserID, e.Date, string(e.Type), e.WorkHours)
	if err != nil {
		return 0, fmt.Errorf("update entry: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *EntryRepository) Delete(ctx context.Context, id, userID string) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM entries WHERE id = $1 AND user_id = $2`,
		id, userID)
	if err != nil {
		return 0, fmt.Errorf("delete entry: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanEntry(row rowScanner) (*domain.Entry, error) {
	var (
		e       domain.Entry
		rawType string
	)
	err := row.Scan(&e.ID, &e.UserID, &e.Date, &rawType, &e.WorkHours, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}
		return nil, fmt.Errorf("scan entry: %w", err)
	}

	t, err := domain.ParseEntryType(rawType)
	if err != nil {
		return nil, fmt.Errorf("scan entry %s: %w", e.ID, err)
	}
	e.Type = t
	return &e, nil
}
