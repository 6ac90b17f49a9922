package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
)

func (s *Storage) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	var id, title, owner string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO threads (id, title, body, owner, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, title, owner
	`, s.newId("thread"), thread.Title, thread.Body, thread.Owner, s.timestamp()).Scan(&id, &title, &owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return domain.ParseAddedThread(domain.Payload{"id": id, "title": title, "owner": owner})
}

func (s *Storage) VerifyThreadAvailability(ctx context.Context, id domain.ThreadId) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM threads WHERE id = $1", id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("thread not found")
		}
		return fmt.Errorf("failed to verify thread: %w", err)
	}
	return nil
}

func (s *Storage) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRow, error) {
	var row domain.ThreadRow
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, body, owner, created_at
		FROM threads
		WHERE id = $1
	`, id).Scan(&row.Id, &row.Title, &row.Body, &row.Owner, &row.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ThreadRow{}, internal_errors.NotFound("thread not found")
		}
		return domain.ThreadRow{}, fmt.Errorf("failed to get thread: %w", err)
	}
	return row, nil
}
