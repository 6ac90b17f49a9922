package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
)

func (s *Storage) AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	var id, content, owner string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO comments (id, content, owner, thread_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, content, owner
	`, s.newId("comment"), comment.Content, comment.Owner, comment.ThreadId, s.timestamp()).Scan(&id, &content, &owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return domain.ParseAddedComment(domain.Payload{"id": id, "content": content, "owner": owner})
}

// VerifyCommentAvailability succeeds for soft-deleted comments too.
func (s *Storage) VerifyCommentAvailability(ctx context.Context, id domain.CommentId) error {
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM comments WHERE id = $1", id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("comment not found")
		}
		return fmt.Errorf("failed to verify comment: %w", err)
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	var actual sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM comments WHERE id = $1", id).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("comment not found")
		}
		return fmt.Errorf("failed to get comment owner: %w", err)
	}
	if !actual.Valid || actual.String != owner {
		return internal_errors.Authorization("you are not allowed to access this resource")
	}
	return nil
}

// DeleteCommentById soft deletes: the row stays and deleted_at is set.
func (s *Storage) DeleteCommentById(ctx context.Context, id domain.CommentId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE comments SET deleted_at = $1 WHERE id = $2", s.timestamp(), id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("comment not found")
	}
	return nil
}

// GetCommentsByThreadId returns every comment of the thread, soft-deleted
// ones included, oldest first.
func (s *Storage) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, content, owner, thread_id, created_at, deleted_at
		FROM comments
		WHERE thread_id = $1
		ORDER BY created_at ASC
	`, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.CommentRow{}
	for rows.Next() {
		var (
			c         domain.CommentRow
			owner     sql.NullString
			thread    sql.NullString
			deletedAt sql.NullString
		)
		if err := rows.Scan(&c.Id, &c.Content, &owner, &thread, &c.CreatedAt, &deletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.Owner = owner.String
		c.ThreadId = thread.String
		if deletedAt.Valid {
			c.DeletedAt = &deletedAt.String
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}
	return comments, nil
}
