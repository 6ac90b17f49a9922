package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
)

func (s *Storage) AddReply(ctx context.Context, reply domain.NewReply) (domain.AddedReply, error) {
	var id, content, owner string
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO replies (id, content, owner, comment_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, content, owner
	`, s.newId("reply"), reply.Content, reply.Owner, reply.CommentId, s.timestamp()).Scan(&id, &content, &owner)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return domain.ParseAddedReply(domain.Payload{"id": id, "content": content, "owner": owner})
}

func (s *Storage) VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	var actual sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT owner FROM replies WHERE id = $1", id).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NotFound("reply not found")
		}
		return fmt.Errorf("failed to get reply owner: %w", err)
	}
	if !actual.Valid || actual.String != owner {
		return internal_errors.Authorization("you are not allowed to access this resource")
	}
	return nil
}

func (s *Storage) DeleteReplyById(ctx context.Context, id domain.ReplyId) error {
	result, err := s.db.ExecContext(ctx, "UPDATE replies SET deleted_at = $1 WHERE id = $2", s.timestamp(), id)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NotFound("reply not found")
	}
	return nil
}

func (s *Storage) GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRow, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, content, owner, comment_id, created_at, deleted_at
		FROM replies
		WHERE comment_id = $1
		ORDER BY created_at ASC
	`, commentId)
	if err != nil {
		return nil, fmt.Errorf("failed to query replies: %w", err)
	}
	defer rows.Close()

	replies := []domain.ReplyRow{}
	for rows.Next() {
		var (
			r         domain.ReplyRow
			owner     sql.NullString
			comment   sql.NullString
			deletedAt sql.NullString
		)
		if err := rows.Scan(&r.Id, &r.Content, &owner, &comment, &r.CreatedAt, &deletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan reply: %w", err)
		}
		r.Owner = owner.String
		r.CommentId = comment.String
		if deletedAt.Valid {
			r.DeletedAt = &deletedAt.String
		}
		replies = append(replies, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating replies: %w", err)
	}
	return replies, nil
}
