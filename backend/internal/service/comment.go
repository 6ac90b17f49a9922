package service

import (
	"context"

	"github.com/itchan-dev/forum-api/shared/domain"
)

type CommentService interface {
	Add(ctx context.Context, payload domain.Payload) (domain.AddedComment, error)
	Delete(ctx context.Context, payload domain.Payload) error
}

type Comment struct {
	threads  ThreadRepository
	comments CommentRepository
}

func NewComment(threads ThreadRepository, comments CommentRepository) CommentService {
	return &Comment{threads: threads, comments: comments}
}

func (s *Comment) Add(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	comment, err := domain.ParseNewComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}
	if err := s.threads.VerifyThreadAvailability(ctx, comment.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}
	return s.comments.AddComment(ctx, comment)
}

func (s *Comment) Delete(ctx context.Context, payload domain.Payload) error {
	target, err := domain.ParseDeleteComment(payload)
	if err != nil {
		return err
	}
	if err := s.threads.VerifyThreadAvailability(ctx, target.ThreadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentAvailability(ctx, target.CommentId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(ctx, target.CommentId, target.Owner); err != nil {
		return err
	}
	return s.comments.DeleteCommentById(ctx, target.CommentId)
}
