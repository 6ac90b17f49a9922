package service

import (
	"context"

	"github.com/itchan-dev/forum-api/shared/domain"
)

type ReplyService interface {
	Add(ctx context.Context, payload domain.Payload) (domain.AddedReply, error)
	Delete(ctx context.Context, payload domain.Payload) error
}

type Reply struct {
	threads  ThreadRepository
	comments CommentRepository
	replies  ReplyRepository
}

func NewReply(threads ThreadRepository, comments CommentRepository, replies ReplyRepository) ReplyService {
	return &Reply{threads: threads, comments: comments, replies: replies}
}

func (s *Reply) Add(ctx context.Context, payload domain.Payload) (domain.AddedReply, error) {
	reply, err := domain.ParseNewReply(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.threads.VerifyThreadAvailability(ctx, reply.ThreadId); err != nil {
		return domain.AddedReply{}, err
	}
	if err := s.comments.VerifyCommentAvailability(ctx, reply.CommentId); err != nil {
		return domain.AddedReply{}, err
	}
	return s.replies.AddReply(ctx, reply)
}

// Delete checks ownership before touching the row; a foreign reply is never deleted.
func (s *Reply) Delete(ctx context.Context, payload domain.Payload) error {
	target, err := domain.ParseDeleteReply(payload)
	if err != nil {
		return err
	}
	if err := s.threads.VerifyThreadAvailability(ctx, target.ThreadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentAvailability(ctx, target.CommentId); err != nil {
		return err
	}
	if err := s.replies.VerifyReplyOwner(ctx, target.ReplyId, target.Owner); err != nil {
		return err
	}
	return s.replies.DeleteReplyById(ctx, target.ReplyId)
}
