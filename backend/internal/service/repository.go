package service

import (
	"context"

	"github.com/itchan-dev/forum-api/shared/domain"
)

type ThreadRepository interface {
	AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error)
	VerifyThreadAvailability(ctx context.Context, id domain.ThreadId) error
	GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRow, error)
}

type CommentRepository interface {
	AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error)
	VerifyCommentAvailability(ctx context.Context, id domain.CommentId) error
	VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error
	DeleteCommentById(ctx context.Context, id domain.CommentId) error
	GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error)
}

type ReplyRepository interface {
	AddReply(ctx context.Context, reply domain.NewReply) (domain.AddedReply, error)
	VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error
	DeleteReplyById(ctx context.Context, id domain.ReplyId) error
	GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRow, error)
}

type UserRepository interface {
	VerifyAvailableUsername(ctx context.Context, username string) error
	AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error)
	GetPasswordByUsername(ctx context.Context, username string) (string, error)
	GetIdByUsername(ctx context.Context, username string) (domain.UserId, error)
	GetUsernameById(ctx context.Context, id domain.UserId) (string, error)
}

type AuthenticationRepository interface {
	AddToken(ctx context.Context, token string) error
	CheckAvailabilityToken(ctx context.Context, token string) error
	DeleteToken(ctx context.Context, token string) error
}

type PasswordHash interface {
	Hash(ctx context.Context, password string) (string, error)
	ComparePassword(ctx context.Context, password, hashed string) error
}

type TokenManager interface {
	CreateAccessToken(payload domain.TokenPayload) (string, error)
	CreateRefreshToken(payload domain.TokenPayload) (string, error)
	VerifyRefreshToken(token string) error
	DecodePayload(token string) (domain.TokenPayload, error)
}
