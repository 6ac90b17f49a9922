package service

import (
	"context"

	"github.com/itchan-dev/forum-api/shared/domain"
)

type ThreadService interface {
	Add(ctx context.Context, payload domain.Payload) (domain.AddedThread, error)
	GetDetail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error)
}

type Thread struct {
	threads  ThreadRepository
	comments CommentRepository
	replies  ReplyRepository
	users    UserRepository
}

func NewThread(threads ThreadRepository, comments CommentRepository, replies ReplyRepository, users UserRepository) ThreadService {
	return &Thread{threads: threads, comments: comments, replies: replies, users: users}
}

func (s *Thread) Add(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	thread, err := domain.ParseNewThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}
	return s.threads.AddThread(ctx, thread)
}

// GetDetail assembles a thread with its comments and their replies, oldest
// first. Deleted comments and replies keep their place with placeholder content.
func (s *Thread) GetDetail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error) {
	row, err := s.threads.GetThreadById(ctx, threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	names := usernames{repo: s.users, cache: map[domain.UserId]string{}}
	owner, err := names.get(ctx, row.Owner)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	detail, err := domain.ParseThreadDetail(row.Payload(owner))
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	commentRows, err := s.comments.GetCommentsByThreadId(ctx, threadId)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	for _, c := range commentRows {
		username, err := names.get(ctx, c.Owner)
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		comment, err := domain.ParseComment(c.Payload(username))
		if err != nil {
			return domain.ThreadDetail{}, err
		}

		replyRows, err := s.replies.GetRepliesByCommentId(ctx, c.Id)
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		for _, r := range replyRows {
			username, err := names.get(ctx, r.Owner)
			if err != nil {
				return domain.ThreadDetail{}, err
			}
			reply, err := domain.ParseReply(r.Payload(username))
			if err != nil {
				return domain.ThreadDetail{}, err
			}
			comment.Replies = append(comment.Replies, reply)
		}
		detail.Comments = append(detail.Comments, comment)
	}
	return detail, nil
}

// usernames memoizes id to username lookups for one request.
type usernames struct {
	repo  UserRepository
	cache map[domain.UserId]string
}

func (u usernames) get(ctx context.Context, id domain.UserId) (string, error) {
	if name, ok := u.cache[id]; ok {
		return name, nil
	}
	name, err := u.repo.GetUsernameById(ctx, id)
	if err != nil {
		return "", err
	}
	u.cache[id] = name
	return name, nil
}
