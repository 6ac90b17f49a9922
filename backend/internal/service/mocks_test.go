package service

import (
	"context"
	"sync"

	"github.com/itchan-dev/forum-api/shared/domain"
)

// --- Mocks ---

// callLog records the order in which mock methods are invoked.
type callLog struct {
	mu    sync.Mutex
	calls []string
}

func (l *callLog) record(name string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	l.calls = append(l.calls, name)
	l.mu.Unlock()
}

func (l *callLog) Calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.calls...)
}

type MockThreadRepository struct {
	log                          *callLog
	addThreadFunc                func(thread domain.NewThread) (domain.AddedThread, error)
	verifyThreadAvailabilityFunc func(id domain.ThreadId) error
	getThreadByIdFunc            func(id domain.ThreadId) (domain.ThreadRow, error)
}

func (m *MockThreadRepository) AddThread(ctx context.Context, thread domain.NewThread) (domain.AddedThread, error) {
	m.log.record("AddThread")
	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return domain.AddedThread{Id: "thread-123", Title: thread.Title, Owner: thread.Owner}, nil
}

func (m *MockThreadRepository) VerifyThreadAvailability(ctx context.Context, id domain.ThreadId) error {
	m.log.record("VerifyThreadAvailability")
	if m.verifyThreadAvailabilityFunc != nil {
		return m.verifyThreadAvailabilityFunc(id)
	}
	return nil
}

func (m *MockThreadRepository) GetThreadById(ctx context.Context, id domain.ThreadId) (domain.ThreadRow, error) {
	m.log.record("GetThreadById")
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(id)
	}
	return domain.ThreadRow{Id: id, Title: "sebuah thread", Body: "sebuah body", Owner: "user-123", CreatedAt: "2021-08-08T07:19:09.775Z"}, nil
}

type MockCommentRepository struct {
	log                           *callLog
	addCommentFunc                func(comment domain.NewComment) (domain.AddedComment, error)
	verifyCommentAvailabilityFunc func(id domain.CommentId) error
	verifyCommentOwnerFunc        func(id domain.CommentId, owner domain.UserId) error
	deleteCommentByIdFunc         func(id domain.CommentId) error
	getCommentsByThreadIdFunc     func(threadId domain.ThreadId) ([]domain.CommentRow, error)
}

func (m *MockCommentRepository) AddComment(ctx context.Context, comment domain.NewComment) (domain.AddedComment, error) {
	m.log.record("AddComment")
	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return domain.AddedComment{Id: "comment-123", Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *MockCommentRepository) VerifyCommentAvailability(ctx context.Context, id domain.CommentId) error {
	m.log.record("VerifyCommentAvailability")
	if m.verifyCommentAvailabilityFunc != nil {
		return m.verifyCommentAvailabilityFunc(id)
	}
	return nil
}

func (m *MockCommentRepository) VerifyCommentOwner(ctx context.Context, id domain.CommentId, owner domain.UserId) error {
	m.log.record("VerifyCommentOwner")
	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockCommentRepository) DeleteCommentById(ctx context.Context, id domain.CommentId) error {
	m.log.record("DeleteCommentById")
	if m.deleteCommentByIdFunc != nil {
		return m.deleteCommentByIdFunc(id)
	}
	return nil
}

func (m *MockCommentRepository) GetCommentsByThreadId(ctx context.Context, threadId domain.ThreadId) ([]domain.CommentRow, error) {
	m.log.record("GetCommentsByThreadId")
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return []domain.CommentRow{}, nil
}

type MockReplyRepository struct {
	log                       *callLog
	addReplyFunc              func(reply domain.NewReply) (domain.AddedReply, error)
	verifyReplyOwnerFunc      func(id domain.ReplyId, owner domain.UserId) error
	deleteReplyByIdFunc       func(id domain.ReplyId) error
	getRepliesByCommentIdFunc func(commentId domain.CommentId) ([]domain.ReplyRow, error)
}

func (m *MockReplyRepository) AddReply(ctx context.Context, reply domain.NewReply) (domain.AddedReply, error) {
	m.log.record("AddReply")
	if m.addReplyFunc != nil {
		return m.addReplyFunc(reply)
	}
	return domain.AddedReply{Id: "reply-123", Content: reply.Content, Owner: reply.Owner}, nil
}

func (m *MockReplyRepository) VerifyReplyOwner(ctx context.Context, id domain.ReplyId, owner domain.UserId) error {
	m.log.record("VerifyReplyOwner")
	if m.verifyReplyOwnerFunc != nil {
		return m.verifyReplyOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockReplyRepository) DeleteReplyById(ctx context.Context, id domain.ReplyId) error {
	m.log.record("DeleteReplyById")
	if m.deleteReplyByIdFunc != nil {
		return m.deleteReplyByIdFunc(id)
	}
	return nil
}

func (m *MockReplyRepository) GetRepliesByCommentId(ctx context.Context, commentId domain.CommentId) ([]domain.ReplyRow, error) {
	m.log.record("GetRepliesByCommentId")
	if m.getRepliesByCommentIdFunc != nil {
		return m.getRepliesByCommentIdFunc(commentId)
	}
	return []domain.ReplyRow{}, nil
}

type MockUserRepository struct {
	log                         *callLog
	verifyAvailableUsernameFunc func(username string) error
	addUserFunc                 func(user domain.RegisterUser) (domain.RegisteredUser, error)
	getPasswordByUsernameFunc   func(username string) (string, error)
	getIdByUsernameFunc         func(username string) (domain.UserId, error)
	getUsernameByIdFunc         func(id domain.UserId) (string, error)
}

func (m *MockUserRepository) VerifyAvailableUsername(ctx context.Context, username string) error {
	m.log.record("VerifyAvailableUsername")
	if m.verifyAvailableUsernameFunc != nil {
		return m.verifyAvailableUsernameFunc(username)
	}
	return nil
}

func (m *MockUserRepository) AddUser(ctx context.Context, user domain.RegisterUser) (domain.RegisteredUser, error) {
	m.log.record("AddUser")
	if m.addUserFunc != nil {
		return m.addUserFunc(user)
	}
	return domain.RegisteredUser{Id: "user-123", Username: user.Username, Fullname: user.Fullname}, nil
}

func (m *MockUserRepository) GetPasswordByUsername(ctx context.Context, username string) (string, error) {
	m.log.record("GetPasswordByUsername")
	if m.getPasswordByUsernameFunc != nil {
		return m.getPasswordByUsernameFunc(username)
	}
	return "encrypted_password", nil
}

func (m *MockUserRepository) GetIdByUsername(ctx context.Context, username string) (domain.UserId, error) {
	m.log.record("GetIdByUsername")
	if m.getIdByUsernameFunc != nil {
		return m.getIdByUsernameFunc(username)
	}
	return "user-123", nil
}

func (m *MockUserRepository) GetUsernameById(ctx context.Context, id domain.UserId) (string, error) {
	m.log.record("GetUsernameById")
	if m.getUsernameByIdFunc != nil {
		return m.getUsernameByIdFunc(id)
	}
	return "dicoding", nil
}

type MockAuthenticationRepository struct {
	log                        *callLog
	addTokenFunc               func(token string) error
	checkAvailabilityTokenFunc func(token string) error
	deleteTokenFunc            func(token string) error

	mu          sync.Mutex
	addedTokens []string
}

func (m *MockAuthenticationRepository) AddToken(ctx context.Context, token string) error {
	m.log.record("AddToken")
	m.mu.Lock()
	m.addedTokens = append(m.addedTokens, token)
	m.mu.Unlock()
	if m.addTokenFunc != nil {
		return m.addTokenFunc(token)
	}
	return nil
}

func (m *MockAuthenticationRepository) CheckAvailabilityToken(ctx context.Context, token string) error {
	m.log.record("CheckAvailabilityToken")
	if m.checkAvailabilityTokenFunc != nil {
		return m.checkAvailabilityTokenFunc(token)
	}
	return nil
}

func (m *MockAuthenticationRepository) DeleteToken(ctx context.Context, token string) error {
	m.log.record("DeleteToken")
	if m.deleteTokenFunc != nil {
		return m.deleteTokenFunc(token)
	}
	return nil
}

type MockPasswordHash struct {
	log                 *callLog
	hashFunc            func(password string) (string, error)
	comparePasswordFunc func(password, hashed string) error
}

func (m *MockPasswordHash) Hash(ctx context.Context, password string) (string, error) {
	m.log.record("Hash")
	if m.hashFunc != nil {
		return m.hashFunc(password)
	}
	return "encrypted_password", nil
}

func (m *MockPasswordHash) ComparePassword(ctx context.Context, password, hashed string) error {
	m.log.record("ComparePassword")
	if m.comparePasswordFunc != nil {
		return m.comparePasswordFunc(password, hashed)
	}
	return nil
}

type MockTokenManager struct {
	log                    *callLog
	createAccessTokenFunc  func(payload domain.TokenPayload) (string, error)
	createRefreshTokenFunc func(payload domain.TokenPayload) (string, error)
	verifyRefreshTokenFunc func(token string) error
	decodePayloadFunc      func(token string) (domain.TokenPayload, error)
}

func (m *MockTokenManager) CreateAccessToken(payload domain.TokenPayload) (string, error) {
	m.log.record("CreateAccessToken")
	if m.createAccessTokenFunc != nil {
		return m.createAccessTokenFunc(payload)
	}
	return "access_token", nil
}

func (m *MockTokenManager) CreateRefreshToken(payload domain.TokenPayload) (string, error) {
	m.log.record("CreateRefreshToken")
	if m.createRefreshTokenFunc != nil {
		return m.createRefreshTokenFunc(payload)
	}
	return "refresh_token", nil
}

func (m *MockTokenManager) VerifyRefreshToken(token string) error {
	m.log.record("VerifyRefreshToken")
	if m.verifyRefreshTokenFunc != nil {
		return m.verifyRefreshTokenFunc(token)
	}
	return nil
}

func (m *MockTokenManager) DecodePayload(token string) (domain.TokenPayload, error) {
	m.log.record("DecodePayload")
	if m.decodePayloadFunc != nil {
		return m.decodePayloadFunc(token)
	}
	return domain.TokenPayload{Id: "user-123", Username: "dicoding"}, nil
}
