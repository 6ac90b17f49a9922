package handler

import (
	"context"
	"sync"

	"github.com/itchan-dev/forum-api/shared/domain"
)

type MockUserService struct {
	registerFunc func(payload domain.Payload) (domain.RegisteredUser, error)
}

func (m *MockUserService) Register(ctx context.Context, payload domain.Payload) (domain.RegisteredUser, error) {
	if m.registerFunc != nil {
		return m.registerFunc(payload)
	}
	return domain.RegisteredUser{Id: "user-123", Username: "dicoding", Fullname: "Dicoding Indonesia"}, nil
}

type MockAuthService struct {
	loginFunc   func(payload domain.Payload) (domain.NewAuth, error)
	refreshFunc func(payload domain.Payload) (string, error)
	logoutFunc  func(payload domain.Payload) error
}

func (m *MockAuthService) Login(ctx context.Context, payload domain.Payload) (domain.NewAuth, error) {
	if m.loginFunc != nil {
		return m.loginFunc(payload)
	}
	return domain.NewAuth{AccessToken: "access_token", RefreshToken: "refresh_token"}, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, payload domain.Payload) (string, error) {
	if m.refreshFunc != nil {
		return m.refreshFunc(payload)
	}
	return "access_token", nil
}

func (m *MockAuthService) Logout(ctx context.Context, payload domain.Payload) error {
	if m.logoutFunc != nil {
		return m.logoutFunc(payload)
	}
	return nil
}

type MockThreadService struct {
	addFunc       func(payload domain.Payload) (domain.AddedThread, error)
	getDetailFunc func(threadId domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Add(ctx context.Context, payload domain.Payload) (domain.AddedThread, error) {
	if m.addFunc != nil {
		return m.addFunc(payload)
	}
	return domain.AddedThread{Id: "thread-123", Title: "sebuah thread", Owner: "user-123"}, nil
}

func (m *MockThreadService) GetDetail(ctx context.Context, threadId domain.ThreadId) (domain.ThreadDetail, error) {
	if m.getDetailFunc != nil {
		return m.getDetailFunc(threadId)
	}
	return domain.ThreadDetail{Id: threadId, Comments: []domain.Comment{}}, nil
}

type MockCommentService struct {
	addFunc    func(payload domain.Payload) (domain.AddedComment, error)
	deleteFunc func(payload domain.Payload) error
}

func (m *MockCommentService) Add(ctx context.Context, payload domain.Payload) (domain.AddedComment, error) {
	if m.addFunc != nil {
		return m.addFunc(payload)
	}
	return domain.AddedComment{Id: "comment-123", Content: "sebuah comment", Owner: "user-123"}, nil
}

func (m *MockCommentService) Delete(ctx context.Context, payload domain.Payload) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(payload)
	}
	return nil
}

type MockReplyService struct {
	addFunc    func(payload domain.Payload) (domain.AddedReply, error)
	deleteFunc func(payload domain.Payload) error
}

func (m *MockReplyService) Add(ctx context.Context, payload domain.Payload) (domain.AddedReply, error) {
	if m.addFunc != nil {
		return m.addFunc(payload)
	}
	return domain.AddedReply{Id: "reply-123", Content: "sebuah balasan", Owner: "user-123"}, nil
}

func (m *MockReplyService) Delete(ctx context.Context, payload domain.Payload) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(payload)
	}
	return nil
}

type MockHealthChecker struct {
	mu       sync.Mutex
	pingErr  error
	pingCall int
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pingCall++
	return m.pingErr
}
