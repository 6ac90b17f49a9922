package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/shared/domain"
	mw "github.com/itchan-dev/forum-api/shared/middleware"
	"github.com/stretchr/testify/require"
)

type services struct {
	user    *MockUserService
	auth    *MockAuthService
	thread  *MockThreadService
	comment *MockCommentService
	reply   *MockReplyService
	health  *MockHealthChecker
}

func newServices() *services {
	return &services{
		user:    &MockUserService{},
		auth:    &MockAuthService{},
		thread:  &MockThreadService{},
		comment: &MockCommentService{},
		reply:   &MockReplyService{},
		health:  &MockHealthChecker{},
	}
}

func (s *services) handler() *Handler {
	return New(s.user, s.auth, s.thread, s.comment, s.reply, s.health)
}

var testUser = domain.TokenPayload{Id: "user-123", Username: "dicoding"}

func createRequest(t *testing.T, method, url string, body []byte, user *domain.TokenPayload) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, url, bytes.NewBuffer(body))
	if user != nil {
		req = req.WithContext(mw.WithUser(req.Context(), *user))
	}
	return req
}

// serve routes req through a chi router so URL params resolve.
func serve(method, pattern string, fn http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, fn)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body), "body: %s", rr.Body.String())
	return body
}
