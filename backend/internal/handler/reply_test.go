package handler

import (
	"net/http"
	"testing"

	"github.com/itchan-dev/forum-api/shared/domain"
	internal_errors "github.com/itchan-dev/forum-api/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostReply(t *testing.T) {
	s := newServices()
	var got domain.Payload
	s.reply.addFunc = func(payload domain.Payload) (domain.AddedReply, error) {
		got = payload
		return domain.AddedReply{Id: "reply-123", Content: "sebuah balasan", Owner: "user-123"}, nil
	}

	req := createRequest(t, http.MethodPost, "/threads/thread-123/comments/comment-123/replies", []byte(`{"content":"sebuah balasan"}`), &testUser)
	rr := serve(http.MethodPost, "/threads/{threadId}/comments/{commentId}/replies", s.handler().PostReply, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Equal(t, domain.Payload{
		"content":   "sebuah balasan",
		"owner":     "user-123",
		"threadId":  "thread-123",
		"commentId": "comment-123",
	}, got)
	assert.Equal(t, map[string]any{
		"addedReply": map[string]any{"id": "reply-123", "content": "sebuah balasan", "owner": "user-123"},
	}, decodeBody(t, rr)["data"])
}

func TestDeleteReply(t *testing.T) {
	const pattern = "/threads/{threadId}/comments/{commentId}/replies/{replyId}"
	const url = "/threads/thread-123/comments/comment-123/replies/reply-123"

	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
	}{
		{name: "deleted", expectedStatus: http.StatusOK},
		{name: "missing reply", serviceErr: internal_errors.NotFound("reply not found"), expectedStatus: http.StatusNotFound},
		{name: "not the owner", serviceErr: internal_errors.Authorization("forbidden"), expectedStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServices()
			var got domain.Payload
			s.reply.deleteFunc = func(payload domain.Payload) error {
				got = payload
				return tt.serviceErr
			}

			req := createRequest(t, http.MethodDelete, url, nil, &testUser)
			rr := serve(http.MethodDelete, pattern, s.handler().DeleteReply, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, "reply-123", got["replyId"])
			assert.Equal(t, "user-123", got["owner"])
		})
	}
}
