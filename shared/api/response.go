package api

import "github.com/itchan-dev/forum-api/shared/domain"

// Response envelopes written by every handler.

const (
	StatusSuccess = "success"
	StatusFail    = "fail"
	StatusError   = "error"
)

type SuccessResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type AddedUserData struct {
	AddedUser domain.RegisteredUser `json:"addedUser"`
}

type AddedThreadData struct {
	AddedThread domain.AddedThread `json:"addedThread"`
}

type ThreadData struct {
	Thread domain.ThreadDetail `json:"thread"`
}

type AddedCommentData struct {
	AddedComment domain.AddedComment `json:"addedComment"`
}

type AddedReplyData struct {
	AddedReply domain.AddedReply `json:"addedReply"`
}

type AccessTokenData struct {
	AccessToken string `json:"accessToken"`
}

type HealthData struct {
	Database string `json:"database"`
}
