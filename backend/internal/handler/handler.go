package handler

import (
	"context"
	"net/http"

	"github.com/itchan-dev/forum-api/backend/internal/service"
	"github.com/itchan-dev/forum-api/shared/domain"
	mw "github.com/itchan-dev/forum-api/shared/middleware"
	"github.com/itchan-dev/forum-api/shared/utils"
)

type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	user    service.UserService
	auth    service.AuthService
	thread  service.ThreadService
	comment service.CommentService
	reply   service.ReplyService
	health  HealthChecker
}

func New(
	user service.UserService,
	auth service.AuthService,
	thread service.ThreadService,
	comment service.CommentService,
	reply service.ReplyService,
	health HealthChecker,
) *Handler {
	return &Handler{
		user:    user,
		auth:    auth,
		thread:  thread,
		comment: comment,
		reply:   reply,
		health:  health,
	}
}

// ownerPayload decodes the body and sets "owner" from the access token, so a
// client can never act on behalf of someone else.
func ownerPayload(w http.ResponseWriter, r *http.Request, textFields ...string) (domain.Payload, bool) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		utils.WriteFail(w, http.StatusUnauthorized, "Missing authentication")
		return nil, false
	}

	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return nil, false
	}
	utils.SanitizeFields(payload, textFields...)
	payload["owner"] = user.Id
	return payload, true
}

func decodePayload(w http.ResponseWriter, r *http.Request, textFields ...string) (domain.Payload, bool) {
	payload, err := utils.DecodePayload(r.Body)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return nil, false
	}
	utils.SanitizeFields(payload, textFields...)
	return payload, true
}
