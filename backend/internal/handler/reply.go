package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/utils"
)

func (h *Handler) PostReply(w http.ResponseWriter, r *http.Request) {
	payload, ok := ownerPayload(w, r, "content")
	if !ok {
		return
	}
	payload["threadId"] = chi.URLParam(r, "threadId")
	payload["commentId"] = chi.URLParam(r, "commentId")

	addedReply, err := h.reply.Add(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, api.AddedReplyData{AddedReply: addedReply})
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	payload, ok := ownerPayload(w, r)
	if !ok {
		return
	}
	payload["threadId"] = chi.URLParam(r, "threadId")
	payload["commentId"] = chi.URLParam(r, "commentId")
	payload["replyId"] = chi.URLParam(r, "replyId")

	if err := h.reply.Delete(r.Context(), payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil)
}
