package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/utils"
)

func (h *Handler) PostComment(w http.ResponseWriter, r *http.Request) {
	payload, ok := ownerPayload(w, r, "content")
	if !ok {
		return
	}
	payload["threadId"] = chi.URLParam(r, "threadId")

	addedComment, err := h.comment.Add(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, api.AddedCommentData{AddedComment: addedComment})
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	payload, ok := ownerPayload(w, r)
	if !ok {
		return
	}
	payload["threadId"] = chi.URLParam(r, "threadId")
	payload["commentId"] = chi.URLParam(r, "commentId")

	if err := h.comment.Delete(r.Context(), payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil)
}
