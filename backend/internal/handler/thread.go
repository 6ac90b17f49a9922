package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/utils"
)

func (h *Handler) PostThread(w http.ResponseWriter, r *http.Request) {
	payload, ok := ownerPayload(w, r, "title", "body")
	if !ok {
		return
	}

	addedThread, err := h.thread.Add(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, api.AddedThreadData{AddedThread: addedThread})
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	thread, err := h.thread.GetDetail(r.Context(), chi.URLParam(r, "threadId"))
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, api.ThreadData{Thread: thread})
}
