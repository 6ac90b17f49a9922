package handler

import (
	"net/http"

	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/utils"
)

func (h *Handler) PostAuthentication(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	tokens, err := h.auth.Login(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, tokens)
}

func (h *Handler) PutAuthentication(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	accessToken, err := h.auth.Refresh(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, api.AccessTokenData{AccessToken: accessToken})
}

func (h *Handler) DeleteAuthentication(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r)
	if !ok {
		return
	}

	if err := h.auth.Logout(r.Context(), payload); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusOK, nil)
}
