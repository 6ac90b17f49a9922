package handler

import (
	"net/http"

	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/utils"
)

func (h *Handler) PostUser(w http.ResponseWriter, r *http.Request) {
	payload, ok := decodePayload(w, r, "fullname")
	if !ok {
		return
	}

	addedUser, err := h.user.Register(r.Context(), payload)
	if err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}
	utils.WriteSuccess(w, http.StatusCreated, api.AddedUserData{AddedUser: addedUser})
}
