package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/itchan-dev/forum-api/shared/api"
	"github.com/itchan-dev/forum-api/shared/logger"
	"github.com/itchan-dev/forum-api/shared/utils"
)

// Health reports 200 when the database answers a ping, 503 otherwise.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		logger.Log.Warn("health check failed", "error", err)
		utils.WriteFail(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	utils.WriteSuccess(w, http.StatusOK, api.HealthData{Database: "ok"})
}
