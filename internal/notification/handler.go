package notification

import (
	"net/http"
	"time"

	"github.com/palabraviva/daily-verse-api/pkg/response"
)

type Handler struct {
	scheduler *Scheduler
}

func NewHandler(scheduler *Scheduler) Handler {
	return Handler{scheduler: scheduler}
}

// PushHourlyHandler serves GET /api/cron/push-hourly, meant to be hit once
// per hour on the hour by an external trigger.
func (h *Handler) PushHourlyHandler(w http.ResponseWriter, r *http.Request) {
	result, err := h.scheduler.RunHourlyPass(r.Context(), time.Now())
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Hourly push failed", err.Error())
		return
	}

	response.Success(w, result, "successfully")
}
