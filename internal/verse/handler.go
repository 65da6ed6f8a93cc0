package verse

import (
	"net/http"
	"time"

	"github.com/palabraviva/daily-verse-api/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) Handler {
	return Handler{service: service}
}

// GetDailyVerseHandler serves GET /api/daily-verse?lang=&slot=.
func (h *Handler) GetDailyVerseHandler(w http.ResponseWriter, r *http.Request) {
	langParam := r.URL.Query().Get("lang")
	slotParam := r.URL.Query().Get("slot")

	if langParam == "" || slotParam == "" {
		response.Error(w, http.StatusBadRequest, "Missing lang or slot", nil)
		return
	}

	slot, err := ParseSlot(slotParam)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid slot", err.Error())
		return
	}
	lang, err := ParseLanguage(langParam)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lang", err.Error())
		return
	}

	v, err := h.service.GetDailyVerse(r.Context(), slot, lang)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to get daily verse", err.Error())
		return
	}

	response.Success(w, v, "successfully")
}

// GenerateVersesHandler serves GET /api/cron/generate-verses: pre-fills the
// store for every slot/language combination of today (UTC).
func (h *Handler) GenerateVersesHandler(w http.ResponseWriter, r *http.Request) {
	targetDate := time.Now().UTC().Format("2006-01-02")

	stats, err := h.service.PreGenerate(r.Context(), targetDate)
	if err != nil {
		response.Error(w, http.StatusInternalServerError, "Cron execution failed", err.Error())
		return
	}

	response.Success(w, map[string]interface{}{
		"targetDate": targetDate,
		"stats":      stats,
	}, "Cron execution finished")
}
