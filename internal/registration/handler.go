package registration

import (
	"encoding/json"
	"net/http"

	"github.com/palabraviva/daily-verse-api/internal/verse"
	"github.com/palabraviva/daily-verse-api/pkg/response"
)

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) Handler {
	return Handler{repo: repo}
}

// RegisterTokenHandler serves POST /api/register-token. Upserts the device
// token with its language, frequency and timezone.
func (h *Handler) RegisterTokenHandler(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid JSON body", err.Error())
		return
	}

	if req.Token == "" || req.Lang == "" || req.Frequency == nil {
		response.Error(w, http.StatusBadRequest, "Missing data", nil)
		return
	}

	lang, err := verse.ParseLanguage(req.Lang)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lang", err.Error())
		return
	}

	if *req.Frequency != FrequencyMorningOnly && *req.Frequency != FrequencyAllSlots {
		response.Error(w, http.StatusBadRequest, "Invalid frequency", map[string]string{
			"frequency": "frequency must be 1 or 3",
		})
		return
	}

	tz := req.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}

	reg := &Registration{
		Token:     req.Token,
		Language:  lang,
		Frequency: *req.Frequency,
		Timezone:  tz,
	}

	if err := h.repo.Upsert(r.Context(), reg); err != nil {
		response.Error(w, http.StatusInternalServerError, "Failed to register token", err.Error())
		return
	}

	response.Success(w, map[string]bool{"success": true}, "successfully")
}
