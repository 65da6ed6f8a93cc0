package registration

import (
	"time"

	"github.com/palabraviva/daily-verse-api/internal/verse"
)

// DefaultTimezone is assigned when a client registers without one.
const DefaultTimezone = "America/Santiago"

// Frequency values: how many of the three daily slots a device receives.
const (
	FrequencyMorningOnly = 1
	FrequencyAllSlots    = 3
)

// Registration is one device push token with its delivery preferences.
// The token is the primary key; client calls overwrite the whole record.
type Registration struct {
	Token     string         `json:"token"`
	Language  verse.Language `json:"lang"`
	Frequency int            `json:"frequency"`
	Timezone  string         `json:"timezone"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// RegisterRequest is the client payload for POST /api/register-token.
// Frequency is a pointer so a missing field can be told apart from zero.
type RegisterRequest struct {
	Token     string `json:"token"`
	Lang      string `json:"lang"`
	Frequency *int   `json:"frequency"`
	Timezone  string `json:"timezone"`
}
