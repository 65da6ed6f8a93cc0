package verse

import (
	"fmt"
	"time"
)

// Slot is one of the three daily delivery windows.
type Slot string

const (
	SlotMorning   Slot = "morning"
	SlotAfternoon Slot = "afternoon"
	SlotEvening   Slot = "evening"
)

// Slots lists the delivery windows in daily order.
var Slots = []Slot{SlotMorning, SlotAfternoon, SlotEvening}

func ParseSlot(s string) (Slot, error) {
	switch Slot(s) {
	case SlotMorning, SlotAfternoon, SlotEvening:
		return Slot(s), nil
	}
	return "", fmt.Errorf("unknown slot %q", s)
}

// Language is one of the supported verse languages.
type Language string

const (
	LangES Language = "es"
	LangEN Language = "en"
	LangPT Language = "pt"
)

var Languages = []Language{LangES, LangEN, LangPT}

func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LangES, LangEN, LangPT:
		return Language(s), nil
	}
	return "", fmt.Errorf("unknown language %q", s)
}

// Key identifies one cached artifact. Immutable once formed.
type Key struct {
	Date     string // calendar day, YYYY-MM-DD
	Slot     Slot
	Language Language
}

// DocID is the store identifier for the key: "{date}_{slot}_{lang}".
func (k Key) DocID() string {
	return fmt.Sprintf("%s_%s_%s", k.Date, k.Slot, k.Language)
}

// KeyFor builds the key for a moment in time, using the day in UTC.
func KeyFor(now time.Time, slot Slot, lang Language) Key {
	return Key{
		Date:     now.UTC().Format("2006-01-02"),
		Slot:     slot,
		Language: lang,
	}
}

// Verse is the daily artifact: reference, text, pastoral reflection and a
// generated image URL. Created once per Key and never mutated afterwards.
type Verse struct {
	Reference   string    `json:"reference"`
	Text        string    `json:"text"`
	Explanation string    `json:"explanation"`
	ImageURL    string    `json:"imageUrl"`
	Language    Language  `json:"lang"`
	CreatedAt   time.Time `json:"createdAt"`
}
