package notification

import "github.com/palabraviva/daily-verse-api/internal/verse"

// defaultTitle is used when a (language, slot) pair has no entry.
const defaultTitle = "Palabra Viva"

// titles is the static per-(language, slot) notification title table.
var titles = map[verse.Language]map[verse.Slot]string{
	verse.LangES: {
		verse.SlotMorning:   "Palabra Viva: Mañana 🌅",
		verse.SlotAfternoon: "Palabra Viva: Tarde ☀️",
		verse.SlotEvening:   "Palabra Viva: Noche 🌙",
	},
	verse.LangEN: {
		verse.SlotMorning:   "Living Word: Morning 🌅",
		verse.SlotAfternoon: "Living Word: Afternoon ☀️",
		verse.SlotEvening:   "Living Word: Evening 🌙",
	},
	verse.LangPT: {
		verse.SlotMorning:   "Palavra Viva: Manhã 🌅",
		verse.SlotAfternoon: "Palavra Viva: Tarde ☀️",
		verse.SlotEvening:   "Palavra Viva: Noite 🌙",
	},
}

// TitleFor returns the notification title for a language and slot.
func TitleFor(lang verse.Language, slot verse.Slot) string {
	if bySlot, ok := titles[lang]; ok {
		if title, ok := bySlot[slot]; ok {
			return title
		}
	}
	return defaultTitle
}
