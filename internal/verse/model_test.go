package verse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDocID(t *testing.T) {
	key := Key{Date: "2024-05-01", Slot: SlotMorning, Language: LangES}
	assert.Equal(t, "2024-05-01_morning_es", key.DocID())
}

func TestKeyForUsesUTCDay(t *testing.T) {
	// 23:30 in Santiago (UTC-4 on this date) is already May 2nd in UTC.
	scl, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)
	now := time.Date(2024, 5, 1, 23, 30, 0, 0, scl)

	key := KeyFor(now, SlotEvening, LangPT)
	assert.Equal(t, "2024-05-02", key.Date)
}

func TestParseSlot(t *testing.T) {
	for _, s := range Slots {
		got, err := ParseSlot(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseSlot("midnight")
	assert.Error(t, err)
}

func TestParseLanguage(t *testing.T) {
	for _, l := range Languages {
		got, err := ParseLanguage(string(l))
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}

	_, err := ParseLanguage("fr")
	assert.Error(t, err)
}
