package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palabraviva/daily-verse-api/internal/registration"
	"github.com/palabraviva/daily-verse-api/internal/verse"
)

// trackingResolver counts resolutions per key and can fail selected keys.
type trackingResolver struct {
	mu      sync.Mutex
	calls   map[string]int
	failFor map[string]bool
}

func newTrackingResolver() *trackingResolver {
	return &trackingResolver{calls: make(map[string]int), failFor: make(map[string]bool)}
}

func (r *trackingResolver) Resolve(_ context.Context, key verse.Key) (*verse.Verse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[key.DocID()]++
	if r.failFor[key.DocID()] {
		return nil, errors.New("generation failed")
	}
	return &verse.Verse{
		Reference: "Juan 3:16",
		Text:      "Porque de tal manera amó Dios al mundo",
		Language:  key.Language,
	}, nil
}

func newTestScheduler(t *testing.T, regs *fakeRegRepo, resolver verse.Resolver) (*Scheduler, *scriptedProvider) {
	t.Helper()
	provider := &scriptedProvider{}
	dispatcher := NewDispatcher(provider, regs, zerolog.Nop())
	return NewScheduler(regs, resolver, dispatcher, zerolog.Nop()), provider
}

// santiagoAt returns an instant whose local wall clock in America/Santiago
// is the given hour on 2024-05-01.
func santiagoAt(t *testing.T, hour int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)
	return time.Date(2024, 5, 1, hour, 5, 0, 0, loc)
}

func TestResolveSlotMappings(t *testing.T) {
	type mapping struct {
		slot verse.Slot
		ok   bool
	}

	for hour := 0; hour < 24; hour++ {
		slot, ok := resolveSlot(hour, registration.FrequencyAllSlots)
		want := mapping{ok: false}
		switch hour {
		case 10:
			want = mapping{slot: verse.SlotMorning, ok: true}
		case 14:
			want = mapping{slot: verse.SlotAfternoon, ok: true}
		case 18:
			want = mapping{slot: verse.SlotEvening, ok: true}
		}
		assert.Equal(t, want, mapping{slot: slot, ok: ok}, "frequency 3, hour %d", hour)
	}

	for hour := 0; hour < 24; hour++ {
		slot, ok := resolveSlot(hour, registration.FrequencyMorningOnly)
		want := mapping{ok: false}
		if hour == 10 {
			want = mapping{slot: verse.SlotMorning, ok: true}
		}
		assert.Equal(t, want, mapping{slot: slot, ok: ok}, "frequency 1, hour %d", hour)
	}
}

func TestHourlyPassNoRegistrations(t *testing.T) {
	s, provider := newTestScheduler(t, newFakeRegRepo(), newTrackingResolver())

	result, err := s.RunHourlyPass(context.Background(), santiagoAt(t, 10))
	require.NoError(t, err)

	assert.Zero(t, result.Processed)
	assert.Empty(t, result.Results)
	assert.Empty(t, provider.batches)
}

func TestHourlyPassMorningGroup(t *testing.T) {
	regs := newFakeRegRepo(registration.Registration{
		Token:     "T1",
		Language:  verse.LangES,
		Frequency: registration.FrequencyMorningOnly,
		Timezone:  "America/Santiago",
	})
	resolver := newTrackingResolver()
	s, provider := newTestScheduler(t, regs, resolver)

	result, err := s.RunHourlyPass(context.Background(), santiagoAt(t, 10))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	group, ok := result.Results["2024-05-01_morning_es"]
	require.True(t, ok, "expected exactly the morning es group, got %v", result.Results)
	assert.Equal(t, 1, group.SuccessCount)
	assert.Zero(t, group.FailureCount)

	assert.Equal(t, 1, resolver.calls["2024-05-01_morning_es"], "artifact resolved exactly once")
	require.Len(t, provider.batches, 1)
	assert.Equal(t, []string{"T1"}, provider.batches[0])
}

func TestHourlyPassFrequencyOneExcludesAfternoon(t *testing.T) {
	regs := newFakeRegRepo(
		registration.Registration{
			Token:     "T1",
			Language:  verse.LangES,
			Frequency: registration.FrequencyMorningOnly,
			Timezone:  "America/Santiago",
		},
		registration.Registration{
			Token:     "T2",
			Language:  verse.LangES,
			Frequency: registration.FrequencyAllSlots,
			Timezone:  "America/Santiago",
		},
	)
	s, provider := newTestScheduler(t, regs, newTrackingResolver())

	result, err := s.RunHourlyPass(context.Background(), santiagoAt(t, 14))
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	_, ok := result.Results["2024-05-01_afternoon_es"]
	require.True(t, ok)
	require.Len(t, provider.batches, 1)
	assert.Equal(t, []string{"T2"}, provider.batches[0], "frequency 1 token must not join the afternoon group")
}

func TestHourlyPassInvalidTimezoneSkipped(t *testing.T) {
	regs := newFakeRegRepo(
		registration.Registration{
			Token:     "bad",
			Language:  verse.LangEN,
			Frequency: registration.FrequencyAllSlots,
			Timezone:  "Not/AZone",
		},
		registration.Registration{
			Token:     "good",
			Language:  verse.LangEN,
			Frequency: registration.FrequencyAllSlots,
			Timezone:  "America/Santiago",
		},
	)
	s, provider := newTestScheduler(t, regs, newTrackingResolver())

	result, err := s.RunHourlyPass(context.Background(), santiagoAt(t, 18))
	require.NoError(t, err, "an invalid timezone must not abort the pass")

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Processed)
	require.Len(t, provider.batches, 1)
	assert.Equal(t, []string{"good"}, provider.batches[0])
}

func TestHourlyPassEmptyTimezoneDefaults(t *testing.T) {
	regs := newFakeRegRepo(registration.Registration{
		Token:     "T1",
		Language:  verse.LangPT,
		Frequency: registration.FrequencyAllSlots,
	})
	s, _ := newTestScheduler(t, regs, newTrackingResolver())

	result, err := s.RunHourlyPass(context.Background(), santiagoAt(t, 10))
	require.NoError(t, err)

	assert.Zero(t, result.Skipped)
	assert.Contains(t, result.Results, "2024-05-01_morning_pt")
}

func TestHourlyPassGroupsByLanguage(t *testing.T) {
	regs := newFakeRegRepo(
		registration.Registration{Token: "es-1", Language: verse.LangES, Frequency: 3, Timezone: "America/Santiago"},
		registration.Registration{Token: "es-2", Language: verse.LangES, Frequency: 1, Timezone: "America/Santiago"},
		registration.Registration{Token: "en-1", Language: verse.LangEN, Frequency: 3, Timezone: "America/Santiago"},
	)
	s, provider := newTestScheduler(t, regs, newTrackingResolver())

	result, err := s.RunHourlyPass(context.Background(), santiagoAt(t, 10))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Contains(t, result.Results, "2024-05-01_morning_es")
	assert.Contains(t, result.Results, "2024-05-01_morning_en")

	var esBatch []string
	for _, batch := range provider.batches {
		for _, token := range batch {
			if token == "es-1" || token == "es-2" {
				esBatch = batch
			}
		}
	}
	assert.ElementsMatch(t, []string{"es-1", "es-2"}, esBatch)
}

func TestHourlyPassGroupErrorIsolated(t *testing.T) {
	regs := newFakeRegRepo(
		registration.Registration{Token: "es-1", Language: verse.LangES, Frequency: 3, Timezone: "America/Santiago"},
		registration.Registration{Token: "en-1", Language: verse.LangEN, Frequency: 3, Timezone: "America/Santiago"},
	)
	resolver := newTrackingResolver()
	resolver.failFor["2024-05-01_morning_es"] = true
	s, provider := newTestScheduler(t, regs, resolver)

	result, err := s.RunHourlyPass(context.Background(), santiagoAt(t, 10))
	require.NoError(t, err, "one group's failure must not abort the pass")

	assert.Equal(t, 2, result.Processed)
	assert.NotEmpty(t, result.Results["2024-05-01_morning_es"].Error)
	assert.Equal(t, 1, result.Results["2024-05-01_morning_en"].SuccessCount)
	require.Len(t, provider.batches, 1, "the failed group is skipped, the other still dispatches")
	assert.Equal(t, []string{"en-1"}, provider.batches[0])
}

func TestHourlyPassRegistrationScanFailureAborts(t *testing.T) {
	regs := newFakeRegRepo()
	regs.listErr = errors.New("store offline")
	s, _ := newTestScheduler(t, regs, newTrackingResolver())

	_, err := s.RunHourlyPass(context.Background(), santiagoAt(t, 10))
	assert.ErrorContains(t, err, "store offline")
}

func TestHourlyPassLocalDateCrossesMidnight(t *testing.T) {
	// 18:00 in Tokyo on May 2nd is still May 1st in Santiago and UTC.
	regs := newFakeRegRepo(registration.Registration{
		Token:     "jp",
		Language:  verse.LangEN,
		Frequency: registration.FrequencyAllSlots,
		Timezone:  "Asia/Tokyo",
	})
	s, _ := newTestScheduler(t, regs, newTrackingResolver())

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	now := time.Date(2024, 5, 2, 18, 0, 0, 0, tokyo)

	result, err := s.RunHourlyPass(context.Background(), now)
	require.NoError(t, err)

	assert.Contains(t, result.Results, "2024-05-02_evening_en", "the group key uses the device's local date")
}

func TestTitleFor(t *testing.T) {
	assert.Equal(t, "Palabra Viva: Mañana 🌅", TitleFor(verse.LangES, verse.SlotMorning))
	assert.Equal(t, "Living Word: Evening 🌙", TitleFor(verse.LangEN, verse.SlotEvening))
	assert.Equal(t, "Palavra Viva: Tarde ☀️", TitleFor(verse.LangPT, verse.SlotAfternoon))
	assert.Equal(t, "Palabra Viva", TitleFor(verse.Language("fr"), verse.SlotMorning))
}
