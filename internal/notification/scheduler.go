package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/palabraviva/daily-verse-api/internal/registration"
	"github.com/palabraviva/daily-verse-api/internal/verse"
)

// Delivery hours in each device's local time.
const (
	morningHour   = 10
	afternoonHour = 14
	eveningHour   = 18
)

// GroupResult is the outcome for one delivery group.
type GroupResult struct {
	SuccessCount int    `json:"successCount"`
	FailureCount int    `json:"failureCount"`
	Error        string `json:"error,omitempty"`
}

// PassResult summarizes one hourly pass. Results is keyed by the group's
// verse key id ("{date}_{slot}_{lang}").
type PassResult struct {
	Processed int                    `json:"processed"`
	Skipped   int                    `json:"skipped,omitempty"`
	Results   map[string]GroupResult `json:"results"`
}

// deliveryGroup is the ephemeral token set sharing one verse key during a
// single pass.
type deliveryGroup struct {
	key    verse.Key
	tokens []string
}

// Scheduler runs the hourly delivery pass: scan registrations, map each one
// to its local-time slot, group by verse key, resolve the artifact and
// dispatch.
type Scheduler struct {
	regs       registration.Repository
	verses     verse.Resolver
	dispatcher *Dispatcher
	log        zerolog.Logger
}

func NewScheduler(regs registration.Repository, verses verse.Resolver, dispatcher *Dispatcher, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		regs:       regs,
		verses:     verses,
		dispatcher: dispatcher,
		log:        log.With().Str("component", "scheduler").Logger(),
	}
}

// RunHourlyPass delivers to every registration whose local wall-clock hour
// at now maps to a slot. Errors local to one registration or one group are
// isolated; only a failure to read the registration list aborts the pass.
func (s *Scheduler) RunHourlyPass(ctx context.Context, now time.Time) (*PassResult, error) {
	regs, err := s.regs.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("read registrations: %w", err)
	}

	result := &PassResult{Results: make(map[string]GroupResult)}
	if len(regs) == 0 {
		return result, nil
	}

	groups := make(map[string]*deliveryGroup)
	var order []string

	for _, reg := range regs {
		tz := reg.Timezone
		if tz == "" {
			tz = registration.DefaultTimezone
		}
		loc, err := time.LoadLocation(tz)
		if err != nil {
			s.log.Warn().Str("timezone", tz).Msg("skipping registration with invalid timezone")
			result.Skipped++
			continue
		}

		local := now.In(loc)
		slot, ok := resolveSlot(local.Hour(), reg.Frequency)
		if !ok {
			continue
		}

		key := verse.Key{
			Date:     local.Format("2006-01-02"),
			Slot:     slot,
			Language: reg.Language,
		}
		id := key.DocID()

		group, exists := groups[id]
		if !exists {
			group = &deliveryGroup{key: key}
			groups[id] = group
			order = append(order, id)
		}
		group.tokens = append(group.tokens, reg.Token)
	}

	for _, id := range order {
		group := groups[id]

		v, err := s.verses.Resolve(ctx, group.key)
		if err != nil {
			s.log.Error().Err(err).Str("key", id).Msg("failed to resolve verse for group")
			result.Results[id] = GroupResult{Error: err.Error()}
			continue
		}

		n := Notification{
			Title: TitleFor(group.key.Language, group.key.Slot),
			Body:  fmt.Sprintf("%s - %q", v.Reference, v.Text),
		}

		dr := s.dispatcher.Dispatch(ctx, group.tokens, n)
		s.log.Info().
			Str("key", id).
			Int("tokens", len(group.tokens)).
			Int("success", dr.SuccessCount).
			Int("failure", dr.FailureCount).
			Msg("group dispatched")

		result.Results[id] = GroupResult{
			SuccessCount: dr.SuccessCount,
			FailureCount: dr.FailureCount,
		}
	}

	result.Processed = len(groups)
	return result, nil
}

// resolveSlot maps a local hour and registration frequency to a delivery
// slot. Frequency 1 devices are only ever eligible for the morning slot.
func resolveSlot(hour, frequency int) (verse.Slot, bool) {
	var slot verse.Slot
	switch {
	case hour == morningHour:
		slot = verse.SlotMorning
	case hour == afternoonHour && frequency == registration.FrequencyAllSlots:
		slot = verse.SlotAfternoon
	case hour == eveningHour && frequency == registration.FrequencyAllSlots:
		slot = verse.SlotEvening
	default:
		return "", false
	}

	if frequency == registration.FrequencyMorningOnly && slot != verse.SlotMorning {
		return "", false
	}
	return slot, true
}
