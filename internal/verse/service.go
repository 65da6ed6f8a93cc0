package verse

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
)

// CronStats summarizes one pre-generation pass.
type CronStats struct {
	Generated int      `json:"generated"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors"`
}

// Service serves direct verse requests and the pre-generation pass.
type Service struct {
	repo  Repository
	cache Resolver
	log   zerolog.Logger
}

func NewService(repo Repository, cache Resolver, log zerolog.Logger) *Service {
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log.With().Str("component", "verse_service").Logger(),
	}
}

// GetDailyVerse resolves today's artifact for (slot, lang), generating it on
// first demand. "Today" is the server's UTC calendar day.
func (s *Service) GetDailyVerse(ctx context.Context, slot Slot, lang Language) (*Verse, error) {
	return s.cache.Resolve(ctx, KeyFor(time.Now(), slot, lang))
}

// PreGenerate fills the store for every (slot, lang) combination of the
// given date. Existing keys are skipped, generation failures are collected
// per key and do not stop the remaining combinations.
func (s *Service) PreGenerate(ctx context.Context, date string) (*CronStats, error) {
	stats := &CronStats{Errors: []string{}}

	for _, slot := range Slots {
		for _, lang := range Languages {
			key := Key{Date: date, Slot: slot, Language: lang}

			_, err := s.repo.GetByKey(ctx, key)
			if err == nil {
				stats.Skipped++
				s.log.Info().Str("key", key.DocID()).Msg("already exists")
				continue
			}
			if !errors.Is(err, ErrNotFound) {
				return nil, err
			}

			s.log.Info().Str("key", key.DocID()).Msg("generating")
			if _, err := s.cache.Resolve(ctx, key); err != nil {
				s.log.Error().Err(err).Str("key", key.DocID()).Msg("generation failed")
				stats.Errors = append(stats.Errors, key.DocID())
				continue
			}
			stats.Generated++
		}
	}

	return stats, nil
}
