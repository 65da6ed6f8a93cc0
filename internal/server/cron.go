package server

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// Per-job ceiling; a stuck pass must not pile up behind the next trigger.
const jobTimeout = 10 * time.Minute

type backgroundJobs struct {
	cron *cron.Cron
}

// StartBackgroundJobs wires the in-process cron triggers when enabled by
// config. External cron hitting the /api/cron endpoints stays the default
// operational mode; both triggers share the same idempotent cache reads.
func (s *Server) StartBackgroundJobs() {
	if !s.cfg.CronEnabled {
		s.log.Info().Msg("in-process cron disabled; expecting external triggers")
		return
	}

	c := cron.New()

	// Hourly delivery pass, on the hour. Running at most once per hour is
	// what prevents duplicate sends for the same group key.
	c.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		result, err := s.scheduler.RunHourlyPass(ctx, time.Now())
		if err != nil {
			s.log.Error().Err(err).Msg("hourly push pass failed")
			return
		}
		s.log.Info().Int("processed", result.Processed).Msg("hourly push pass finished")
	})

	// Nightly pre-generation so the day's artifacts exist before the first
	// delivery window.
	c.AddFunc("30 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		date := time.Now().UTC().Format("2006-01-02")
		stats, err := s.verseSvc.PreGenerate(ctx, date)
		if err != nil {
			s.log.Error().Err(err).Msg("verse pre-generation failed")
			return
		}
		s.log.Info().
			Str("date", date).
			Int("generated", stats.Generated).
			Int("skipped", stats.Skipped).
			Int("errors", len(stats.Errors)).
			Msg("verse pre-generation finished")
	})

	c.Start()
	s.jobs = &backgroundJobs{cron: c}
	s.log.Info().Msg("background jobs started")
}

// StopBackgroundJobs stops the cron runner and waits for running jobs.
func (s *Server) StopBackgroundJobs() {
	if s.jobs == nil {
		return
	}
	<-s.jobs.cron.Stop().Done()
	s.log.Info().Msg("background jobs stopped gracefully")
}
