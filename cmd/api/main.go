package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/palabraviva/daily-verse-api/internal/database"
	"github.com/palabraviva/daily-verse-api/internal/notification"
	"github.com/palabraviva/daily-verse-api/internal/server"
	"github.com/palabraviva/daily-verse-api/internal/verse"
	"github.com/palabraviva/daily-verse-api/pkg/config"
	"github.com/palabraviva/daily-verse-api/pkg/logger"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.New(cfg.LogLevel, cfg.AppEnv)

	db, err := database.New(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	chat := verse.NewGroqClient(cfg.GroqAPIKey, cfg.GroqBaseURL, cfg.GroqModel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var provider notification.Provider
	provider, err = notification.NewFCMProvider(ctx, cfg)
	if err != nil {
		// Content endpoints keep working without push credentials.
		log.Error().Err(err).Msg("firebase unavailable, push delivery disabled")
		provider = notification.UnavailableProvider{}
	}

	srv := server.NewServer(db, cfg, chat, provider, log)
	httpServer := srv.HTTPServer()

	srv.StartBackgroundJobs()

	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("server listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}

	srv.StopBackgroundJobs()
}
