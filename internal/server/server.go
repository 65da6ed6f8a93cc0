package server

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/rs/zerolog"

	"github.com/palabraviva/daily-verse-api/internal/database"
	"github.com/palabraviva/daily-verse-api/internal/notification"
	"github.com/palabraviva/daily-verse-api/internal/registration"
	"github.com/palabraviva/daily-verse-api/internal/verse"
	"github.com/palabraviva/daily-verse-api/pkg/config"
)

type Server struct {
	port      string
	db        database.Service
	handler   http.Handler
	cfg       *config.Config
	log       zerolog.Logger
	verseSvc  *verse.Service
	regRepo   registration.Repository
	scheduler *notification.Scheduler
	jobs      *backgroundJobs
}

// NewServer constructs the app server with all dependencies injected. The
// chat client and push provider are external collaborators built by the
// caller.
func NewServer(db database.Service, cfg *config.Config, chat verse.ChatClient, provider notification.Provider, log zerolog.Logger) *Server {
	stats := db.Health()
	if stats["status"] != "up" {
		log.Fatal().Str("error", stats["error"]).Msg("database connection failed")
	}
	log.Info().Msg("database connection successful")

	verseRepo := verse.NewRepository(db)
	generator := verse.NewGenerator(chat, log)
	cache := verse.NewCache(verseRepo, generator, log)
	verseSvc := verse.NewService(verseRepo, cache, log)

	regRepo := registration.NewRepository(db)
	dispatcher := notification.NewDispatcher(provider, regRepo, log)
	scheduler := notification.NewScheduler(regRepo, cache, dispatcher, log)

	s := &Server{
		port:      cfg.Port,
		db:        db,
		cfg:       cfg,
		log:       log,
		verseSvc:  verseSvc,
		regRepo:   regRepo,
		scheduler: scheduler,
	}

	s.handler = s.RegisterRoutes()
	return s
}

// HTTPServer returns the actual *http.Server instance
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", s.port),
		Handler:      s.handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 5 * time.Minute, // cron endpoints generate content inline
		IdleTimeout:  60 * time.Second,
	}
}
