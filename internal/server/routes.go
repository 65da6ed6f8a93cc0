package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/palabraviva/daily-verse-api/internal/notification"
	"github.com/palabraviva/daily-verse-api/internal/registration"
	"github.com/palabraviva/daily-verse-api/internal/verse"
	"github.com/palabraviva/daily-verse-api/pkg/response"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", s.ServerIsWorking)
	r.Get("/health", s.HealthHandler)

	r.Route("/api", func(r chi.Router) {
		s.loadVerseRoutes(r)
		s.loadRegistrationRoutes(r)
		s.loadCronRoutes(r)
	})

	return r
}

func (s *Server) ServerIsWorking(w http.ResponseWriter, r *http.Request) {
	resp := make(map[string]string)
	resp["message"] = "Welcome to Palabra Viva daily verse api"
	response.Success(w, resp, "Success")
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	response.Success(w, s.db.Health(), "Success")
}

func (s *Server) loadVerseRoutes(router chi.Router) {
	verseHandler := verse.NewHandler(s.verseSvc)

	router.Get("/daily-verse", verseHandler.GetDailyVerseHandler)
}

func (s *Server) loadRegistrationRoutes(router chi.Router) {
	regHandler := registration.NewHandler(s.regRepo)

	router.Post("/register-token", regHandler.RegisterTokenHandler)
}

func (s *Server) loadCronRoutes(router chi.Router) {
	verseHandler := verse.NewHandler(s.verseSvc)
	notifHandler := notification.NewHandler(s.scheduler)

	router.Get("/cron/generate-verses", verseHandler.GenerateVersesHandler)
	router.Get("/cron/push-hourly", notifHandler.PushHourlyHandler)
}
