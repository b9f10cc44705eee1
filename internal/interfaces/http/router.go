// Package http assembles the chi route tree and the HTTP server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/LegalAid-Assistant/internal/infrastructure/monitoring/prometheus"
	"github.com/turtacn/LegalAid-Assistant/internal/interfaces/http/handlers"
	"github.com/turtacn/LegalAid-Assistant/internal/interfaces/http/middleware"
)

// RouterConfig aggregates the handlers and middleware for the route tree.
// Feedback endpoints are mounted only when FeedbackHandler is set.
type RouterConfig struct {
	AssistantHandler *handlers.AssistantHandler
	FeedbackHandler  *handlers.FeedbackHandler
	HealthHandler    *handlers.HealthHandler

	Metrics        *prometheus.AppMetrics
	MetricsHandler http.Handler
	CORS           *middleware.CORSConfig
	RateLimit      *middleware.RateLimitConfig
	Logger         logging.Logger
}

// NewRouter builds the complete route tree.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if cfg.Logger != nil {
		r.Use(middleware.RequestLogging(cfg.Logger, cfg.Metrics, "/health", "/ready", "/metrics"))
	}
	if cfg.CORS != nil {
		r.Use(middleware.CORS(*cfg.CORS))
	}
	if cfg.RateLimit != nil {
		r.Use(middleware.RateLimit(*cfg.RateLimit))
	}

	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.Liveness)
		r.Get("/ready", cfg.HealthHandler.Readiness)
	}
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api/v1", func(api chi.Router) {
		if h := cfg.AssistantHandler; h != nil {
			api.Post("/analyze", h.Analyze)
			api.Post("/chat", h.Chat)
			api.Route("/chat/sessions/{sessionID}", func(s chi.Router) {
				s.Get("/", h.History)
				s.Delete("/", h.ClearSession)
			})
			api.Post("/documents", h.ProcessDocument)
			api.Post("/translate", h.Translate)
			api.Post("/translate/detect", h.DetectLanguage)
			api.Get("/languages", h.Languages)
		}
		if h := cfg.FeedbackHandler; h != nil {
			api.Post("/feedback", h.Submit)
			api.Get("/feedback/stats", h.Stats)
			api.Get("/feedback/suggestions", h.Suggestions)
			api.Get("/feedback/report", h.Report)
		}
	})

	return r
}
