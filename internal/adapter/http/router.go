package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/iho/pixdash/internal/adapter/http/handler"
	"github.com/iho/pixdash/internal/adapter/http/middleware"
	"github.com/iho/pixdash/internal/infrastructure/metrics"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	SessionHandler      *handler.SessionHandler
	AccountHandler      *handler.AccountHandler
	TransactionHandler  *handler.TransactionHandler
	TransferHandler     *handler.TransferHandler
	DashboardHandler    *handler.DashboardHandler
	NotificationHandler *handler.NotificationHandler
	HealthHandler       *handler.HealthHandler
	Logger              zerolog.Logger

	// Optional
	Metrics        *metrics.Metrics
	MetricsHandler http.Handler
	RateLimiter    *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Recovery(cfg.Logger))
	if cfg.Metrics != nil {
		r.Use(middleware.Metrics(cfg.Metrics))
	}
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)

	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Session
		r.Route("/session", func(r chi.Router) {
			r.Get("/", cfg.SessionHandler.Status)
			r.Post("/login", cfg.SessionHandler.Login)
			r.Post("/logout", cfg.SessionHandler.Logout)
			r.Post("/register", cfg.SessionHandler.Register)
			r.Post("/restore", cfg.SessionHandler.Restore)
		})

		// Accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", cfg.AccountHandler.List)
			r.Post("/", cfg.AccountHandler.Create)
			r.Put("/{id}", cfg.AccountHandler.Update)
		})

		// Transactions
		r.Route("/transactions", func(r chi.Router) {
			r.Get("/recent", cfg.TransactionHandler.Recent)
			r.Get("/history", cfg.TransactionHandler.History)
			r.Get("/export", cfg.TransactionHandler.Export)
			r.Get("/summary", cfg.TransactionHandler.MonthlySummary)
		})

		// Transfers
		r.Route("/transfers", func(r chi.Router) {
			r.Post("/", cfg.TransferHandler.Create)
			r.Get("/{id}", cfg.TransferHandler.Status)
			r.Post("/{id}/cancel", cfg.TransferHandler.Cancel)
		})

		r.Get("/dashboard", cfg.DashboardHandler.Get)

		// Notifications
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", cfg.NotificationHandler.List)
			r.Delete("/{id}", cfg.NotificationHandler.Dismiss)
		})
	})

	return r
}
