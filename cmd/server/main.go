package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/pixdash/internal/adapter/api"
	httpAdapter "github.com/iho/pixdash/internal/adapter/http"
	"github.com/iho/pixdash/internal/adapter/http/handler"
	"github.com/iho/pixdash/internal/adapter/http/middleware"
	"github.com/iho/pixdash/internal/adapter/notify"
	"github.com/iho/pixdash/internal/adapter/presenter"
	"github.com/iho/pixdash/internal/adapter/repository"
	"github.com/iho/pixdash/internal/domain"
	"github.com/iho/pixdash/internal/infrastructure/auth"
	"github.com/iho/pixdash/internal/infrastructure/config"
	"github.com/iho/pixdash/internal/infrastructure/logger"
	"github.com/iho/pixdash/internal/infrastructure/metrics"
	"github.com/iho/pixdash/internal/usecase"
)

const limiterIdle = time.Hour

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// deps are the long-lived objects behind the local API.
type deps struct {
	router   http.Handler
	app      *usecase.App
	limiter  *middleware.RateLimiter
	closeAll func() error
}

func build(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*deps, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	// Metrics
	var (
		m        *metrics.Metrics
		registry *prometheus.Registry
	)
	if cfg.MetricsEnabled {
		registry = prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		m = metrics.New(registry)
	}

	// Credential store
	store, closeStore, err := repository.OpenCredentialStore(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open credential store: %w", err)
	}
	if m != nil {
		store = repository.Instrument(store, cfg.CredentialStore, m)
	}
	log.Info().Str("backend", cfg.CredentialStore).Msg("credential store ready")

	state := usecase.NewState()
	flags := presenter.NewFlags()

	centerOpts := []notify.Option{notify.WithLogger(log)}
	apiOpts := []api.Option{api.WithTimeout(cfg.APITimeout), api.WithLogger(log)}
	appCfg := usecase.AppConfig{
		Store:              store,
		Inspector:          auth.NewInspector(),
		Presenter:          flags,
		Logger:             log,
		Now:                func() time.Time { return time.Now().In(loc) },
		RecentTransactions: cfg.RecentTransactionsLimit,
		State:              state,
	}
	if m != nil {
		centerOpts = append(centerOpts, notify.WithCounter(m))
		apiOpts = append(apiOpts, api.WithRecorder(m))
		appCfg.Observer = m
	}

	center := notify.NewCenter(cfg.NotificationTTL, centerOpts...)
	appCfg.Notifier = center
	appCfg.API = api.NewClient(cfg.APIBaseURL, state.Token, apiOpts...)

	app := usecase.NewApp(appCfg)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	routerCfg := httpAdapter.RouterConfig{
		SessionHandler:      handler.NewSessionHandler(app.Session, flags),
		AccountHandler:      handler.NewAccountHandler(app.Accounts),
		TransactionHandler:  handler.NewTransactionHandler(app.Transactions, state, loc),
		TransferHandler:     handler.NewTransferHandler(app.Transfers, state),
		DashboardHandler:    handler.NewDashboardHandler(app.Dashboard, state),
		NotificationHandler: handler.NewNotificationHandler(center),
		HealthHandler: handler.NewHealthHandler(map[string]handler.Check{
			"credential_store": func(ctx context.Context) error {
				_, err := store.Get(ctx)
				if errors.Is(err, domain.ErrNoStoredCredential) {
					return nil
				}
				return err
			},
		}),
		Logger:      log,
		RateLimiter: limiter,
	}
	if m != nil {
		limiter.CountHits(m.RateLimitHits)
		routerCfg.Metrics = m
		routerCfg.MetricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	return &deps{
		router:   httpAdapter.NewRouter(routerCfg),
		app:      app,
		limiter:  limiter,
		closeAll: closeStore,
	}, nil
}

func newServer(cfg *config.Config, router http.Handler) *http.Server {
	return &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	d, err := build(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := d.closeAll(); err != nil {
			log.Warn().Err(err).Msg("failed to close credential store")
		}
	}()

	// A stored credential signs the local API in; without one it starts anonymous.
	if err := d.app.Session.RestoreSession(ctx); err != nil {
		log.Info().Err(err).Msg("starting without a session")
	}

	go cleanupLimiters(ctx, d.limiter, log)

	server := newServer(cfg, d.router)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Str("api", cfg.APIBaseURL).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info().Msg("server stopped")

	return nil
}

func cleanupLimiters(ctx context.Context, limiter *middleware.RateLimiter, log zerolog.Logger) {
	ticker := time.NewTicker(limiterIdle)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := limiter.CleanupLimiters(limiterIdle); removed > 0 {
				log.Debug().Int("removed", removed).Msg("rate limiters cleaned up")
			}
		}
	}
}
