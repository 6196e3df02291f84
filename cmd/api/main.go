package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/dental-admin/internal/audit"
	"github.com/BruksfildServices01/dental-admin/internal/config"
	"github.com/BruksfildServices01/dental-admin/internal/fixtures"
	"github.com/BruksfildServices01/dental-admin/internal/infra/repository"
	"github.com/BruksfildServices01/dental-admin/internal/middleware"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/observability"
	"github.com/BruksfildServices01/dental-admin/internal/routes"
)

func main() {
	cfg := config.Load()
	logger := cfg.Logger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seed, err := fixtures.LoadFile(cfg.SeedFile)
	if err != nil {
		return err
	}
	repo := repository.NewFixtureRepository(seed)

	// ------------------------------
	// notification feed
	// ------------------------------
	var feed notify.Feed = notify.NewMemoryFeed(cfg.NotificationLimit)
	checks := map[string]observability.HealthCheck{}
	if cfg.RedisURL != "" {
		redisFeed, err := notify.NewRedisFeed(ctx, cfg.RedisURL, cfg.NotificationLimit)
		if err != nil {
			return err
		}
		defer redisFeed.Close()
		feed = redisFeed
		checks["redis"] = redisFeed.Ping
		logger.Info("notification feed backed by redis")
	}

	recent := audit.NewRecorder(500)
	dispatcher := audit.NewDispatcher(audit.Tee{audit.New(logger), recent}, logger)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.Cleanup(ctx)

	gin.SetMode(cfg.GinMode)
	r := gin.New()

	err = routes.RegisterRoutes(r, routes.Deps{
		Repo:         repo,
		Feed:         feed,
		Audit:        dispatcher,
		AuditLog:     recent,
		Metrics:      observability.NewMetrics(logger),
		Logger:       logger,
		Location:     cfg.Location(),
		SubmitDelay:  cfg.SubmitDelay,
		RateLimiter:  limiter,
		CORSOrigins:  cfg.CORSOrigins,
		HealthChecks: checks,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "timezone", cfg.Timezone, "submit_delay", cfg.SubmitDelay)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	// handlers wait for their saves, so the audit queue is complete here
	return dispatcher.Close(shutdownCtx)
}
