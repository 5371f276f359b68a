// Maximo Analytics - Maintenance Analytics API for BI Reporting
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/maximo-analytics

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/maximo-analytics/internal/analytics"
	"github.com/tomtom215/maximo-analytics/internal/api"
	"github.com/tomtom215/maximo-analytics/internal/config"
	"github.com/tomtom215/maximo-analytics/internal/database"
	"github.com/tomtom215/maximo-analytics/internal/logging"
	"github.com/tomtom215/maximo-analytics/internal/metrics"
	"github.com/tomtom215/maximo-analytics/internal/query"
	"github.com/tomtom215/maximo-analytics/internal/supervisor"
	"github.com/tomtom215/maximo-analytics/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// shutdownTimeout bounds graceful HTTP shutdown.
const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("driver", cfg.Database.EffectiveDriver()).
		Str("database_url", config.RedactURL(cfg.Database.URL)).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Maximo Analytics")
	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize record store")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing record store")
		}
	}()

	if cfg.Database.SeedDemoData {
		logging.Info().Msg("Demo data seeding enabled (DATABASE_SEED_DEMO_DATA=true)")
		if err := seedDemoData(db); err != nil {
			logging.Error().Err(err).Msg("Failed to seed demo data")
			return
		}
	}

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}
	for _, origin := range cfg.Security.CORSOrigins {
		if origin == "*" && cfg.Server.IsProduction() {
			logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*); set explicit BI portal origins in production")
			break
		}
	}

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           newHandler(cfg, db),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		FailureThreshold: 5,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  shutdownTimeout,
	})
	if err != nil {
		logging.Error().Err(err).Msg("Failed to create supervisor tree")
		return
	}

	tree.AddStoreService(services.NewPoolStatsService(db, cfg.Metrics.PoolStatsInterval))
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Application stopped gracefully")
}

// newHandler builds the catalog, query service and router over db.
func newHandler(cfg *config.Config, db *database.DB) http.Handler {
	catalog := analytics.NewCatalog()
	svc := query.NewService(db, catalog, query.WithTimeout(cfg.Query.Timeout))
	handler := api.NewHandler(svc, db, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(&cfg.Security))
	return router.SetupChi()
}

// seedDemoData creates the base tables and fills them when empty.
func seedDemoData(db *database.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := db.SeedDemoData(ctx, time.Now().UTC()); err != nil {
		return fmt.Errorf("seed demo data: %w", err)
	}
	return nil
}
