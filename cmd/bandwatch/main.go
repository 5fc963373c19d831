// Command bandwatch polls a DIAS ionosonde station on a fixed cadence,
// publishes band advisories to Kafka, and serves them over HTTP.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/iono-band-advisor/internal/adapter/dias"
	httpadapter "github.com/couchcryptid/iono-band-advisor/internal/adapter/http"
	kafkaadapter "github.com/couchcryptid/iono-band-advisor/internal/adapter/kafka"
	"github.com/couchcryptid/iono-band-advisor/internal/advisor"
	"github.com/couchcryptid/iono-band-advisor/internal/config"
	"github.com/couchcryptid/iono-band-advisor/internal/observability"
	"github.com/couchcryptid/iono-band-advisor/internal/watch"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := dias.NewClient(cfg.DIASBaseURL, cfg.DIASTimeout, logger)

	// The watcher always fetches fresh; the cache only shields the HTTP
	// endpoint from hammering the upstream API with repeated queries.
	base := advisor.New(client, logger)
	cached := advisor.NewCached(base, cfg.CacheSize, cfg.CacheTTL, metrics)

	publisher := kafkaadapter.NewPublisher(cfg, logger)

	watcher := watch.New(base, publisher, cfg.Station, cfg.Lookback, cfg.PollInterval, logger, metrics)

	srv := httpadapter.NewServer(cfg.HTTPAddr, cached, watcher, cfg.Station, metrics, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start the advise-publish loop.
	go func() {
		if err := watcher.Run(ctx); err != nil {
			logger.Error("watcher error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if err := publisher.Close(); err != nil {
		logger.Error("kafka publisher close error", "error", err)
	}

	logger.Info("shutdown complete")
}
