package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/minepool-labs/poolledger-backend/internal/metrics"
	"github.com/minepool-labs/poolledger-backend/internal/repository/postgres"
	"github.com/minepool-labs/poolledger-backend/internal/settlement"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var config struct {
	PostgresDSN string        `long:"postgres-dsn" env:"LEASE_JANITOR_POSTGRES_DSN" description:"postgres dsn" default:"postgres://localhost:5432/poolledger?sslmode=disable"`
	Interval    time.Duration `long:"interval" env:"LEASE_JANITOR_INTERVAL" description:"scan interval" default:"1m"`
	MetricsAddr string        `long:"metrics-addr" env:"LEASE_JANITOR_METRICS_ADDR" description:"address for metrics server" default:":2112"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	if _, err := flags.ParseArgs(&config, os.Args); err != nil {
		logger.Fatal("Failed to parse arguments", zap.Error(err))
	}

	startMetricsServer(ctx, config.MetricsAddr, logger)

	repo, err := postgres.NewRepository(config.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		logger.Fatal("Failed to create repository", zap.Error(err))
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			logger.Error("Failed to close repository", zap.Error(closeErr))
		}
	}()
	if err := repo.Ping(ctx); err != nil {
		logger.Fatal("Failed to ping postgres", zap.Error(err))
	}

	janitor, err := settlement.NewJanitor(repo, metrics.NewLeaseJanitor(), config.Interval, logger)
	if err != nil {
		logger.Fatal("Failed to create janitor", zap.Error(err))
	}

	logger.Info("Starting lease janitor", zap.Duration("interval", config.Interval))
	if err := janitor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Janitor stopped", zap.Error(err))
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
