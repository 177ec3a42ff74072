package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	appevents "slidegate/internal/app/events"
	"slidegate/internal/app/proxy"
	"slidegate/internal/cache"
	"slidegate/internal/clients/brokerage"
	"slidegate/internal/config"
	eventshandler "slidegate/internal/http/handlers/events"
	"slidegate/internal/http/handlers/health"
	ordershandler "slidegate/internal/http/handlers/orders"
	"slidegate/internal/http/router"
	"slidegate/internal/kafka"
	"slidegate/internal/logging"
	"slidegate/internal/metrics"
	"slidegate/internal/telemetry"
)

func main() {
	// Top-level context with graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceEnv,
	)

	logger.Info("starting gateway",
		"env", cfg.Environment,
		"upstream", cfg.Upstream.BaseURL,
	)

	otelShutdown, err := telemetry.Setup(ctx, cfg.Observability, logger)
	if err != nil {
		logger.Error("failed to setup telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown telemetry", "error", err)
		}
	}()

	// Idempotency store: Redis when configured, in-process otherwise.
	var redisClient *cache.RedisClient
	var idemStore cache.IdempotencyStore
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Error("failed to init redis", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Error("failed to close redis", "error", err)
			}
		}()
		idemStore = cache.NewIdempotencyStore(redisClient, cfg.Redis.IdempotencyTTL)
	} else {
		idemStore = cache.NewMemoryIdempotencyStore(cfg.Redis.IdempotencyTTL)
	}

	bus, closeBus, err := kafka.NewBus(cfg.Kafka, logger)
	if err != nil {
		logger.Error("failed to init kafka bus", "error", err)
		os.Exit(1)
	}
	defer func() {
		_ = closeBus(context.Background())
	}()

	upstream, err := brokerage.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, logger)
	if err != nil {
		logger.Error("failed to init upstream client", "error", err)
		os.Exit(1)
	}

	m := metrics.New()

	forwarder := proxy.NewService(upstream, m, logger)
	ingest := appevents.NewService(
		forwarder,
		kafka.NewEventRelay(bus, cfg.Kafka, logger),
		idemStore,
		m,
		logger,
	)

	httpRouter := router.NewRouter(
		logger,
		health.NewHandler(upstream, redisClient, logger),
		ordershandler.NewHandler(forwarder, logger),
		eventshandler.NewHandler(ingest, logger),
	)

	srv := &http.Server{
		Addr: fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: otelhttp.NewHandler(
			httpRouter,
			cfg.Observability.ServiceName, // span name prefix
		),
	}

	errCh := make(chan error, 1)

	go func() {
		logger.Info("http server starting",
			"host", cfg.HTTP.Host,
			"port", cfg.HTTP.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("received shutdown signal")
	case err := <-errCh:
		logger.Error("fatal error from http server", "error", err)
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown http server", "error", err)
	}

	logger.Info("gateway stopped")
}
