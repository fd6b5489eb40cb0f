package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/angelmondragon/skb-upsell-backend/api/routes"
	"github.com/angelmondragon/skb-upsell-backend/internal/catalog"
	"github.com/angelmondragon/skb-upsell-backend/internal/pricing"
	"github.com/angelmondragon/skb-upsell-backend/internal/quotes"
	"github.com/angelmondragon/skb-upsell-backend/internal/sessions"
	"github.com/angelmondragon/skb-upsell-backend/pkg/config"
	"github.com/angelmondragon/skb-upsell-backend/pkg/logger"
	"github.com/angelmondragon/skb-upsell-backend/pkg/metrics"
	"github.com/angelmondragon/skb-upsell-backend/pkg/redis"
)

func main() {
	os.Exit(run())
}

func run() int {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		return 1
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisClient, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap redis", err)
		return 1
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	quoteMetrics := metrics.NewQuoteMetrics(reg)

	quoteService, err := quotes.NewService(pricing.NewEngine(catalog.Default()), quoteMetrics, logg)
	if err != nil {
		logg.Error(ctx, "failed to create quote service", err)
		_ = redisClient.Close()
		return 1
	}

	sessionService, err := sessions.NewService(redisClient, quoteService, cfg.Session.TTL, logg, quoteMetrics)
	if err != nil {
		logg.Error(ctx, "failed to create session service", err)
		_ = redisClient.Close()
		return 1
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, redisClient, reg, quoteService, sessionService),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(ctx, "starting api server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	exitCode := 0
	select {
	case err := <-serveErr:
		if err != nil {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			exitCode = 1
		}
	case <-ctx.Done():
		logg.Info(ctx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownWait)
	defer cancel()

	if err := multierr.Combine(server.Shutdown(shutdownCtx), redisClient.Close()); err != nil {
		logg.Error(ctx, "error during shutdown", err)
		exitCode = 1
	}
	logg.Info(ctx, "api server stopped")
	return exitCode
}
