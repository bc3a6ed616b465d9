package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/angelmondragon/storegate/api/routes"
	"github.com/angelmondragon/storegate/internal/accounts"
	"github.com/angelmondragon/storegate/internal/catalog"
	"github.com/angelmondragon/storegate/internal/dashboard"
	"github.com/angelmondragon/storegate/internal/orders"
	"github.com/angelmondragon/storegate/internal/stats"
	"github.com/angelmondragon/storegate/internal/users"
	"github.com/angelmondragon/storegate/internal/wishlist"
	"github.com/angelmondragon/storegate/pkg/cache"
	"github.com/angelmondragon/storegate/pkg/config"
	"github.com/angelmondragon/storegate/pkg/logger"
	"github.com/angelmondragon/storegate/pkg/metrics"
	"github.com/angelmondragon/storegate/pkg/upstream"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "gateway"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "gateway",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	var redisClient *cache.Client
	if cfg.Cache.Enabled {
		redisClient, err = cache.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	}
	pages := cache.NewPageCache(redisClient, cfg.Cache.PageTTL, logg)

	up, err := upstream.New(upstream.Options{
		BaseURL: cfg.Upstream.BaseURL,
		Timeout: cfg.Upstream.Timeout,
		Logger:  logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to build upstream client", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	m := metrics.NewGatewayMetrics(registry)

	catalogClient := catalog.NewClient(up, logg)
	statsClient := stats.NewClient(up, logg)

	handler := routes.NewRouter(cfg, logg, redisClient, pages, m, registry, routes.Services{
		Accounts:  accounts.NewClient(up, logg),
		Catalog:   catalogClient,
		Orders:    orders.NewClient(up, logg),
		Users:     users.NewClient(up, logg),
		Wishlist:  wishlist.NewClient(up, logg),
		Stats:     statsClient,
		Dashboard: dashboard.NewService(catalogClient, statsClient, logg),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"upstream": cfg.Upstream.BaseURL,
	})
	logg.Info(ctx, "starting gateway")

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "gateway stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stop:
		logg.Info(ctx, "shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(shutdownCtx, "graceful shutdown failed", err)
		}
	}
}
