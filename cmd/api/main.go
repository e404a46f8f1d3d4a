package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andesmarket/shipping-backend/api/routes"
	shippingsvc "github.com/andesmarket/shipping-backend/internal/shipping"
	"github.com/andesmarket/shipping-backend/pkg/config"
	"github.com/andesmarket/shipping-backend/pkg/db"
	"github.com/andesmarket/shipping-backend/pkg/logger"
	"github.com/andesmarket/shipping-backend/pkg/metrics"
	"github.com/andesmarket/shipping-backend/pkg/migrate"
	"github.com/andesmarket/shipping-backend/pkg/redis"
	"github.com/andesmarket/shipping-backend/pkg/shopify"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(context.Background(), cfg.Redis)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
	} else {
		logg.Warn(context.Background(), "redis not configured, platform zone cache disabled")
	}

	registry := prometheus.NewRegistry()
	quoteMetrics := metrics.NewQuoteMetrics(registry)

	platformClient := shopify.NewClient(cfg.Shopify.APIVersion, cfg.Shopify.Timeout)

	var zoneCache shippingsvc.ZoneCache
	if redisClient != nil {
		zoneCache = redisClient
	}

	shippingService, err := shippingsvc.NewService(shippingsvc.ServiceParams{
		Repo:         shippingsvc.NewRepository(dbClient.DB()),
		Platform:     platformClient,
		Cache:        zoneCache,
		Logger:       logg,
		Metrics:      quoteMetrics,
		Defaults:     cfg.Shipping,
		ZoneCacheTTL: cfg.Shopify.ZonesCacheTTL,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create shipping service", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbClient, redisClient, registry, shippingService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
