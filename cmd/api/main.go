package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/stitchandstory/shop-backend/api/routes"
	"github.com/stitchandstory/shop-backend/internal/catalog"
	cartsvc "github.com/stitchandstory/shop-backend/internal/cart"
	ordersvc "github.com/stitchandstory/shop-backend/internal/orders"
	"github.com/stitchandstory/shop-backend/pkg/config"
	"github.com/stitchandstory/shop-backend/pkg/ids"
	"github.com/stitchandstory/shop-backend/pkg/instance"
	"github.com/stitchandstory/shop-backend/pkg/logger"
	"github.com/stitchandstory/shop-backend/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "shop-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "shop-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	catalogService, err := catalog.NewService(catalog.Seed())
	if err != nil {
		logg.Error(context.Background(), "failed to build catalog", err)
		os.Exit(1)
	}

	generator := ids.NewGenerator()

	cartService, err := cartsvc.NewService(cartsvc.NewMemoryStore(), generator, nil)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	orderService, err := ordersvc.NewService(ordersvc.NewMemoryStore(), generator, nil)
	if err != nil {
		logg.Error(context.Background(), "failed to create order service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})
	logg.Info(ctx, "starting shop api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, catalogService, cartService, orderService, httpMetrics, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
