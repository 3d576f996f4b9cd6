package main

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/api"
	"github.com/argentostore/storefront/internal/config"
	"github.com/argentostore/storefront/internal/facebook"
	"github.com/argentostore/storefront/internal/metrics"
	"github.com/argentostore/storefront/internal/registry"
	"github.com/argentostore/storefront/internal/service"
	"github.com/argentostore/storefront/internal/speedaf"
	"github.com/argentostore/storefront/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Static configuration
	merchants := registry.NewMerchants()
	if err := merchants.Validate(); err != nil {
		logger.Fatal("Merchant registry is misconfigured", zap.Error(err))
	}
	senders := registry.NewSenders()
	geo := registry.NewGeo()

	// Stores
	catalogStore := store.NewCatalogStore(filepath.Join(cfg.DataDir, "catalog_cache.json"), logger)
	orderStore := store.NewOrderStore(filepath.Join(cfg.DataDir, "orders.json"), logger)

	// Collaborators
	m := metrics.NewRegistry()
	fbClient := facebook.NewClient(cfg.Facebook, logger)
	syncer := facebook.NewSyncer(fbClient, cfg.Facebook.CatalogIDs, merchants, catalogStore, logger)
	exporter := speedaf.NewExporter(speedaf.NewFormatter(geo), senders, logger)

	// Services
	svc := api.Services{
		Orders:  service.NewOrderService(catalogStore, orderStore, merchants, geo, cfg.Shipping, m, logger),
		Catalog: service.NewCatalogService(catalogStore, syncer, m, logger),
		Export:  service.NewExportService(orderStore, exporter, cfg.DataDir, m, logger),
	}

	router := api.NewRouter(cfg, svc, geo, m, logger)

	logger.Info("Starting storefront server",
		zap.String("port", cfg.Port),
		zap.String("environment", cfg.Environment),
	)
	if err := router.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Server stopped", zap.Error(err))
	}
}
