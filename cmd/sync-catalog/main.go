package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/config"
	"github.com/argentostore/storefront/internal/facebook"
	"github.com/argentostore/storefront/internal/registry"
	"github.com/argentostore/storefront/internal/store"
)

// One-shot tool that mirrors the configured Facebook catalogs into the
// local cache. Meant for cron; the server exposes the same sync over the
// admin API.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if len(cfg.Facebook.CatalogIDs) == 0 {
		fmt.Fprintln(os.Stderr, "No catalogs configured; set CATALOG_<MERCHANT> environment variables")
		os.Exit(1)
	}

	merchants := registry.NewMerchants()
	catalogStore := store.NewCatalogStore(filepath.Join(cfg.DataDir, "catalog_cache.json"), logger)
	client := facebook.NewClient(cfg.Facebook, logger)
	syncer := facebook.NewSyncer(client, cfg.Facebook.CatalogIDs, merchants, catalogStore, logger)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	result, err := syncer.Sync(ctx)
	if err != nil {
		logger.Fatal("Catalog sync failed", zap.Error(err))
	}

	fmt.Printf("Synced %d products in %s\n", result.TotalProducts, result.Duration.Round(time.Millisecond))
	for _, stat := range result.Catalogs {
		if stat.Error != "" {
			fmt.Printf("  %-14s FAILED: %s\n", stat.MerchantID, stat.Error)
			continue
		}
		fmt.Printf("  %-14s %d products\n", stat.MerchantID, stat.Products)
	}
	if result.TotalProducts == 0 {
		os.Exit(1)
	}
}
