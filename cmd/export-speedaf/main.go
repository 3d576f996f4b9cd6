package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/config"
	"github.com/argentostore/storefront/internal/domain"
	"github.com/argentostore/storefront/internal/registry"
	"github.com/argentostore/storefront/internal/speedaf"
	"github.com/argentostore/storefront/internal/store"
)

// One-shot tool that writes a Speedaf upload file for the active orders
// on disk, the same output the admin export endpoint produces.
func main() {
	statusFlag := flag.String("statuses", "", "comma-separated order statuses to export (default: pending,confirmed,processing)")
	outDir := flag.String("out", "", "output directory (default: <data-dir>/exports)")
	flag.Parse()

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

	statuses := speedaf.ExportableStatuses
	if *statusFlag != "" {
		statuses = nil
		for _, raw := range strings.Split(*statusFlag, ",") {
			status := domain.OrderStatus(strings.TrimSpace(raw))
			if !status.IsValid() {
				fmt.Fprintf(os.Stderr, "Unknown order status: %s\n", raw)
				os.Exit(1)
			}
			statuses = append(statuses, status)
		}
	}

	orderStore := store.NewOrderStore(filepath.Join(cfg.DataDir, "orders.json"), logger)
	orders, err := orderStore.ListByStatus(statuses...)
	if err != nil {
		logger.Fatal("Failed to load orders", zap.Error(err))
	}

	exporter := speedaf.NewExporter(speedaf.NewFormatter(registry.NewGeo()), registry.NewSenders(), logger)

	dir := *outDir
	if dir == "" {
		dir = filepath.Join(cfg.DataDir, "exports")
	}
	path, result, err := exporter.ExportToFile(orders, dir)
	if err != nil {
		logger.Fatal("Export failed", zap.Error(err))
	}

	if result.RowCount == 0 {
		fmt.Println("No exportable orders; nothing written")
		return
	}
	fmt.Printf("Wrote %s\n", path)
	fmt.Printf("  rows:    %d\n", result.RowCount)
	fmt.Printf("  skipped: %d\n", len(result.Skipped))
	for _, id := range result.Skipped {
		fmt.Printf("    - %s\n", id)
	}
}
