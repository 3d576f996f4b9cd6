package service

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/domain"
	"github.com/argentostore/storefront/internal/metrics"
	"github.com/argentostore/storefront/internal/speedaf"
	"github.com/argentostore/storefront/internal/store"
)

type ExportService struct {
	orders   *store.OrderStore
	exporter *speedaf.Exporter
	dataDir  string
	metrics  *metrics.Registry
	logger   *zap.Logger
}

// NewExportService creates a new export service
func NewExportService(orders *store.OrderStore, exporter *speedaf.Exporter, dataDir string, m *metrics.Registry, logger *zap.Logger) *ExportService {
	return &ExportService{
		orders:   orders,
		exporter: exporter,
		dataDir:  dataDir,
		metrics:  m,
		logger:   logger,
	}
}

// Generate builds the carrier manifest content for the orders matching the
// status filter. An empty filter means the default exportable statuses
// (pending, confirmed, processing).
func (s *ExportService) Generate(statuses ...domain.OrderStatus) (speedaf.ExportResult, error) {
	if len(statuses) == 0 {
		statuses = speedaf.ExportableStatuses
	}
	orders, err := s.orders.ListByStatus(statuses...)
	if err != nil {
		return speedaf.ExportResult{}, err
	}

	result := s.exporter.GenerateCSVContent(orders)
	s.metrics.ExportsRun.Inc()
	s.metrics.ExportRows.Add(float64(result.RowCount))
	s.metrics.ExportSkipped.Add(float64(len(result.Skipped)))
	return result, nil
}

// ExportToFile writes the manifest for the default statuses to a timestamped
// file under the data directory and returns its path.
func (s *ExportService) ExportToFile() (string, speedaf.ExportResult, error) {
	orders, err := s.orders.ListByStatus(speedaf.ExportableStatuses...)
	if err != nil {
		return "", speedaf.ExportResult{}, err
	}
	path, result, err := s.exporter.ExportToFile(orders, filepath.Join(s.dataDir, "exports"))
	if err != nil {
		return "", result, err
	}
	s.metrics.ExportsRun.Inc()
	s.metrics.ExportRows.Add(float64(result.RowCount))
	s.metrics.ExportSkipped.Add(float64(len(result.Skipped)))
	return path, result, nil
}
