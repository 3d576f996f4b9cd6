package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/domain"
	"github.com/argentostore/storefront/internal/facebook"
	"github.com/argentostore/storefront/internal/metrics"
	"github.com/argentostore/storefront/internal/store"
)

type CatalogService struct {
	catalog *store.CatalogStore
	syncer  *facebook.Syncer
	metrics *metrics.Registry
	logger  *zap.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(catalog *store.CatalogStore, syncer *facebook.Syncer, m *metrics.Registry, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		catalog: catalog,
		syncer:  syncer,
		metrics: m,
		logger:  logger,
	}
}

// GetProduct looks up one product by id or retailer id.
func (s *CatalogService) GetProduct(key string) (*domain.Product, error) {
	return s.catalog.FindByIDOrSlug(key)
}

// ListProducts returns the whole cached catalog.
func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	products, _, err := s.catalog.Load()
	return products, err
}

// SyncStatus reports when the cache was last refreshed and how big it is.
func (s *CatalogService) SyncStatus() (store.CatalogMetadata, error) {
	_, meta, err := s.catalog.Load()
	return meta, err
}

// Sync refreshes the cache from the upstream catalogs. Per-catalog failures
// are carried in the result rather than failing the run.
func (s *CatalogService) Sync(ctx context.Context) (*facebook.SyncResult, error) {
	s.metrics.SyncRuns.Inc()
	result, err := s.syncer.Sync(ctx)
	if err != nil {
		s.metrics.SyncFailures.Inc()
		return result, err
	}
	for _, stat := range result.Catalogs {
		if stat.Error != "" {
			s.metrics.SyncFailures.Inc()
		}
	}
	s.metrics.CatalogSize.Set(float64(result.TotalProducts))
	return result, nil
}
