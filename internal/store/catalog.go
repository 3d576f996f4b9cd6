package store

import (
	"time"

	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/domain"
	apperrors "github.com/argentostore/storefront/pkg/errors"
)

// CatalogMetadata describes the last sync that produced the cache.
type CatalogMetadata struct {
	LastSync      time.Time      `json:"last_sync"`
	TotalProducts int            `json:"total_products"`
	Catalogs      map[string]int `json:"catalogs,omitempty"`
}

// catalogDocument is the on-disk layout: `{metadata, products}`.
type catalogDocument struct {
	Metadata CatalogMetadata  `json:"metadata"`
	Products []domain.Product `json:"products"`
}

// CatalogStore holds the merged product cache on disk.
type CatalogStore struct {
	path   string
	logger *zap.Logger
}

// NewCatalogStore creates a catalog store backed by the given file.
func NewCatalogStore(path string, logger *zap.Logger) *CatalogStore {
	return &CatalogStore{path: path, logger: logger}
}

// Load reads the cached catalog. Both the wrapped `{metadata, products}`
// document and a bare product array are accepted; a missing file reads as an
// empty catalog.
func (s *CatalogStore) Load() ([]domain.Product, CatalogMetadata, error) {
	var doc catalogDocument
	exists, err := readDocument(s.path, &doc)
	if err != nil {
		// Older caches were bare arrays; retry before giving up.
		var plain []domain.Product
		if _, arrErr := readDocument(s.path, &plain); arrErr == nil {
			return normalizeAll(plain), CatalogMetadata{TotalProducts: len(plain)}, nil
		}
		s.logger.Error("Failed to load catalog", zap.String("path", s.path), zap.Error(err))
		return nil, CatalogMetadata{}, err
	}
	if !exists {
		return nil, CatalogMetadata{}, nil
	}
	return normalizeAll(doc.Products), doc.Metadata, nil
}

// Save atomically replaces the catalog cache. The previous contents are
// overwritten wholesale; last sync wins.
func (s *CatalogStore) Save(products []domain.Product, meta CatalogMetadata) error {
	meta.TotalProducts = len(products)
	if meta.LastSync.IsZero() {
		meta.LastSync = time.Now()
	}
	if err := writeDocument(s.path, catalogDocument{Metadata: meta, Products: products}); err != nil {
		s.logger.Error("Failed to save catalog", zap.String("path", s.path), zap.Error(err))
		return err
	}
	s.logger.Info("Catalog saved",
		zap.String("path", s.path),
		zap.Int("products", len(products)),
	)
	return nil
}

// FindByIDOrSlug looks a product up by upstream id first, then by its
// merchant-local retailer id.
func (s *CatalogStore) FindByIDOrSlug(key string) (*domain.Product, error) {
	products, _, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == key {
			return &products[i], nil
		}
	}
	for i := range products {
		if products[i].RetailerID == key {
			return &products[i], nil
		}
	}
	return nil, &apperrors.ErrNotFound{Resource: "product", ID: key}
}

func normalizeAll(products []domain.Product) []domain.Product {
	for i := range products {
		products[i].Normalize()
	}
	return products
}
