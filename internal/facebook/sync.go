package facebook

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/domain"
	"github.com/argentostore/storefront/internal/registry"
	"github.com/argentostore/storefront/internal/store"
)

// CatalogStat is the per-catalog outcome of a sync run.
type CatalogStat struct {
	MerchantID string `json:"merchant_id"`
	Products   int    `json:"products"`
	Error      string `json:"error,omitempty"`
}

// SyncResult summarizes one sync run. Per-catalog failures land in the stats;
// the run itself only errors when the merged catalog cannot be saved.
type SyncResult struct {
	StartedAt     time.Time     `json:"started_at"`
	Duration      time.Duration `json:"duration"`
	TotalProducts int           `json:"total_products"`
	Catalogs      []CatalogStat `json:"catalogs"`
}

// Syncer mirrors the configured Facebook catalogs into the local cache.
type Syncer struct {
	client     *Client
	catalogIDs map[string]string
	merchants  *registry.Merchants
	catalog    *store.CatalogStore
	logger     *zap.Logger
}

// NewSyncer creates a catalog syncer. catalogIDs maps merchant id → catalog id.
func NewSyncer(client *Client, catalogIDs map[string]string, merchants *registry.Merchants, catalog *store.CatalogStore, logger *zap.Logger) *Syncer {
	return &Syncer{
		client:     client,
		catalogIDs: catalogIDs,
		merchants:  merchants,
		catalog:    catalog,
		logger:     logger,
	}
}

// Sync fetches every configured catalog, merges the products, and atomically
// replaces the local cache. Last sync wins; products are overwritten
// wholesale.
func (s *Syncer) Sync(ctx context.Context) (*SyncResult, error) {
	result := &SyncResult{StartedAt: time.Now()}

	var merged []domain.Product
	counts := make(map[string]int)
	for merchantID, catalogID := range s.catalogIDs {
		stat := CatalogStat{MerchantID: merchantID}
		raw, err := s.client.FetchCatalogProducts(ctx, catalogID)
		if err != nil {
			stat.Error = err.Error()
			result.Catalogs = append(result.Catalogs, stat)
			s.logger.Warn("Catalog sync failed for merchant",
				zap.String("merchant_id", merchantID),
				zap.Error(err),
			)
			continue
		}

		merchant := s.merchants.Lookup(merchantID)
		for _, rp := range raw {
			merged = append(merged, s.cleanProduct(rp, catalogID, merchant))
		}
		stat.Products = len(raw)
		counts[merchantID] = len(raw)
		result.Catalogs = append(result.Catalogs, stat)
	}

	result.TotalProducts = len(merged)
	result.Duration = time.Since(result.StartedAt)

	if err := s.catalog.Save(merged, store.CatalogMetadata{
		LastSync: result.StartedAt,
		Catalogs: counts,
	}); err != nil {
		return result, err
	}

	s.logger.Info("Catalog sync finished",
		zap.Int("products", result.TotalProducts),
		zap.Int("catalogs", len(result.Catalogs)),
		zap.Duration("duration", result.Duration),
	)
	return result, nil
}

// cleanProduct maps a raw Graph API entry into a catalog product, applying
// the merchant identity and the field defaults.
func (s *Syncer) cleanProduct(rp RawProduct, catalogID string, merchant *domain.Merchant) domain.Product {
	p := domain.Product{
		ID:           rp.ID,
		RetailerID:   rp.RetailerID,
		Title:        rp.Name,
		Description:  rp.Description,
		Price:        parsePrice(rp.Price),
		Currency:     rp.Currency,
		MerchantID:   merchant.ID,
		MerchantName: merchant.Name,
		CatalogID:    catalogID,
		ImageURL:     rp.ImageURL,
		Availability: domain.Availability(rp.Availability),
		UpdatedAt:    time.Now(),
	}
	if p.Title == "" {
		p.Title = "منتج بدون اسم"
	}
	if merchant.CommissionType == domain.CommissionComplexExternal && merchant.External != nil {
		p.PackSize = merchant.External.PackSize
		p.MinOrderQty = merchant.External.PackSize
	}
	p.Normalize()
	return p
}

// parsePrice handles the Graph API's display-string prices ("100 EGP",
// "1,250.00 EGP"). Unparseable prices read as zero.
func parsePrice(raw string) decimal.Decimal {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return decimal.Zero
	}
	numeric := strings.ReplaceAll(fields[0], ",", "")
	d, err := decimal.NewFromString(numeric)
	if err != nil {
		return decimal.Zero
	}
	return d
}
