package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/argentostore/storefront/internal/config"
	"github.com/argentostore/storefront/internal/domain"
	"github.com/argentostore/storefront/internal/metrics"
	"github.com/argentostore/storefront/internal/registry"
	"github.com/argentostore/storefront/internal/service"
	"github.com/argentostore/storefront/internal/speedaf"
	"github.com/argentostore/storefront/internal/store"
)

const testAdminKey = "test-admin-key"

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	logger := zap.NewNop()

	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminKey), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Environment: "test",
		DataDir:     dir,
		Shipping: config.ShippingConfig{
			RegionRates:           map[string]decimal.Decimal{"Cairo": decimal.NewFromInt(60)},
			DefaultRate:           decimal.NewFromInt(80),
			HandlingFee:           decimal.NewFromInt(5),
			FreeShippingThreshold: decimal.NewFromInt(100),
		},
		Admin: config.AdminConfig{APIKeyHash: string(hash)},
	}

	catalog := store.NewCatalogStore(filepath.Join(dir, "catalog_cache.json"), logger)
	require.NoError(t, catalog.Save([]domain.Product{
		{ID: "p1", RetailerID: "sugar-scrub", Title: "Sugar Scrub", Price: decimal.NewFromInt(150), MerchantID: registry.MerchantAzucar},
	}, store.CatalogMetadata{}))

	orders := store.NewOrderStore(filepath.Join(dir, "orders.json"), logger)
	merchants := registry.NewMerchants()
	geo := registry.NewGeo()
	m := metrics.NewRegistry()
	exporter := speedaf.NewExporter(speedaf.NewFormatter(geo), registry.NewSenders(), logger)

	svc := Services{
		Orders:  service.NewOrderService(catalog, orders, merchants, geo, cfg.Shipping, m, logger),
		Catalog: service.NewCatalogService(catalog, nil, m, logger),
		Export:  service.NewExportService(orders, exporter, dir, m, logger),
	}
	return NewRouter(cfg, svc, geo, m, logger)
}

func doJSON(router *gin.Engine, method, path, body, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(router, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetProduct(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/products/sugar-scrub", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Product domain.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "p1", resp.Product.ID)

	w = doJSON(router, http.MethodGet, "/api/products/missing", "", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateOrderEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"customer": {"name": "أحمد محمد", "phone": "01012345678"},
		"shipping": {"address": "شارع الجلاء", "city": "القاهرة"},
		"items": [{"product_id": "p1", "quantity": 2}]
	}`
	w := doJSON(router, http.MethodPost, "/api/orders", body, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		OrderID string `json:"order_id"`
		Valid   bool   `json:"valid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.Valid)
	assert.True(t, strings.HasPrefix(resp.OrderID, "ORD-"))
}

func TestCreateOrderEndpointRejectsBadPayloads(t *testing.T) {
	router := newTestRouter(t)

	// Missing required fields.
	w := doJSON(router, http.MethodPost, "/api/orders", `{"items": []}`, "")
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Unknown product.
	body := `{
		"customer": {"name": "أحمد", "phone": "01012345678"},
		"shipping": {"address": "x", "city": "القاهرة"},
		"items": [{"product_id": "no-such", "quantity": 1}]
	}`
	w = doJSON(router, http.MethodPost, "/api/orders", body, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommissionPreviewEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodPost, "/api/commission/preview",
		`{"product_id": "p1", "quantity": 2}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Commission domain.CommissionResult `json:"commission"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Commission.Amount.Equal(decimal.NewFromInt(20)))
}

func TestCitiesAreasEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/cities-areas", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Cities map[string]string `json:"cities"`
		Areas  map[string]string `json:"areas"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Cairo", resp.Cities["القاهرة"])
	assert.NotEmpty(t, resp.Areas)
}

func TestAdminRoutesRequireKey(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/admin/orders", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/admin/orders", "", "wrong-key")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(router, http.MethodGet, "/api/admin/orders", "", testAdminKey)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminOrderLifecycle(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"customer": {"name": "أحمد", "phone": "01012345678"},
		"shipping": {"address": "شارع الجلاء", "city": "القاهرة"},
		"items": [{"product_id": "p1", "quantity": 1}]
	}`
	w := doJSON(router, http.MethodPost, "/api/orders", body, "")
	require.Equal(t, http.StatusOK, w.Code)
	var created struct {
		OrderID string `json:"order_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(router, http.MethodGet, "/api/admin/orders/"+created.OrderID, "", testAdminKey)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodPost, "/api/admin/orders/"+created.OrderID+"/status",
		`{"status": "confirmed"}`, testAdminKey)
	assert.Equal(t, http.StatusOK, w.Code)

	// Skipping ahead is a conflict.
	w = doJSON(router, http.MethodPost, "/api/admin/orders/"+created.OrderID+"/status",
		`{"status": "delivered"}`, testAdminKey)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Filter by the new status.
	w = doJSON(router, http.MethodGet, "/api/admin/orders?status=confirmed", "", testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)
}

func TestAdminExportSpeedaf(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"customer": {"name": "أحمد", "phone": "01012345678"},
		"shipping": {"address": "شارع الجلاء", "city": "القاهرة"},
		"items": [{"product_id": "p1", "quantity": 1}]
	}`
	w := doJSON(router, http.MethodPost, "/api/orders", body, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/admin/export/speedaf", "", testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		RowCount int    `json:"row_count"`
		Content  string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.RowCount)
	assert.Len(t, strings.Split(resp.Content, "\t"), 22)
}

func TestAdminDashboardStats(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(router, http.MethodGet, "/api/admin/dashboard-stats", "", testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Stats service.DashboardStats `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Stats.TotalOrders)
}

func TestAdminAuthUnconfigured(t *testing.T) {
	// A router without a configured key hash refuses admin access outright.
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	dir := t.TempDir()
	cfg := &config.Config{Environment: "test", DataDir: dir}
	orders := store.NewOrderStore(filepath.Join(dir, "orders.json"), logger)
	catalog := store.NewCatalogStore(filepath.Join(dir, "catalog_cache.json"), logger)
	geo := registry.NewGeo()
	m := metrics.NewRegistry()
	svc := Services{
		Orders:  service.NewOrderService(catalog, orders, registry.NewMerchants(), geo, cfg.Shipping, m, logger),
		Catalog: service.NewCatalogService(catalog, nil, m, logger),
		Export:  service.NewExportService(orders, speedaf.NewExporter(speedaf.NewFormatter(geo), registry.NewSenders(), logger), dir, m, logger),
	}
	bare := NewRouter(cfg, svc, geo, m, logger)

	w := doJSON(bare, http.MethodGet, "/api/admin/orders", "", "any-key")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
