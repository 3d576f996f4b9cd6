package facebook

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/config"
	"github.com/argentostore/storefront/internal/registry"
	"github.com/argentostore/storefront/internal/store"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"100 EGP", "100"},
		{"1,250.00 EGP", "1250"},
		{"45.5", "45.5"},
		{"", "0"},
		{"free", "0"},
	}
	for _, tc := range cases {
		want, err := decimal.NewFromString(tc.want)
		require.NoError(t, err)
		assert.True(t, parsePrice(tc.in).Equal(want), "input %q", tc.in)
	}
}

func TestFetchPagePaging(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/page1":
			fmt.Fprintf(w, `{"data":[{"id":"1","name":"A","price":"100 EGP"}],"paging":{"next":"%s/page2"}}`, server.URL)
		case "/page2":
			fmt.Fprint(w, `{"data":[{"id":"2","name":"B","price":"200 EGP"}],"paging":{}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client := NewClient(config.FacebookConfig{AccessToken: "token", APIVersion: "v18.0"}, zap.NewNop())

	var products []RawProduct
	next := server.URL + "/page1"
	for next != "" {
		page, err := client.fetchPage(context.Background(), next)
		require.NoError(t, err)
		products = append(products, page.Data...)
		next = page.Paging.Next
	}

	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, "B", products[1].Name)
}

func TestFetchPageGraphError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"message":"Invalid OAuth access token","type":"OAuthException","code":190}}`)
	}))
	defer server.Close()

	client := NewClient(config.FacebookConfig{}, zap.NewNop())
	_, err := client.fetchPage(context.Background(), server.URL)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "OAuthException")
}

func TestCleanProduct(t *testing.T) {
	merchants := registry.NewMerchants()
	s := &Syncer{merchants: merchants, logger: zap.NewNop()}

	p := s.cleanProduct(RawProduct{
		ID:           "123",
		RetailerID:   "sugar-scrub",
		Name:         "Sugar Scrub",
		Price:        "150 EGP",
		Availability: "in stock",
	}, "cat-1", merchants.Lookup(registry.MerchantAzucar))

	assert.Equal(t, "123", p.ID)
	assert.Equal(t, registry.MerchantAzucar, p.MerchantID)
	assert.Equal(t, "Azúcar", p.MerchantName)
	assert.Equal(t, "cat-1", p.CatalogID)
	assert.True(t, p.Price.Equal(decimal.NewFromInt(150)))
	assert.Equal(t, "EGP", p.Currency, "normalized default")
	assert.Equal(t, 1, p.PackSize)
}

func TestCleanProductWholesaleMerchant(t *testing.T) {
	merchants := registry.NewMerchants()
	s := &Syncer{merchants: merchants, logger: zap.NewNop()}

	p := s.cleanProduct(RawProduct{ID: "1", Name: "Shampoo"}, "cat-u", merchants.Lookup(registry.MerchantUnilever))

	assert.Equal(t, registry.UnileverPackSize, p.PackSize)
	assert.Equal(t, registry.UnileverPackSize, p.MinOrderQty)
}

func TestCleanProductUnnamed(t *testing.T) {
	merchants := registry.NewMerchants()
	s := &Syncer{merchants: merchants, logger: zap.NewNop()}

	p := s.cleanProduct(RawProduct{ID: "1"}, "cat-1", merchants.Lookup(registry.MerchantAzucar))
	assert.Equal(t, "منتج بدون اسم", p.Title)
}

func TestSyncSavesEmptyResultOnFetchFailure(t *testing.T) {
	// An unreachable catalog is reported in the stats, not returned as an
	// error; the merged (empty) catalog still replaces the cache.
	dir := t.TempDir()
	catalogStore := store.NewCatalogStore(filepath.Join(dir, "catalog_cache.json"), zap.NewNop())

	client := NewClient(config.FacebookConfig{APIVersion: "v18.0"}, zap.NewNop())
	client.httpClient = &http.Client{Transport: failingTransport{}}

	syncer := NewSyncer(client, map[string]string{registry.MerchantAzucar: "cat-1"}, registry.NewMerchants(), catalogStore, zap.NewNop())

	result, err := syncer.Sync(context.Background())
	require.NoError(t, err)
	require.Len(t, result.Catalogs, 1)
	assert.NotEmpty(t, result.Catalogs[0].Error)
	assert.Zero(t, result.TotalProducts)
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, fmt.Errorf("connection refused")
}
