// Package facebook pulls the merchant product catalogs from the Graph API.
// The storefront only ever serves from the local cache; sync failures are
// reported, never fatal to order or commission logic.
package facebook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/config"
)

type Client struct {
	accessToken string
	apiVersion  string
	httpClient  *http.Client
	logger      *zap.Logger
}

// NewClient creates a Graph API client.
func NewClient(cfg config.FacebookConfig, logger *zap.Logger) *Client {
	return &Client{
		accessToken: cfg.AccessToken,
		apiVersion:  cfg.APIVersion,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// RawProduct is one product entry as the Graph API returns it. Price arrives
// as a display string ("100 EGP").
type RawProduct struct {
	ID           string `json:"id"`
	RetailerID   string `json:"retailer_id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	Currency     string `json:"currency"`
	ImageURL     string `json:"image_url"`
	Availability string `json:"availability"`
}

type productsPage struct {
	Data   []RawProduct `json:"data"`
	Paging struct {
		Next string `json:"next"`
	} `json:"paging"`
	Error *graphError `json:"error,omitempty"`
}

type graphError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    int    `json:"code"`
}

func (e *graphError) Error() string {
	return fmt.Sprintf("graph API error %d (%s): %s", e.Code, e.Type, e.Message)
}

// FetchCatalogProducts pages through every product of one catalog.
func (c *Client) FetchCatalogProducts(ctx context.Context, catalogID string) ([]RawProduct, error) {
	params := url.Values{}
	params.Set("access_token", c.accessToken)
	params.Set("fields", "id,name,description,price,currency,image_url,availability,retailer_id")
	params.Set("limit", "100")

	next := fmt.Sprintf("https://graph.facebook.com/%s/%s/products?%s", c.apiVersion, catalogID, params.Encode())

	var products []RawProduct
	for next != "" {
		page, err := c.fetchPage(ctx, next)
		if err != nil {
			return nil, err
		}
		products = append(products, page.Data...)
		// The next link carries every parameter already.
		next = page.Paging.Next
	}

	c.logger.Info("Fetched catalog products",
		zap.String("catalog_id", catalogID),
		zap.Int("products", len(products)),
	)
	return products, nil
}

func (c *Client) fetchPage(ctx context.Context, pageURL string) (*productsPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	var page productsPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	if page.Error != nil {
		return nil, page.Error
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("graph API error: status %d, body: %s", resp.StatusCode, string(body))
	}
	return &page, nil
}
