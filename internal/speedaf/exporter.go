package speedaf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/argentostore/storefront/internal/domain"
	"github.com/argentostore/storefront/internal/registry"
)

// ExportableStatuses is the default status filter: orders awaiting shipment.
var ExportableStatuses = []domain.OrderStatus{
	domain.OrderStatusPending,
	domain.OrderStatusConfirmed,
	domain.OrderStatusProcessing,
}

// ExportResult summarizes one batch export.
type ExportResult struct {
	Content  string   `json:"-"`
	RowCount int      `json:"row_count"`
	Skipped  []string `json:"skipped,omitempty"`
}

// Exporter turns batches of orders into carrier manifest content.
type Exporter struct {
	formatter *Formatter
	senders   *registry.Senders
	logger    *zap.Logger
}

// NewExporter creates a batch exporter.
func NewExporter(formatter *Formatter, senders *registry.Senders, logger *zap.Logger) *Exporter {
	return &Exporter{formatter: formatter, senders: senders, logger: logger}
}

// GenerateCSVContent maps every eligible order to a manifest row and joins
// them with newlines. Orders missing a receiver name, phone, or city are
// skipped and logged; a bad order never aborts the batch.
func (e *Exporter) GenerateCSVContent(orders []domain.Order) ExportResult {
	var rows []string
	var skipped []string

	for i := range orders {
		order := &orders[i]
		if reason := missingReceiverField(order); reason != "" {
			skipped = append(skipped, order.OrderID)
			e.logger.Warn("Skipping order with missing receiver data",
				zap.String("order_id", order.OrderID),
				zap.String("missing", reason),
			)
			continue
		}

		sender := e.senders.Resolve(primaryMerchant(order))
		rec := e.formatter.Format(order, sender)
		if len(rec.FallbackUsed) > 0 {
			e.logger.Info("Carrier record used fallback values",
				zap.String("order_id", order.OrderID),
				zap.Strings("fields", rec.FallbackUsed),
			)
		}
		rows = append(rows, rec.Row())
	}

	return ExportResult{
		Content:  strings.Join(rows, "\n"),
		RowCount: len(rows),
		Skipped:  skipped,
	}
}

// ExportToFile writes the batch content to a timestamped file under dir.
func (e *Exporter) ExportToFile(orders []domain.Order, dir string) (string, ExportResult, error) {
	result := e.GenerateCSVContent(orders)
	if result.RowCount == 0 {
		return "", result, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", result, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	filename := fmt.Sprintf("speedaf_export_%s.csv", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(result.Content), 0o644); err != nil {
		return "", result, fmt.Errorf("write %s: %w", path, err)
	}

	e.logger.Info("Speedaf export written",
		zap.String("path", path),
		zap.Int("rows", result.RowCount),
		zap.Int("skipped", len(result.Skipped)),
	)
	return path, result, nil
}

// missingReceiverField checks the raw order fields before any normalization,
// so an absent phone skips the row even though normalization itself never
// fails. Returns the first missing field name, or "".
func missingReceiverField(order *domain.Order) string {
	if strings.TrimSpace(order.Customer.Name) == "" {
		return "receiver_name"
	}
	if strings.TrimSpace(order.Customer.Phone) == "" {
		return "receiver_phone"
	}
	if strings.TrimSpace(order.Shipping.City) == "" {
		return "receiver_city"
	}
	return ""
}

// primaryMerchant picks the merchant whose sender profile labels the package:
// the first line's merchant.
func primaryMerchant(order *domain.Order) string {
	if len(order.Lines) > 0 {
		return order.Lines[0].MerchantID
	}
	return ""
}
