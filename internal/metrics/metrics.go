package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	OrdersCreated prometheus.Counter
	OrdersInvalid prometheus.Counter
	StatusChanges prometheus.Counter
	ExportsRun    prometheus.Counter
	ExportRows    prometheus.Counter
	ExportSkipped prometheus.Counter
	SyncRuns      prometheus.Counter
	SyncFailures  prometheus.Counter
	CatalogSize   prometheus.Gauge
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	ordersCreated := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_orders_created_total"})
	ordersInvalid := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_orders_invalid_total"})
	statusChanges := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_order_status_changes_total"})
	exportsRun := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_speedaf_exports_total"})
	exportRows := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_speedaf_rows_total"})
	exportSkipped := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_speedaf_rows_skipped_total"})
	syncRuns := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_catalog_sync_total"})
	syncFailures := prometheus.NewCounter(prometheus.CounterOpts{Name: "storefront_catalog_sync_failures_total"})
	catalogSize := prometheus.NewGauge(prometheus.GaugeOpts{Name: "storefront_catalog_products"})

	r.MustRegister(ordersCreated, ordersInvalid, statusChanges, exportsRun, exportRows, exportSkipped, syncRuns, syncFailures, catalogSize)
	return &Registry{
		reg:           r,
		OrdersCreated: ordersCreated,
		OrdersInvalid: ordersInvalid,
		StatusChanges: statusChanges,
		ExportsRun:    exportsRun,
		ExportRows:    exportRows,
		ExportSkipped: exportSkipped,
		SyncRuns:      syncRuns,
		SyncFailures:  syncFailures,
		CatalogSize:   catalogSize,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
