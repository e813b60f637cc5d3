package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	VisitsRecordedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_visits_recorded_total",
		Help: "Total number of storefront visits recorded",
	})

	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_orders_created_total",
		Help: "Total number of orders created at checkout",
	})

	OrderStatusUpdatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_order_status_updates_total",
		Help: "Total number of order status updates",
	}, []string{"status"})

	LoginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "storefront_logins_total",
		Help: "Total number of login attempts",
	}, []string{"outcome"})

	CatalogCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_catalog_cache_hits_total",
		Help: "Total number of catalog reads served from cache",
	})

	CatalogCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "storefront_catalog_cache_misses_total",
		Help: "Total number of catalog reads that fell through to the database",
	})
)
